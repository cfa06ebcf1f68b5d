package block

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type DeleteBlock struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewDeleteBlock(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *DeleteBlock {
	return &DeleteBlock{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteBlock) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	blockID uint,
) error {

	blk, err := uc.repo.GetBlockByID(ctx, blockID)
	if err != nil {
		return httperr.ErrBusiness("block_not_found")
	}
	if blk.SalonID != salonID {
		return httperr.ErrBusiness("block_not_found")
	}

	if err := uc.repo.DeleteBlock(ctx, blockID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "block_deleted",
		Entity:   "blocked_range",
		EntityID: &blockID,
	})

	return nil
}
