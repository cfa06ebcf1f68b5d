package block

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UpdateBlockInput struct {
	Start *string // RFC3339
	End   *string // RFC3339

	Reason      *string
	ClearReason bool
}

type UpdateBlock struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewUpdateBlock(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *UpdateBlock {
	return &UpdateBlock{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBlock) Execute(
	ctx context.Context,
	salonID uint,
	userID uint,
	blockID uint,
	in UpdateBlockInput,
) (*models.BlockedRange, error) {

	blk, err := uc.repo.GetBlockByID(ctx, blockID)
	if err != nil {
		return nil, httperr.ErrBusiness("block_not_found")
	}
	if blk.SalonID != salonID {
		return nil, httperr.ErrBusiness("block_not_found")
	}

	start := blk.StartTime
	if in.Start != nil {
		start, err = time.Parse(time.RFC3339, *in.Start)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_start")
		}
	}

	end := blk.EndTime
	if in.End != nil {
		end, err = time.Parse(time.RFC3339, *in.End)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_end")
		}
	}

	// revalida o par efetivo: campo não enviado conta com o valor existente
	if !start.Before(end) {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	blk.StartTime = start
	blk.EndTime = end

	if in.ClearReason {
		blk.Reason = nil
	} else if in.Reason != nil {
		blk.Reason = in.Reason
	}

	if err := uc.repo.SaveBlock(ctx, blk); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "block_updated",
		Entity:   "blocked_range",
		EntityID: &blk.ID,
	})

	return blk, nil
}
