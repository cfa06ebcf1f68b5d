package block

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListBlocks struct {
	repo schedule.Repository
}

func NewListBlocks(repo schedule.Repository) *ListBlocks {
	return &ListBlocks{repo: repo}
}

// Execute lista os bloqueios do salão, ou só os do profissional quando
// artistID vem preenchido. Sempre ordenado por início ascendente.
func (uc *ListBlocks) Execute(
	ctx context.Context,
	salonID uint,
	artistID *uint,
) ([]models.BlockedRange, error) {

	if artistID == nil {
		return uc.repo.ListBlocksBySalon(ctx, salonID)
	}

	artist, err := uc.repo.GetArtist(ctx, *artistID)
	if err != nil || artist.SalonID != salonID {
		return nil, httperr.ErrBusiness("artist_not_found")
	}

	return uc.repo.ListBlocksByArtist(ctx, *artistID)
}
