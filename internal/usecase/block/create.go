package block

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBlockInput struct {
	SalonID uint
	UserID  uint

	ArtistID *uint

	Start  string // RFC3339
	End    string // RFC3339
	Reason *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBlock struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewCreateBlock(
	repo schedule.Repository,
	audit *audit.Dispatcher,
) *CreateBlock {
	return &CreateBlock{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBlock) Execute(
	ctx context.Context,
	in CreateBlockInput,
) (*models.BlockedRange, error) {

	if in.Start == "" || in.End == "" {
		return nil, httperr.ErrBusiness("missing_range")
	}

	start, err := time.Parse(time.RFC3339, in.Start)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_start")
	}

	end, err := time.Parse(time.RFC3339, in.End)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_end")
	}

	// início estritamente antes do fim; intervalo vazio é rejeitado
	if !start.Before(end) {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	if in.ArtistID != nil {
		artist, err := uc.repo.GetArtist(ctx, *in.ArtistID)
		if err != nil || artist.SalonID != in.SalonID {
			return nil, httperr.ErrBusiness("artist_not_found")
		}
	}

	blk := &models.BlockedRange{
		SalonID:   in.SalonID,
		ArtistID:  in.ArtistID,
		StartTime: start,
		EndTime:   end,
		Reason:    in.Reason,
	}

	if err := uc.repo.CreateBlock(ctx, blk); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		UserID:   &in.UserID,
		Action:   "block_created",
		Entity:   "blocked_range",
		EntityID: &blk.ID,
	})

	return blk, nil
}
