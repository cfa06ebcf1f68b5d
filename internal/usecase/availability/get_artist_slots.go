package availability

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

type GetArtistSlots struct {
	repo schedule.Repository
	log  *zap.Logger
}

func NewGetArtistSlots(repo schedule.Repository, log *zap.Logger) *GetArtistSlots {
	return &GetArtistSlots{repo: repo, log: log}
}

// Execute devolve os horários livres do profissional na data, usando o
// expediente próprio dele e herdando os bloqueios do salão inteiro.
// Profissional inexistente ou sem expediente resolve como agenda vazia.
func (uc *GetArtistSlots) Execute(
	ctx context.Context,
	artistID uint,
	date time.Time,
) []schedule.Slot {

	artist, err := uc.repo.GetArtist(ctx, artistID)
	if err != nil {
		return []schedule.Slot{}
	}

	hours, err := uc.repo.GetArtistHours(ctx, artistID)
	if err != nil {
		return []schedule.Slot{}
	}

	window, ok := schedule.ResolveWindow(hours.Hours, date)
	if !ok {
		return []schedule.Slot{}
	}

	candidates := schedule.Tile(window)

	blocks, err := uc.repo.ListArtistBlocksInRange(
		ctx,
		artist.SalonID,
		artistID,
		window.Start,
		window.End,
	)
	if err != nil {
		uc.log.Warn("block lookup failed, serving slots unfiltered",
			zap.Uint("artist_id", artistID),
			zap.String("date", date.Format("2006-01-02")),
			zap.Error(err),
		)
		blocks = nil
	}

	slots := make([]schedule.Slot, 0, len(candidates))
	for _, s := range candidates {
		if !schedule.IsBlocked(s.Start, s.End, blocks) {
			slots = append(slots, s)
		}
	}

	return slots
}
