package availability

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

type GetSalonSlots struct {
	repo schedule.Repository
	log  *zap.Logger
}

func NewGetSalonSlots(repo schedule.Repository, log *zap.Logger) *GetSalonSlots {
	return &GetSalonSlots{repo: repo, log: log}
}

// Execute devolve os horários livres do salão na data. Nunca retorna erro:
// expediente ausente ou ilegível resolve como fechado, e falha na consulta de
// bloqueios degrada para "sem bloqueios" (fail-open), apenas logando.
func (uc *GetSalonSlots) Execute(
	ctx context.Context,
	salonID uint,
	date time.Time,
) []schedule.Slot {

	hours, err := uc.repo.GetSalonHours(ctx, salonID)
	if err != nil {
		return []schedule.Slot{}
	}

	window, ok := schedule.ResolveWindow(hours.Hours, date)
	if !ok {
		return []schedule.Slot{}
	}

	candidates := schedule.Tile(window)

	blocks, err := uc.repo.ListSalonBlocksInRange(ctx, salonID, window.Start, window.End)
	if err != nil {
		uc.log.Warn("block lookup failed, serving slots unfiltered",
			zap.Uint("salon_id", salonID),
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
