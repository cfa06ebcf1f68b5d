package availability

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

type CheckRangeInput struct {
	SalonID  uint
	ArtistID *uint
	Start    time.Time
	End      time.Time
}

// CheckRange responde se um intervalo arbitrário cruza algum bloqueio,
// com o mesmo predicado e o mesmo escopo do filtro de slots. Diferente da
// listagem de horários, aqui erro de consulta sobe para o chamador: quem
// valida uma reserva precisa saber que a resposta não é confiável.
type CheckRange struct {
	repo schedule.Repository
}

func NewCheckRange(repo schedule.Repository) *CheckRange {
	return &CheckRange{repo: repo}
}

func (uc *CheckRange) Execute(ctx context.Context, in CheckRangeInput) (bool, error) {
	if in.ArtistID != nil {
		found, err := uc.repo.ListArtistBlocksInRange(ctx, in.SalonID, *in.ArtistID, in.Start, in.End)
		if err != nil {
			return false, err
		}
		return schedule.IsBlocked(in.Start, in.End, found), nil
	}

	found, err := uc.repo.ListSalonBlocksInRange(ctx, in.SalonID, in.Start, in.End)
	if err != nil {
		return false, err
	}
	return schedule.IsBlocked(in.Start, in.End, found), nil
}
