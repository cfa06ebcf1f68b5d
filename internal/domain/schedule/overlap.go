package schedule

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Overlaps é o único predicado de interseção do sistema: dois intervalos
// semiabertos [aStart, aEnd) e [bStart, bEnd) se cruzam sse
// aStart < bEnd && bStart < aEnd. Bordas encostadas não contam.
//
// Tanto o filtro de slots quanto a checagem de intervalo bloqueado passam
// por aqui, para as duas visões nunca divergirem.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsBlocked diz se [start, end) cruza algum dos bloqueios informados.
func IsBlocked(start, end time.Time, blocks []models.BlockedRange) bool {
	for _, b := range blocks {
		if Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}
