package schedule

import "time"

// SlotDuration é o tamanho fixo de cada horário agendável.
const SlotDuration = 30 * time.Minute

type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Tile corta a janela em slots consecutivos de 30 minutos a partir do início.
// Sobra menor que um slot no fim da janela é descartada, nunca arredondada.
func Tile(w Window) []Slot {
	slots := []Slot{}

	for cur := w.Start; !cur.Add(SlotDuration).After(w.End); cur = cur.Add(SlotDuration) {
		slots = append(slots, Slot{
			Start: cur,
			End:   cur.Add(SlotDuration),
		})
	}

	return slots
}
