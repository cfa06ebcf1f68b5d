package schedule

import (
	"encoding/json"
	"fmt"
	"time"
)

// ===============================
// Opening hours (documento semanal)
// ===============================

// DayWindow é a janela de um dia em "15:04". Entrada nula = fechado.
type DayWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekSchedule mapeia dias canônicos (monday...sunday) para janelas.
type WeekSchedule map[string]*DayWindow

// Window é a janela aberta resolvida para uma data concreta, [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

var dayKeys = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// DayKey resolve o weekday direto para a chave canônica, sem passar por locale.
func DayKey(d time.Weekday) string {
	return dayKeys[d]
}

// ResolveWindow resolve o expediente de uma data a partir do documento semanal.
// Qualquer problema (JSON inválido, dia ausente ou nulo, horário malformado,
// janela invertida) resolve como fechado — disponibilidade nunca vira erro.
func ResolveWindow(raw string, date time.Time) (Window, bool) {
	if raw == "" {
		return Window{}, false
	}

	var week WeekSchedule
	if err := json.Unmarshal([]byte(raw), &week); err != nil {
		return Window{}, false
	}

	day, ok := week[DayKey(date.Weekday())]
	if !ok || day == nil {
		return Window{}, false
	}

	start, err := atTimeOfDay(day.Start, date)
	if err != nil {
		return Window{}, false
	}

	end, err := atTimeOfDay(day.End, date)
	if err != nil {
		return Window{}, false
	}

	if !end.After(start) {
		return Window{}, false
	}

	return Window{Start: start, End: end}, true
}

// ValidateWeek valida um documento semanal antes de persistir.
func ValidateWeek(raw []byte) error {
	var week WeekSchedule
	if err := json.Unmarshal(raw, &week); err != nil {
		return fmt.Errorf("invalid schedule document: %w", err)
	}

	valid := make(map[string]bool, len(dayKeys))
	for _, k := range dayKeys {
		valid[k] = true
	}

	for key, day := range week {
		if !valid[key] {
			return fmt.Errorf("unknown weekday %q", key)
		}
		if day == nil {
			continue
		}

		start, err := time.Parse("15:04", day.Start)
		if err != nil {
			return fmt.Errorf("%s: invalid start %q", key, day.Start)
		}
		end, err := time.Parse("15:04", day.End)
		if err != nil {
			return fmt.Errorf("%s: invalid end %q", key, day.End)
		}
		if !end.After(start) {
			return fmt.Errorf("%s: start must come before end", key)
		}
	}

	return nil
}

func atTimeOfDay(hm string, date time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}
