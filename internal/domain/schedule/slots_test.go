package schedule

import (
	"testing"
	"time"
)

func window(t *testing.T, startH, startM, endH, endM int) Window {
	t.Helper()
	day := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: day.Add(time.Duration(startH)*time.Hour + time.Duration(startM)*time.Minute),
		End:   day.Add(time.Duration(endH)*time.Hour + time.Duration(endM)*time.Minute),
	}
}

func TestTile_FullBusinessDay(t *testing.T) {
	slots := Tile(window(t, 9, 0, 18, 0))

	if len(slots) != 18 {
		t.Fatalf("expected 18 slots for 09:00-18:00, got %d", len(slots))
	}
	if slots[0].Start.Hour() != 9 || slots[0].Start.Minute() != 0 {
		t.Fatalf("expected first slot at 09:00, got %s", slots[0].Start.Format("15:04"))
	}
	if slots[0].End.Sub(slots[0].Start) != SlotDuration {
		t.Fatalf("expected 30m slot, got %s", slots[0].End.Sub(slots[0].Start))
	}
	last := slots[len(slots)-1]
	if last.Start.Hour() != 17 || last.Start.Minute() != 30 {
		t.Fatalf("expected last slot at 17:30, got %s", last.Start.Format("15:04"))
	}
	if last.End.Hour() != 18 || last.End.Minute() != 0 {
		t.Fatalf("expected last slot to end at 18:00, got %s", last.End.Format("15:04"))
	}
}

func TestTile_DropsTrailingRemainder(t *testing.T) {
	// 09:00-10:20 cabe 09:00 e 09:30; os 20 minutos finais são descartados.
	slots := Tile(window(t, 9, 0, 10, 20))

	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[1].End.Hour() != 10 || slots[1].End.Minute() != 0 {
		t.Fatalf("expected last slot to end at 10:00, got %s", slots[1].End.Format("15:04"))
	}
}

func TestTile_WindowShorterThanSlot(t *testing.T) {
	if slots := Tile(window(t, 9, 0, 9, 20)); len(slots) != 0 {
		t.Fatalf("expected no slots for a 20m window, got %d", len(slots))
	}
}

func TestTile_CountMatchesFloorOfDuration(t *testing.T) {
	for minutes := 0; minutes <= 600; minutes += 10 {
		w := window(t, 8, 0, 8, 0)
		w.End = w.Start.Add(time.Duration(minutes) * time.Minute)

		got := len(Tile(w))
		want := minutes / 30
		if got != want {
			t.Fatalf("duration %dm: expected %d slots, got %d", minutes, want, got)
		}
	}
}
