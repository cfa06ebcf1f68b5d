package schedule

import (
	"testing"
	"time"
)

var monday = time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC) // segunda-feira

func TestResolveWindow_OpenDay(t *testing.T) {
	raw := `{"monday": {"start": "09:00", "end": "18:00"}}`

	w, ok := ResolveWindow(raw, monday)
	if !ok {
		t.Fatal("expected monday to resolve as open")
	}
	if w.Start.Hour() != 9 || w.End.Hour() != 18 {
		t.Fatalf("expected 09:00-18:00, got %s-%s",
			w.Start.Format("15:04"), w.End.Format("15:04"))
	}
	if !w.Start.Equal(time.Date(2026, 2, 16, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("window should be anchored on the requested date, got %s", w.Start)
	}
}

func TestResolveWindow_ClosedCases(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty document", ""},
		{"malformed json", `{"monday": {`},
		{"not an object", `[1, 2, 3]`},
		{"day missing", `{"tuesday": {"start": "09:00", "end": "18:00"}}`},
		{"day explicitly null", `{"monday": null}`},
		{"invalid start time", `{"monday": {"start": "25:99", "end": "18:00"}}`},
		{"invalid end time", `{"monday": {"start": "09:00", "end": "abc"}}`},
		{"inverted window", `{"monday": {"start": "18:00", "end": "09:00"}}`},
		{"zero-length window", `{"monday": {"start": "09:00", "end": "09:00"}}`},
	}

	for _, tc := range cases {
		if _, ok := ResolveWindow(tc.raw, monday); ok {
			t.Errorf("%s: expected closed, resolved as open", tc.name)
		}
	}
}

func TestDayKey_Canonical(t *testing.T) {
	want := map[time.Weekday]string{
		time.Sunday:    "sunday",
		time.Monday:    "monday",
		time.Saturday:  "saturday",
		time.Wednesday: "wednesday",
	}
	for d, key := range want {
		if got := DayKey(d); got != key {
			t.Errorf("DayKey(%v) = %q, want %q", d, got, key)
		}
	}
}

func TestValidateWeek(t *testing.T) {
	valid := []string{
		`{}`,
		`{"monday": null}`,
		`{"monday": {"start": "09:00", "end": "18:00"}, "sunday": null}`,
	}
	for _, raw := range valid {
		if err := ValidateWeek([]byte(raw)); err != nil {
			t.Errorf("expected %s to be valid, got %v", raw, err)
		}
	}

	invalid := []string{
		`{"funday": {"start": "09:00", "end": "18:00"}}`,
		`{"monday": {"start": "9am", "end": "18:00"}}`,
		`{"monday": {"start": "18:00", "end": "09:00"}}`,
		`{"monday": {"start": "09:00", "end": "09:00"}}`,
		`not json`,
	}
	for _, raw := range invalid {
		if err := ValidateWeek([]byte(raw)); err == nil {
			t.Errorf("expected %s to be rejected", raw)
		}
	}
}
