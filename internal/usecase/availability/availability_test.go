package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// monday de referência para os cenários
var monday = time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)

const weekHours = `{"monday": {"start": "09:00", "end": "18:00"}}`

type fakeRepo struct {
	salonHours  map[uint]string
	artistHours map[uint]string
	artists     map[uint]*models.User
	blocks      []models.BlockedRange

	listErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		salonHours:  map[uint]string{},
		artistHours: map[uint]string{},
		artists:     map[uint]*models.User{},
	}
}

func (f *fakeRepo) GetSalonByID(_ context.Context, id uint) (*models.Salon, error) {
	return &models.Salon{ID: id}, nil
}

func (f *fakeRepo) GetSalonBySlug(_ context.Context, slug string) (*models.Salon, error) {
	return nil, errors.New("record not found")
}

func (f *fakeRepo) GetArtist(_ context.Context, artistID uint) (*models.User, error) {
	artist, ok := f.artists[artistID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return artist, nil
}

func (f *fakeRepo) GetSalonHours(_ context.Context, salonID uint) (*models.OpeningHours, error) {
	raw, ok := f.salonHours[salonID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &models.OpeningHours{SalonID: salonID, Hours: raw}, nil
}

func (f *fakeRepo) GetArtistHours(_ context.Context, artistID uint) (*models.OpeningHours, error) {
	raw, ok := f.artistHours[artistID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return &models.OpeningHours{ArtistID: &artistID, Hours: raw}, nil
}

func (f *fakeRepo) CreateBlock(_ context.Context, block *models.BlockedRange) error {
	f.blocks = append(f.blocks, *block)
	return nil
}

func (f *fakeRepo) GetBlockByID(_ context.Context, id uint) (*models.BlockedRange, error) {
	return nil, errors.New("record not found")
}

func (f *fakeRepo) SaveBlock(_ context.Context, _ *models.BlockedRange) error { return nil }
func (f *fakeRepo) DeleteBlock(_ context.Context, _ uint) error               { return nil }

func (f *fakeRepo) ListBlocksBySalon(_ context.Context, salonID uint) ([]models.BlockedRange, error) {
	var out []models.BlockedRange
	for _, b := range f.blocks {
		if b.SalonID == salonID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListBlocksByArtist(_ context.Context, artistID uint) ([]models.BlockedRange, error) {
	var out []models.BlockedRange
	for _, b := range f.blocks {
		if b.ArtistID != nil && *b.ArtistID == artistID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListSalonBlocksInRange(
	_ context.Context,
	salonID uint,
	start, end time.Time,
) ([]models.BlockedRange, error) {

	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []models.BlockedRange
	for _, b := range f.blocks {
		if b.SalonID == salonID && schedule.Overlaps(b.StartTime, b.EndTime, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListArtistBlocksInRange(
	_ context.Context,
	salonID uint,
	artistID uint,
	start, end time.Time,
) ([]models.BlockedRange, error) {

	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []models.BlockedRange
	for _, b := range f.blocks {
		if b.SalonID != salonID {
			continue
		}
		if b.ArtistID != nil && *b.ArtistID != artistID {
			continue
		}
		if schedule.Overlaps(b.StartTime, b.EndTime, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ schedule.Repository = (*fakeRepo)(nil)

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func at(h, m int) time.Time {
	return monday.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func uintPtr(v uint) *uint { return &v }

func setupArtists(f *fakeRepo) {
	f.artists[1] = &models.User{ID: 1, SalonID: 10, Role: "artist"}
	f.artists[2] = &models.User{ID: 2, SalonID: 10, Role: "artist"}
	f.artistHours[1] = weekHours
	f.artistHours[2] = weekHours
}

func containsSlot(slots []schedule.Slot, start time.Time) bool {
	for _, s := range slots {
		if s.Start.Equal(start) {
			return true
		}
	}
	return false
}

// --------------------------------------------------
// Salão
// --------------------------------------------------

func TestGetSalonSlots_FullDayNoBlocks(t *testing.T) {
	repo := newFakeRepo()
	repo.salonHours[10] = weekHours

	uc := NewGetSalonSlots(repo, zap.NewNop())
	slots := uc.Execute(context.Background(), 10, monday)

	if len(slots) != 18 {
		t.Fatalf("expected 18 slots for 09:00-18:00, got %d", len(slots))
	}
	if !slots[0].Start.Equal(at(9, 0)) {
		t.Fatalf("expected first slot 09:00, got %s", slots[0].Start.Format("15:04"))
	}
	last := slots[len(slots)-1]
	if !last.Start.Equal(at(17, 30)) || !last.End.Equal(at(18, 0)) {
		t.Fatalf("expected last slot 17:30-18:00, got %s-%s",
			last.Start.Format("15:04"), last.End.Format("15:04"))
	}
}

func TestGetSalonSlots_ClosedDay(t *testing.T) {
	repo := newFakeRepo()
	repo.salonHours[10] = `{"monday": null}`

	uc := NewGetSalonSlots(repo, zap.NewNop())
	slots := uc.Execute(context.Background(), 10, monday)

	if len(slots) != 0 {
		t.Fatalf("expected no slots on a closed day, got %d", len(slots))
	}
}

func TestGetSalonSlots_NoHoursConfigured(t *testing.T) {
	repo := newFakeRepo()

	uc := NewGetSalonSlots(repo, zap.NewNop())
	if slots := uc.Execute(context.Background(), 10, monday); len(slots) != 0 {
		t.Fatalf("expected empty agenda without hours, got %d slots", len(slots))
	}
}

func TestGetSalonSlots_AnyBlockRemovesSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.salonHours[10] = weekHours
	repo.blocks = append(repo.blocks, models.BlockedRange{
		ID: 1, SalonID: 10, ArtistID: uintPtr(1),
		StartTime: at(10, 0), EndTime: at(11, 0),
	})

	uc := NewGetSalonSlots(repo, zap.NewNop())
	slots := uc.Execute(context.Background(), 10, monday)

	// visão do salão considera bloqueio de qualquer profissional
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	if containsSlot(slots, at(10, 0)) || containsSlot(slots, at(10, 30)) {
		t.Fatal("blocked slots should not be returned at salon level")
	}
}

func TestGetSalonSlots_FailsOpenOnStoreError(t *testing.T) {
	repo := newFakeRepo()
	repo.salonHours[10] = weekHours
	repo.blocks = append(repo.blocks, models.BlockedRange{
		ID: 1, SalonID: 10,
		StartTime: at(10, 0), EndTime: at(11, 0),
	})
	repo.listErr = errors.New("store unavailable")

	uc := NewGetSalonSlots(repo, zap.NewNop())
	slots := uc.Execute(context.Background(), 10, monday)

	if len(slots) != 18 {
		t.Fatalf("expected unfiltered 18 slots on store error, got %d", len(slots))
	}
}

// --------------------------------------------------
// Profissional
// --------------------------------------------------

func TestGetArtistSlots_ArtistBlockIsScoped(t *testing.T) {
	repo := newFakeRepo()
	setupArtists(repo)
	repo.blocks = append(repo.blocks, models.BlockedRange{
		ID: 1, SalonID: 10, ArtistID: uintPtr(1),
		StartTime: at(10, 0), EndTime: at(11, 0),
	})

	uc := NewGetArtistSlots(repo, zap.NewNop())

	blockedView := uc.Execute(context.Background(), 1, monday)
	if len(blockedView) != 16 {
		t.Fatalf("expected artist 1 to lose 2 slots, got %d", len(blockedView))
	}
	if containsSlot(blockedView, at(10, 0)) || containsSlot(blockedView, at(10, 30)) {
		t.Fatal("blocked slots leaked into artist 1 view")
	}

	otherView := uc.Execute(context.Background(), 2, monday)
	if len(otherView) != 18 {
		t.Fatalf("expected artist 2 unaffected with 18 slots, got %d", len(otherView))
	}
}

func TestGetArtistSlots_SalonWideBlockHitsEveryone(t *testing.T) {
	repo := newFakeRepo()
	setupArtists(repo)
	repo.blocks = append(repo.blocks, models.BlockedRange{
		ID: 1, SalonID: 10, ArtistID: nil,
		StartTime: at(12, 0), EndTime: at(13, 0),
	})

	uc := NewGetArtistSlots(repo, zap.NewNop())

	for _, artistID := range []uint{1, 2} {
		slots := uc.Execute(context.Background(), artistID, monday)
		if len(slots) != 16 {
			t.Fatalf("artist %d: expected 16 slots, got %d", artistID, len(slots))
		}
		if containsSlot(slots, at(12, 0)) || containsSlot(slots, at(12, 30)) {
			t.Fatalf("artist %d: salon-wide block not applied", artistID)
		}
	}
}

func TestGetArtistSlots_TouchingBlockKeepsAdjacentSlots(t *testing.T) {
	repo := newFakeRepo()
	setupArtists(repo)
	repo.blocks = append(repo.blocks, models.BlockedRange{
		ID: 1, SalonID: 10, ArtistID: uintPtr(1),
		StartTime: at(10, 0), EndTime: at(10, 30),
	})

	uc := NewGetArtistSlots(repo, zap.NewNop())
	slots := uc.Execute(context.Background(), 1, monday)

	if containsSlot(slots, at(10, 0)) {
		t.Fatal("slot inside the block should be gone")
	}
	if !containsSlot(slots, at(9, 30)) || !containsSlot(slots, at(10, 30)) {
		t.Fatal("slots touching the block boundaries should stay available")
	}
}

func TestGetArtistSlots_UnknownArtist(t *testing.T) {
	repo := newFakeRepo()

	uc := NewGetArtistSlots(repo, zap.NewNop())
	if slots := uc.Execute(context.Background(), 99, monday); len(slots) != 0 {
		t.Fatalf("expected empty agenda for unknown artist, got %d slots", len(slots))
	}
}

// --------------------------------------------------
// CheckRange
// --------------------------------------------------

func TestCheckRange_SameScopingAsSlots(t *testing.T) {
	repo := newFakeRepo()
	setupArtists(repo)
	repo.blocks = append(repo.blocks, models.BlockedRange{
		ID: 1, SalonID: 10, ArtistID: uintPtr(1),
		StartTime: at(10, 0), EndTime: at(11, 0),
	})

	uc := NewCheckRange(repo)

	blocked, err := uc.Execute(context.Background(), CheckRangeInput{
		SalonID: 10, ArtistID: uintPtr(1),
		Start: at(10, 30), End: at(11, 30),
	})
	if err != nil || !blocked {
		t.Fatalf("expected artist 1 range to be blocked, got blocked=%v err=%v", blocked, err)
	}

	blocked, err = uc.Execute(context.Background(), CheckRangeInput{
		SalonID: 10, ArtistID: uintPtr(2),
		Start: at(10, 30), End: at(11, 30),
	})
	if err != nil || blocked {
		t.Fatalf("artist 2 should not inherit artist 1 block, got blocked=%v err=%v", blocked, err)
	}

	// fim encostando no início do bloqueio não conta
	blocked, err = uc.Execute(context.Background(), CheckRangeInput{
		SalonID: 10, ArtistID: uintPtr(1),
		Start: at(9, 0), End: at(10, 0),
	})
	if err != nil || blocked {
		t.Fatalf("touching range should not be blocked, got blocked=%v err=%v", blocked, err)
	}
}

func TestCheckRange_PropagatesStoreError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("store unavailable")

	uc := NewCheckRange(repo)
	if _, err := uc.Execute(context.Background(), CheckRangeInput{
		SalonID: 10,
		Start:   at(10, 0), End: at(11, 0),
	}); err == nil {
		t.Fatal("expected store error to surface on range check")
	}
}
