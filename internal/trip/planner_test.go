package trip

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/SnehaBakshi14/TripVibe/internal/models"
	"github.com/SnehaBakshi14/TripVibe/internal/storage"
)

func setupTestPlanner(t *testing.T) (*Planner, storage.Provider) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tripvibe.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}

	p, err := NewPlanner(store)
	if err != nil {
		t.Fatalf("failed to create planner: %v", err)
	}
	return p, store
}

func createTestTrip(t *testing.T, p *Planner) models.Trip {
	t.Helper()

	created, err := p.CreateTrip(Data{
		Name:        "Summer Vacation",
		Destination: "Lisbon",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-03",
	})
	if err != nil {
		t.Fatalf("failed to create trip: %v", err)
	}
	return created
}

func TestCreateTripSeedsPackingList(t *testing.T) {
	p, _ := setupTestPlanner(t)

	stats := p.PackingStats()
	if stats.Total != 0 || stats.Packed != 0 || stats.Percentage != 0 {
		t.Errorf("expected zero stats before any trip, got %+v", stats)
	}

	created := createTestTrip(t, p)
	if created.ID == "" {
		t.Error("expected created trip to have an id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created trip to have a creation timestamp")
	}

	items := p.PackingItems()
	if len(items) != 5 {
		t.Fatalf("expected 5 seeded items, got %d", len(items))
	}
	for _, item := range items {
		if item.Packed {
			t.Errorf("seeded item %q should start unpacked", item.Text)
		}
		if item.ID == "" {
			t.Errorf("seeded item %q has no id", item.Text)
		}
	}

	stats = p.PackingStats()
	if stats.Total != 5 || stats.Packed != 0 || stats.Percentage != 0 {
		t.Errorf("expected {5 0 0} after seeding, got %+v", stats)
	}
}

func TestPackingStatsPercentage(t *testing.T) {
	p, _ := setupTestPlanner(t)
	createTestTrip(t, p)

	items := p.PackingItems()
	if err := p.TogglePackingItem(items[0].ID); err != nil {
		t.Fatalf("failed to toggle item: %v", err)
	}

	stats := p.PackingStats()
	if stats.Packed != 1 || stats.Percentage != 20 {
		t.Errorf("expected 1 of 5 packed = 20%%, got %+v", stats)
	}
	if stats.Percentage < 0 || stats.Percentage > 100 {
		t.Errorf("percentage out of range: %d", stats.Percentage)
	}
}

func TestCreateTripReplacesExisting(t *testing.T) {
	p, _ := setupTestPlanner(t)
	first := createTestTrip(t, p)

	second, err := p.CreateTrip(Data{
		Name:        "Winter Getaway",
		Destination: "Oslo",
		StartDate:   "2025-12-20",
		EndDate:     "2025-12-27",
	})
	if err != nil {
		t.Fatalf("failed to create second trip: %v", err)
	}

	if second.ID == first.ID {
		t.Error("expected replacement trip to get a fresh id")
	}
	if got := p.Trip(); got == nil || got.Name != "Winter Getaway" {
		t.Errorf("expected active trip to be the replacement, got %+v", got)
	}
}

func TestSeedOncePerTrip(t *testing.T) {
	p, store := setupTestPlanner(t)
	createTestTrip(t, p)

	// Deliberately empty the checklist.
	for _, item := range p.PackingItems() {
		if err := p.RemovePackingItem(item.ID); err != nil {
			t.Fatalf("failed to remove item: %v", err)
		}
	}
	if len(p.PackingItems()) != 0 {
		t.Fatal("expected empty packing list")
	}

	// A fresh planner over the same store must not re-seed.
	reloaded, err := NewPlanner(store)
	if err != nil {
		t.Fatalf("failed to reload planner: %v", err)
	}
	if got := len(reloaded.PackingItems()); got != 0 {
		t.Errorf("deliberately emptied list was re-seeded with %d items", got)
	}
}

func TestResetClearsEverything(t *testing.T) {
	p, store := setupTestPlanner(t)
	createTestTrip(t, p)

	if _, err := p.AddNote(1, "check in early"); err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	if err := p.Reset(); err != nil {
		t.Fatalf("failed to reset: %v", err)
	}

	if p.HasTrip() {
		t.Error("expected no trip after reset")
	}
	if len(p.Notes()) != 0 {
		t.Error("expected no notes after reset")
	}
	if len(p.PackingItems()) != 0 {
		t.Error("expected empty packing list after reset")
	}
	if _, ok := p.TripURL(); ok {
		t.Error("expected no trip URL after reset")
	}

	// The persisted entries are back at their defaults too.
	storedTrip, err := store.GetTrip()
	if err != nil {
		t.Fatalf("failed to read stored trip: %v", err)
	}
	if storedTrip != nil {
		t.Error("expected stored trip cleared after reset")
	}
	storedNotes, _ := store.GetNotes()
	if len(storedNotes) != 0 {
		t.Error("expected stored notes cleared after reset")
	}
	storedItems, _ := store.GetPackingItems()
	if len(storedItems) != 0 {
		t.Error("expected stored packing items cleared after reset")
	}

	// A new trip after reset gets a fresh starter checklist.
	createTestTrip(t, p)
	if got := len(p.PackingItems()); got != 5 {
		t.Errorf("expected re-seeded checklist after reset + new trip, got %d items", got)
	}
}

func TestAddNote(t *testing.T) {
	p, _ := setupTestPlanner(t)
	createTestTrip(t, p)

	note, err := p.AddNote(2, "visit the old town")
	if err != nil {
		t.Fatalf("failed to add note: %v", err)
	}
	if note == nil || note.Day != 2 {
		t.Fatalf("expected note on day 2, got %+v", note)
	}

	// Whitespace-only text is a no-op.
	skipped, err := p.AddNote(2, "   \t")
	if err != nil {
		t.Fatalf("unexpected error for whitespace note: %v", err)
	}
	if skipped != nil {
		t.Errorf("expected whitespace-only note to be skipped, got %+v", skipped)
	}

	// Several notes may share a day.
	if _, err := p.AddNote(2, "dinner reservation"); err != nil {
		t.Fatalf("failed to add second note: %v", err)
	}
	if got := len(p.NotesForDay(2)); got != 2 {
		t.Errorf("expected 2 notes on day 2, got %d", got)
	}
}

func TestUpdateAndRemoveNote(t *testing.T) {
	p, _ := setupTestPlanner(t)
	createTestTrip(t, p)

	note, err := p.AddNote(1, "draft")
	if err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	if err := p.UpdateNote(note.ID, "final"); err != nil {
		t.Fatalf("failed to update note: %v", err)
	}
	if got := p.NotesForDay(1)[0].Note; got != "final" {
		t.Errorf("expected updated content, got %q", got)
	}

	// Unknown id is a no-op, not an error.
	if err := p.UpdateNote("no-such-id", "x"); err != nil {
		t.Errorf("unexpected error updating missing note: %v", err)
	}

	if err := p.RemoveNote(note.ID); err != nil {
		t.Fatalf("failed to remove note: %v", err)
	}
	if got := len(p.Notes()); got != 0 {
		t.Errorf("expected no notes after removal, got %d", got)
	}

	// Removing twice has the same observable effect as removing once.
	if err := p.RemoveNote(note.ID); err != nil {
		t.Errorf("unexpected error on second removal: %v", err)
	}
	if got := len(p.Notes()); got != 0 {
		t.Errorf("expected no notes after idempotent removal, got %d", got)
	}
}

func TestAddPackingItemCategoryCoercion(t *testing.T) {
	p, _ := setupTestPlanner(t)
	createTestTrip(t, p)

	item, err := p.AddPackingItem("selfie stick", "NotACategory")
	if err != nil {
		t.Fatalf("failed to add item: %v", err)
	}
	if item.Category != models.CategoryMiscellaneous {
		t.Errorf("expected unknown category coerced to Miscellaneous, got %q", item.Category)
	}

	item, err = p.AddPackingItem("visa", models.CategoryDocuments)
	if err != nil {
		t.Fatalf("failed to add item: %v", err)
	}
	if item.Category != models.CategoryDocuments {
		t.Errorf("expected known category preserved, got %q", item.Category)
	}

	skipped, err := p.AddPackingItem("  ", models.CategoryEssentials)
	if err != nil {
		t.Fatalf("unexpected error for whitespace item: %v", err)
	}
	if skipped != nil {
		t.Errorf("expected whitespace-only item to be skipped, got %+v", skipped)
	}
}

func TestClearPackedItems(t *testing.T) {
	p, _ := setupTestPlanner(t)
	createTestTrip(t, p)

	items := p.PackingItems()
	if err := p.TogglePackingItem(items[0].ID); err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if err := p.TogglePackingItem(items[2].ID); err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}

	if err := p.ClearPackedItems(); err != nil {
		t.Fatalf("failed to clear packed items: %v", err)
	}

	remaining := p.PackingItems()
	if len(remaining) != 3 {
		t.Fatalf("expected 3 unpacked items to remain, got %d", len(remaining))
	}
	for _, item := range remaining {
		if item.Packed {
			t.Errorf("packed item %q survived the clear", item.Text)
		}
	}
}

func TestTogglePackingItemUnknownID(t *testing.T) {
	p, _ := setupTestPlanner(t)
	createTestTrip(t, p)

	before := p.PackingStats()
	if err := p.TogglePackingItem("no-such-id"); err != nil {
		t.Errorf("unexpected error toggling missing item: %v", err)
	}
	if after := p.PackingStats(); after != before {
		t.Errorf("toggling a missing item changed stats: %+v -> %+v", before, after)
	}
}

func TestTripURL(t *testing.T) {
	p, _ := setupTestPlanner(t)

	if _, ok := p.TripURL(); ok {
		t.Error("expected no URL without a trip")
	}

	created := createTestTrip(t, p)
	u, ok := p.TripURL()
	if !ok {
		t.Fatal("expected a URL for the active trip")
	}
	if !strings.Contains(u, "trip="+created.ID) {
		t.Errorf("expected URL to carry the trip id, got %q", u)
	}
}

func TestDayCountAndDays(t *testing.T) {
	p, _ := setupTestPlanner(t)

	if p.DayCount() != 0 {
		t.Error("expected day count 0 without a trip")
	}
	if p.Days() != nil {
		t.Error("expected no days without a trip")
	}

	createTestTrip(t, p) // 2025-06-01 .. 2025-06-03
	if got := p.DayCount(); got != 3 {
		t.Errorf("expected 3-day trip, got %d", got)
	}

	days := p.Days()
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if days[0].Date != "2025-06-01" || days[0].Number != 1 {
		t.Errorf("unexpected first day: %+v", days[0])
	}
	if days[2].Date != "2025-06-03" || days[2].Number != 3 {
		t.Errorf("unexpected last day: %+v", days[2])
	}
}

func TestCountdownTarget(t *testing.T) {
	p, _ := setupTestPlanner(t)

	if !p.CountdownTarget().IsZero() {
		t.Error("expected zero countdown target without a trip")
	}

	createTestTrip(t, p)
	target := p.CountdownTarget()
	if target.IsZero() {
		t.Fatal("expected a countdown target for the active trip")
	}
	if target.Year() != 2025 || target.Month() != 6 || target.Day() != 1 {
		t.Errorf("expected target on the start date, got %v", target)
	}
	if target.Hour() != 0 || target.Minute() != 0 {
		t.Errorf("expected target at midnight, got %v", target)
	}
}

func TestPlannerStatePersistsAcrossReload(t *testing.T) {
	p, store := setupTestPlanner(t)
	created := createTestTrip(t, p)

	if _, err := p.AddNote(1, "remember sunscreen"); err != nil {
		t.Fatalf("failed to add note: %v", err)
	}

	reloaded, err := NewPlanner(store)
	if err != nil {
		t.Fatalf("failed to reload planner: %v", err)
	}

	if got := reloaded.Trip(); got == nil || got.ID != created.ID {
		t.Errorf("expected reloaded planner to see trip %s, got %+v", created.ID, got)
	}
	if got := len(reloaded.Notes()); got != 1 {
		t.Errorf("expected 1 note after reload, got %d", got)
	}
	if got := len(reloaded.PackingItems()); got != 5 {
		t.Errorf("expected 5 packing items after reload, got %d", got)
	}
}
