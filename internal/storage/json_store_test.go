package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SnehaBakshi14/TripVibe/internal/models"
)

func setupTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tripvibe.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return store
}

func testTrip() models.Trip {
	return models.Trip{
		ID:          "trip-1",
		Name:        "Summer Vacation",
		Destination: "Lisbon",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-03",
		CreatedAt:   time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestJSONStoreTripRoundTrip(t *testing.T) {
	store := setupTestJSONStore(t)

	trip, err := store.GetTrip()
	if err != nil {
		t.Fatalf("failed to get trip: %v", err)
	}
	if trip != nil {
		t.Fatalf("expected no trip in a fresh store, got %+v", trip)
	}

	want := testTrip()
	if err := store.SaveTrip(want); err != nil {
		t.Fatalf("failed to save trip: %v", err)
	}

	// Read back through a fresh store instance to exercise the on-disk copy.
	reloaded := NewJSONStore(store.GetConfigPath())
	if err := reloaded.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	got, err := reloaded.GetTrip()
	if err != nil {
		t.Fatalf("failed to get trip: %v", err)
	}
	if got == nil {
		t.Fatal("expected trip after reload, got nil")
	}
	if *got != want {
		t.Errorf("trip round-trip mismatch: got %+v, want %+v", *got, want)
	}
}

func TestJSONStoreCollectionsRoundTrip(t *testing.T) {
	store := setupTestJSONStore(t)

	notes := []models.DailyNote{
		{ID: "n1", Day: 1, Note: "Check in"},
		{ID: "n2", Day: 1, Note: "Dinner at the harbor"},
		{ID: "n3", Day: 2, Note: "Museum"},
	}
	if err := store.SaveNotes(notes); err != nil {
		t.Fatalf("failed to save notes: %v", err)
	}

	items := []models.PackingItem{
		{ID: "p1", Text: "Passport/ID", Category: models.CategoryEssentials},
		{ID: "p2", Text: "Camera", Packed: true, Category: models.CategoryElectronics},
	}
	if err := store.SavePackingItems(items); err != nil {
		t.Fatalf("failed to save packing items: %v", err)
	}

	gotNotes, err := store.GetNotes()
	if err != nil {
		t.Fatalf("failed to get notes: %v", err)
	}
	if len(gotNotes) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(gotNotes))
	}
	for i, n := range notes {
		if gotNotes[i] != n {
			t.Errorf("note %d: got %+v, want %+v", i, gotNotes[i], n)
		}
	}

	gotItems, err := store.GetPackingItems()
	if err != nil {
		t.Fatalf("failed to get packing items: %v", err)
	}
	if len(gotItems) != 2 {
		t.Fatalf("expected 2 packing items, got %d", len(gotItems))
	}
	if !gotItems[1].Packed {
		t.Error("expected second item to stay packed")
	}
}

func TestJSONStoreCorruptFileFailsOpen(t *testing.T) {
	store := setupTestJSONStore(t)
	path := store.GetConfigPath()

	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to corrupt storage file: %v", err)
	}

	reloaded := NewJSONStore(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("expected corrupt storage to fail open, got error: %v", err)
	}

	trip, err := reloaded.GetTrip()
	if err != nil {
		t.Fatalf("failed to get trip: %v", err)
	}
	if trip != nil {
		t.Errorf("expected default (no trip) after corruption, got %+v", trip)
	}

	notes, err := reloaded.GetNotes()
	if err != nil {
		t.Fatalf("failed to get notes: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected empty notes after corruption, got %d", len(notes))
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if err := store.Load(); err == nil {
		t.Error("expected error loading uninitialized storage")
	}
}

func TestJSONStoreReset(t *testing.T) {
	store := setupTestJSONStore(t)

	if err := store.SaveTrip(testTrip()); err != nil {
		t.Fatalf("failed to save trip: %v", err)
	}
	if err := store.SaveNotes([]models.DailyNote{{ID: "n1", Day: 1, Note: "x"}}); err != nil {
		t.Fatalf("failed to save notes: %v", err)
	}
	if err := store.SavePackingItems([]models.PackingItem{{ID: "p1", Text: "x", Category: models.CategoryMiscellaneous}}); err != nil {
		t.Fatalf("failed to save packing items: %v", err)
	}
	if err := store.SetPackingSeeded(true); err != nil {
		t.Fatalf("failed to set seeded marker: %v", err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("failed to reset store: %v", err)
	}

	trip, _ := store.GetTrip()
	if trip != nil {
		t.Error("expected no trip after reset")
	}
	notes, _ := store.GetNotes()
	if len(notes) != 0 {
		t.Errorf("expected empty notes after reset, got %d", len(notes))
	}
	items, _ := store.GetPackingItems()
	if len(items) != 0 {
		t.Errorf("expected empty packing list after reset, got %d", len(items))
	}
	seeded, _ := store.PackingSeeded()
	if seeded {
		t.Error("expected seeded marker to be cleared after reset")
	}
}

func TestJSONStoreInitTwice(t *testing.T) {
	store := setupTestJSONStore(t)
	if err := store.Init(); err == nil {
		t.Error("expected error initializing storage twice")
	}
}
