package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SnehaBakshi14/TripVibe/internal/constants"
	"github.com/SnehaBakshi14/TripVibe/internal/models"
)

type Settings struct {
	BaseURL string `json:"base_url"`
}

func DefaultSettings() Settings {
	return Settings{
		BaseURL: constants.DefaultBaseURL,
	}
}

// Store is the on-disk layout of the JSON backend. The trip record, the notes
// sequence and the packing sequence are independent entries; PackingSeeded
// records that the starter checklist has already been inserted for the
// current trip.
type Store struct {
	Version       int                  `json:"version"`
	Settings      Settings             `json:"settings"`
	Trip          *models.Trip         `json:"trip"`
	Notes         []models.DailyNote   `json:"notes"`
	PackingItems  []models.PackingItem `json:"packing_items"`
	PackingSeeded bool                 `json:"packing_seeded"`
}

// JSONStore keeps the whole store in memory and rewrites the file on every
// mutation. It is not safe for concurrent use by multiple goroutines or
// multiple processes sharing the same path; the doctor command surfaces the
// latter.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func defaultStore() *Store {
	return &Store{
		Version:      constants.StorageVersion,
		Settings:     DefaultSettings(),
		Notes:        []models.DailyNote{},
		PackingItems: []models.PackingItem{},
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = defaultStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'tripvibe init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Fail open on corrupt data: fall back to defaults instead of
		// refusing to start.
		fmt.Fprintf(os.Stderr, "Warning: storage at %s is corrupted, starting from defaults: %v\n", s.path, err)
		s.store = defaultStore()
		return nil
	}

	// Ensure slices and settings are initialized
	if s.store.Notes == nil {
		s.store.Notes = []models.DailyNote{}
	}
	if s.store.PackingItems == nil {
		s.store.PackingItems = []models.PackingItem{}
	}
	if s.store.Settings.BaseURL == "" {
		s.store.Settings.BaseURL = constants.DefaultBaseURL
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetTrip() (*models.Trip, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	if s.store.Trip == nil {
		return nil, nil
	}
	trip := *s.store.Trip
	return &trip, nil
}

func (s *JSONStore) SaveTrip(trip models.Trip) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Trip = &trip
	return s.save()
}

func (s *JSONStore) GetNotes() ([]models.DailyNote, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	notes := make([]models.DailyNote, len(s.store.Notes))
	copy(notes, s.store.Notes)
	return notes, nil
}

func (s *JSONStore) SaveNotes(notes []models.DailyNote) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Notes = make([]models.DailyNote, len(notes))
	copy(s.store.Notes, notes)
	return s.save()
}

func (s *JSONStore) GetPackingItems() ([]models.PackingItem, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	items := make([]models.PackingItem, len(s.store.PackingItems))
	copy(items, s.store.PackingItems)
	return items, nil
}

func (s *JSONStore) SavePackingItems(items []models.PackingItem) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.PackingItems = make([]models.PackingItem, len(items))
	copy(s.store.PackingItems, items)
	return s.save()
}

func (s *JSONStore) PackingSeeded() (bool, error) {
	if s.store == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	return s.store.PackingSeeded, nil
}

func (s *JSONStore) SetPackingSeeded(seeded bool) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.PackingSeeded = seeded
	return s.save()
}

func (s *JSONStore) Reset() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Trip = nil
	s.store.Notes = []models.DailyNote{}
	s.store.PackingItems = []models.PackingItem{}
	s.store.PackingSeeded = false
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
