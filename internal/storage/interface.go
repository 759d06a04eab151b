package storage

import "github.com/SnehaBakshi14/TripVibe/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Trip (at most one)
	GetTrip() (*models.Trip, error)
	SaveTrip(models.Trip) error

	// Notes
	GetNotes() ([]models.DailyNote, error)
	SaveNotes([]models.DailyNote) error

	// Packing items
	GetPackingItems() ([]models.PackingItem, error)
	SavePackingItems([]models.PackingItem) error
	PackingSeeded() (bool, error)
	SetPackingSeeded(bool) error

	// Reset clears the trip, both collections and the seeded marker.
	Reset() error

	// Utils
	GetConfigPath() string
}
