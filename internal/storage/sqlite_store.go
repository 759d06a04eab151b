package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"github.com/SnehaBakshi14/TripVibe/internal/constants"
	"github.com/SnehaBakshi14/TripVibe/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trip (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	destination TEXT NOT NULL,
	start_date  TEXT NOT NULL,
	end_date    TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notes (
	id       TEXT PRIMARY KEY,
	day      INTEGER NOT NULL,
	note     TEXT NOT NULL,
	position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS packing_items (
	id       TEXT PRIMARY KEY,
	text     TEXT NOT NULL,
	packed   INTEGER NOT NULL,
	category TEXT NOT NULL,
	position INTEGER NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := s.setMeta("version", strconv.Itoa(constants.StorageVersion)); err != nil {
		return fmt.Errorf("failed to record storage version: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'tripvibe init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// A file that is not a usable database fails open: set the corrupt file
	// aside and start from defaults rather than crashing. The original bytes
	// stay on disk for manual recovery.
	if _, err := s.db.Exec(schema); err != nil {
		s.db.Close()
		corruptPath := s.path + ".corrupt"
		fmt.Fprintf(os.Stderr, "Warning: storage at %s is corrupted, moving it to %s and starting from defaults: %v\n", s.path, corruptPath, err)
		if renameErr := os.Rename(s.path, corruptPath); renameErr != nil {
			return fmt.Errorf("failed to set aside corrupted storage: %w", renameErr)
		}
		s.db = nil
		return s.Init()
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) getMeta(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM meta WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLiteStore) setMeta(key, value string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
	return err
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	baseURL, err := s.getMeta("base_url")
	if err != nil {
		return Settings{}, fmt.Errorf("settings not found")
	}
	return Settings{BaseURL: baseURL}, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	return s.setMeta("base_url", settings.BaseURL)
}

func (s *SQLiteStore) GetTrip() (*models.Trip, error) {
	row := s.db.QueryRow("SELECT id, name, destination, start_date, end_date, created_at FROM trip LIMIT 1")

	var t models.Trip
	var createdAt string
	err := row.Scan(&t.ID, &t.Name, &t.Destination, &t.StartDate, &t.EndDate, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid created_at timestamp: %w", err)
	}

	return &t, nil
}

func (s *SQLiteStore) SaveTrip(trip models.Trip) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// At most one trip: replace whatever is there.
	if _, err := tx.Exec("DELETE FROM trip"); err != nil {
		return err
	}
	_, err = tx.Exec(
		"INSERT INTO trip (id, name, destination, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		trip.ID, trip.Name, trip.Destination, trip.StartDate, trip.EndDate, trip.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetNotes() ([]models.DailyNote, error) {
	rows, err := s.db.Query("SELECT id, day, note FROM notes ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.DailyNote{}
	for rows.Next() {
		var n models.DailyNote
		if err := rows.Scan(&n.ID, &n.Day, &n.Note); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func (s *SQLiteStore) SaveNotes(notes []models.DailyNote) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM notes"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO notes (id, day, note, position) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, n := range notes {
		if _, err := stmt.Exec(n.ID, n.Day, n.Note, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetPackingItems() ([]models.PackingItem, error) {
	rows, err := s.db.Query("SELECT id, text, packed, category FROM packing_items ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.PackingItem{}
	for rows.Next() {
		var item models.PackingItem
		if err := rows.Scan(&item.ID, &item.Text, &item.Packed, &item.Category); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *SQLiteStore) SavePackingItems(items []models.PackingItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM packing_items"); err != nil {
		return err
	}

	stmt, err := tx.Prepare("INSERT INTO packing_items (id, text, packed, category, position) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, item := range items {
		if _, err := stmt.Exec(item.ID, item.Text, item.Packed, string(item.Category), i); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) PackingSeeded() (bool, error) {
	value, err := s.getMeta("packing_seeded")
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return value == "1", nil
}

func (s *SQLiteStore) SetPackingSeeded(seeded bool) error {
	value := "0"
	if seeded {
		value = "1"
	}
	return s.setMeta("packing_seeded", value)
}

// Reset clears the trip record, both collections and the seeded marker. The
// three tables are cleared with independent statements, mirroring the
// independent persisted entries they represent.
func (s *SQLiteStore) Reset() error {
	for _, stmt := range []string{
		"DELETE FROM trip",
		"DELETE FROM notes",
		"DELETE FROM packing_items",
		"DELETE FROM meta WHERE key = 'packing_seeded'",
	} {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
