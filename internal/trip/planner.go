// Package trip owns the active trip, its daily notes and its packing
// checklist. A single Planner is constructed at startup and passed by handle
// to every consumer; it is the sole writer to the underlying store.
package trip

import (
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SnehaBakshi14/TripVibe/internal/constants"
	"github.com/SnehaBakshi14/TripVibe/internal/dateutil"
	"github.com/SnehaBakshi14/TripVibe/internal/models"
	"github.com/SnehaBakshi14/TripVibe/internal/storage"
)

// Data carries the validated fields for a new trip. The Planner trusts its
// inputs; validation happens at the CLI/TUI surface.
type Data struct {
	Name        string
	Destination string
	StartDate   string // YYYY-MM-DD format
	EndDate     string // YYYY-MM-DD format
}

// Stats summarizes packing progress.
type Stats struct {
	Total      int
	Packed     int
	Percentage int
}

type Planner struct {
	store    storage.Provider
	settings storage.Settings
	trip     *models.Trip
	notes    []models.DailyNote
	packing  []models.PackingItem
}

// NewPlanner loads all collections from an already-loaded store and seeds the
// starter packing list when appropriate.
func NewPlanner(store storage.Provider) (*Planner, error) {
	settings, err := store.GetSettings()
	if err != nil {
		settings = storage.DefaultSettings()
	}

	tripRec, err := store.GetTrip()
	if err != nil {
		return nil, err
	}
	notes, err := store.GetNotes()
	if err != nil {
		return nil, err
	}
	packing, err := store.GetPackingItems()
	if err != nil {
		return nil, err
	}

	p := &Planner{
		store:    store,
		settings: settings,
		trip:     tripRec,
		notes:    notes,
		packing:  packing,
	}

	if err := p.seedPackingIfNeeded(); err != nil {
		return nil, err
	}

	return p, nil
}

// seedPackingIfNeeded inserts the starter checklist when a trip exists and
// the packing list is empty. The persisted marker makes this a once-per-trip
// event: a list the user deliberately emptied stays empty.
func (p *Planner) seedPackingIfNeeded() error {
	if p.trip == nil || len(p.packing) > 0 {
		return nil
	}

	seeded, err := p.store.PackingSeeded()
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	for _, item := range models.DefaultPackingItems() {
		item.ID = uuid.New().String()
		p.packing = append(p.packing, item)
	}
	if err := p.store.SavePackingItems(p.packing); err != nil {
		return err
	}
	return p.store.SetPackingSeeded(true)
}

// HasTrip reports whether a trip is currently planned.
func (p *Planner) HasTrip() bool {
	return p.trip != nil
}

// Trip returns a copy of the active trip, or nil when none exists.
func (p *Planner) Trip() *models.Trip {
	if p.trip == nil {
		return nil
	}
	trip := *p.trip
	return &trip
}

// Notes returns the notes in insertion order.
func (p *Planner) Notes() []models.DailyNote {
	notes := make([]models.DailyNote, len(p.notes))
	copy(notes, p.notes)
	return notes
}

// NotesForDay returns the notes attached to one day of the trip.
func (p *Planner) NotesForDay(day int) []models.DailyNote {
	var notes []models.DailyNote
	for _, n := range p.notes {
		if n.Day == day {
			notes = append(notes, n)
		}
	}
	return notes
}

// PackingItems returns the packing checklist in insertion order.
func (p *Planner) PackingItems() []models.PackingItem {
	items := make([]models.PackingItem, len(p.packing))
	copy(items, p.packing)
	return items
}

// CreateTrip replaces any existing trip with a new one built from data. A
// fresh starter checklist is seeded when the packing list is empty.
func (p *Planner) CreateTrip(data Data) (models.Trip, error) {
	newTrip := models.Trip{
		ID:          uuid.New().String(),
		Name:        data.Name,
		Destination: data.Destination,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		CreatedAt:   time.Now(),
	}

	if err := p.store.SaveTrip(newTrip); err != nil {
		return models.Trip{}, err
	}
	p.trip = &newTrip

	// New trip, fresh seeding cycle.
	if err := p.store.SetPackingSeeded(false); err != nil {
		return models.Trip{}, err
	}
	if err := p.seedPackingIfNeeded(); err != nil {
		return models.Trip{}, err
	}

	return newTrip, nil
}

// Reset clears the trip and both dependent collections, in storage and in
// memory. No derived state survives because the Planner is the only holder.
func (p *Planner) Reset() error {
	if err := p.store.Reset(); err != nil {
		return err
	}
	p.trip = nil
	p.notes = []models.DailyNote{}
	p.packing = []models.PackingItem{}
	return nil
}

// AddNote appends a note to a day of the trip. Whitespace-only text is a
// silent no-op and returns a nil note.
func (p *Planner) AddNote(day int, text string) (*models.DailyNote, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	note := models.DailyNote{
		ID:   uuid.New().String(),
		Day:  day,
		Note: text,
	}
	p.notes = append(p.notes, note)
	if err := p.store.SaveNotes(p.notes); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces a note's content in place. Unknown ids are a no-op.
func (p *Planner) UpdateNote(id, text string) error {
	for i := range p.notes {
		if p.notes[i].ID == id {
			p.notes[i].Note = text
			return p.store.SaveNotes(p.notes)
		}
	}
	return nil
}

// RemoveNote removes a note by id. Unknown ids are a no-op.
func (p *Planner) RemoveNote(id string) error {
	for i := range p.notes {
		if p.notes[i].ID == id {
			p.notes = append(p.notes[:i], p.notes[i+1:]...)
			return p.store.SaveNotes(p.notes)
		}
	}
	return nil
}

// AddPackingItem appends an unpacked item to the checklist. Whitespace-only
// text is a silent no-op; unrecognized categories coerce to Miscellaneous.
func (p *Planner) AddPackingItem(text string, category models.Category) (*models.PackingItem, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	item := models.PackingItem{
		ID:       uuid.New().String(),
		Text:     text,
		Packed:   false,
		Category: models.CoerceCategory(category),
	}
	p.packing = append(p.packing, item)
	if err := p.store.SavePackingItems(p.packing); err != nil {
		return nil, err
	}
	return &item, nil
}

// TogglePackingItem flips an item's packed state. Unknown ids are a no-op.
func (p *Planner) TogglePackingItem(id string) error {
	for i := range p.packing {
		if p.packing[i].ID == id {
			p.packing[i].Packed = !p.packing[i].Packed
			return p.store.SavePackingItems(p.packing)
		}
	}
	return nil
}

// RemovePackingItem removes an item by id. Unknown ids are a no-op.
func (p *Planner) RemovePackingItem(id string) error {
	for i := range p.packing {
		if p.packing[i].ID == id {
			p.packing = append(p.packing[:i], p.packing[i+1:]...)
			return p.store.SavePackingItems(p.packing)
		}
	}
	return nil
}

// ClearPackedItems removes every packed item in one operation.
func (p *Planner) ClearPackedItems() error {
	remaining := p.packing[:0:0]
	for _, item := range p.packing {
		if !item.Packed {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(p.packing) {
		return nil
	}
	p.packing = remaining
	return p.store.SavePackingItems(p.packing)
}

// PackingStats summarizes the checklist. Percentage is 0 for an empty list.
func (p *Planner) PackingStats() Stats {
	total := len(p.packing)
	packed := 0
	for _, item := range p.packing {
		if item.Packed {
			packed++
		}
	}

	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(packed) / float64(total) * 100))
	}

	return Stats{Total: total, Packed: packed, Percentage: percentage}
}

// TripURL builds the shareable link for the active trip. ok is false when no
// trip exists. The id only resolves against this machine's local store.
func (p *Planner) TripURL() (string, bool) {
	if p.trip == nil {
		return "", false
	}

	base, err := url.Parse(p.settings.BaseURL)
	if err != nil {
		return "", false
	}
	q := base.Query()
	q.Set(constants.TripQueryParam, p.trip.ID)
	base.RawQuery = q.Encode()
	return base.String(), true
}

// DayCount returns the inclusive length of the trip in days, 0 when no trip
// exists.
func (p *Planner) DayCount() int {
	if p.trip == nil {
		return 0
	}
	return dateutil.DaysBetween(p.trip.StartDate, p.trip.EndDate)
}

// Days expands the trip's date range into numbered days for display.
func (p *Planner) Days() []dateutil.Day {
	if p.trip == nil {
		return nil
	}
	return dateutil.DayList(p.trip.StartDate, p.trip.EndDate)
}

// CountdownTarget returns local midnight on the trip's start date, or the
// zero time when no trip exists.
func (p *Planner) CountdownTarget() time.Time {
	if p.trip == nil {
		return time.Time{}
	}
	start, err := time.ParseInLocation(dateutil.DateFormat, p.trip.StartDate, time.Local)
	if err != nil {
		return time.Time{}
	}
	return start
}
