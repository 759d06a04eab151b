package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/SnehaBakshi14/TripVibe/internal/dateutil"
	"github.com/SnehaBakshi14/TripVibe/internal/models"
	"github.com/SnehaBakshi14/TripVibe/internal/trip"
	"github.com/SnehaBakshi14/TripVibe/internal/tui/components/countdown"
	"github.com/SnehaBakshi14/TripVibe/internal/tui/components/itinerary"
	"github.com/SnehaBakshi14/TripVibe/internal/tui/components/packing"
)

type SessionState int

const (
	StateCountdown SessionState = iota
	StateItinerary
	StatePacking
	StateNewTrip
	StateAddNote
	StateAddItem
	StateConfirmReset
)

// The first three states are the cycling main tabs.
const numMainTabs = 3

type Model struct {
	planner        *trip.Planner
	state          SessionState
	previousState  SessionState
	keys           KeyMap
	help           help.Model
	countdownModel countdown.Model
	itineraryModel itinerary.Model
	packingModel   packing.Model
	form           *huh.Form
	tripForm       *TripFormModel
	noteForm       *NoteFormModel
	itemForm       *ItemFormModel
	quitting       bool
	width          int
	height         int
}

func NewModel(planner *trip.Planner) Model {
	cm := countdown.New()
	im := itinerary.New(0, 0)
	pm := packing.New(planner.PackingItems(), 0, 0)

	im.SetItinerary(planner.Days(), planner.Notes())
	if t := planner.Trip(); t != nil {
		cm.SetTarget(planner.CountdownTarget(), countdownLabel(t))
	}

	return Model{
		planner:        planner,
		state:          StateCountdown,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		countdownModel: cm,
		itineraryModel: im,
		packingModel:   pm,
	}
}

func countdownLabel(t *models.Trip) string {
	return fmt.Sprintf("%s departs %s", t.Destination, dateutil.FormatDate(t.StartDate))
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateCountdown:
		keys = append(keys, m.keys.NewTrip, m.keys.Reset)
	case StateItinerary:
		keys = append(keys, m.keys.Add)
	case StatePacking:
		keys = append(keys, m.keys.Add, m.keys.Delete, m.keys.Clear)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateCountdown:
		actions = []key.Binding{m.keys.NewTrip, m.keys.Reset}
	case StateItinerary:
		actions = []key.Binding{m.keys.Add, m.keys.NewTrip, m.keys.Reset}
	case StatePacking:
		actions = []key.Binding{m.keys.Add, m.keys.Delete, m.keys.Clear}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return m.countdownModel.Init()
}

// refreshTripViews pushes the planner's current state into every component.
// Called after any mutation so no view renders stale data.
func (m *Model) refreshTripViews() tea.Cmd {
	m.itineraryModel.SetItinerary(m.planner.Days(), m.planner.Notes())
	m.packingModel.SetItems(m.planner.PackingItems())

	if t := m.planner.Trip(); t != nil {
		return m.countdownModel.SetTarget(m.planner.CountdownTarget(), countdownLabel(t))
	}
	return m.countdownModel.SetTarget(m.planner.CountdownTarget(), "")
}
