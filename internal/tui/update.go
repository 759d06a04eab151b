package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/SnehaBakshi14/TripVibe/internal/models"
	"github.com/SnehaBakshi14/TripVibe/internal/trip"
	"github.com/SnehaBakshi14/TripVibe/internal/tui/components/countdown"
	"github.com/SnehaBakshi14/TripVibe/internal/tui/components/packing"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle New Trip State
	if m.state == StateNewTrip {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = m.previousState
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			_, err := m.planner.CreateTrip(trip.Data{
				Name:        m.tripForm.Name,
				Destination: m.tripForm.Destination,
				StartDate:   m.tripForm.StartDate,
				EndDate:     m.tripForm.EndDate,
			})
			if err != nil {
				// Stay in form state on error to allow retry
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			cmds = append(cmds, m.refreshTripViews())
			m.state = StateCountdown
		case huh.StateAborted:
			m.state = m.previousState
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Add Note State
	if m.state == StateAddNote {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateItinerary
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if _, err := m.planner.AddNote(m.noteForm.Day, m.noteForm.Text); err != nil {
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.itineraryModel.SetItinerary(m.planner.Days(), m.planner.Notes())
			m.state = StateItinerary
		case huh.StateAborted:
			m.state = StateItinerary
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Add Item State
	if m.state == StateAddItem {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StatePacking
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if _, err := m.planner.AddPackingItem(m.itemForm.Text, m.itemForm.Category); err != nil {
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.packingModel.SetItems(m.planner.PackingItems())
			m.state = StatePacking
		case huh.StateAborted:
			m.state = StatePacking
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Reset State
	if m.state == StateConfirmReset {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.planner.Reset(); err != nil {
					m.state = m.previousState
					return m, nil
				}
				cmds = append(cmds, m.refreshTripViews())
				m.state = StateCountdown
				return m, tea.Batch(cmds...)
			case "n", "N", "esc", "q":
				m.state = m.previousState
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Adjust height for tabs and help
		contentHeight := msg.Height - 4

		h, v := docStyle.GetFrameSize()
		m.countdownModel.SetSize(msg.Width, contentHeight)
		m.itineraryModel.SetSize(msg.Width-h, contentHeight-v)
		m.packingModel.SetSize(msg.Width-h, contentHeight-v)

	case packing.AddItemMsg:
		m.itemForm = &ItemFormModel{Category: models.CategoryMiscellaneous}
		m.form = newItemForm(m.itemForm)
		m.state = StateAddItem
		return m, m.form.Init()

	case packing.ToggleItemMsg:
		if err := m.planner.TogglePackingItem(msg.ID); err == nil {
			m.packingModel.SetItems(m.planner.PackingItems())
		}
		return m, nil

	case packing.DeleteItemMsg:
		if err := m.planner.RemovePackingItem(msg.ID); err == nil {
			m.packingModel.SetItems(m.planner.PackingItems())
		}
		return m, nil

	case packing.ClearPackedMsg:
		if err := m.planner.ClearPackedItems(); err == nil {
			m.packingModel.SetItems(m.planner.PackingItems())
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % numMainTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + numMainTabs) % numMainTabs
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NewTrip):
			m.previousState = m.state
			m.tripForm = &TripFormModel{}
			m.form = newTripForm(m.tripForm)
			m.state = StateNewTrip
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Reset):
			if m.planner.HasTrip() {
				m.previousState = m.state
				m.state = StateConfirmReset
			}
			return m, nil
		case key.Matches(msg, m.keys.Add):
			if m.state == StateItinerary && m.planner.HasTrip() {
				m.noteForm = &NoteFormModel{Day: 1}
				m.form = newNoteForm(m.noteForm, m.planner.Days())
				m.state = StateAddNote
				return m, m.form.Init()
			}
		}
	}

	// Always update the countdown so ticks land regardless of the active tab.
	var cmd tea.Cmd
	if _, ok := msg.(countdown.TickMsg); ok {
		m.countdownModel, cmd = m.countdownModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state {
	case StateItinerary:
		m.itineraryModel, cmd = m.itineraryModel.Update(msg)
		cmds = append(cmds, cmd)
	case StatePacking:
		m.packingModel, cmd = m.packingModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}
