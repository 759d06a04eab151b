package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateCountdown:
		content = m.countdownModel.View()
	case StateItinerary:
		content = docStyle.Render(m.itineraryModel.View())
	case StatePacking:
		content = m.viewPacking()
	case StateNewTrip, StateAddNote, StateAddItem:
		content = docStyle.Render(m.form.View())
	case StateConfirmReset:
		content = m.viewConfirmReset()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Countdown", "Itinerary", "Packing"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewPacking() string {
	stats := m.planner.PackingStats()
	status := statusStyle.Render(
		fmt.Sprintf("%d/%d packed (%d%%)", stats.Packed, stats.Total, stats.Percentage),
	)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		docStyle.Render(m.packingModel.View()),
		status,
	)
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Start over? This clears the trip, all notes and the packing list."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
