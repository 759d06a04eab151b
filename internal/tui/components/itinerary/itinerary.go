package itinerary

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SnehaBakshi14/TripVibe/internal/dateutil"
	"github.com/SnehaBakshi14/TripVibe/internal/models"
)

var (
	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	viewport viewport.Model
	days     []dateutil.Day
	notes    []models.DailyNote
	hasTrip  bool
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{
		viewport: viewport.New(width, height),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.hasTrip {
		return emptyStyle.Render("No trip planned. Press 'n' to plan one.")
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetItinerary replaces the displayed days and notes.
func (m *Model) SetItinerary(days []dateutil.Day, notes []models.DailyNote) {
	m.days = days
	m.notes = notes
	m.hasTrip = len(days) > 0
	m.render()
}

func (m *Model) render() {
	if !m.hasTrip {
		m.viewport.SetContent("")
		return
	}

	byDay := make(map[int][]models.DailyNote)
	for _, n := range m.notes {
		byDay[n.Day] = append(byDay[n.Day], n)
	}

	var b strings.Builder
	for _, day := range m.days {
		header := fmt.Sprintf("%s  %s",
			dayStyle.Render(fmt.Sprintf("Day %d", day.Number)),
			dateStyle.Render(dateutil.FormatShortDate(day.Date)),
		)
		b.WriteString(header + "\n")

		notes := byDay[day.Number]
		if len(notes) == 0 {
			b.WriteString(emptyStyle.Render("  no notes yet") + "\n")
		}
		for _, n := range notes {
			b.WriteString(noteStyle.Render("  - "+n.Note) + "\n")
		}
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}
