package countdown

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	cd "github.com/SnehaBakshi14/TripVibe/internal/countdown"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(8).
			Align(lipgloss.Center).
			Padding(1, 0)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(8).
			Align(lipgloss.Center)

	expiredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 2)
)

// TickMsg carries the generation tag of the tick chain that produced it, so
// ticks scheduled for a replaced target can be told apart from live ones.
type TickMsg struct {
	Time time.Time
	tag  int
}

func tick(tag int) tea.Cmd {
	return tea.Tick(cd.DefaultInterval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, tag: tag}
	})
}

type Model struct {
	target    time.Time
	label     string
	breakdown cd.Breakdown
	tag       int
	width     int
	height    int
}

func New() Model {
	return Model{breakdown: cd.Breakdown{Expired: true}}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetTarget switches the countdown to a new target and recomputes
// immediately so the next frame is never stale. Bumping the generation tag
// invalidates any tick still in flight for the old target; the returned
// command starts a fresh chain when the new target lies in the future.
func (m *Model) SetTarget(target time.Time, label string) tea.Cmd {
	m.target = target
	m.label = label
	m.breakdown = cd.Until(target, time.Now())
	m.tag++
	if m.breakdown.Expired {
		return nil
	}
	return tick(m.tag)
}

func (m Model) Init() tea.Cmd {
	if m.breakdown.Expired {
		return nil
	}
	return tick(m.tag)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.tag != m.tag {
			// A tick from a superseded target; drop it without re-arming.
			return m, nil
		}
		m.breakdown = cd.Until(m.target, msg.Time)
		if m.breakdown.Expired {
			// Zero stays zero; stop ticking.
			return m, nil
		}
		return m, tick(m.tag)
	}
	return m, nil
}

func (m Model) View() string {
	var content string

	switch {
	case m.target.IsZero():
		content = hintStyle.Render("No trip planned yet. Press 'n' to plan one.")
	case m.breakdown.Expired:
		content = lipgloss.JoinVertical(lipgloss.Center,
			expiredStyle.Render("Trip has started!"),
			hintStyle.Render("Enjoy your adventure."),
		)
	default:
		cards := lipgloss.JoinHorizontal(lipgloss.Top,
			timeCard(m.breakdown.Days, "Days"),
			timeCard(m.breakdown.Hours, "Hours"),
			timeCard(m.breakdown.Minutes, "Minutes"),
			timeCard(m.breakdown.Seconds, "Seconds"),
		)
		content = lipgloss.JoinVertical(lipgloss.Center,
			titleStyle.Render(m.label),
			cards,
		)
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func timeCard(value int, label string) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		cardStyle.Render(fmt.Sprintf("%02d", value)),
		labelStyle.Render(label),
	)
}
