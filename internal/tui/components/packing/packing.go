package packing

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SnehaBakshi14/TripVibe/internal/models"
)

type AddItemMsg struct{}

type ToggleItemMsg struct {
	ID string
}

type DeleteItemMsg struct {
	ID string
}

type ClearPackedMsg struct{}

type Item struct {
	PackingItem models.PackingItem
}

func (i Item) Title() string {
	mark := "[ ]"
	if i.PackingItem.Packed {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s", mark, i.PackingItem.Text)
}

func (i Item) Description() string {
	return string(i.PackingItem.Category)
}

func (i Item) FilterValue() string { return i.PackingItem.Text }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Clear  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add item"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle packed"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear packed"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []models.PackingItem, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.Title = "Packing"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.Clear}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.Clear}
	}

	return Model{list: l, keys: keys}
}

func toListItems(items []models.PackingItem) []list.Item {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = Item{PackingItem: item}
	}
	return listItems
}

func (m *Model) SetItems(items []models.PackingItem) {
	m.list.SetItems(toListItems(items))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddItemMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleItemMsg{ID: i.PackingItem.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteItemMsg{ID: i.PackingItem.ID} }
			}
		case key.Matches(msg, m.keys.Clear):
			return m, func() tea.Msg { return ClearPackedMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
