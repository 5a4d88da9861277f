package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/habitflow/habitflow-cli/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID   string
	Name string
}

type Item struct {
	Habit    models.Habit
	IsMarked bool
}

func (i Item) Title() string {
	mark := "○"
	if i.IsMarked {
		mark = "✓"
	}
	return fmt.Sprintf("%s %s %s", mark, i.Habit.Icon, i.Habit.Name)
}

func (i Item) Description() string {
	desc := "not completed today"
	if i.IsMarked {
		desc = "completed today"
	}
	if i.Habit.Streak > 0 {
		desc += fmt.Sprintf(" · 🔥 %d day streak", i.Habit.Streak)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []models.Habit, completions map[string]bool, width, height int) Model {
	l := list.New(buildItems(habits, completions), list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func buildItems(habits []models.Habit, completions map[string]bool) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h, IsMarked: completions[h.ID]}
	}
	return items
}

// SetHabits refreshes the list contents, keeping the cursor where possible.
func (m *Model) SetHabits(habits []models.Habit, completions map[string]bool) {
	m.list.SetItems(buildItems(habits, completions))
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
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID, Name: i.Habit.Name} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
