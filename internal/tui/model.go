package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/habitflow/habitflow-cli/internal/constants"
	"github.com/habitflow/habitflow-cli/internal/tracker"
	"github.com/habitflow/habitflow-cli/internal/tui/components/habitlist"
)

type HabitFormModel struct {
	Name        string
	Description string
	Icon        string
}

type Model struct {
	tracker       *tracker.Tracker
	state         constants.SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	deleteID      string
	deleteName    string
	statusMessage string
	formError     string
	quitting      bool
	width         int
	height        int
}

func NewModel(tr *tracker.Tracker) Model {
	m := Model{
		tracker:   tr,
		state:     constants.StateToday,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(tr.Habits(), tr.TodayCompletions(), 0, 0),
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshHabits reloads the checklist after any mutation.
func (m *Model) refreshHabits() {
	m.habitList.SetHabits(m.tracker.Habits(), m.tracker.TodayCompletions())
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewInput().
				Title("Icon").
				Value(&fm.Icon),
		),
	)
}
