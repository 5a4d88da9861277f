package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/constants"
	"github.com/habitflow/habitflow-cli/internal/tracker"
	"github.com/habitflow/habitflow-cli/internal/tui/components/habitlist"
	"github.com/habitflow/habitflow-cli/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle the add-habit form state
	if m.state == constants.StateAddHabit {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateToday
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			_, err := m.tracker.AddHabit(tracker.HabitInput{
				Name:        m.habitForm.Name,
				Description: m.habitForm.Description,
				Icon:        m.habitForm.Icon,
			})
			if err != nil {
				m.formError = err.Error()
				m.habitForm = &HabitFormModel{
					Name:        m.habitForm.Name,
					Description: m.habitForm.Description,
					Icon:        m.habitForm.Icon,
				}
				m.form = newHabitForm(m.habitForm)
				return m, m.form.Init()
			}
			m.formError = ""
			m.statusMessage = m.reportAchievements()
			m.refreshHabits()
			m.state = constants.StateToday
		case huh.StateAborted:
			m.state = constants.StateToday
		}
		return m, tea.Batch(cmds...)
	}

	// Handle the delete confirmation state
	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.tracker.DeleteHabit(m.deleteID); err != nil {
					m.statusMessage = err.Error()
				} else {
					m.statusMessage = fmt.Sprintf("Deleted %q", m.deleteName)
				}
				m.refreshHabits()
				m.state = constants.StateToday
			case "n", "N", "esc":
				m.state = constants.StateToday
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		frameX, frameY := docStyle.GetFrameSize()
		m.habitList.SetSize(msg.Width-frameX, msg.Height-frameY-6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = nextTab(m.state)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = prevTab(m.state)
			return m, nil
		}

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Icon: "✨"}
		m.form = newHabitForm(m.habitForm)
		m.formError = ""
		m.state = constants.StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		today := utils.Today()
		completed := !m.tracker.Completion(today, msg.ID)
		if err := m.tracker.SetCompletion(today, msg.ID, completed); err != nil {
			m.statusMessage = err.Error()
		} else {
			m.statusMessage = m.reportAchievements()
		}
		m.refreshHabits()
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.deleteID = msg.ID
		m.deleteName = msg.Name
		m.state = constants.StateConfirmDelete
		return m, nil
	}

	if m.state == constants.StateToday {
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// reportAchievements runs the achievement check and returns a status line
// for any new unlocks.
func (m *Model) reportAchievements() string {
	newly, err := m.tracker.CheckAchievements()
	if err != nil || len(newly) == 0 {
		return ""
	}
	line := "🏆 Unlocked:"
	for _, id := range newly {
		line += " " + cli.FormatAchievement(id)
	}
	return line
}

func nextTab(state constants.SessionState) constants.SessionState {
	switch state {
	case constants.StateToday:
		return constants.StateStats
	case constants.StateStats:
		return constants.StateJournal
	default:
		return constants.StateToday
	}
}

func prevTab(state constants.SessionState) constants.SessionState {
	switch state {
	case constants.StateToday:
		return constants.StateJournal
	case constants.StateJournal:
		return constants.StateStats
	default:
		return constants.StateToday
	}
}
