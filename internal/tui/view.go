package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/habitflow/habitflow-cli/internal/cli"
	"github.com/habitflow/habitflow-cli/internal/constants"
	"github.com/habitflow/habitflow-cli/internal/quotes"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateToday:
		content = m.viewToday()
	case constants.StateStats:
		content = m.viewStats()
	case constants.StateJournal:
		content = m.viewJournal()
	case constants.StateAddHabit:
		content = m.viewAddHabit()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	status := ""
	if m.statusMessage != "" {
		status = statusStyle.Render(m.statusMessage)
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		status,
		m.help.View(m),
	)
	return docStyle.Render(ui)
}

func (m Model) viewTabs() string {
	tabs := []struct {
		state constants.SessionState
		label string
	}{
		{constants.StateToday, "Today"},
		{constants.StateStats, "Stats"},
		{constants.StateJournal, "Journal"},
	}

	var rendered []string
	for _, tab := range tabs {
		style := inactiveTabStyle
		if m.state == tab.state {
			style = activeTabStyle
		}
		rendered = append(rendered, style.Render(tab.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n"
}

func (m Model) viewToday() string {
	q := quotes.OfDay(time.Now())
	header := mutedStyle.Render(fmt.Sprintf("%q - %s", q.Text, q.Author))
	return header + "\n\n" + m.habitList.View()
}

func (m Model) viewStats() string {
	stats := m.tracker.Stats()
	settings := m.tracker.Settings()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Your progress") + "\n\n")
	b.WriteString(fmt.Sprintf("Habits:            %d\n", stats.TotalHabits))
	b.WriteString(fmt.Sprintf("Total completions: %d\n", stats.TotalCompletions))
	b.WriteString(fmt.Sprintf("Longest streak:    %d days\n", stats.LongestStreak))
	b.WriteString(fmt.Sprintf("Level:             %d (%d/%d XP)\n\n", settings.Level, settings.XP, constants.XPPerLevel))

	b.WriteString(headerStyle.Render("Last 7 days") + "\n\n")
	for _, entry := range m.tracker.WeeklyData() {
		b.WriteString(fmt.Sprintf("%s %s  %s %d/%d\n",
			entry.DayName, entry.Date[5:], cli.ProgressBar(entry.Percentage, 10),
			entry.Completed, entry.Total))
	}

	unlocked := m.tracker.Achievements()
	b.WriteString("\n" + headerStyle.Render("Achievements") + "\n\n")
	if len(unlocked) == 0 {
		b.WriteString(mutedStyle.Render("None yet. Keep going!") + "\n")
	}
	for _, id := range unlocked {
		b.WriteString("🏆 " + cli.FormatAchievement(id) + "\n")
	}
	return b.String()
}

func (m Model) viewJournal() string {
	results := m.tracker.Notes()
	if len(results) == 0 {
		return mutedStyle.Render("No journal entries. Write one with 'habitflow note set'.")
	}

	var b strings.Builder
	for i := len(results) - 1; i >= 0; i-- {
		r := results[i]
		header := r.Date
		if r.Note.Mood != nil {
			header += "  (" + string(*r.Note.Mood) + ")"
		}
		b.WriteString(headerStyle.Render(header) + "\n")
		b.WriteString(r.Note.Content + "\n\n")
	}
	return b.String()
}

func (m Model) viewAddHabit() string {
	view := m.form.View()
	if m.formError != "" {
		view += "\n" + dangerStyle.Render(m.formError)
	}
	return view
}

func (m Model) viewConfirmDelete() string {
	return dangerStyle.Render(fmt.Sprintf("Delete %q and all of its history?", m.deleteName)) +
		"\n\n" + mutedStyle.Render("y: delete  n: cancel")
}
