package tracker

import (
	"github.com/habitflow/habitflow-cli/internal/constants"
	"github.com/habitflow/habitflow-cli/internal/events"
	"github.com/habitflow/habitflow-cli/internal/models"
	"github.com/habitflow/habitflow-cli/internal/utils"
)

// SetCompletion records whether the habit was done on the given date, then
// recomputes the habit's totals and streak, the global stats, and the
// derived level. Signals fire only after the document has been persisted.
func (t *Tracker) SetCompletion(date, habitID string, completed bool) error {
	if t.doc == nil {
		return ErrNotLoaded
	}
	if _, err := utils.ParseDate(date); err != nil {
		return err
	}
	if habitIndex(t.doc, habitID) == -1 {
		return ErrHabitNotFound
	}

	leveledUp := false
	err := t.mutate(func(doc *models.Document) error {
		day, ok := doc.Completions[date]
		if !ok {
			day = make(map[string]bool)
			doc.Completions[date] = day
		}
		day[habitID] = completed

		t.recalcHabit(doc, habitID)
		t.recalcStats(doc)
		leveledUp = t.recalcLevel(doc)
		return nil
	})
	if err != nil {
		return err
	}

	if completed {
		t.publish(events.HabitCompleted{HabitID: habitID, Date: date})
	}
	if leveledUp {
		t.publish(events.LevelUp{Level: t.doc.Settings.Level, XP: t.doc.Settings.XP})
	}
	return nil
}

// Completion reports whether the habit was done on the given date. Absent
// entries mean not completed.
func (t *Tracker) Completion(date, habitID string) bool {
	if t.doc == nil {
		return false
	}
	return t.doc.Completions[date][habitID]
}

// CompletionsFor returns the completion map for a date.
func (t *Tracker) CompletionsFor(date string) map[string]bool {
	if t.doc == nil {
		return nil
	}
	day := make(map[string]bool, len(t.doc.Completions[date]))
	for id, done := range t.doc.Completions[date] {
		day[id] = done
	}
	return day
}

// TodayCompletions returns today's completion map.
func (t *Tracker) TodayCompletions() map[string]bool {
	return t.CompletionsFor(utils.DateString(t.now()))
}

// Streak returns the current streak for a habit.
func (t *Tracker) Streak(habitID string) (int, error) {
	if t.doc == nil {
		return 0, ErrNotLoaded
	}
	if habitIndex(t.doc, habitID) == -1 {
		return 0, ErrHabitNotFound
	}
	return t.streakFor(t.doc, habitID), nil
}

// streakFor is the single authoritative streak definition: the length of
// the consecutive run of completed days scanned backward from today, up to
// the streak window. When today has no completion yet the scan anchors at
// yesterday, so an unbroken run through yesterday still counts.
func (t *Tracker) streakFor(doc *models.Document, habitID string) int {
	anchor := t.now()
	if !doc.Completions[utils.DateString(anchor)][habitID] {
		anchor = anchor.AddDate(0, 0, -1)
	}

	streak := 0
	for i := 0; i < constants.StreakWindowDays; i++ {
		date := utils.DateString(anchor.AddDate(0, 0, -i))
		if !doc.Completions[date][habitID] {
			break
		}
		streak++
	}
	return streak
}

// recalcHabit rebuilds a habit's derived counters from the completion map.
// Counting from the raw map keeps the totals invariant exact regardless of
// the order completions were toggled in.
func (t *Tracker) recalcHabit(doc *models.Document, habitID string) {
	idx := habitIndex(doc, habitID)
	if idx == -1 {
		return
	}

	total := 0
	for _, day := range doc.Completions {
		if day[habitID] {
			total++
		}
	}

	doc.Habits[idx].TotalCompletions = total
	doc.Habits[idx].Streak = t.streakFor(doc, habitID)
}

// recalcStats rebuilds the global totals and the weekly window.
func (t *Tracker) recalcStats(doc *models.Document) {
	total := 0
	for _, day := range doc.Completions {
		for _, done := range day {
			if done {
				total++
			}
		}
	}

	longest := 0
	for i := range doc.Habits {
		if doc.Habits[i].Streak > longest {
			longest = doc.Habits[i].Streak
		}
	}

	doc.Stats.TotalCompletions = total
	doc.Stats.LongestStreak = longest
	doc.Stats.WeeklyData = t.weeklyData(doc)
}

// weeklyData aggregates the last 7 calendar days including today. A day
// with zero habits reports 0 percent.
func (t *Tracker) weeklyData(doc *models.Document) []models.WeeklyEntry {
	days := utils.LastNDays(t.now(), constants.WeeklyWindowDays)
	entries := make([]models.WeeklyEntry, 0, len(days))

	for _, date := range days {
		completed := 0
		for _, done := range doc.Completions[date] {
			if done {
				completed++
			}
		}

		total := len(doc.Habits)
		percentage := 0.0
		if total > 0 {
			percentage = float64(completed) / float64(total) * 100
		}

		entries = append(entries, models.WeeklyEntry{
			Date:       date,
			DayName:    utils.DayName(date),
			Completed:  completed,
			Total:      total,
			Percentage: percentage,
		})
	}
	return entries
}

// recalcLevel derives level and xp from the global completion total and
// reports whether the level increased.
func (t *Tracker) recalcLevel(doc *models.Document) bool {
	newLevel, newXP := levelFor(doc.Stats.TotalCompletions)

	leveledUp := newLevel > doc.Settings.Level
	doc.Settings.Level = newLevel
	doc.Settings.XP = newXP
	return leveledUp
}

// levelFor maps a completion total to a level and xp remainder.
func levelFor(totalCompletions int) (level, xp int) {
	return totalCompletions/constants.XPPerLevel + 1, totalCompletions % constants.XPPerLevel
}
