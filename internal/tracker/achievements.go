package tracker

import (
	"github.com/habitflow/habitflow-cli/internal/constants"
	"github.com/habitflow/habitflow-cli/internal/events"
	"github.com/habitflow/habitflow-cli/internal/models"
)

// CheckAchievements evaluates the fixed achievement predicates against the
// current state and unlocks any newly satisfied ones. Already unlocked
// achievements are never re-emitted, so calling this repeatedly without
// intervening mutations returns nothing new.
func (t *Tracker) CheckAchievements() ([]string, error) {
	if t.doc == nil {
		return nil, ErrNotLoaded
	}

	newly := newAchievements(t.doc)
	if len(newly) == 0 {
		return []string{}, nil
	}

	err := t.mutate(func(doc *models.Document) error {
		doc.Settings.Achievements = append(doc.Settings.Achievements, newly...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, id := range newly {
		t.publish(events.AchievementUnlocked{ID: id})
	}
	return newly, nil
}

// Achievements returns the unlocked achievement ids.
func (t *Tracker) Achievements() []string {
	if t.doc == nil {
		return nil
	}
	ids := make([]string, len(t.doc.Settings.Achievements))
	copy(ids, t.doc.Settings.Achievements)
	return ids
}

func newAchievements(doc *models.Document) []string {
	unlocked := make(map[string]bool, len(doc.Settings.Achievements))
	for _, id := range doc.Settings.Achievements {
		unlocked[id] = true
	}

	var newly []string
	award := func(id string, satisfied bool) {
		if satisfied && !unlocked[id] {
			newly = append(newly, id)
		}
	}

	award(constants.AchievementFirstHabit, len(doc.Habits) >= 1)
	award(constants.AchievementSevenDayStreak, anyStreakAtLeast(doc, 7))
	award(constants.AchievementMonthStreak, anyStreakAtLeast(doc, 30))
	award(constants.AchievementHundredDone, doc.Stats.TotalCompletions >= 100)
	award(constants.AchievementPerfectWeek, hasPerfectWeek(doc))

	return newly
}

func anyStreakAtLeast(doc *models.Document, n int) bool {
	for i := range doc.Habits {
		if doc.Habits[i].Streak >= n {
			return true
		}
	}
	return false
}

func hasPerfectWeek(doc *models.Document) bool {
	for _, entry := range doc.Stats.WeeklyData {
		if entry.Percentage == 100 {
			return true
		}
	}
	return false
}
