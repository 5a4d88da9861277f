package tracker

import (
	"fmt"

	"github.com/habitflow/habitflow-cli/internal/models"
	"github.com/habitflow/habitflow-cli/internal/utils"
)

// VerifyIntegrity re-derives every counter from the completion history and
// reports mismatches and dangling references. An empty result means the
// document is internally consistent.
func (t *Tracker) VerifyIntegrity() []string {
	if t.doc == nil {
		return []string{"document not loaded"}
	}

	var problems []string
	doc := t.doc

	if doc.Stats.TotalHabits != len(doc.Habits) {
		problems = append(problems, fmt.Sprintf("stats.totalHabits is %d, found %d habits", doc.Stats.TotalHabits, len(doc.Habits)))
	}

	known := make(map[string]bool, len(doc.Habits))
	seen := make(map[string]bool, len(doc.Habits))
	for _, h := range doc.Habits {
		if h.ID == "" {
			problems = append(problems, fmt.Sprintf("habit %q has no id", h.Name))
			continue
		}
		if seen[h.ID] {
			problems = append(problems, fmt.Sprintf("duplicate habit id %s", h.ID))
		}
		seen[h.ID] = true
		known[h.ID] = true
	}

	globalTotal := 0
	perHabit := make(map[string]int, len(doc.Habits))
	for date, day := range doc.Completions {
		if _, err := utils.ParseDate(date); err != nil {
			problems = append(problems, fmt.Sprintf("completion date %q is not a valid date", date))
		}
		for habitID, done := range day {
			if !known[habitID] {
				problems = append(problems, fmt.Sprintf("completion on %s references unknown habit %s", date, habitID))
				continue
			}
			if done {
				perHabit[habitID]++
				globalTotal++
			}
		}
	}

	for _, h := range doc.Habits {
		if h.TotalCompletions != perHabit[h.ID] {
			problems = append(problems, fmt.Sprintf("habit %q records %d completions, history has %d", h.Name, h.TotalCompletions, perHabit[h.ID]))
		}
	}
	if doc.Stats.TotalCompletions != globalTotal {
		problems = append(problems, fmt.Sprintf("stats.totalCompletions is %d, history has %d", doc.Stats.TotalCompletions, globalTotal))
	}

	wantLevel, wantXP := levelFor(globalTotal)
	if doc.Settings.Level != wantLevel || doc.Settings.XP != wantXP {
		problems = append(problems, fmt.Sprintf("level/xp is %d/%d, expected %d/%d for %d completions", doc.Settings.Level, doc.Settings.XP, wantLevel, wantXP, globalTotal))
	}

	for date := range doc.Notes {
		if _, err := utils.ParseDate(date); err != nil {
			problems = append(problems, fmt.Sprintf("note date %q is not a valid date", date))
		}
	}

	return problems
}

// Repair recomputes all derived state from the completion history and
// persists the result.
func (t *Tracker) Repair() error {
	if t.doc == nil {
		return ErrNotLoaded
	}
	return t.mutate(func(doc *models.Document) error {
		doc.Normalize()
		for _, h := range doc.Habits {
			t.recalcHabit(doc, h.ID)
		}
		doc.Stats.TotalHabits = len(doc.Habits)
		t.recalcStats(doc)
		t.recalcLevel(doc)
		return nil
	})
}
