package tracker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow-cli/internal/models"
	"github.com/habitflow/habitflow-cli/internal/validation"
)

// HabitInput carries the caller-supplied fields of a new habit. The id,
// creation timestamp, and derived counters are filled in by AddHabit.
type HabitInput struct {
	Name        string
	Description string
	Icon        string
	Color       string
	Frequency   models.Frequency
}

// AddHabit creates a habit with a fresh id and zeroed derived state,
// appends it, and updates the habit total.
func (t *Tracker) AddHabit(input HabitInput) (models.Habit, error) {
	if t.doc == nil {
		return models.Habit{}, ErrNotLoaded
	}
	if err := validation.ValidateHabitInput(input.Name, input.Frequency); err != nil {
		return models.Habit{}, err
	}
	if input.Frequency == "" {
		input.Frequency = models.FrequencyDaily
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		Frequency:   input.Frequency,
		CreatedAt:   t.now(),
	}

	err := t.mutate(func(doc *models.Document) error {
		doc.Habits = append(doc.Habits, habit)
		doc.Stats.TotalHabits = len(doc.Habits)
		return nil
	})
	if err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// Habit returns the habit with the given id.
func (t *Tracker) Habit(id string) (models.Habit, error) {
	if t.doc == nil {
		return models.Habit{}, ErrNotLoaded
	}
	for _, h := range t.doc.Habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, ErrHabitNotFound
}

// HabitByName returns the habit with the given name.
func (t *Tracker) HabitByName(name string) (models.Habit, error) {
	if t.doc == nil {
		return models.Habit{}, ErrNotLoaded
	}
	for _, h := range t.doc.Habits {
		if h.Name == name {
			return h, nil
		}
	}
	return models.Habit{}, ErrHabitNotFound
}

// Habits returns all habits in insertion order.
func (t *Tracker) Habits() []models.Habit {
	if t.doc == nil {
		return nil
	}
	habits := make([]models.Habit, len(t.doc.Habits))
	copy(habits, t.doc.Habits)
	return habits
}

// SearchHabits returns habits whose name or description contains the query,
// case-insensitively. An empty query returns everything.
func (t *Tracker) SearchHabits(query string) []models.Habit {
	habits := t.Habits()
	if query == "" {
		return habits
	}

	q := strings.ToLower(query)
	matches := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if strings.Contains(strings.ToLower(h.Name), q) ||
			strings.Contains(strings.ToLower(h.Description), q) {
			matches = append(matches, h)
		}
	}
	return matches
}

// UpdateHabit merges the partial update into the habit with the given id.
func (t *Tracker) UpdateHabit(id string, update models.HabitUpdate) (models.Habit, error) {
	if t.doc == nil {
		return models.Habit{}, ErrNotLoaded
	}

	var updated models.Habit
	err := t.mutate(func(doc *models.Document) error {
		for i := range doc.Habits {
			if doc.Habits[i].ID == id {
				update.Apply(&doc.Habits[i])
				updated = doc.Habits[i]
				return nil
			}
		}
		return ErrHabitNotFound
	})
	if err != nil {
		return models.Habit{}, err
	}
	return updated, nil
}

// DeleteHabit removes the habit and its id from every date's completion
// entry. Historical dates themselves are kept.
func (t *Tracker) DeleteHabit(id string) error {
	if t.doc == nil {
		return ErrNotLoaded
	}

	return t.mutate(func(doc *models.Document) error {
		idx := -1
		for i := range doc.Habits {
			if doc.Habits[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return ErrHabitNotFound
		}

		doc.Habits = append(doc.Habits[:idx], doc.Habits[idx+1:]...)
		for _, day := range doc.Completions {
			delete(day, id)
		}

		doc.Stats.TotalHabits = len(doc.Habits)
		t.recalcStats(doc)
		t.recalcLevel(doc)
		return nil
	})
}

func habitIndex(doc *models.Document, id string) int {
	for i := range doc.Habits {
		if doc.Habits[i].ID == id {
			return i
		}
	}
	return -1
}
