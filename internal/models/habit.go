package models

import "time"

// Frequency tags how often a habit is meant to be done. It is descriptive
// metadata only; completion tracking is always per calendar day.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Habit is a tracked habit. Streak and TotalCompletions are derived from the
// completions map and kept consistent by the tracker on every mutation.
type Habit struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Icon             string    `json:"icon,omitempty"`
	Color            string    `json:"color,omitempty"`
	Frequency        Frequency `json:"frequency,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	Streak           int       `json:"streak"`
	TotalCompletions int       `json:"totalCompletions"`
}

// HabitUpdate carries the fields of a partial habit update. Nil fields are
// left untouched.
type HabitUpdate struct {
	Name        *string
	Description *string
	Icon        *string
	Color       *string
	Frequency   *Frequency
}

// Apply merges the update into the habit.
func (u HabitUpdate) Apply(h *Habit) {
	if u.Name != nil {
		h.Name = *u.Name
	}
	if u.Description != nil {
		h.Description = *u.Description
	}
	if u.Icon != nil {
		h.Icon = *u.Icon
	}
	if u.Color != nil {
		h.Color = *u.Color
	}
	if u.Frequency != nil {
		h.Frequency = *u.Frequency
	}
}
