package models

import "github.com/habitflow/habitflow-cli/internal/constants"

// Document is the whole persisted state: one JSON object mirrored to a
// single storage slot. Absent completion entries mean "not completed".
type Document struct {
	User        *User                      `json:"user"`
	Habits      []Habit                    `json:"habits"`
	Completions map[string]map[string]bool `json:"completions"` // date -> habit id -> done
	Notes       map[string]Note            `json:"notes"`
	Settings    Settings                   `json:"settings"`
	Stats       Stats                      `json:"stats"`
}

// NewDocument returns a document populated with first-run defaults.
func NewDocument() *Document {
	return &Document{
		Habits:      []Habit{},
		Completions: make(map[string]map[string]bool),
		Notes:       make(map[string]Note),
		Settings: Settings{
			Theme:       constants.DefaultTheme,
			AccentColor: constants.DefaultAccentColor,
			Notifications: Notifications{
				Enabled: constants.DefaultNotificationsEnabled,
				Time:    constants.DefaultNotificationTime,
			},
			Level:        constants.DefaultLevel,
			XP:           0,
			Achievements: []string{},
		},
		Stats: Stats{
			WeeklyData: []WeeklyEntry{},
		},
	}
}

// Normalize replaces nil maps and slices left behind by JSON decoding so
// callers never have to nil-check collection fields, and restores the
// level floor for payloads that omit settings.
func (d *Document) Normalize() {
	if d.Habits == nil {
		d.Habits = []Habit{}
	}
	if d.Completions == nil {
		d.Completions = make(map[string]map[string]bool)
	}
	if d.Notes == nil {
		d.Notes = make(map[string]Note)
	}
	if d.Settings.Achievements == nil {
		d.Settings.Achievements = []string{}
	}
	if d.Settings.Level == 0 {
		d.Settings.Level = constants.DefaultLevel
	}
	if d.Stats.WeeklyData == nil {
		d.Stats.WeeklyData = []WeeklyEntry{}
	}
}

// Clone returns a deep copy of the document. The tracker snapshots before
// every mutation so a failed storage write can roll back.
func (d *Document) Clone() *Document {
	c := &Document{
		Settings: d.Settings,
		Stats:    d.Stats,
	}

	if d.User != nil {
		u := *d.User
		c.User = &u
	}

	c.Habits = make([]Habit, len(d.Habits))
	copy(c.Habits, d.Habits)

	c.Completions = make(map[string]map[string]bool, len(d.Completions))
	for date, day := range d.Completions {
		dayCopy := make(map[string]bool, len(day))
		for id, done := range day {
			dayCopy[id] = done
		}
		c.Completions[date] = dayCopy
	}

	c.Notes = make(map[string]Note, len(d.Notes))
	for date, note := range d.Notes {
		if note.Attachments != nil {
			atts := make([]Attachment, len(note.Attachments))
			copy(atts, note.Attachments)
			note.Attachments = atts
		}
		c.Notes[date] = note
	}

	c.Settings.Achievements = make([]string, len(d.Settings.Achievements))
	copy(c.Settings.Achievements, d.Settings.Achievements)

	c.Stats.WeeklyData = make([]WeeklyEntry, len(d.Stats.WeeklyData))
	copy(c.Stats.WeeklyData, d.Stats.WeeklyData)

	return c
}
