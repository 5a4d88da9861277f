package models

// Settings represents application-wide settings embedded in the document.
// Level and XP are derived from stats.totalCompletions by the tracker.
type Settings struct {
	Theme         string        `json:"theme"`
	AccentColor   string        `json:"accentColor"`
	Notifications Notifications `json:"notifications"`
	Level         int           `json:"level"`
	XP            int           `json:"xp"`
	Achievements  []string      `json:"achievements"`
}

// Notifications holds the daily reminder preferences.
type Notifications struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"` // HH:MM
}

// SettingsUpdate carries a partial settings merge. Nil fields are left
// untouched. Level, XP, and achievements are tracker-owned and cannot be
// set through an update.
type SettingsUpdate struct {
	Theme                *string
	AccentColor          *string
	NotificationsEnabled *bool
	NotificationTime     *string
}

// HasChanges reports whether any field of the update is set.
func (u SettingsUpdate) HasChanges() bool {
	return u.Theme != nil || u.AccentColor != nil ||
		u.NotificationsEnabled != nil || u.NotificationTime != nil
}

// Apply merges the update into the settings.
func (u SettingsUpdate) Apply(s *Settings) {
	if u.Theme != nil {
		s.Theme = *u.Theme
	}
	if u.AccentColor != nil {
		s.AccentColor = *u.AccentColor
	}
	if u.NotificationsEnabled != nil {
		s.Notifications.Enabled = *u.NotificationsEnabled
	}
	if u.NotificationTime != nil {
		s.Notifications.Time = *u.NotificationTime
	}
}
