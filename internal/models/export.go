package models

import "time"

// Export is the backup file envelope: a document snapshot plus a timestamp
// and version tag. Import accepts this shape and ignores the envelope
// fields, so Export -> Import round-trips to an identical document.
type Export struct {
	User        *User                      `json:"user"`
	Habits      []Habit                    `json:"habits"`
	Completions map[string]map[string]bool `json:"completions"`
	Notes       map[string]Note            `json:"notes"`
	Settings    Settings                   `json:"settings"`
	Stats       Stats                      `json:"stats"`
	ExportDate  time.Time                  `json:"exportDate"`
	Version     string                     `json:"version"`
}
