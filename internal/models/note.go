package models

import (
	"time"

	"github.com/habitflow/habitflow-cli/internal/constants"
)

// Note is the journal entry for a single date. At most one note exists per
// date; saving again overwrites.
type Note struct {
	Content     string           `json:"content"`
	Mood        *constants.Mood  `json:"mood"`
	Attachments []Attachment     `json:"attachments,omitempty"`
	WordCount   int              `json:"wordCount"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Attachment is a file attached to a note. Data optionally carries the
// inline payload (base64 or data URL); it has no lifecycle of its own.
type Attachment struct {
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	Data       string    `json:"data,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}
