package tracker

import (
	"sort"
	"strings"

	"github.com/habitflow/habitflow-cli/internal/constants"
	"github.com/habitflow/habitflow-cli/internal/models"
	"github.com/habitflow/habitflow-cli/internal/utils"
)

var positiveWords = []string{
	"happy", "great", "excellent", "amazing", "wonderful",
	"fantastic", "good", "positive", "motivated", "energetic",
}

var negativeWords = []string{
	"sad", "bad", "terrible", "awful", "frustrated",
	"stressed", "anxious", "worried", "tired", "exhausted",
}

// NoteResult pairs a note with its date for search results.
type NoteResult struct {
	Date string
	Note models.Note
}

// SetNote saves the journal entry for a date, overwriting any existing one.
// Word count and mood are derived from the content.
func (t *Tracker) SetNote(date, content string, attachments []models.Attachment) (models.Note, error) {
	if t.doc == nil {
		return models.Note{}, ErrNotLoaded
	}
	if _, err := utils.ParseDate(date); err != nil {
		return models.Note{}, err
	}

	note := models.Note{
		Content:     content,
		Mood:        DetectMood(content),
		Attachments: attachments,
		WordCount:   CountWords(content),
		UpdatedAt:   t.now(),
	}

	err := t.mutate(func(doc *models.Document) error {
		doc.Notes[date] = note
		return nil
	})
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// Note returns the journal entry for a date, if any.
func (t *Tracker) Note(date string) (models.Note, bool) {
	if t.doc == nil {
		return models.Note{}, false
	}
	note, ok := t.doc.Notes[date]
	return note, ok
}

// Notes returns all journal entries in date order.
func (t *Tracker) Notes() []NoteResult {
	if t.doc == nil {
		return nil
	}

	results := make([]NoteResult, 0, len(t.doc.Notes))
	for date, note := range t.doc.Notes {
		results = append(results, NoteResult{Date: date, Note: note})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Date < results[j].Date })
	return results
}

// DeleteNote removes the journal entry for a date.
func (t *Tracker) DeleteNote(date string) error {
	if t.doc == nil {
		return ErrNotLoaded
	}
	return t.mutate(func(doc *models.Document) error {
		delete(doc.Notes, date)
		return nil
	})
}

// SearchNotes returns notes whose content contains the query,
// case-insensitively, in date order.
func (t *Tracker) SearchNotes(query string) []NoteResult {
	all := t.Notes()
	if query == "" {
		return all
	}

	q := strings.ToLower(query)
	matches := make([]NoteResult, 0, len(all))
	for _, r := range all {
		if strings.Contains(strings.ToLower(r.Note.Content), q) {
			matches = append(matches, r)
		}
	}
	return matches
}

// DetectMood classifies text by counting hits from fixed positive and
// negative word lists. Returns nil for empty text.
func DetectMood(text string) *constants.Mood {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)
	positive, negative := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	mood := constants.MoodNeutral
	switch {
	case positive > negative:
		mood = constants.MoodPositive
	case negative > positive:
		mood = constants.MoodNegative
	}
	return &mood
}

// CountWords returns the number of whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
