package tracker

import "github.com/habitflow/habitflow-cli/internal/models"

// Settings returns the current settings.
func (t *Tracker) Settings() models.Settings {
	if t.doc == nil {
		return models.Settings{}
	}
	settings := t.doc.Settings
	settings.Achievements = append([]string(nil), settings.Achievements...)
	return settings
}

// UpdateSettings merges a partial settings update. Level, xp, and
// achievements are derived and cannot be overridden here.
func (t *Tracker) UpdateSettings(update models.SettingsUpdate) error {
	if t.doc == nil {
		return ErrNotLoaded
	}
	return t.mutate(func(doc *models.Document) error {
		update.Apply(&doc.Settings)
		return nil
	})
}

// Stats returns the current derived global stats.
func (t *Tracker) Stats() models.Stats {
	if t.doc == nil {
		return models.Stats{}
	}
	stats := t.doc.Stats
	stats.WeeklyData = append([]models.WeeklyEntry(nil), stats.WeeklyData...)
	return stats
}

// WeeklyData recomputes and returns the rolling 7-day aggregation. The
// stored copy is only refreshed by completion mutations, so reads go
// through a fresh computation to stay anchored at today.
func (t *Tracker) WeeklyData() []models.WeeklyEntry {
	if t.doc == nil {
		return nil
	}
	return t.weeklyData(t.doc)
}
