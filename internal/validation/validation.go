// Package validation checks caller-supplied input before it reaches the
// tracker: habit fields, settings values, and import payloads.
package validation

import (
	"encoding/json"
	"fmt"

	"github.com/habitflow/habitflow-cli/internal/models"
	"github.com/habitflow/habitflow-cli/internal/utils"
)

// documentKeys are the recognized top-level keys of a persisted document.
// An import payload must be a JSON object carrying at least one of them.
var documentKeys = []string{"user", "habits", "completions", "notes", "settings", "stats"}

// ValidateImport structurally validates an import payload without mutating
// anything. It returns a descriptive error for malformed input.
func ValidateImport(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("payload is not a JSON object: %w", err)
	}

	for _, key := range documentKeys {
		if _, ok := raw[key]; ok {
			return nil
		}
	}
	return fmt.Errorf("payload contains none of the expected keys %v", documentKeys)
}

// ValidateHabitInput checks new-habit fields.
func ValidateHabitInput(name string, frequency models.Frequency) error {
	if name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	switch frequency {
	case "", models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly:
		return nil
	default:
		return fmt.Errorf("unknown frequency %q (expected daily, weekly, or monthly)", frequency)
	}
}

// ValidateNotificationTime checks a reminder time setting.
func ValidateNotificationTime(timeStr string) error {
	if _, err := utils.ParseTime(timeStr); err != nil {
		return err
	}
	return nil
}
