package validation

import (
	"testing"

	"github.com/habitflow/habitflow-cli/internal/models"
)

func TestValidateImport(t *testing.T) {
	valid := [][]byte{
		[]byte(`{"habits": []}`),
		[]byte(`{"settings": {"theme": "dark"}, "extra": 1}`),
		[]byte(`{"user": null}`),
	}
	for _, payload := range valid {
		if err := ValidateImport(payload); err != nil {
			t.Errorf("expected %s to validate, got %v", payload, err)
		}
	}

	invalid := [][]byte{
		[]byte(`not json`),
		[]byte(`[]`),
		[]byte(`42`),
		[]byte(`{"unrelated": true}`),
		[]byte(`{}`),
	}
	for _, payload := range invalid {
		if err := ValidateImport(payload); err == nil {
			t.Errorf("expected %s to be rejected", payload)
		}
	}
}

func TestValidateHabitInput(t *testing.T) {
	if err := ValidateHabitInput("Read", models.FrequencyDaily); err != nil {
		t.Errorf("expected valid input, got %v", err)
	}
	if err := ValidateHabitInput("Read", ""); err != nil {
		t.Errorf("expected empty frequency to default, got %v", err)
	}
	if err := ValidateHabitInput("", models.FrequencyDaily); err == nil {
		t.Error("expected empty name to be rejected")
	}
	if err := ValidateHabitInput("Read", "hourly"); err == nil {
		t.Error("expected unknown frequency to be rejected")
	}
}

func TestValidateNotificationTime(t *testing.T) {
	if err := ValidateNotificationTime("09:00"); err != nil {
		t.Errorf("expected 09:00 to validate, got %v", err)
	}
	for _, bad := range []string{"", "9am", "25:00", "12:60"} {
		if err := ValidateNotificationTime(bad); err == nil {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
