package errors

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(errors.New("boom")); got != "Error: boom" {
		t.Errorf("unexpected format: %q", got)
	}
	if got := Format(nil); got != "" {
		t.Errorf("expected empty string for nil error, got %q", got)
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("habit %q not found", "Water")
	if got != `Error: habit "Water" not found` {
		t.Errorf("unexpected format: %q", got)
	}
}
