package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-09")
	if err != nil {
		t.Fatalf("failed to parse valid date: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.March || d.Day() != 9 {
		t.Errorf("unexpected parsed date: %v", d)
	}

	if _, err := ParseDate("03/09/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("expected error for empty date")
	}
}

func TestAddDays(t *testing.T) {
	next, err := AddDays("2025-02-28", 1)
	if err != nil {
		t.Fatalf("failed to add days: %v", err)
	}
	if next != "2025-03-01" {
		t.Errorf("expected 2025-03-01, got %s", next)
	}

	prev, err := AddDays("2025-01-01", -1)
	if err != nil {
		t.Fatalf("failed to subtract days: %v", err)
	}
	if prev != "2024-12-31" {
		t.Errorf("expected 2024-12-31, got %s", prev)
	}
}

func TestLastNDays(t *testing.T) {
	end := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	days := LastNDays(end, 7)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0] != "2025-06-04" {
		t.Errorf("expected window to start at 2025-06-04, got %s", days[0])
	}
	if days[6] != "2025-06-10" {
		t.Errorf("expected window to end at 2025-06-10, got %s", days[6])
	}
}

func TestDayName(t *testing.T) {
	// 2025-06-09 is a Monday
	if name := DayName("2025-06-09"); name != "Mon" {
		t.Errorf("expected Mon, got %q", name)
	}
	if name := DayName("not-a-date"); name != "" {
		t.Errorf("expected empty string for bad input, got %q", name)
	}
}
