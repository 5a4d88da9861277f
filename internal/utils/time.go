package utils

import (
	"fmt"
	"time"

	"github.com/habitflow/habitflow-cli/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in local time.
func Today() string {
	return DateString(time.Now())
}

// DateString formats a time as the standard date string (YYYY-MM-DD).
func DateString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return t, nil
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %s (expected HH:MM)", timeStr)
	}
	return t, nil
}

// AddDays shifts a date string by n calendar days.
func AddDays(dateStr string, n int) (string, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return DateString(t.AddDate(0, 0, n)), nil
}

// LastNDays returns the n date strings ending at (and including) end, in
// chronological order.
func LastNDays(end time.Time, n int) []string {
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, DateString(end.AddDate(0, 0, -i)))
	}
	return days
}

// DayName returns the short weekday name ("Mon") for a date string.
// Returns an empty string for unparseable input.
func DayName(dateStr string) string {
	t, err := ParseDate(dateStr)
	if err != nil {
		return ""
	}
	return t.Weekday().String()[:3]
}
