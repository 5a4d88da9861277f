package system

import (
	"testing"
	"time"
)

func TestWithinReminderWindow(t *testing.T) {
	at := func(hour, min int) time.Time {
		return time.Date(2025, 6, 10, hour, min, 0, 0, time.UTC)
	}

	cases := []struct {
		reminder string
		now      time.Time
		want     bool
	}{
		{"09:00", at(9, 0), true},
		{"09:00", at(9, 14), true},
		{"09:00", at(9, 15), false},
		{"09:00", at(8, 59), false},
		{"09:00", at(21, 0), false},
		{"bogus", at(9, 0), false},
	}
	for _, tc := range cases {
		if got := withinReminderWindow(tc.reminder, tc.now); got != tc.want {
			t.Errorf("withinReminderWindow(%q, %s) = %v, want %v", tc.reminder, tc.now.Format("15:04"), got, tc.want)
		}
	}
}
