package quotes

import (
	"testing"
	"time"
)

func TestOfDayIsDeterministic(t *testing.T) {
	morning := time.Date(2025, 6, 10, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)

	if OfDay(morning) != OfDay(evening) {
		t.Error("expected the same quote for the whole day")
	}
}

func TestOfDayRotates(t *testing.T) {
	day := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	if OfDay(day) == OfDay(next) {
		t.Error("expected consecutive days to yield different quotes")
	}
}

func TestOfDayCoversWholeList(t *testing.T) {
	seen := map[string]bool{}
	day := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < len(quotes); i++ {
		q := OfDay(day.AddDate(0, 0, i))
		seen[q.Text] = true
	}
	if len(seen) != len(quotes) {
		t.Errorf("expected %d distinct quotes over %d days, got %d", len(quotes), len(quotes), len(seen))
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	if len(all) != len(quotes) {
		t.Fatalf("expected %d quotes, got %d", len(quotes), len(all))
	}
	all[0].Text = "mutated"
	if quotes[0].Text == "mutated" {
		t.Error("expected All to return a copy")
	}
}
