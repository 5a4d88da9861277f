package models

// Stats holds the globally derived figures, recomputed eagerly on every
// completion change.
type Stats struct {
	TotalHabits      int           `json:"totalHabits"`
	TotalCompletions int           `json:"totalCompletions"`
	LongestStreak    int           `json:"longestStreak"`
	WeeklyData       []WeeklyEntry `json:"weeklyData"`
}

// WeeklyEntry is one day of the rolling 7-day aggregation window.
type WeeklyEntry struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	DayName    string  `json:"dayName"`
	Completed  int     `json:"completed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}
