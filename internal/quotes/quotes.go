// Package quotes picks the daily motivational quote. Selection is
// deterministic per calendar day so the quote is stable across invocations.
package quotes

import "time"

// Quote is one motivational quote.
type Quote struct {
	Text     string
	Author   string
	Category string
}

var quotes = []Quote{
	{"We are what we repeatedly do. Excellence, then, is not an act, but a habit.", "Aristotle", "habit"},
	{"The secret of getting ahead is getting started.", "Mark Twain", "progress"},
	{"Success is the sum of small efforts, repeated day in and day out.", "Robert Collier", "success"},
	{"Motivation is what gets you started. Habit is what keeps you going.", "Jim Ryun", "habit"},
	{"It does not matter how slowly you go as long as you do not stop.", "Confucius", "progress"},
	{"Small daily improvements over time lead to stunning results.", "Robin Sharma", "progress"},
	{"You'll never change your life until you change something you do daily.", "John C. Maxwell", "habit"},
	{"Discipline is choosing between what you want now and what you want most.", "Abraham Lincoln", "discipline"},
	{"The chains of habit are too weak to be felt until they are too strong to be broken.", "Samuel Johnson", "habit"},
	{"A journey of a thousand miles begins with a single step.", "Lao Tzu", "progress"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson", "discipline"},
	{"Well begun is half done.", "Aristotle", "progress"},
	{"First we make our habits, then our habits make us.", "John Dryden", "habit"},
	{"What you do every day matters more than what you do once in a while.", "Gretchen Rubin", "habit"},
	{"The best way to predict your future is to create it.", "Peter Drucker", "success"},
}

// OfDay returns the quote for the given day. The same day always yields the
// same quote; the seed is day-of-year plus year.
func OfDay(day time.Time) Quote {
	seed := day.YearDay() + day.Year()
	return quotes[seed%len(quotes)]
}

// All returns the full quote list.
func All() []Quote {
	out := make([]Quote, len(quotes))
	copy(out, quotes)
	return out
}
