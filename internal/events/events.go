// Package events carries the one-way domain signals the tracker publishes
// for the presentation layer: habit completed, level up, achievement
// unlocked. Consumers subscribe; the tracker never waits on them.
package events

// HabitCompleted fires when a habit is marked done for a date.
type HabitCompleted struct {
	HabitID string
	Date    string
}

// LevelUp fires when the derived level increases.
type LevelUp struct {
	Level int
	XP    int
}

// AchievementUnlocked fires once per newly unlocked achievement id.
type AchievementUnlocked struct {
	ID string
}

// Handler receives published events.
type Handler func(event any)

// Bus is a minimal synchronous publish/subscribe dispatcher. It is
// constructed once at startup and handed to the tracker; handlers run
// inline on the publishing goroutine, matching the engine's synchronous,
// single-context execution model.
type Bus struct {
	handlers []Handler
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all subsequent events.
func (b *Bus) Subscribe(h Handler) {
	if h == nil {
		return
	}
	b.handlers = append(b.handlers, h)
}

// Publish delivers the event to every registered handler in subscription
// order. Publishing on a nil bus is a no-op so the tracker can be used
// without a presentation layer attached.
func (b *Bus) Publish(event any) {
	if b == nil {
		return
	}
	for _, h := range b.handlers {
		h(event)
	}
}
