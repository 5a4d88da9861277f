package events

import "testing"

func TestBusDeliversInOrder(t *testing.T) {
	bus := NewBus()

	var got []any
	bus.Subscribe(func(event any) {
		got = append(got, event)
	})

	bus.Publish(HabitCompleted{HabitID: "h1", Date: "2025-01-01"})
	bus.Publish(LevelUp{Level: 2, XP: 0})
	bus.Publish(AchievementUnlocked{ID: "first_habit"})

	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if hc, ok := got[0].(HabitCompleted); !ok || hc.HabitID != "h1" {
		t.Errorf("unexpected first event: %#v", got[0])
	}
	if lu, ok := got[1].(LevelUp); !ok || lu.Level != 2 {
		t.Errorf("unexpected second event: %#v", got[1])
	}
}

func TestBusMultipleSubscribers(t *testing.T) {
	bus := NewBus()

	first, second := 0, 0
	bus.Subscribe(func(any) { first++ })
	bus.Subscribe(func(any) { second++ })

	bus.Publish(AchievementUnlocked{ID: "perfect_week"})

	if first != 1 || second != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", first, second)
	}
}

func TestNilBusPublishIsNoOp(t *testing.T) {
	var bus *Bus
	// Must not panic.
	bus.Publish(LevelUp{Level: 1})
}
