package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/habitflow/habitflow-cli/internal/models"
)

func setupTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitflow.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store
}

func TestJSONStoreInitCreatesDefaults(t *testing.T) {
	store := setupTestJSONStore(t)

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	if doc.User != nil {
		t.Error("expected no user on first run")
	}
	if len(doc.Habits) != 0 {
		t.Errorf("expected no habits, got %d", len(doc.Habits))
	}
	if doc.Settings.Theme != "dark" {
		t.Errorf("expected default theme dark, got %q", doc.Settings.Theme)
	}
	if doc.Settings.Level != 1 {
		t.Errorf("expected default level 1, got %d", doc.Settings.Level)
	}
	if !doc.Settings.Notifications.Enabled {
		t.Error("expected notifications enabled by default")
	}
}

func TestJSONStoreInitTwiceFails(t *testing.T) {
	store := setupTestJSONStore(t)
	if err := store.Init(); err == nil {
		t.Error("expected second init to fail")
	}
}

func TestJSONStoreLoadUninitialized(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := store.Load(); err == nil {
		t.Error("expected load of uninitialized store to fail")
	}
}

func TestJSONStoreSaveRoundTrip(t *testing.T) {
	store := setupTestJSONStore(t)

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}

	doc.Habits = append(doc.Habits, models.Habit{
		ID:        "h1",
		Name:      "Read",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	})
	doc.Completions["2025-01-01"] = map[string]bool{"h1": true}

	if err := store.Save(doc); err != nil {
		t.Fatalf("failed to save store: %v", err)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	if len(reloaded.Habits) != 1 || reloaded.Habits[0].Name != "Read" {
		t.Errorf("habit did not survive round trip: %#v", reloaded.Habits)
	}
	if !reloaded.Completions["2025-01-01"]["h1"] {
		t.Error("completion did not survive round trip")
	}
}

func TestJSONStoreClearResetsDefaults(t *testing.T) {
	store := setupTestJSONStore(t)

	doc, _ := store.Load()
	doc.Habits = append(doc.Habits, models.Habit{ID: "h1", Name: "Run"})
	if err := store.Save(doc); err != nil {
		t.Fatalf("failed to save store: %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("failed to clear store: %v", err)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load after clear: %v", err)
	}
	if len(reloaded.Habits) != 0 {
		t.Errorf("expected empty habits after clear, got %d", len(reloaded.Habits))
	}
}
