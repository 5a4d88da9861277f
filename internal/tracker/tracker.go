// Package tracker owns the habit document and keeps its derived state
// (streaks, totals, weekly aggregation, level, achievements) consistent
// with the raw completion map on every mutation. It performs no IO of its
// own beyond the injected storage provider and publishes domain signals on
// the injected bus.
package tracker

import (
	"errors"
	"time"

	"github.com/habitflow/habitflow-cli/internal/events"
	"github.com/habitflow/habitflow-cli/internal/models"
	"github.com/habitflow/habitflow-cli/internal/storage"
)

var (
	// ErrNotLoaded is returned when an operation runs before Load.
	ErrNotLoaded = errors.New("tracker not loaded")
	// ErrHabitNotFound is returned for operations on an unknown habit id.
	ErrHabitNotFound = errors.New("habit not found")
	// ErrInvalidImport is returned when an import payload fails structural
	// validation. The document is left untouched.
	ErrInvalidImport = errors.New("invalid import payload")
)

// Tracker is constructed once at session start and passed by handle to
// consumers. Every mutating operation persists the full document
// synchronously and rolls back the in-memory copy if the write fails.
type Tracker struct {
	store storage.Provider
	bus   *events.Bus
	doc   *models.Document

	// now is swappable in tests to pin "today".
	now func() time.Time
}

// New returns a tracker bound to the given storage provider and bus. The
// bus may be nil when no presentation layer is attached.
func New(store storage.Provider, bus *events.Bus) *Tracker {
	return &Tracker{
		store: store,
		bus:   bus,
		now:   time.Now,
	}
}

// Load reads the document from storage. It must be called before any other
// operation.
func (t *Tracker) Load() error {
	doc, err := t.store.Load()
	if err != nil {
		return err
	}
	t.doc = doc
	return nil
}

// Close releases the underlying storage provider.
func (t *Tracker) Close() error {
	return t.store.Close()
}

// StoragePath returns the storage target, for diagnostics.
func (t *Tracker) StoragePath() string {
	return t.store.Path()
}

// User returns the local account, or nil if none is registered.
func (t *Tracker) User() *models.User {
	if t.doc == nil {
		return nil
	}
	return t.doc.User
}

// SetUser stores the local account.
func (t *Tracker) SetUser(user *models.User) error {
	if t.doc == nil {
		return ErrNotLoaded
	}
	return t.mutate(func(doc *models.Document) error {
		doc.User = user
		return nil
	})
}

// mutate runs fn against the live document and persists the result. On any
// failure the pre-mutation snapshot is restored, so callers never observe a
// partially applied change.
func (t *Tracker) mutate(fn func(doc *models.Document) error) error {
	snapshot := t.doc.Clone()

	if err := fn(t.doc); err != nil {
		t.doc = snapshot
		return err
	}
	if err := t.store.Save(t.doc); err != nil {
		t.doc = snapshot
		return err
	}
	return nil
}

func (t *Tracker) publish(event any) {
	if t.bus != nil {
		t.bus.Publish(event)
	}
}
