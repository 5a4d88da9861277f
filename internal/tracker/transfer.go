package tracker

import (
	"encoding/json"
	"fmt"

	"github.com/habitflow/habitflow-cli/internal/constants"
	"github.com/habitflow/habitflow-cli/internal/models"
	"github.com/habitflow/habitflow-cli/internal/validation"
)

// Export serializes the full document with an export timestamp and version
// tag. The output is accepted by Import and round-trips losslessly.
func (t *Tracker) Export() ([]byte, error) {
	if t.doc == nil {
		return nil, ErrNotLoaded
	}

	snapshot := t.doc.Clone()
	export := models.Export{
		User:        snapshot.User,
		Habits:      snapshot.Habits,
		Completions: snapshot.Completions,
		Notes:       snapshot.Notes,
		Settings:    snapshot.Settings,
		Stats:       snapshot.Stats,
		ExportDate:  t.now(),
		Version:     constants.ExportVersion,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize export: %w", err)
	}
	return data, nil
}

// Import wholesale replaces the document after structural validation.
// Invalid payloads are rejected before any mutation; a failed persist rolls
// the replacement back. Envelope fields (exportDate, version) are ignored.
func (t *Tracker) Import(data []byte) error {
	if t.doc == nil {
		return ErrNotLoaded
	}

	if err := validation.ValidateImport(data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	incoming := &models.Document{}
	if err := json.Unmarshal(data, incoming); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	incoming.Normalize()

	snapshot := t.doc
	t.doc = incoming
	if err := t.store.Save(t.doc); err != nil {
		t.doc = snapshot
		return err
	}
	return nil
}

// Reset erases the document and restores first-run defaults.
func (t *Tracker) Reset() error {
	if err := t.store.Clear(); err != nil {
		return err
	}
	return t.Load()
}
