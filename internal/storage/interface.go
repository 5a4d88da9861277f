package storage

import "github.com/habitflow/habitflow-cli/internal/models"

// Provider persists the whole document as one opaque blob. Every backend
// moves the full document per write; last write wins across independent
// processes, which is the accepted single-slot model.
type Provider interface {
	// Init creates the underlying storage slot with a default document.
	// It fails if the slot already exists.
	Init() error

	// Load reads and decodes the current document.
	Load() (*models.Document, error)

	// Save encodes and writes the full document synchronously.
	Save(doc *models.Document) error

	// Clear erases the slot and recreates it with a default document.
	Clear() error

	// Close releases any underlying resources.
	Close() error

	// Path returns the file path or connection target, for diagnostics.
	Path() string
}
