package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/habitflow/habitflow-cli/internal/models"
)

// JSONStore keeps the document in a single JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.write(models.NewDocument())
}

func (s *JSONStore) Load() (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("storage not initialized, run 'habitflow init' first")
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &models.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}

	doc.Normalize()
	return doc, nil
}

func (s *JSONStore) Save(doc *models.Document) error {
	if doc == nil {
		return fmt.Errorf("cannot save a nil document")
	}
	return s.write(doc)
}

func (s *JSONStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return s.write(models.NewDocument())
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) write(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}
