package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/habitflow/habitflow-cli/internal/constants"
	"github.com/habitflow/habitflow-cli/internal/models"
)

// documentSchema holds the single-row blob slot shared by the SQLite and
// Postgres backends. The document is opaque to the database.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS documents (
	name TEXT PRIMARY KEY,
	body TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteStore keeps the document as a JSON blob in a single-row SQLite
// table.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	var count int
	row := s.db.QueryRow(`SELECT count(*) FROM documents WHERE name = ?`, constants.AppName)
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing document: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.upsert(models.NewDocument())
}

func (s *SQLiteStore) Load() (*models.Document, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	var body string
	row := s.db.QueryRow(`SELECT body FROM documents WHERE name = ?`, constants.AppName)
	if err := row.Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("storage not initialized, run 'habitflow init' first")
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc := &models.Document{}
	if err := json.Unmarshal([]byte(body), doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc.Normalize()
	return doc, nil
}

func (s *SQLiteStore) Save(doc *models.Document) error {
	if doc == nil {
		return fmt.Errorf("cannot save a nil document")
	}
	if err := s.open(); err != nil {
		return err
	}
	return s.upsert(doc)
}

func (s *SQLiteStore) Clear() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM documents WHERE name = ?`, constants.AppName); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return s.upsert(models.NewDocument())
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) upsert(doc *models.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`
		INSERT INTO documents (name, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		constants.AppName, string(body), now)
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
