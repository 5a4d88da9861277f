package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/habitflow/habitflow-cli/internal/constants"
	"github.com/habitflow/habitflow-cli/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS documents (
	name TEXT PRIMARY KEY,
	body TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);`

// PostgresStore keeps the document as a JSON blob in a single-row Postgres
// table. Selected when the config value is a postgres:// connection string.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline. Passwords belong in the OS keyring, the environment, or
// .pgpass, never on the command line.
func HasEmbeddedCredentials(connStr string) bool {
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, set := u.User.Password(); set {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	var count int
	row := s.db.QueryRow(`SELECT count(*) FROM documents WHERE name = $1`, constants.AppName)
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing document: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("storage already initialized at %s", s.Path())
	}

	return s.upsert(models.NewDocument())
}

func (s *PostgresStore) Load() (*models.Document, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	var body string
	row := s.db.QueryRow(`SELECT body FROM documents WHERE name = $1`, constants.AppName)
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

func (s *PostgresStore) Save(doc *models.Document) error {
	if doc == nil {
		return fmt.Errorf("cannot save a nil document")
	}
	if err := s.open(); err != nil {
		return err
	}
	return s.upsert(doc)
}

func (s *PostgresStore) Clear() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM documents WHERE name = $1`, constants.AppName); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return s.upsert(models.NewDocument())
}

func (s *PostgresStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the connection target with any userinfo stripped.
func (s *PostgresStore) Path() string {
	if u, err := url.Parse(s.connStr); err == nil && u.Host != "" {
		u.User = nil
		return u.String()
	}
	return s.connStr
}

func (s *PostgresStore) open() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *PostgresStore) upsert(doc *models.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO documents (name, body, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`,
		constants.AppName, string(body), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}
