// Package storage persists wardrobe items and saved outfits in a local
// SQLite database.
package storage

import (
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// schemaVersion is the latest schema version. Bump when adding
// migrations.
const schemaVersion = 1

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store wraps the SQLite database holding wardrobe state. All methods
// are safe for use from multiple goroutines; the connection pool is
// capped at one connection so writes serialise.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens the database at path, creating the file and its parent
// directory if necessary, and applies pending migrations. A nil logger
// disables store logging.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	// Pragmas ride on the connection string so every pooled connection
	// picks them up.
	dsn := path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := verifyWALMode(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug("database ready", zap.String("path", path))
	return &Store{db: db, log: log}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate applies schema migrations based on user_version.
func migrate(db *sql.DB) error {
	version, err := userVersion(db)
	if err != nil {
		return err
	}
	if version >= schemaVersion {
		return nil
	}

	if version < 1 {
		schema := `
		CREATE TABLE IF NOT EXISTS items (
		  id         TEXT PRIMARY KEY,
		  category   TEXT NOT NULL,
		  hue        INTEGER NOT NULL,
		  saturation INTEGER NOT NULL,
		  lightness  INTEGER NOT NULL,
		  hex        TEXT NOT NULL,
		  label      TEXT,
		  created_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_items_category
		ON items(category, created_at);

		CREATE TABLE IF NOT EXISTS outfits (
		  id           TEXT PRIMARY KEY,
		  style        TEXT NOT NULL,
		  score        REAL NOT NULL,
		  explanation  TEXT NOT NULL,
		  items_json   TEXT NOT NULL,
		  details_json TEXT NOT NULL,
		  created_at   INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_outfits_created
		ON outfits(created_at DESC);
		`
		if _, err := db.Exec(schema); err != nil {
			return fmt.Errorf("migration 1 failed: %w", err)
		}
		if err := setUserVersion(db, 1); err != nil {
			return err
		}
	}

	// Future migrations go here:
	// if version < 2 { ... }

	return nil
}

// verifyWALMode checks that WAL mode is active (set via the connection
// string).
func verifyWALMode(db *sql.DB) error {
	var journalMode string
	if err := db.QueryRow("PRAGMA journal_mode;").Scan(&journalMode); err != nil {
		return fmt.Errorf("verifying journal mode: %w", err)
	}
	if journalMode != "wal" {
		return fmt.Errorf("expected WAL mode, got %s", journalMode)
	}
	return nil
}

func userVersion(db *sql.DB) (int, error) {
	var version int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&version); err != nil {
		return 0, fmt.Errorf("reading user_version: %w", err)
	}
	return version, nil
}

func setUserVersion(db *sql.DB, version int) error {
	if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version=%d", version)); err != nil {
		return fmt.Errorf("setting user_version: %w", err)
	}
	return nil
}

// NewID returns a fresh ULID for a stored record.
func NewID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", fmt.Errorf("generating id: %w", err)
	}
	return id.String(), nil
}
