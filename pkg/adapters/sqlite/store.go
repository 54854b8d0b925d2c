// Package sqlite is a ports.ReadingStore backed by a single SQLite file,
// using the pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/najia/pkg/domain"
	_ "modernc.org/sqlite"
)

// Store implements ports.ReadingStore on SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (and migrates) the database at path, creating parent
// directories as needed. ":memory:" opens a private in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("sqlite: create data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// One connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite: pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS readings (
			id       TEXT PRIMARY KEY,
			method   TEXT    NOT NULL,
			hexagram INTEGER NOT NULL,
			verdict  TEXT    NOT NULL,
			cast_at  INTEGER NOT NULL, -- unix nanoseconds, UTC
			body     TEXT    NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_readings_cast_at ON readings(cast_at);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("sqlite: migrate: %w", err)
	}
	return nil
}

// Save inserts or replaces a reading.
func (s *Store) Save(ctx context.Context, reading *domain.Reading) error {
	body, err := json.Marshal(reading)
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO readings (id, method, hexagram, verdict, cast_at, body)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			method = excluded.method,
			hexagram = excluded.hexagram,
			verdict = excluded.verdict,
			cast_at = excluded.cast_at,
			body = excluded.body`,
		reading.Case.ID,
		string(reading.Case.Method),
		reading.Case.Original.Number,
		string(reading.Analysis.Evaluation.Verdict),
		reading.Case.CastAt.UnixNano(),
		string(body),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save reading %s: %w", reading.Case.ID, err)
	}
	return nil
}

// Load retrieves a reading by ID.
func (s *Store) Load(ctx context.Context, id string) (*domain.Reading, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM readings WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReadingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("sqlite: load reading %s: %w", id, err)
	}

	var reading domain.Reading
	if err := json.Unmarshal([]byte(body), &reading); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reading: %w", err)
	}
	return &reading, nil
}

// Delete removes a reading. Deleting a missing ID is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM readings WHERE id = ?`, id); err != nil {
		return fmt.Errorf("sqlite: delete reading %s: %w", id, err)
	}
	return nil
}

// List returns reading IDs, most recent cast first; ties keep ID order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM readings ORDER BY cast_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list readings: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("sqlite: scan reading id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Ping checks the database handle, for health endpoints.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}
