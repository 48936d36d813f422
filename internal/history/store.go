// Package history persists calculation records to a local SQLite
// database. The store is an append-only sink: the engine never reads it
// mid-calculation, and callers record results only after a solve
// completes.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/structcalc/beamcap/internal/beam"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS calculations (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at  TEXT NOT NULL,
	unit_system TEXT NOT NULL,
	inputs      TEXT NOT NULL,
	results     TEXT NOT NULL
);`

// Entry is one recorded calculation. Inputs and Results are the plain
// numeric maps the engine serialized at record time.
type Entry struct {
	ID         int64
	CreatedAt  time.Time
	UnitSystem string
	Inputs     map[string]any
	Results    map[string]any
}

// Store is a SQLite-backed calculation history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("history path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create calculations table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends one calculation. Section inputs and result values are
// stored as JSON documents of plain numbers so history survives schema
// changes in either struct.
func (s *Store) Record(ctx context.Context, section *beam.Rectangular, result *beam.MomentResult) error {
	inputs, err := json.Marshal(section)
	if err != nil {
		return fmt.Errorf("encode inputs: %w", err)
	}
	results, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO calculations (created_at, unit_system, inputs, results) VALUES (?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), section.Units.String(), string(inputs), string(results))
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

// List returns the most recent calculations, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, unit_system, inputs, results FROM calculations ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query calculations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			createdAt string
			inputs    string
			results   string
		)
		if err := rows.Scan(&e.ID, &createdAt, &e.UnitSystem, &inputs, &results); err != nil {
			return nil, fmt.Errorf("scan calculation: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parse timestamp %q: %w", createdAt, err)
		}
		if err := json.Unmarshal([]byte(inputs), &e.Inputs); err != nil {
			return nil, fmt.Errorf("decode inputs: %w", err)
		}
		if err := json.Unmarshal([]byte(results), &e.Results); err != nil {
			return nil, fmt.Errorf("decode results: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
