// Package storage provides SQLite-based persistence for replay run results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry is one recorded replay run: its length, event totals, trace and
// parity hashes, and the final actor state. Hashes are stored as 16-digit
// hex text so two runs compare by eye.
type RunEntry struct {
	ID        int64
	Name      string
	Ticks     int
	Jumped    int
	Landed    int
	Bonked    int
	TraceHex  string
	ParityHex string

	FinalX        float64
	FinalY        float64
	FinalVX       float64
	FinalVY       float64
	FinalGrounded bool

	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			jumped INTEGER NOT NULL DEFAULT 0,
			landed INTEGER NOT NULL DEFAULT 0,
			bonked INTEGER NOT NULL DEFAULT 0,
			trace_hash TEXT NOT NULL,
			parity_hash TEXT NOT NULL,
			final_x REAL NOT NULL,
			final_y REAL NOT NULL,
			final_vx REAL NOT NULL,
			final_vy REAL NOT NULL,
			final_grounded INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_name ON runs(name);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(name, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished replay run under the given name.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(e RunEntry) (int64, error) {
	grounded := 0
	if e.FinalGrounded {
		grounded = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (name, ticks, jumped, landed, bonked, trace_hash, parity_hash,
		  final_x, final_y, final_vx, final_vy, final_grounded)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Name, e.Ticks, e.Jumped, e.Landed, e.Bonked, e.TraceHex, e.ParityHex,
		e.FinalX, e.FinalY, e.FinalVX, e.FinalVY, grounded,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs. If name is non-empty, only runs
// recorded under that name are returned.
func (s *Store) RecentRuns(name string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, name, ticks, jumped, landed, bonked, trace_hash, parity_hash,
	                 final_x, final_y, final_vx, final_vy, final_grounded, created_at
	          FROM runs`
	args := []any{}
	if name != "" {
		query += ` WHERE name = ?`
		args = append(args, name)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var grounded int
		var createdAt any
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Ticks, &e.Jumped, &e.Landed, &e.Bonked,
			&e.TraceHex, &e.ParityHex,
			&e.FinalX, &e.FinalY, &e.FinalVX, &e.FinalVY, &grounded, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.FinalGrounded = grounded != 0
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LastRun returns the most recent run recorded under the given name, or nil
// if the name has no runs.
func (s *Store) LastRun(name string) (*RunEntry, error) {
	entries, err := s.RecentRuns(name, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

// ClearRuns deletes all runs recorded under the given name.
func (s *Store) ClearRuns(name string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseCreatedAt handles both time.Time and string datetime columns; the
// driver may return either depending on how the value was written.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
