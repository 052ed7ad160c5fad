package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const (
	activeTable  = "tasks"
	archiveTable = "tasks_archive"
)

// SQLite does not enforce VARCHAR widths, so the length bounds are
// spelled out as CHECK constraints. The complete flag is declared
// INTEGER, not BOOLEAN; the driver converts declared-BOOLEAN columns
// to bool on read, and the scanners expect the stored 0/1.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY NOT NULL,
		project VARCHAR(50) NOT NULL CHECK (length(project) <= 50),
		task VARCHAR(100) NOT NULL CHECK (length(task) <= 100),
		due_date TEXT,
		complete INTEGER NOT NULL CHECK (complete IN (0, 1))
	)`,
	`CREATE TABLE IF NOT EXISTS tasks_archive (
		id INTEGER PRIMARY KEY NOT NULL,
		project VARCHAR(50) NOT NULL CHECK (length(project) <= 50),
		task VARCHAR(100) NOT NULL CHECK (length(task) <= 100),
		due_date TEXT,
		complete INTEGER NOT NULL CHECK (complete IN (0, 1)),
		archived_date DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// ensureSchema creates both tables if absent. It is idempotent and is
// invoked before every mutation; existing data is never touched.
func ensureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// requireTable distinguishes a store that was never created from one
// that is merely empty. Queries call it instead of ensureSchema so a
// read never conjures tables into an uninitialized database.
func requireTable(ctx context.Context, db *sql.DB, table string) error {
	var name string
	err := db.QueryRowContext(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotInitialized
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
