package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/akarpov/tasktrack/internal/model"
)

// SQLiteStore implements Store on a single local SQLite file. It is
// single-process and synchronous; concurrent writers from other
// processes get only whatever protection SQLite itself provides.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteStore{db: db}, nil
}

// Open opens (creating if needed) the SQLite file at path. The path is
// supplied by the caller; the store never resolves locations itself.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// InsertTask writes a task in a single transaction. An id of zero lets
// SQLite assign the next rowid; a non-zero id replaces any prior row
// with that key (INSERT OR REPLACE semantics).
func (s *SQLiteStore) InsertTask(ctx context.Context, in model.Task) error {
	if err := ensureSchema(ctx, s.db); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO tasks (id, project, task, due_date, complete)
		VALUES (?, ?, ?, ?, ?)`,
		nullID(in.ID), in.Project, in.Description, in.DueDate, boolInt(in.Complete),
	)
	if err != nil {
		return wrapWriteError("insert task", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert: %w", err)
	}
	return nil
}

// ApplyUpdate mutates one task. Exactly one of markComplete and del may
// be set; both is ErrConflictingUpdate and mutates nothing, neither is
// a no-op. An id matching no row is also a no-op: zero rows affected is
// success, which keeps completing a task idempotent.
func (s *SQLiteStore) ApplyUpdate(ctx context.Context, id uint64, markComplete, del bool) error {
	if markComplete && del {
		return ErrConflictingUpdate
	}
	if !markComplete && !del {
		return nil
	}
	if err := ensureSchema(ctx, s.db); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if markComplete {
		_, err = tx.ExecContext(ctx, `UPDATE tasks SET complete = 1 WHERE id = ?`, id)
	} else {
		_, err = tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	}
	if err != nil {
		return wrapWriteError("update task", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update: %w", err)
	}
	return nil
}

// Archive moves one task from the active table to the archive table.
// Copy and delete commit together; on any failure, including an absent
// id, neither table changes. The archive timestamp is assigned by the
// database at insert.
func (s *SQLiteStore) Archive(ctx context.Context, id uint64) error {
	if err := ensureSchema(ctx, s.db); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin archive: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var (
		project  string
		task     string
		dueDate  sql.NullString
		complete int
	)
	row := tx.QueryRowContext(ctx,
		`SELECT project, task, due_date, complete FROM tasks WHERE id = ?`, id)
	if err := row.Scan(&project, &task, &dueDate, &complete); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("select for archive: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO tasks_archive (project, task, due_date, complete)
		VALUES (?, ?, ?, ?)`,
		project, task, dueDate, complete,
	)
	if err != nil {
		return wrapWriteError("archive insert", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return wrapWriteError("archive delete", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit archive: %w", err)
	}
	return nil
}

func (s *SQLiteStore) ListActive(ctx context.Context, project string) ([]model.Task, error) {
	if err := requireTable(ctx, s.db, activeTable); err != nil {
		return nil, err
	}
	query := `SELECT id, project, task, due_date, complete FROM tasks`
	args := make([]any, 0, 1)
	if !allProjects(project) {
		query += ` WHERE project = ?`
		args = append(args, project)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list active: %w", err)
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) ListArchived(ctx context.Context, project string) ([]model.ArchivedTask, error) {
	if err := requireTable(ctx, s.db, archiveTable); err != nil {
		return nil, err
	}
	query := `SELECT id, project, task, due_date, complete, archived_date FROM tasks_archive`
	args := make([]any, 0, 1)
	if !allProjects(project) {
		query += ` WHERE project = ?`
		args = append(args, project)
	}
	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list archived: %w", err)
	}
	defer rows.Close()

	out := make([]model.ArchivedTask, 0)
	for rows.Next() {
		item, scanErr := scanArchivedTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) CountPending(ctx context.Context) (int, error) {
	if err := requireTable(ctx, s.db, activeTable); err != nil {
		return 0, err
	}
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM tasks WHERE complete = 0`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending: %w", err)
	}
	return count, nil
}

// CountOverdue counts incomplete tasks whose due date is strictly in
// the past. The comparison is model.IsOverdue, the same predicate the
// renderer uses for highlighting, so the two notions cannot drift.
// Rows with no due date or a malformed one count as not overdue.
func (s *SQLiteStore) CountOverdue(ctx context.Context, today time.Time) (int, error) {
	if err := requireTable(ctx, s.db, activeTable); err != nil {
		return 0, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT due_date FROM tasks WHERE complete = 0 AND due_date IS NOT NULL`)
	if err != nil {
		return 0, fmt.Errorf("count overdue: %w", err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var due string
		if err := rows.Scan(&due); err != nil {
			return 0, err
		}
		if overdue, err := model.IsOverdue(due, today); err == nil && overdue {
			count++
		}
	}
	return count, rows.Err()
}

func wrapWriteError(op string, err error) error {
	var sqlErr sqlite3.Error
	if errors.As(err, &sqlErr) && sqlErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// nullID maps the zero id to NULL so SQLite assigns the next rowid.
func nullID(id uint64) any {
	if id == 0 {
		return nil
	}
	return int64(id)
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var due sql.NullString
	var complete int
	if err := s.Scan(&out.ID, &out.Project, &out.Description, &due, &complete); err != nil {
		return model.Task{}, err
	}
	out.DueDate = due.String
	out.Complete = complete == 1
	return out, nil
}

func scanArchivedTask(s scanner) (model.ArchivedTask, error) {
	var out model.ArchivedTask
	var due sql.NullString
	var complete int
	if err := s.Scan(&out.ID, &out.Project, &out.Description, &due, &complete, &out.ArchivedAt); err != nil {
		return model.ArchivedTask{}, err
	}
	out.DueDate = due.String
	out.Complete = complete == 1
	return out, nil
}
