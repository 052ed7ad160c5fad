package storage

import (
	"context"
	"errors"
	"time"

	"github.com/akarpov/tasktrack/internal/model"
)

var (
	// ErrUnavailable means the database file could not be opened or created.
	ErrUnavailable = errors.New("storage: database unavailable")
	// ErrSchemaViolation means a write failed a schema constraint.
	ErrSchemaViolation = errors.New("storage: schema violation")
	// ErrNotFound means the target id does not exist in the active table.
	ErrNotFound = errors.New("storage: not found")
	// ErrConflictingUpdate means an update asked for complete and delete at once.
	ErrConflictingUpdate = errors.New("storage: cannot complete and delete a task in one update")
	// ErrNotInitialized means a query hit a store that has never been written to.
	// Callers must not present it as an empty result.
	ErrNotInitialized = errors.New("storage: database not initialized")
)

// AllProjects is the filter sentinel meaning "no project filter".
// The empty string is treated the same way.
const AllProjects = "All"

// Store is the task storage and lifecycle engine. Mutations each run in
// their own transaction; no transaction stays open across a call.
type Store interface {
	InsertTask(ctx context.Context, in model.Task) error
	ApplyUpdate(ctx context.Context, id uint64, markComplete, del bool) error
	Archive(ctx context.Context, id uint64) error
	ListActive(ctx context.Context, project string) ([]model.Task, error)
	ListArchived(ctx context.Context, project string) ([]model.ArchivedTask, error)
	CountPending(ctx context.Context) (int, error)
	CountOverdue(ctx context.Context, today time.Time) (int, error)
	Close() error
}

func allProjects(project string) bool {
	return project == "" || project == AllProjects
}
