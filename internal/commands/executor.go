package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/akarpov/tasktrack/internal/storage"
	"github.com/akarpov/tasktrack/internal/views"
)

// Executor binds validated requests to the storage engine and the
// tabular renderer. It owns no state beyond the store handle; every
// call is a single synchronous storage operation.
type Executor struct {
	store storage.Store
	now   func() time.Time
}

func NewExecutor(store storage.Store) *Executor {
	return &Executor{store: store, now: time.Now}
}

func (e *Executor) Handlers() Handlers {
	return Handlers{
		Add:         e.Add,
		Update:      e.Update,
		View:        e.View,
		Archive:     e.Archive,
		ViewArchive: e.ViewArchive,
		Stats:       e.Stats,
	}
}

func (e *Executor) Add(args AddArgs) (Result, error) {
	task := args.Task(e.now())
	if err := task.Validate(); err != nil {
		return Result{}, &CommandError{Code: ErrCodeInvalidArgument, Message: err.Error()}
	}
	if err := e.store.InsertTask(context.Background(), task); err != nil {
		return Result{}, err
	}
	return Result{Message: fmt.Sprintf("Added task to project %q (due %s)", task.Project, task.DueDate)}, nil
}

func (e *Executor) Update(args UpdateArgs) (Result, error) {
	if err := e.store.ApplyUpdate(context.Background(), args.ID, args.Complete, args.Delete); err != nil {
		return Result{}, err
	}
	switch {
	case args.Delete:
		return Result{Message: fmt.Sprintf("Deleted task %d", args.ID)}, nil
	case args.Complete:
		return Result{Message: fmt.Sprintf("Marked task %d complete", args.ID)}, nil
	default:
		return Result{Message: "Nothing to update"}, nil
	}
}

func (e *Executor) View(args ViewArgs) (Result, error) {
	tasks, err := e.store.ListActive(context.Background(), args.Project)
	if err != nil {
		return Result{}, err
	}
	table, warnings := views.RenderTasks(tasks, e.now())
	return Result{Message: table, Warnings: warnings}, nil
}

func (e *Executor) Archive(args ArchiveArgs) (Result, error) {
	if err := e.store.Archive(context.Background(), args.ID); err != nil {
		return Result{}, err
	}
	return Result{Message: fmt.Sprintf("Archived task %d", args.ID)}, nil
}

func (e *Executor) ViewArchive(args ViewArgs) (Result, error) {
	items, err := e.store.ListArchived(context.Background(), args.Project)
	if err != nil {
		return Result{}, err
	}
	return Result{Message: views.RenderArchivedTasks(items)}, nil
}

func (e *Executor) Stats(args StatsArgs) (Result, error) {
	mode, err := args.Mode()
	if err != nil {
		return Result{}, err
	}
	ctx := context.Background()
	switch mode {
	case StatsOverdue:
		count, err := e.store.CountOverdue(ctx, e.now())
		if err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf("Overdue tasks: %d", count)}, nil
	default:
		count, err := e.store.CountPending(ctx)
		if err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf("Pending tasks: %d", count)}, nil
	}
}
