package commands

import (
	"errors"
	"testing"
	"time"
)

func TestAddArgsTaskDefaults(t *testing.T) {
	now := time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC)

	task := AddArgs{Description: "just a description"}.Task(now)
	if task.Project != DefaultProject {
		t.Fatalf("expected default project, got %q", task.Project)
	}
	if task.DueDate != "2023-06-22" {
		t.Fatalf("expected due date seven days out, got %q", task.DueDate)
	}

	task = AddArgs{Project: "Work", Description: "explicit", DueDate: "2023-08-01", Complete: true}.Task(now)
	if task.Project != "Work" || task.DueDate != "2023-08-01" || !task.Complete {
		t.Fatalf("explicit args must pass through: %#v", task)
	}
}

func TestDefaultDueDateCrossesMonthBoundary(t *testing.T) {
	now := time.Date(2023, 1, 28, 0, 0, 0, 0, time.UTC)
	if got := DefaultDueDate(now); got != "2023-02-04" {
		t.Fatalf("unexpected default due date: %q", got)
	}
}

func TestStatsArgsMode(t *testing.T) {
	mode, err := StatsArgs{}.Mode()
	if err != nil || mode != StatsPending {
		t.Fatalf("expected pending default, got %q %v", mode, err)
	}

	mode, err = StatsArgs{Overdue: true}.Mode()
	if err != nil || mode != StatsOverdue {
		t.Fatalf("expected overdue, got %q %v", mode, err)
	}

	_, err = StatsArgs{Pending: true, Overdue: true}.Mode()
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got: %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	called := ""
	handlers := Handlers{
		Add:   func(AddArgs) (Result, error) { called = "add"; return Result{}, nil },
		Stats: func(StatsArgs) (Result, error) { called = "stats"; return Result{}, nil },
	}

	if _, err := Execute(Command{Type: TypeAdd, Add: &AddArgs{}}, handlers); err != nil {
		t.Fatalf("execute add: %v", err)
	}
	if called != "add" {
		t.Fatalf("expected add handler, got %q", called)
	}

	if _, err := Execute(Command{Type: TypeStats, Stats: &StatsArgs{}}, handlers); err != nil {
		t.Fatalf("execute stats: %v", err)
	}
	if called != "stats" {
		t.Fatalf("expected stats handler, got %q", called)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	_, err := Execute(Command{Type: TypeArchive, Archive: &ArchiveArgs{ID: 1}}, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got: %v", err)
	}
}
