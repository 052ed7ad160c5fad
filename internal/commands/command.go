package commands

import (
	"fmt"
	"time"

	"github.com/akarpov/tasktrack/internal/model"
)

type Type string

const (
	TypeAdd         Type = "add"
	TypeUpdate      Type = "update"
	TypeView        Type = "view"
	TypeArchive     Type = "archive"
	TypeViewArchive Type = "view-archive"
	TypeStats       Type = "stats"
)

type ErrorCode string

const (
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// DefaultProject is assigned when a task is added without one.
const DefaultProject = "General"

// DefaultDueDays is how far ahead an unspecified due date lands.
const DefaultDueDays = 7

func DefaultDueDate(now time.Time) string {
	return now.AddDate(0, 0, DefaultDueDays).Format(model.DueDateLayout)
}

type AddArgs struct {
	Project     string
	Description string
	DueDate     string
	Complete    bool
}

// Task materializes the request as a model task, filling defaults for
// the project and due date the same way the CLI flag defaults do.
func (a AddArgs) Task(now time.Time) model.Task {
	project := a.Project
	if project == "" {
		project = DefaultProject
	}
	due := a.DueDate
	if due == "" {
		due = DefaultDueDate(now)
	}
	return model.Task{
		Project:     project,
		Description: a.Description,
		DueDate:     due,
		Complete:    a.Complete,
	}
}

type UpdateArgs struct {
	ID       uint64
	Complete bool
	Delete   bool
}

type ViewArgs struct {
	Project string
}

type ArchiveArgs struct {
	ID uint64
}

type StatsArgs struct {
	Pending bool
	Overdue bool
}

type StatsMode string

const (
	StatsPending StatsMode = "pending"
	StatsOverdue StatsMode = "overdue"
)

// Mode picks the aggregate the caller asked for. Pending is the default
// when neither flag is set; asking for both is an argument error.
func (a StatsArgs) Mode() (StatsMode, error) {
	if a.Pending && a.Overdue {
		return "", &CommandError{Code: ErrCodeInvalidArgument, Message: "stats accepts --pending or --overdue, not both"}
	}
	if a.Overdue {
		return StatsOverdue, nil
	}
	return StatsPending, nil
}

type Command struct {
	Type        Type
	Add         *AddArgs
	Update      *UpdateArgs
	View        *ViewArgs
	Archive     *ArchiveArgs
	ViewArchive *ViewArgs
	Stats       *StatsArgs
}
