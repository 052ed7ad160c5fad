package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DueDateLayout is the only date format stored in the database.
const DueDateLayout = "2006-01-02"

const (
	MaxProjectLen     = 50
	MaxDescriptionLen = 100
)

var (
	ErrEmptyProject       = errors.New("model: project is required")
	ErrProjectTooLong     = errors.New("model: project exceeds 50 characters")
	ErrEmptyDescription   = errors.New("model: task description is required")
	ErrDescriptionTooLong = errors.New("model: task description exceeds 100 characters")
	ErrBadDueDate         = errors.New("model: due date is not in YYYY-MM-DD form")
)

// Task is a row in the active table. ID is assigned by the store on
// insert and stays stable until the task is deleted or archived.
type Task struct {
	ID          uint64
	Project     string
	Description string
	DueDate     string
	Complete    bool
}

// ArchivedTask is an immutable copy of a task moved out of active
// tracking. The numeric id is not meaningful across the transfer.
type ArchivedTask struct {
	Task
	ArchivedAt time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Project) == "" {
		return ErrEmptyProject
	}
	if len(t.Project) > MaxProjectLen {
		return fmt.Errorf("%w: %q", ErrProjectTooLong, t.Project)
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrEmptyDescription
	}
	if len(t.Description) > MaxDescriptionLen {
		return fmt.Errorf("%w: %q", ErrDescriptionTooLong, t.Description)
	}
	if t.DueDate != "" {
		if _, err := ParseDueDate(t.DueDate); err != nil {
			return err
		}
	}
	return nil
}

func ParseDueDate(value string) (time.Time, error) {
	due, err := time.Parse(DueDateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDueDate, value)
	}
	return due, nil
}

// IsOverdue reports whether a task due on dueDate is overdue as of
// today. The comparison is date-only: a task becomes overdue strictly
// after its due date, never on the due date itself. A malformed
// dueDate is reported as ErrBadDueDate with a false result so callers
// can warn and keep going.
func IsOverdue(dueDate string, today time.Time) (bool, error) {
	due, err := ParseDueDate(dueDate)
	if err != nil {
		return false, err
	}
	year, month, day := today.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).After(due), nil
}
