package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	task := Task{
		Project:     "Work",
		Description: "Ship release",
		DueDate:     "2023-01-01",
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRequiredFields(t *testing.T) {
	err := Task{Description: "No project"}.Validate()
	if !errors.Is(err, ErrEmptyProject) {
		t.Fatalf("expected ErrEmptyProject, got: %v", err)
	}

	err = Task{Project: "Work"}.Validate()
	if !errors.Is(err, ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got: %v", err)
	}
}

func TestTaskValidateLengthBounds(t *testing.T) {
	err := Task{
		Project:     strings.Repeat("p", MaxProjectLen+1),
		Description: "fits",
	}.Validate()
	if !errors.Is(err, ErrProjectTooLong) {
		t.Fatalf("expected ErrProjectTooLong, got: %v", err)
	}

	err = Task{
		Project:     "Work",
		Description: strings.Repeat("d", MaxDescriptionLen+1),
	}.Validate()
	if !errors.Is(err, ErrDescriptionTooLong) {
		t.Fatalf("expected ErrDescriptionTooLong, got: %v", err)
	}

	err = Task{
		Project:     strings.Repeat("p", MaxProjectLen),
		Description: strings.Repeat("d", MaxDescriptionLen),
	}.Validate()
	if err != nil {
		t.Fatalf("bounds are inclusive, got error: %v", err)
	}
}

func TestTaskValidateBadDueDate(t *testing.T) {
	err := Task{Project: "Work", Description: "Bad date", DueDate: "01/02/2023"}.Validate()
	if !errors.Is(err, ErrBadDueDate) {
		t.Fatalf("expected ErrBadDueDate, got: %v", err)
	}
}

func TestIsOverdue(t *testing.T) {
	today := time.Date(2023, 6, 15, 9, 30, 0, 0, time.UTC)

	cases := []struct {
		due  string
		want bool
	}{
		{"2023-06-14", true},
		{"2023-06-15", false},
		{"2023-06-16", false},
		{"2000-01-01", true},
	}
	for _, tc := range cases {
		got, err := IsOverdue(tc.due, today)
		if err != nil {
			t.Fatalf("IsOverdue(%q): %v", tc.due, err)
		}
		if got != tc.want {
			t.Fatalf("IsOverdue(%q) = %v, want %v", tc.due, got, tc.want)
		}
	}
}

func TestIsOverdueIgnoresTimeOfDay(t *testing.T) {
	lateTonight := time.Date(2023, 6, 15, 23, 59, 59, 0, time.UTC)
	got, err := IsOverdue("2023-06-15", lateTonight)
	if err != nil {
		t.Fatalf("IsOverdue: %v", err)
	}
	if got {
		t.Fatal("task due today must not be overdue, regardless of clock time")
	}
}

func TestIsOverdueMalformedDate(t *testing.T) {
	got, err := IsOverdue("not-a-date", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrBadDueDate) {
		t.Fatalf("expected ErrBadDueDate, got: %v", err)
	}
	if got {
		t.Fatal("malformed due date must classify as not overdue")
	}
}
