package model

import (
	"errors"
	"strings"
	"time"
)

var ErrGeneratedWithoutDue = errors.New("model: generated task requires a due date")

// Task is a unit of work. Tasks created by the reminder engine carry a
// back-reference to their reminder in GeneratedBy and always have a due date.
type Task struct {
	ID          int64
	Title       string
	Description string
	Created     time.Time
	Start       *time.Time
	Due         *time.Time
	Completed   *time.Time
	GeneratedBy *int64
	WorkBits    []WorkBit
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if t.Created.IsZero() {
		return errors.New("model: task created is required")
	}
	if t.GeneratedBy != nil && t.Due == nil {
		return ErrGeneratedWithoutDue
	}
	return nil
}

// Overdue reports whether the task is past its due date and not completed.
func (t Task) Overdue(now time.Time) bool {
	return t.Completed == nil && t.Due != nil && now.After(*t.Due)
}

// Started reports whether the task has begun but has no due date to measure
// against. Completed tasks are never "started".
func (t Task) Started(now time.Time) bool {
	return t.Completed == nil && t.Due == nil && t.Start != nil && !now.Before(*t.Start)
}
