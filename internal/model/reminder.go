package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPeriod = errors.New("model: reminder period must be positive")

// Reminder is a recurrence rule that generates tasks. Occurrence k
// (k = 0, 1, 2, ...) is due at FirstDue + k*Period and starts one period
// earlier, exactly when the previous occurrence was due. FirstDue, Period
// and Title are immutable after creation; stopping a reminder only sets
// Until.
type Reminder struct {
	ID          int64
	Title       string
	Description string
	Created     time.Time
	FirstDue    time.Time
	Period      time.Duration
	Until       *time.Time
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("model: reminder title is required")
	}
	if r.Created.IsZero() {
		return errors.New("model: reminder created is required")
	}
	if r.FirstDue.IsZero() {
		return errors.New("model: reminder first_due is required")
	}
	if r.Period <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidPeriod, r.Period)
	}
	return nil
}

// IsActive reports whether the reminder has not yet passed its Until bound.
func (r Reminder) IsActive(now time.Time) bool {
	return r.Until == nil || now.Before(*r.Until)
}

// OccurrenceDue returns the due time of occurrence k.
func (r Reminder) OccurrenceDue(k int) time.Time {
	return r.FirstDue.Add(time.Duration(k) * r.Period)
}

// OccurrenceStart returns the start time of occurrence k, which is the due
// time of occurrence k-1. Occurrence 0 starts at FirstDue - Period.
func (r Reminder) OccurrenceStart(k int) time.Time {
	return r.OccurrenceDue(k - 1)
}

// DueBefore returns the due times of all occurrences strictly before limit,
// in ascending order starting at FirstDue. The result is fully determined by
// FirstDue and Period; no generation cursor is involved.
func (r Reminder) DueBefore(limit time.Time) []time.Time {
	if r.Period <= 0 {
		return nil
	}
	var out []time.Time
	for due := r.FirstDue; due.Before(limit); due = due.Add(r.Period) {
		out = append(out, due)
	}
	return out
}

// NextDue returns the first occurrence due time at or after now.
func (r Reminder) NextDue(now time.Time) time.Time {
	next := r.FirstDue
	if r.Period <= 0 {
		return next
	}
	for next.Before(now) {
		next = next.Add(r.Period)
	}
	return next
}
