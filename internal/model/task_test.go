package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidate(t *testing.T) {
	created := time.Date(2024, 1, 2, 10, 0, 0, 0, time.Local)

	task := Task{Title: "write report", Created: created}
	if err := task.Validate(); err != nil {
		t.Fatalf("valid task rejected: %v", err)
	}

	task = Task{Title: " ", Created: created}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error for empty title")
	}

	reminderID := int64(3)
	task = Task{Title: "watering", Created: created, GeneratedBy: &reminderID}
	if err := task.Validate(); !errors.Is(err, ErrGeneratedWithoutDue) {
		t.Fatalf("expected ErrGeneratedWithoutDue, got %v", err)
	}

	due := created.Add(24 * time.Hour)
	task.Due = &due
	if err := task.Validate(); err != nil {
		t.Fatalf("generated task with due rejected: %v", err)
	}
}

func TestTaskOverdue(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	due := now.Add(-time.Hour)
	completed := now.Add(-30 * time.Minute)

	task := Task{Title: "t", Created: now, Due: &due}
	if !task.Overdue(now) {
		t.Fatal("task past due should be overdue")
	}

	task.Completed = &completed
	if task.Overdue(now) {
		t.Fatal("completed task should not be overdue")
	}

	future := now.Add(time.Hour)
	task = Task{Title: "t", Created: now, Due: &future}
	if task.Overdue(now) {
		t.Fatal("task due in the future should not be overdue")
	}

	// Exactly at due is not yet overdue.
	task = Task{Title: "t", Created: now, Due: &now}
	if task.Overdue(now) {
		t.Fatal("task due right now should not be overdue")
	}
}

func TestTaskStarted(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	start := now.Add(-time.Hour)
	due := now.Add(time.Hour)

	task := Task{Title: "t", Created: now, Start: &start}
	if !task.Started(now) {
		t.Fatal("task past start without due should count as started")
	}

	task.Due = &due
	if task.Started(now) {
		t.Fatal("task with a due date is tracked by due, not start")
	}

	future := now.Add(time.Hour)
	task = Task{Title: "t", Created: now, Start: &future}
	if task.Started(now) {
		t.Fatal("task starting in the future should not count as started")
	}
}
