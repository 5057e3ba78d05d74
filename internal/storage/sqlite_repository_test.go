package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/rem/internal/model"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "rem-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func localTime(t *testing.T, value string) time.Time {
	t.Helper()
	out, err := time.ParseInLocation("02.01.2006 15:04", value, time.Local)
	if err != nil {
		t.Fatalf("parse time: %v", err)
	}
	return out
}

func TestTaskRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := localTime(t, "02.01.2024 10:00")
	start := localTime(t, "03.01.2024 08:00")
	due := localTime(t, "05.01.2024 08:00")

	id, err := repo.CreateTask(ctx, model.Task{
		Title:       "Write schema",
		Description: "storage layout",
		Created:     created,
		Start:       &start,
		Due:         &due,
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	got, err := repo.GetTask(ctx, id)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Title != "Write schema" || got.Description != "storage layout" {
		t.Fatalf("unexpected task: %#v", got)
	}
	if !got.Created.Equal(created) || got.Start == nil || !got.Start.Equal(start) || got.Due == nil || !got.Due.Equal(due) {
		t.Fatalf("timestamps did not round-trip: %#v", got)
	}
	if got.Completed != nil || got.GeneratedBy != nil {
		t.Fatalf("unexpected optional fields: %#v", got)
	}
}

func TestTaskCompleteAndDelete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := localTime(t, "02.01.2024 10:00")
	completed := localTime(t, "04.01.2024 16:30")

	id, err := repo.CreateTask(ctx, model.Task{Title: "t", Created: created})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := repo.CompleteTask(ctx, id, completed); err != nil {
		t.Fatalf("complete task: %v", err)
	}
	got, err := repo.GetTask(ctx, id)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if got.Completed == nil || !got.Completed.Equal(completed) {
		t.Fatalf("completed not persisted: %#v", got)
	}

	if err := repo.DeleteTask(ctx, id); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	if _, err := repo.GetTask(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if err := repo.DeleteTask(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got: %v", err)
	}
	if err := repo.CompleteTask(ctx, id, completed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound completing missing task, got: %v", err)
	}
}

func TestTasksGeneratedByOrdersByDue(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := localTime(t, "02.01.2024 10:00")

	remID, err := repo.CreateReminder(ctx, model.Reminder{
		Title:    "weekly",
		Created:  created,
		FirstDue: localTime(t, "01.01.2024 08:00"),
		Period:   7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("create reminder: %v", err)
	}

	// Insert out of due order.
	for _, due := range []string{"15.01.2024 08:00", "01.01.2024 08:00", "08.01.2024 08:00"} {
		d := localTime(t, due)
		if _, err := repo.CreateTask(ctx, model.Task{
			Title: "weekly", Created: created, Due: &d, GeneratedBy: &remID,
		}); err != nil {
			t.Fatalf("create generated task: %v", err)
		}
	}
	// An unrelated task must not show up.
	if _, err := repo.CreateTask(ctx, model.Task{Title: "other", Created: created}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	got, err := repo.TasksGeneratedBy(ctx, remID)
	if err != nil {
		t.Fatalf("tasks generated by: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 generated tasks, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Due.Before(*got[i-1].Due) {
			t.Fatalf("generated tasks not ordered by due: %#v", got)
		}
	}
}

func TestActiveRemindersBoundary(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := localTime(t, "02.01.2024 10:00")
	now := localTime(t, "10.01.2024 12:00")

	mk := func(title string, until *time.Time) {
		t.Helper()
		if _, err := repo.CreateReminder(ctx, model.Reminder{
			Title:    title,
			Created:  created,
			FirstDue: localTime(t, "01.01.2024 08:00"),
			Period:   24 * time.Hour,
			Until:    until,
		}); err != nil {
			t.Fatalf("create reminder: %v", err)
		}
	}

	later := now.Add(time.Second)
	mk("open", nil)
	mk("running", &later)
	mk("boundary", &now) // until == now is no longer active
	past := now.Add(-time.Hour)
	mk("stopped", &past)

	active, err := repo.ActiveReminders(ctx, now)
	if err != nil {
		t.Fatalf("active reminders: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active reminders, got %d: %#v", len(active), active)
	}
	if active[0].Title != "open" || active[1].Title != "running" {
		t.Fatalf("unexpected active set: %#v", active)
	}

	all, err := repo.ListReminders(ctx)
	if err != nil {
		t.Fatalf("list reminders: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 reminders, got %d", len(all))
	}
}

func TestStopReminder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := localTime(t, "02.01.2024 10:00")
	now := localTime(t, "10.01.2024 12:00")

	id, err := repo.CreateReminder(ctx, model.Reminder{
		Title:    "weekly",
		Created:  created,
		FirstDue: localTime(t, "01.01.2024 08:00"),
		Period:   7 * 24 * time.Hour,
	})
	if err != nil {
		t.Fatalf("create reminder: %v", err)
	}

	if err := repo.StopReminder(ctx, id, now); err != nil {
		t.Fatalf("stop reminder: %v", err)
	}
	got, err := repo.GetReminder(ctx, id)
	if err != nil {
		t.Fatalf("get reminder: %v", err)
	}
	if got.Until == nil || !got.Until.Equal(now) {
		t.Fatalf("until not persisted: %#v", got)
	}

	if err := repo.StopReminder(ctx, 999, now); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestWorkBitsKeepInsertionOrder(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := localTime(t, "02.01.2024 10:00")

	taskID, err := repo.CreateTask(ctx, model.Task{Title: "t", Created: created})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	// Same timestamp on purpose: order must come from insertion, not time.
	at := localTime(t, "03.01.2024 09:00")
	for _, desc := range []string{"first", "", "third"} {
		if _, err := repo.CreateWorkBit(ctx, model.WorkBit{TaskID: taskID, At: at, Description: desc}); err != nil {
			t.Fatalf("create work bit: %v", err)
		}
	}

	bits, err := repo.ListWorkBits(ctx, taskID)
	if err != nil {
		t.Fatalf("list work bits: %v", err)
	}
	if len(bits) != 3 {
		t.Fatalf("expected 3 work bits, got %d", len(bits))
	}
	if bits[0].Description != "first" || bits[1].Description != "" || bits[2].Description != "third" {
		t.Fatalf("unexpected work bit order: %#v", bits)
	}

	// Hard-deleting the task orphans the bits; the store does not cascade.
	if err := repo.DeleteTask(ctx, taskID); err != nil {
		t.Fatalf("delete task: %v", err)
	}
	orphaned, err := repo.ListWorkBits(ctx, taskID)
	if err != nil {
		t.Fatalf("list work bits after delete: %v", err)
	}
	if len(orphaned) != 3 {
		t.Fatalf("expected orphaned work bits to remain, got %d", len(orphaned))
	}
}

func TestReminderPeriodRoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	created := localTime(t, "02.01.2024 10:00")
	period := 9 * 24 * time.Hour // "1w 2d"

	id, err := repo.CreateReminder(ctx, model.Reminder{
		Title:       "review",
		Description: "rotate logs",
		Created:     created,
		FirstDue:    localTime(t, "05.01.2024 08:00"),
		Period:      period,
	})
	if err != nil {
		t.Fatalf("create reminder: %v", err)
	}

	got, err := repo.GetReminder(ctx, id)
	if err != nil {
		t.Fatalf("get reminder: %v", err)
	}
	if got.Period != period {
		t.Fatalf("period round-trip got %s, want %s", got.Period, period)
	}
	if got.Description != "rotate logs" {
		t.Fatalf("unexpected description: %q", got.Description)
	}
}
