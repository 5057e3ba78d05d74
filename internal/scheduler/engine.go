// Package scheduler reconciles reminders into tasks. There is no persisted
// generation cursor: the full occurrence sequence is recomputed from the
// reminder's immutable first_due and period on every run and diffed against
// the tasks that already exist, so repeated runs with the same clock are
// idempotent.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sandeepkv93/rem/internal/model"
	"github.com/sandeepkv93/rem/internal/storage"
)

var (
	// ErrMissingDue means a task claiming to be generated by a reminder has
	// no due date. Occurrence identity is the due timestamp, so this is data
	// corruption, not something to skip over.
	ErrMissingDue = errors.New("scheduler: generated task has no due date")

	ErrBadPeriod = errors.New("scheduler: reminder period is not positive")
)

type Engine struct {
	repo storage.Repository
	log  zerolog.Logger
}

func NewEngine(repo storage.Repository, log zerolog.Logger) *Engine {
	return &Engine{repo: repo, log: log}
}

// CatchUp inserts tasks for every occurrence of every active reminder whose
// due time falls before now + period. The window deliberately reaches one
// period past now, pre-creating the next upcoming occurrence.
//
// Generation is not transactional across reminders: a failure aborts the run
// with whatever was already inserted, and the next run recovers by re-scanning.
func (e *Engine) CatchUp(ctx context.Context, now time.Time) error {
	reminders, err := e.repo.ActiveReminders(ctx, now)
	if err != nil {
		return fmt.Errorf("load active reminders: %w", err)
	}

	for _, rem := range reminders {
		if err := e.catchUpReminder(ctx, rem, now); err != nil {
			return fmt.Errorf("reminder %d (%s): %w", rem.ID, rem.Title, err)
		}
	}
	return nil
}

func (e *Engine) catchUpReminder(ctx context.Context, rem model.Reminder, now time.Time) error {
	if rem.Period <= 0 {
		return fmt.Errorf("%w: %s", ErrBadPeriod, rem.Period)
	}

	existing, err := e.repo.TasksGeneratedBy(ctx, rem.ID)
	if err != nil {
		return fmt.Errorf("load generated tasks: %w", err)
	}

	// Occurrences are keyed by their exact due timestamp, compared at the
	// storage resolution of whole seconds.
	seen := make(map[int64]struct{}, len(existing))
	for _, t := range existing {
		if t.Due == nil {
			return fmt.Errorf("%w: task %d", ErrMissingDue, t.ID)
		}
		seen[t.Due.Unix()] = struct{}{}
	}

	inserted := 0
	for _, due := range rem.DueBefore(now.Add(rem.Period)) {
		if _, ok := seen[due.Unix()]; ok {
			continue
		}
		start := due.Add(-rem.Period)
		task := model.Task{
			Title:       rem.Title,
			Description: rem.Description,
			Created:     now,
			Start:       &start,
			Due:         &due,
			GeneratedBy: &rem.ID,
		}
		if _, err := e.repo.CreateTask(ctx, task); err != nil {
			return fmt.Errorf("insert occurrence due %s: %w", model.FormatDateTime(due), err)
		}
		inserted++
	}

	if inserted > 0 {
		e.log.Debug().
			Int64("reminder", rem.ID).
			Int("tasks", inserted).
			Msg("generated tasks for missed occurrences")
	}
	return nil
}
