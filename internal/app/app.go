// Package app is the entry point for all operations. Commands consume App
// instead of cherry-picking raw dependencies, and every timestamp comparison
// in one invocation uses the single Now snapshot taken at startup.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sandeepkv93/rem/internal/model"
	"github.com/sandeepkv93/rem/internal/scheduler"
	"github.com/sandeepkv93/rem/internal/storage"
)

// ErrAlreadyCompleted means a task was asked to complete a second time.
// Completion is terminal; the original timestamp is reported and kept.
var ErrAlreadyCompleted = errors.New("app: task already completed")

type App struct {
	Repo storage.Repository
	Now  time.Time

	engine *scheduler.Engine
	log    zerolog.Logger
}

func New(repo storage.Repository, now time.Time, log zerolog.Logger) *App {
	return &App{
		Repo:   repo,
		Now:    now,
		engine: scheduler.NewEngine(repo, log),
		log:    log,
	}
}

// CatchUp reconciles missing reminder occurrences into tasks. It runs once
// per invocation, before the requested command.
func (a *App) CatchUp(ctx context.Context) error {
	return a.engine.CatchUp(ctx, a.Now)
}

func (a *App) AddTask(ctx context.Context, title, description string, start, due *time.Time) (model.Task, error) {
	task := model.Task{
		Title:       title,
		Description: description,
		Created:     a.Now,
		Start:       start,
		Due:         due,
	}
	if err := task.Validate(); err != nil {
		return model.Task{}, err
	}
	id, err := a.Repo.CreateTask(ctx, task)
	if err != nil {
		return model.Task{}, fmt.Errorf("insert task: %w", err)
	}
	task.ID = id
	return task, nil
}

func (a *App) DeleteTask(ctx context.Context, id int64) error {
	if err := a.Repo.DeleteTask(ctx, id); err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

// CompleteTask marks a task completed at the invocation's time snapshot.
// A task that is already completed is left untouched.
func (a *App) CompleteTask(ctx context.Context, id int64) (model.Task, error) {
	task, err := a.Repo.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, fmt.Errorf("load task %d: %w", id, err)
	}
	if task.Completed != nil {
		return model.Task{}, fmt.Errorf("%w: task %d completed at %s",
			ErrAlreadyCompleted, id, model.FormatDateTime(*task.Completed))
	}
	if err := a.Repo.CompleteTask(ctx, id, a.Now); err != nil {
		return model.Task{}, fmt.Errorf("complete task %d: %w", id, err)
	}
	completed := a.Now
	task.Completed = &completed
	return task, nil
}

// RecordWork appends a work bit to an existing task. The description may be
// empty; the timestamp alone is a valid record.
func (a *App) RecordWork(ctx context.Context, taskID int64, description string) (model.WorkBit, error) {
	if _, err := a.Repo.GetTask(ctx, taskID); err != nil {
		return model.WorkBit{}, fmt.Errorf("load task %d: %w", taskID, err)
	}
	bit := model.WorkBit{
		TaskID:      taskID,
		At:          a.Now,
		Description: description,
	}
	id, err := a.Repo.CreateWorkBit(ctx, bit)
	if err != nil {
		return model.WorkBit{}, fmt.Errorf("insert work bit: %w", err)
	}
	bit.ID = id
	return bit, nil
}

// ListTasks returns all tasks with their work bits attached in insertion
// order.
func (a *App) ListTasks(ctx context.Context) ([]model.Task, error) {
	tasks, err := a.Repo.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	for i := range tasks {
		bits, err := a.Repo.ListWorkBits(ctx, tasks[i].ID)
		if err != nil {
			return nil, fmt.Errorf("list work bits for task %d: %w", tasks[i].ID, err)
		}
		tasks[i].WorkBits = bits
	}
	return tasks, nil
}

func (a *App) AddReminder(ctx context.Context, title, description string, firstDue time.Time, period time.Duration, until *time.Time) (model.Reminder, error) {
	rem := model.Reminder{
		Title:       title,
		Description: description,
		Created:     a.Now,
		FirstDue:    firstDue,
		Period:      period,
		Until:       until,
	}
	if err := rem.Validate(); err != nil {
		return model.Reminder{}, err
	}
	id, err := a.Repo.CreateReminder(ctx, rem)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("insert reminder: %w", err)
	}
	rem.ID = id
	return rem, nil
}

// StopReminder sets the reminder's until bound to the time snapshot, ending
// generation from this invocation on. Stopping an already stopped reminder
// overwrites the bound.
func (a *App) StopReminder(ctx context.Context, id int64) (model.Reminder, error) {
	rem, err := a.Repo.GetReminder(ctx, id)
	if err != nil {
		return model.Reminder{}, fmt.Errorf("load reminder %d: %w", id, err)
	}
	if err := a.Repo.StopReminder(ctx, id, a.Now); err != nil {
		return model.Reminder{}, fmt.Errorf("stop reminder %d: %w", id, err)
	}
	until := a.Now
	rem.Until = &until
	return rem, nil
}

func (a *App) ListReminders(ctx context.Context) ([]model.Reminder, error) {
	reminders, err := a.Repo.ListReminders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}
