package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sandeepkv93/rem/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is the persistence boundary. The store is the sole source of
// truth; callers treat returned entities as transient projections.
type Repository interface {
	CreateTask(ctx context.Context, in model.Task) (int64, error)
	GetTask(ctx context.Context, id int64) (model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	CompleteTask(ctx context.Context, id int64, completed time.Time) error
	DeleteTask(ctx context.Context, id int64) error
	TasksGeneratedBy(ctx context.Context, reminderID int64) ([]model.Task, error)

	CreateReminder(ctx context.Context, in model.Reminder) (int64, error)
	GetReminder(ctx context.Context, id int64) (model.Reminder, error)
	ListReminders(ctx context.Context) ([]model.Reminder, error)
	ActiveReminders(ctx context.Context, now time.Time) ([]model.Reminder, error)
	StopReminder(ctx context.Context, id int64, until time.Time) error

	CreateWorkBit(ctx context.Context, in model.WorkBit) (int64, error)
	ListWorkBits(ctx context.Context, taskID int64) ([]model.WorkBit, error)
}
