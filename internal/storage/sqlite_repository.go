package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sandeepkv93/rem/internal/model"
)

// SQLiteRepository persists entities in a single SQLite file. Timestamps are
// stored as integer seconds since the epoch; the local-zone interpretation
// happens only when rows are hydrated. Foreign keys are declared but not
// enforced: deleting a task may orphan its work bits, which is allowed.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

// DB exposes the underlying handle for migrations.
func (r *SQLiteRepository) DB() *sql.DB {
	return r.db
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) CreateTask(ctx context.Context, in model.Task) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (title, description, created, start, due, completed, generated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.Title, nullString(in.Description), epoch(in.Created),
		nullEpoch(in.Start), nullEpoch(in.Due), nullEpoch(in.Completed), nullID(in.GeneratedBy),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, created, start, due, completed, generated_by
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, err
	}
	return task, nil
}

func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, created, start, due, completed, generated_by
		FROM tasks ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CompleteTask(ctx context.Context, id int64, completed time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET completed = ? WHERE id = ?`, epoch(completed), id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) TasksGeneratedBy(ctx context.Context, reminderID int64) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, created, start, due, completed, generated_by
		FROM tasks WHERE generated_by = ? ORDER BY due ASC`, reminderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) CreateReminder(ctx context.Context, in model.Reminder) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (title, description, created, first_due, period, until)
		VALUES (?, ?, ?, ?, ?, ?)`,
		in.Title, nullString(in.Description), epoch(in.Created),
		epoch(in.FirstDue), int64(in.Period/time.Second), nullEpoch(in.Until),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) GetReminder(ctx context.Context, id int64) (model.Reminder, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, created, first_due, period, until
		FROM reminders WHERE id = ?`, id)
	rem, err := scanReminder(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reminder{}, ErrNotFound
		}
		return model.Reminder{}, err
	}
	return rem, nil
}

func (r *SQLiteRepository) ListReminders(ctx context.Context) ([]model.Reminder, error) {
	return r.queryReminders(ctx, `
		SELECT id, title, description, created, first_due, period, until
		FROM reminders ORDER BY id ASC`)
}

func (r *SQLiteRepository) ActiveReminders(ctx context.Context, now time.Time) ([]model.Reminder, error) {
	return r.queryReminders(ctx, `
		SELECT id, title, description, created, first_due, period, until
		FROM reminders WHERE until IS NULL OR until > ? ORDER BY id ASC`, epoch(now))
}

func (r *SQLiteRepository) StopReminder(ctx context.Context, id int64, until time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE reminders SET until = ? WHERE id = ?`, epoch(until), id)
	if err != nil {
		return err
	}
	return checkRowsAffected(res)
}

func (r *SQLiteRepository) CreateWorkBit(ctx context.Context, in model.WorkBit) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO work_bits (task_id, datetime, description)
		VALUES (?, ?, ?)`,
		in.TaskID, epoch(in.At), nullString(in.Description),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SQLiteRepository) ListWorkBits(ctx context.Context, taskID int64) ([]model.WorkBit, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, datetime, description
		FROM work_bits WHERE task_id = ? ORDER BY id ASC`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.WorkBit, 0)
	for rows.Next() {
		var bit model.WorkBit
		var at int64
		var desc sql.NullString
		if err := rows.Scan(&bit.ID, &bit.TaskID, &at, &desc); err != nil {
			return nil, err
		}
		bit.At = fromEpoch(at)
		bit.Description = desc.String
		out = append(out, bit)
	}
	return out, rows.Err()
}

func (r *SQLiteRepository) queryReminders(ctx context.Context, query string, args ...any) ([]model.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reminder, 0)
	for rows.Next() {
		rem, scanErr := scanReminder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}

func epoch(t time.Time) int64 {
	return t.Unix()
}

func nullEpoch(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullID(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func fromEpoch(v int64) time.Time {
	return time.Unix(v, 0)
}

func fromNullEpoch(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := fromEpoch(v.Int64)
	return &t
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var out model.Task
	var desc sql.NullString
	var created int64
	var start, due, completed, generatedBy sql.NullInt64
	if err := s.Scan(&out.ID, &out.Title, &desc, &created, &start, &due, &completed, &generatedBy); err != nil {
		return model.Task{}, err
	}
	out.Description = desc.String
	out.Created = fromEpoch(created)
	out.Start = fromNullEpoch(start)
	out.Due = fromNullEpoch(due)
	out.Completed = fromNullEpoch(completed)
	if generatedBy.Valid {
		id := generatedBy.Int64
		out.GeneratedBy = &id
	}
	return out, nil
}

func scanReminder(s scanner) (model.Reminder, error) {
	var out model.Reminder
	var desc sql.NullString
	var created, firstDue, period int64
	var until sql.NullInt64
	if err := s.Scan(&out.ID, &out.Title, &desc, &created, &firstDue, &period, &until); err != nil {
		return model.Reminder{}, err
	}
	out.Description = desc.String
	out.Created = fromEpoch(created)
	out.FirstDue = fromEpoch(firstDue)
	out.Period = time.Duration(period) * time.Second
	out.Until = fromNullEpoch(until)
	return out, nil
}

func checkRowsAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
