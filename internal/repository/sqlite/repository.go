// Package sqlite keeps the task collection in an in-memory SQLite database.
package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
	"ticket-slash/internal/repository"
	"ticket-slash/internal/repository/sqlite/migrations"
)

// DefaultDSN is a private in-memory database.
const DefaultDSN = ":memory:"

const (
	insertTaskQuery = `INSERT INTO tasks (id, text, completed, created_at, completed_at) VALUES (?, ?, ?, ?, ?)`
	selectTaskQuery = `SELECT seq, id, text, completed, created_at, completed_at FROM tasks WHERE id = ?`
	listTasksQuery  = `SELECT seq, id, text, completed, created_at, completed_at FROM tasks ORDER BY seq ASC`
	updateTaskQuery = `UPDATE tasks SET text = ?, completed = ?, completed_at = ? WHERE id = ?`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`
	countTasksQuery = `SELECT COUNT(*) FROM tasks`
)

var _ repository.TaskRepository = (*SQLiteRepository)(nil)

// SQLiteRepository implements repository.TaskRepository
type SQLiteRepository struct {
	db *sqlx.DB
}

// New opens the database at dsn and runs the embedded migrations.
// An in-memory database lives on one connection, so the pool is pinned to it.
func New(ctx context.Context, dsn string) (*SQLiteRepository, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := migrations.Run(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database, discarding every task.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Append inserts task after every existing row.
func (r *SQLiteRepository) Append(ctx context.Context, task domain.Task) error {
	_, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.ID,
		task.Text,
		task.Completed,
		FormatTimeForDB(task.CreatedAt),
		FormatTimePtrForDB(task.CompletedAt),
	)
	if err != nil {
		return HandleDatabaseError("insert task", err)
	}
	return nil
}

// Get retrieves a task by id
func (r *SQLiteRepository) Get(ctx context.Context, id string) (domain.Task, error) {
	row, err := QuerySingle[taskRow](ctx, r.db, selectTaskQuery, id, id)
	if err != nil {
		return domain.Task{}, err
	}
	task, err := toDomainTask(row)
	if err != nil {
		return domain.Task{}, HandleDatabaseError("decode task", err)
	}
	return task, nil
}

// Replace updates the mutable columns; seq and created_at never change.
func (r *SQLiteRepository) Replace(ctx context.Context, task domain.Task) error {
	return ExecuteWithRowsAffected(ctx, r.db, "update task", updateTaskQuery, task.ID,
		task.Text,
		task.Completed,
		FormatTimePtrForDB(task.CompletedAt),
		task.ID,
	)
}

// Delete deletes a task by id
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return ExecuteWithRowsAffected(ctx, r.db, "delete task", deleteTaskQuery, id, id)
}

// List retrieves all tasks in insertion order
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := QueryMultiple[taskRow](ctx, r.db, listTasksQuery)
	if err != nil {
		return nil, err
	}
	tasks, err := toDomainTasks(rows)
	if err != nil {
		return nil, HandleDatabaseError("decode tasks", err)
	}
	return tasks, nil
}

// Count returns the number of stored tasks.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, countTasksQuery); err != nil {
		return 0, HandleDatabaseError("count tasks", err)
	}
	return n, nil
}
