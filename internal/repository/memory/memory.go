// Package memory stores tasks in a plain slice for the lifetime of the process.
package memory

import (
	"context"

	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
	"ticket-slash/internal/repository"
)

var _ repository.TaskRepository = (*Repository)(nil)

// Repository is not safe for concurrent use; callers serialise access.
type Repository struct {
	tasks []domain.Task
}

// New returns an empty repository.
func New() *Repository {
	return &Repository{}
}

func (r *Repository) indexOf(id string) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Append adds task at the end of the collection.
func (r *Repository) Append(ctx context.Context, task domain.Task) error {
	if err := ctx.Err(); err != nil {
		return errors.NewTimeoutError("append task", err)
	}
	if r.indexOf(task.ID) >= 0 {
		return errors.NewInvalidInputError("id", task.ID, "duplicate task id")
	}
	r.tasks = append(r.tasks, task)
	return nil
}

// Get returns the task with the given id.
func (r *Repository) Get(ctx context.Context, id string) (domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return domain.Task{}, errors.NewTimeoutError("get task", err)
	}
	i := r.indexOf(id)
	if i < 0 {
		return domain.Task{}, errors.NewTaskNotFoundError(id)
	}
	return r.tasks[i], nil
}

// Replace swaps the stored task with the same id, keeping its position.
func (r *Repository) Replace(ctx context.Context, task domain.Task) error {
	if err := ctx.Err(); err != nil {
		return errors.NewTimeoutError("replace task", err)
	}
	i := r.indexOf(task.ID)
	if i < 0 {
		return errors.NewTaskNotFoundError(task.ID)
	}
	r.tasks[i] = task
	return nil
}

// Delete removes the task with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewTimeoutError("delete task", err)
	}
	i := r.indexOf(id)
	if i < 0 {
		return errors.NewTaskNotFoundError(id)
	}
	r.tasks = append(r.tasks[:i:i], r.tasks[i+1:]...)
	return nil
}

// List returns a copy of the collection in insertion order.
func (r *Repository) List(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewTimeoutError("list tasks", err)
	}
	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

// Count returns the number of stored tasks.
func (r *Repository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.NewTimeoutError("count tasks", err)
	}
	return len(r.tasks), nil
}

// Close drops all tasks.
func (r *Repository) Close() error {
	r.tasks = nil
	return nil
}
