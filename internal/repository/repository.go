// Package repository defines the storage contract for the task collection.
package repository

import (
	"context"

	"ticket-slash/internal/domain"
)

// TaskRepository owns the ordered task collection.
// Implementations keep insertion order: Replace updates a task in place and
// List returns tasks in the order they were appended.
type TaskRepository interface {
	Append(ctx context.Context, task domain.Task) error
	Get(ctx context.Context, id string) (domain.Task, error)
	Replace(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Task, error)
	Count(ctx context.Context) (int, error)
	Close() error
}
