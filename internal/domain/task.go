package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single to-do item in the domain model.
// Task values are never mutated in place: Complete and Reopen return
// a new value that replaces the old one at the same position.
type Task struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// IDGenerator produces opaque task identifiers.
type IDGenerator func() string

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

// NewTask creates a pending Task with the given id, text and creation time.
func NewTask(id, text string, createdAt time.Time) Task {
	return Task{
		ID:        id,
		Text:      text,
		CreatedAt: createdAt,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	if t.ID == "" || t.Text == "" {
		return false
	}
	return t.Completed == (t.CompletedAt != nil)
}

// IsPending reports whether the task still has to be done.
func (t Task) IsPending() bool {
	return !t.Completed
}

// HasCreatedAt reports whether the creation time is known.
func (t Task) HasCreatedAt() bool {
	return !t.CreatedAt.IsZero()
}

// Complete returns a copy of the task marked completed at the given time.
func (t Task) Complete(at time.Time) Task {
	t.Completed = true
	t.CompletedAt = &at
	return t
}

// Reopen returns a copy of the task marked pending again.
func (t Task) Reopen() Task {
	t.Completed = false
	t.CompletedAt = nil
	return t
}

// String returns the task text for display purposes.
func (t Task) String() string {
	return t.Text
}
