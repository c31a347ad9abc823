package services

import (
	"context"
	"time"

	"ticket-slash/internal/domain"
)

// SearchResult is the outcome of a successful search.
type SearchResult struct {
	Items       []domain.Task        `json:"items"`
	Description string               `json:"description"`
	Options     domain.SearchOptions `json:"-"`
}

// Count returns the number of matching tasks.
func (r *SearchResult) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Items)
}

// SeedTask describes a task inserted at startup.
type SeedTask struct {
	Text        string
	Completed   bool
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// TimeRange represents a time period with start and end times
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TaskService owns the ordered task collection
type TaskService interface {
	AddTask(ctx context.Context, rawText string) (*domain.Task, error)
	ToggleComplete(ctx context.Context, id string) (*domain.Task, error)
	RemoveTask(ctx context.Context, id string) error

	GetTask(ctx context.Context, id string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	ListByTab(ctx context.Context, tab domain.Tab) ([]domain.Task, error)

	Seed(ctx context.Context, seeds []SeedTask) ([]domain.Task, error)
}

// SearchService runs searches against a snapshot of the collection
type SearchService interface {
	SearchTasks(ctx context.Context, opts domain.SearchOptions) (*SearchResult, error)
}

// TimeService handles date formatting and calendar-day calculations
type TimeService interface {
	FormatDate(t time.Time) string
	FormatTimestamp(t time.Time) string
	FormatAge(t time.Time) string
	IsToday(t time.Time) bool
	GetDateRange(date time.Time) *TimeRange
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	TimeService   TimeService
	TaskService   TaskService
	SearchService SearchService
}
