package domain

import (
	"fmt"
	"strings"
	"time"
)

// StatusFilter narrows a search by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// ParseStatusFilter accepts the filter names used by the presentation surfaces.
// "todos" is the label of the pending tab and is accepted as an alias.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return StatusAll, nil
	case "pending", "todos", "todo":
		return StatusPending, nil
	case "completed", "done":
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("unknown status filter: %s", s)
	}
}

// Matches reports whether the task passes the status filter.
func (f StatusFilter) Matches(t Task) bool {
	switch f {
	case StatusPending:
		return !t.Completed
	case StatusCompleted:
		return t.Completed
	default:
		return true
	}
}

// Label is the human readable name used in search descriptions.
func (f StatusFilter) Label() string {
	switch f {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// Tab is one of the two list views of the screen.
type Tab string

const (
	TabTodos     Tab = "todos"
	TabCompleted Tab = "completed"
)

// ParseTab parses a tab name, defaulting to the todos tab.
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "todos", "todo", "pending":
		return TabTodos, nil
	case "completed", "done":
		return TabCompleted, nil
	default:
		return "", fmt.Errorf("unknown tab: %s", s)
	}
}

// Filter returns the status filter that backs the tab.
func (t Tab) Filter() StatusFilter {
	if t == TabCompleted {
		return StatusCompleted
	}
	return StatusPending
}

// SearchOptions represents search criteria for tasks.
// Date bounds are calendar days; their time of day is ignored.
type SearchOptions struct {
	Status    StatusFilter
	StartDate *time.Time
	EndDate   *time.Time
}

// HasDateBounds reports whether either date bound is set.
func (o SearchOptions) HasDateBounds() bool {
	return o.StartDate != nil || o.EndDate != nil
}

// StartOfDay returns the first instant of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last millisecond of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
