package domain

import (
	"fmt"
	"strings"
	"time"
)

// Clock returns the current time. Services take a Clock instead of
// calling time.Now so tests can supply deterministic timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.At
}

// CompletionPolicy decides which timestamp a task receives when completed.
type CompletionPolicy string

const (
	// CompletionNextDay stamps completion one day after creation, or one day
	// after now when the creation time is unknown.
	CompletionNextDay CompletionPolicy = "next-day"
	// CompletionNow stamps completion with the current time.
	CompletionNow CompletionPolicy = "now"
)

// ParseCompletionPolicy parses a policy name.
func ParseCompletionPolicy(s string) (CompletionPolicy, error) {
	switch CompletionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case CompletionNextDay:
		return CompletionNextDay, nil
	case CompletionNow:
		return CompletionNow, nil
	default:
		return "", fmt.Errorf("unknown completion policy: %s", s)
	}
}

// CompletedAt computes the completion timestamp for task under the policy.
func (p CompletionPolicy) CompletedAt(task Task, now time.Time) time.Time {
	if p == CompletionNow {
		return now
	}
	if task.HasCreatedAt() {
		return task.CreatedAt.AddDate(0, 0, 1)
	}
	return now.AddDate(0, 0, 1)
}
