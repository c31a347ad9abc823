package services

import (
	"time"
)

// DefaultSeeds returns the example tasks shown on a fresh screen.
// Tasks without a fixed date are stamped with now.
func DefaultSeeds(now time.Time) []SeedTask {
	loc := now.Location()
	started := time.Date(2025, 3, 1, 0, 0, 0, 0, loc)
	finished := time.Date(2025, 3, 28, 0, 0, 0, 0, loc)

	return []SeedTask{
		{
			Text:        "Start developing this app",
			Completed:   true,
			CreatedAt:   started,
			CompletedAt: &finished,
		},
		{Text: "Buy Suya", CreatedAt: now},
		{Text: "Goto market", CreatedAt: now},
	}
}
