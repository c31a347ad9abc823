package services

import (
	"fmt"
	"time"

	"ticket-slash/internal/config"
	"ticket-slash/internal/domain"
)

// timeServiceImpl implements the TimeService interface
type timeServiceImpl struct {
	clock         domain.Clock
	dateLayout    string
	displayFormat string
}

// NewTimeService creates a new TimeService instance
func NewTimeService(cfg *config.Config, clock domain.Clock) TimeService {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if clock == nil {
		clock = domain.SystemClock{}
	}
	return &timeServiceImpl{
		clock:         clock,
		dateLayout:    cfg.Time.DateLayout,
		displayFormat: cfg.Time.DisplayFormat,
	}
}

// FormatDate renders the calendar day of t
func (s *timeServiceImpl) FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(s.dateLayout)
}

// FormatTimestamp renders t with the display format
func (s *timeServiceImpl) FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(s.displayFormat)
}

// FormatAge renders how long ago t was, in whole days once past a day.
func (s *timeServiceImpl) FormatAge(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := s.clock.Now().Sub(t)
	switch {
	case d < 0:
		return "in the future"
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// IsToday reports whether t falls on the clock's current calendar day
func (s *timeServiceImpl) IsToday(t time.Time) bool {
	now := s.clock.Now().In(t.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// GetDateRange returns the first and last instants of date's calendar day
func (s *timeServiceImpl) GetDateRange(date time.Time) *TimeRange {
	return &TimeRange{
		Start: domain.StartOfDay(date),
		End:   domain.EndOfDay(date),
	}
}
