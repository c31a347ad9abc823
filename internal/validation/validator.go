package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"ticket-slash/internal/config"
)

const defaultTextMaxLength = 255

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a validator that uses built-in limits
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithConfig creates a validator that reads limits from cfg
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks the trimmed rune count against [min, max]
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidTextLength checks a task text against the configured maximum
func (v *Validator) IsValidTextLength(s string) bool {
	return v.IsValidStringLength(s, 1, v.TextMaxLength())
}

// IsValidDateRange reports whether start's calendar day is not after end's.
// Open ranges are accepted here; completeness is checked separately.
func (v *Validator) IsValidDateRange(start, end *time.Time) bool {
	if start == nil || end == nil {
		return true
	}
	return !dayAfter(*start, *end)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// TextMaxLength returns configured maximum task text length or default
func (v *Validator) TextMaxLength() int {
	if v.config != nil && v.config.Validation.TaskTextMaxLength > 0 {
		return v.config.Validation.TaskTextMaxLength
	}
	return defaultTextMaxLength
}

// dayAfter compares calendar dates, each read in its own location.
func dayAfter(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}
