package validation

import (
	"strings"
	"time"

	"ticket-slash/internal/config"
	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
)

const defaultInputLayout = "2006-01-02"

// SearchValidator checks search criteria before any filtering happens.
type SearchValidator struct {
	validator   *Validator
	inputLayout string
}

// NewSearchValidator creates a search validator with default layouts
func NewSearchValidator() *SearchValidator {
	return &SearchValidator{validator: NewValidator(), inputLayout: defaultInputLayout}
}

// NewSearchValidatorWithConfig creates a search validator using cfg's input layout
func NewSearchValidatorWithConfig(cfg *config.Config) *SearchValidator {
	sv := &SearchValidator{validator: NewValidatorWithConfig(cfg), inputLayout: defaultInputLayout}
	if cfg != nil && cfg.Time.InputLayout != "" {
		sv.inputLayout = cfg.Time.InputLayout
	}
	return sv
}

// Validate applies the search rules in order; the first failing rule wins:
// a start date needs an end date, the start day must not follow the end day,
// an end date needs a start date, and at least one criterion must be set.
func (sv *SearchValidator) Validate(opts domain.SearchOptions) error {
	if opts.StartDate != nil {
		if opts.EndDate == nil {
			return errors.NewMissingEndDateError()
		}
		if !sv.validator.IsValidDateRange(opts.StartDate, opts.EndDate) {
			return errors.NewInvalidRangeError()
		}
	}

	if opts.EndDate != nil && opts.StartDate == nil {
		return errors.NewMissingStartDateError()
	}

	if (opts.Status == domain.StatusAll || opts.Status == "") && !opts.HasDateBounds() {
		return errors.NewNoFiltersSelectedError()
	}

	return nil
}

// ParseDate parses a user supplied calendar date in loc. Blank input yields nil.
func (sv *SearchValidator) ParseDate(field, value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(sv.inputLayout, value, loc)
	if err != nil {
		return nil, errors.NewInvalidInputError(field, value, "expected date as "+sv.inputLayout)
	}
	return &t, nil
}

// ParseOptions builds SearchOptions from raw strings as typed by a user.
func (sv *SearchValidator) ParseOptions(status, from, to string, loc *time.Location) (domain.SearchOptions, error) {
	filter, err := domain.ParseStatusFilter(status)
	if err != nil {
		return domain.SearchOptions{}, errors.NewInvalidInputError("status", status, "expected all, pending or completed")
	}
	start, err := sv.ParseDate("from", from, loc)
	if err != nil {
		return domain.SearchOptions{}, err
	}
	end, err := sv.ParseDate("to", to, loc)
	if err != nil {
		return domain.SearchOptions{}, err
	}
	return domain.SearchOptions{Status: filter, StartDate: start, EndDate: end}, nil
}
