package validation

import (
	stderrors "errors"
	"testing"
	"time"

	"ticket-slash/internal/config"
	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
)

func date(d int) *time.Time {
	t := time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestSearchValidator_Validate(t *testing.T) {
	validator := NewSearchValidator()

	tests := []struct {
		name    string
		opts    domain.SearchOptions
		wantErr error
	}{
		{"status only", domain.SearchOptions{Status: domain.StatusPending}, nil},
		{"full range", domain.SearchOptions{Status: domain.StatusAll, StartDate: date(6), EndDate: date(9)}, nil},
		{"single day", domain.SearchOptions{Status: domain.StatusAll, StartDate: date(6), EndDate: date(6)}, nil},
		{"nothing selected", domain.SearchOptions{Status: domain.StatusAll}, errors.ErrNoFiltersSelected},
		{"empty status counts as all", domain.SearchOptions{}, errors.ErrNoFiltersSelected},
		{"start without end", domain.SearchOptions{Status: domain.StatusAll, StartDate: date(1)}, errors.ErrMissingEndDate},
		{"end without start", domain.SearchOptions{Status: domain.StatusCompleted, EndDate: date(1)}, errors.ErrMissingStartDate},
		{"reversed range", domain.SearchOptions{Status: domain.StatusAll, StartDate: date(12), EndDate: date(1)}, errors.ErrInvalidRange},
		{"start without end beats status", domain.SearchOptions{Status: domain.StatusPending, StartDate: date(1)}, errors.ErrMissingEndDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.opts)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !stderrors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSearchValidator_ParseDate(t *testing.T) {
	validator := NewSearchValidator()
	loc := time.FixedZone("WAT", 3600)

	got, err := validator.ParseDate("from", "2025-03-06", loc)
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	want := time.Date(2025, 3, 6, 0, 0, 0, 0, loc)
	if !got.Equal(want) || got.Location() != loc {
		t.Errorf("ParseDate() = %v, want %v", got, want)
	}

	got, err = validator.ParseDate("from", "  ", loc)
	if err != nil || got != nil {
		t.Errorf("blank date should be nil, got %v, %v", got, err)
	}

	_, err = validator.ParseDate("to", "06/03/2025", loc)
	if !errors.IsErrorType(err, errors.ErrorTypeInvalidInput) {
		t.Errorf("bad date error = %v, want invalid input", err)
	}
}

func TestSearchValidator_ConfiguredLayout(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Time.InputLayout = "02/01/2006"
	validator := NewSearchValidatorWithConfig(cfg)

	got, err := validator.ParseDate("from", "06/03/2025", time.UTC)
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Month() != time.March || got.Day() != 6 {
		t.Errorf("ParseDate() = %v", got)
	}
}

func TestSearchValidator_ParseOptions(t *testing.T) {
	validator := NewSearchValidator()

	opts, err := validator.ParseOptions("todos", "2025-03-01", "2025-03-28", time.UTC)
	if err != nil {
		t.Fatalf("ParseOptions() error = %v", err)
	}
	if opts.Status != domain.StatusPending || opts.StartDate == nil || opts.EndDate == nil {
		t.Errorf("ParseOptions() = %+v", opts)
	}

	if _, err := validator.ParseOptions("someday", "", "", time.UTC); !errors.IsErrorType(err, errors.ErrorTypeInvalidInput) {
		t.Errorf("bad status error = %v", err)
	}
	if _, err := validator.ParseOptions("all", "x", "", time.UTC); err == nil {
		t.Errorf("bad from date should fail")
	}
}
