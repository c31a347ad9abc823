package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"NotFound", ErrorTypeNotFound, "not_found"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"Conflict", ErrorTypeConflict, "conflict"},
		{"Database", ErrorTypeDatabase, "database"},
		{"Timeout", ErrorTypeTimeout, "timeout"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.errorType.String(); got != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name:     "without cause",
			appError: &AppError{Type: ErrorTypeValidation, Message: "Todo cannot be empty"},
			expected: "validation: Todo cannot be empty",
		},
		{
			name: "with cause",
			appError: &AppError{
				Type:    ErrorTypeDatabase,
				Message: "database operation failed: insert task",
				Cause:   errors.New("disk I/O error"),
			},
			expected: "database: database operation failed: insert task (caused by: disk I/O error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appError.Error(); got != tt.expected {
				t.Errorf("AppError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("closed")
	err := NewDatabaseError("select tasks", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should reach the cause through Unwrap")
	}
	if (&AppError{}).Unwrap() != nil {
		t.Errorf("Unwrap without cause should be nil")
	}
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{"fresh empty text matches sentinel", NewEmptyTextError(), ErrEmptyText, true},
		{"not found matches sentinel", NewTaskNotFoundError("42"), ErrTaskNotFound, true},
		{"same type different code", NewMissingEndDateError(), ErrMissingStartDate, false},
		{"different type", NewTaskNotFoundError("1"), ErrEmptyText, false},
		{"plain error target", NewInvalidRangeError(), errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.expected {
				t.Errorf("errors.Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Context(t *testing.T) {
	err := NewTextTooLongError(300, 255)

	if v, ok := err.GetContext("max"); !ok || v != 255 {
		t.Errorf("expected max context 255, got %v", v)
	}
	if _, ok := err.GetContext("missing"); ok {
		t.Errorf("unexpected context value")
	}
	if _, ok := (&AppError{}).GetContext("max"); ok {
		t.Errorf("nil context should report missing")
	}
	if len(ErrTextTooLong.Context) != 0 {
		t.Errorf("constructor must not write into the sentinel")
	}
}
