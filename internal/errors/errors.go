package errors

import (
	"errors"
	"fmt"
)

// Error codes. Each one is also the message ID looked up by the translator.
const (
	CodeEmptyText         = "EMPTY_TEXT"
	CodeTextTooLong       = "TEXT_TOO_LONG"
	CodeNotFound          = "NOT_FOUND"
	CodeMissingEndDate    = "MISSING_END_DATE"
	CodeMissingStartDate  = "MISSING_START_DATE"
	CodeInvalidRange      = "INVALID_RANGE"
	CodeNoFiltersSelected = "NO_FILTERS_SELECTED"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeConfirmRequired   = "CONFIRMATION_REQUIRED"
	CodeDatabase          = "DATABASE_ERROR"
	CodeTimeout           = "TIMEOUT"
	CodeUnknown           = "UNKNOWN_ERROR"
)

// Sentinels for errors.Is. Constructors below return fresh values that match them.
var (
	ErrEmptyText         = &AppError{Type: ErrorTypeValidation, Code: CodeEmptyText, Message: "Todo cannot be empty"}
	ErrTextTooLong       = &AppError{Type: ErrorTypeValidation, Code: CodeTextTooLong, Message: "Todo text is too long"}
	ErrTaskNotFound      = &AppError{Type: ErrorTypeNotFound, Code: CodeNotFound, Message: "todo not found"}
	ErrMissingEndDate    = &AppError{Type: ErrorTypeValidation, Code: CodeMissingEndDate, Message: "Please select an end date."}
	ErrMissingStartDate  = &AppError{Type: ErrorTypeValidation, Code: CodeMissingStartDate, Message: "Please select a start date."}
	ErrInvalidRange      = &AppError{Type: ErrorTypeValidation, Code: CodeInvalidRange, Message: "End date cannot be before start date."}
	ErrNoFiltersSelected = &AppError{Type: ErrorTypeValidation, Code: CodeNoFiltersSelected, Message: "Please select at least one filter criterion (status or date) to narrow down results."}
	ErrConfirmRequired   = &AppError{Type: ErrorTypeConflict, Code: CodeConfirmRequired, Message: "Are you sure you want to delete this todo?"}
)

func fromSentinel(s *AppError) *AppError {
	return &AppError{
		Type:    s.Type,
		Code:    s.Code,
		Message: s.Message,
		Context: make(map[string]interface{}),
	}
}

// NewEmptyTextError reports a task text that is blank after trimming.
func NewEmptyTextError() *AppError {
	return fromSentinel(ErrEmptyText)
}

// NewTextTooLongError reports a task text over the configured limit.
func NewTextTooLongError(length, max int) *AppError {
	return fromSentinel(ErrTextTooLong).
		WithContext("length", length).
		WithContext("max", max)
}

// NewTaskNotFoundError reports an unknown task id.
func NewTaskNotFoundError(id string) *AppError {
	err := NewNotFoundError("todo", id)
	err.Code = CodeNotFound
	return err
}

func NewMissingEndDateError() *AppError {
	return fromSentinel(ErrMissingEndDate)
}

func NewMissingStartDateError() *AppError {
	return fromSentinel(ErrMissingStartDate)
}

func NewInvalidRangeError() *AppError {
	return fromSentinel(ErrInvalidRange)
}

func NewNoFiltersSelectedError() *AppError {
	return fromSentinel(ErrNoFiltersSelected)
}

// NewConfirmRequiredError is returned by surfaces when a delete arrives unconfirmed.
func NewConfirmRequiredError(id string) *AppError {
	return fromSentinel(ErrConfirmRequired).WithContext("identifier", id)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    CodeNotFound,
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    CodeInvalidInput,
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewDatabaseError creates a new database error
func NewDatabaseError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Code:    CodeDatabase,
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Code:    CodeTimeout,
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns the untranslated user facing message.
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeDatabase:
			return "A storage error occurred. Please try again."
		case ErrorTypeTimeout:
			return "The operation timed out. Please try again."
		default:
			return appErr.Message
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return CodeUnknown
}

// ShouldLogError reports whether err is a system failure rather than a user mistake.
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypeConflict:
			return false
		default:
			return true
		}
	}
	return true
}
