package cli

import (
	"fmt"

	"ticket-slash/internal/errors"
	"ticket-slash/internal/translator"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct {
	translator *translator.Translator
	lang       string
}

// NewErrorHandler creates a new error handler localizing into lang
func NewErrorHandler(tr *translator.Translator, lang string) *ErrorHandler {
	if tr == nil {
		tr = translator.Default()
	}
	return &ErrorHandler{translator: tr, lang: lang}
}

// Handle provides user-friendly error messages with the failed operation as context
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, eh.translator.Error(eh.lang, err))
	}

	// Fallback for unknown errors
	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", eh.translator.Error(eh.lang, err))
	}
	return err
}

// Title is the heading shown above an error, matching the alert titles of the screen.
func (eh *ErrorHandler) Title(err error) string {
	if errors.GetErrorCode(err) == errors.CodeNoFiltersSelected {
		return eh.translator.Localize(eh.lang, translator.MsgNoFiltersTitle, nil)
	}
	return eh.translator.Localize(eh.lang, translator.MsgErrorTitle, nil)
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeValidation) ||
		errors.IsErrorType(err, errors.ErrorTypeInvalidInput)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsDatabaseError checks if an error is a database error
func (eh *ErrorHandler) IsDatabaseError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeDatabase)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
