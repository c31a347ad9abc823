package validation

import (
	"strings"
	"unicode/utf8"

	"ticket-slash/internal/config"
	"ticket-slash/internal/domain"
	"ticket-slash/internal/errors"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{validator: NewValidator()}
}

// NewTaskValidatorWithConfig creates a task validator honouring cfg limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateText trims raw and returns it, or ErrEmptyText / ErrTextTooLong.
func (tv *TaskValidator) ValidateText(raw string) (string, error) {
	text := tv.validator.TrimAndValidateString(raw)

	if !tv.validator.IsNonEmptyString(text) {
		return "", errors.NewEmptyTextError()
	}
	if !tv.validator.IsValidTextLength(text) {
		return "", errors.NewTextTooLongError(utf8.RuneCountInString(text), tv.validator.TextMaxLength())
	}

	return text, nil
}

// ValidateTaskID rejects blank identifiers before they reach the store.
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.NewInvalidInputError("id", id, "task id cannot be empty")
	}
	return nil
}

// ValidateTask checks a fully built task.
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	if err := tv.ValidateTaskID(task.ID); err != nil {
		return err
	}
	if _, err := tv.ValidateText(task.Text); err != nil {
		return err
	}
	if task.Completed != (task.CompletedAt != nil) {
		return errors.NewInvalidInputError("completed_at", task.CompletedAt, "completion timestamp must be set exactly when completed")
	}
	return nil
}
