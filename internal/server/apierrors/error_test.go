package apierrors_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"ticket-slash/internal/errors"
	"ticket-slash/internal/server/apierrors"
	"ticket-slash/internal/translator"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid input", errors.NewInvalidInputError("from", "x", "bad date"), http.StatusBadRequest},
		{"empty text", errors.NewEmptyTextError(), http.StatusUnprocessableEntity},
		{"search rule", errors.NewInvalidRangeError(), http.StatusUnprocessableEntity},
		{"not found", errors.NewTaskNotFoundError("x"), http.StatusNotFound},
		{"unconfirmed delete", errors.NewConfirmRequiredError("x"), http.StatusConflict},
		{"timeout", errors.NewTimeoutError("list", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"database", errors.NewDatabaseError("list", stderrors.New("boom")), http.StatusInternalServerError},
		{"plain", stderrors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, apierrors.StatusFor(tt.err))
		})
	}
}

func TestFromError_Localized(t *testing.T) {
	tr := translator.Default()

	status, body := apierrors.FromError(tr, errors.NewMissingEndDateError(), translator.LanguageFr)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, status, body.ErrDetails.Code)
	assert.Equal(t, errors.CodeMissingEndDate, body.ErrDetails.Reason)
	assert.Equal(t, "Veuillez choisir une date de fin.", body.ErrDetails.Message)
}

func TestJsonErr_ErrorMethod(t *testing.T) {
	_, body := apierrors.FromError(translator.Default(), errors.NewEmptyTextError(), translator.LanguageEn)
	assert.Equal(t, "Code: 422, Reason: EMPTY_TEXT, Message: Todo cannot be empty", body.Error())
}
