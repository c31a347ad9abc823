package apierrors

import (
	"fmt"
	"net/http"

	"ticket-slash/internal/errors"
	"ticket-slash/internal/translator"
)

// JsonErr represents the JSON structure for API errors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err carries the HTTP status, a localized message and the stable error code.
type Err struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Reason: %s, Message: %s", e.ErrDetails.Code, e.ErrDetails.Reason, e.ErrDetails.Message)
}

// StatusFor maps an error to its HTTP status.
func StatusFor(err error) int {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch appErr.Type {
	case errors.ErrorTypeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrorTypeValidation:
		return http.StatusUnprocessableEntity
	case errors.ErrorTypeNotFound:
		return http.StatusNotFound
	case errors.ErrorTypeConflict:
		return http.StatusConflict
	case errors.ErrorTypeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// FromError builds the JSON error for err with a message translated into lang.
func FromError(tr *translator.Translator, err error, lang string) (int, JsonErr) {
	status := StatusFor(err)
	return status, JsonErr{ErrDetails: Err{
		Code:    status,
		Message: tr.Error(lang, err),
		Reason:  errors.GetErrorCode(err),
	}}
}
