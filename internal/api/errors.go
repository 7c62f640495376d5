package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskr-api/internal/api/shared"
	"github.com/phrazzld/taskr-api/internal/domain"
)

// genericErrorMessage is returned for every error without a safe message.
const genericErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps an error to an HTTP status code by its kind.
// Errors of no known kind are 500.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return http.StatusInternalServerError
	case errors.Is(err, domain.ErrValidation), errors.As(err, &verrs):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message a client may see for err.
// Only domain errors and validation failures carry their own message;
// anything else gets a generic one so internal details never leak.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return SanitizeValidationError(verrs)
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}

	var dErr *domain.Error
	if errors.As(err, &dErr) {
		return dErr.Message
	}

	return genericErrorMessage
}

// SanitizeValidationError turns validator failures into a short message
// naming each offending field, for example "Invalid email: invalid email format".
func SanitizeValidationError(verrs validator.ValidationErrors) string {
	if len(verrs) == 0 {
		return "Validation error"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe)))
	}
	return strings.Join(msgs, "; ")
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + fe.Param()
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response matching err's kind. 5xx errors
// are logged at ERROR with the redacted cause.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// badRequest writes a 400 with a fixed message and logs the cause at DEBUG.
func badRequest(w http.ResponseWriter, r *http.Request, message string, err error) {
	shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
}
