package domain

import "errors"

// Error kinds. Every user-facing failure unwraps to exactly one of these,
// which the API layer maps to a status code.
var (
	// ErrValidation is returned when input or an entity fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when an operation would duplicate a unique value.
	ErrConflict = errors.New("conflict")

	// ErrNotFound is returned when no record matches an owner-scoped lookup.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated is returned for missing, invalid or expired tokens
	// and for failed credential checks.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Named business errors.
var (
	ErrEmailExists        = NewError(ErrConflict, "email already exists")
	ErrUserNotFound       = NewError(ErrNotFound, "user not found")
	ErrInvalidCredentials = NewError(ErrUnauthenticated, "invalid credentials")
	ErrTaskNotFound       = NewError(ErrNotFound, "task not found")
)

// Error is a business failure carrying a human-readable message and the
// kind it belongs to. errors.Is(err, ErrNotFound) holds for any Error whose
// Kind is ErrNotFound.
type Error struct {
	Kind    error
	Message string
}

// NewError creates an Error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// ValidationError describes a single field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
// If err is nil the error unwraps to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped error. The chain always reaches ErrValidation.
func (e *ValidationError) Unwrap() []error {
	if errors.Is(e.Err, ErrValidation) {
		return []error{e.Err}
	}
	return []error{e.Err, ErrValidation}
}
