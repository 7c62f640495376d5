package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/store"
)

// ErrMissingOwner is returned when a task operation is called without an
// authenticated user. The API layer maps it to 401.
var ErrMissingOwner = domain.NewError(domain.ErrUnauthenticated, "authenticated user required")

// mapTaskError translates a task store error into its domain counterpart.
// Unrecognized errors are wrapped with the failed operation.
func mapTaskError(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return domain.ErrTaskNotFound
	case errors.Is(err, store.ErrMissingOwner):
		return ErrMissingOwner
	case errors.Is(err, store.ErrInvalidEntity):
		return domain.NewValidationError("", "task violates a storage constraint", err)
	default:
		return fmt.Errorf("failed to %s task: %w", op, err)
	}
}
