package store

import (
	"context"

	"github.com/phrazzld/taskr-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The password must already be hashed.
	// Returns ErrEmailExists if an active user already has the email.
	Create(ctx context.Context, user *domain.User) error

	// GetActiveByEmail retrieves a non-deleted user by exact email.
	// Returns ErrUserNotFound if no such user exists.
	GetActiveByEmail(ctx context.Context, email string) (*domain.User, error)
}
