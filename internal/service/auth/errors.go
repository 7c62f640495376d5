package auth

import (
	"github.com/phrazzld/taskr-api/internal/domain"
)

// Authentication errors. All of them are domain.ErrUnauthenticated.
var (
	// ErrInvalidToken indicates the token is malformed, its signature does not
	// match, or its claims are incomplete.
	ErrInvalidToken = domain.NewError(domain.ErrUnauthenticated, "invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = domain.NewError(domain.ErrUnauthenticated, "authentication token has expired")

	// ErrMissingToken indicates a protected operation was called without a bearer token.
	ErrMissingToken = domain.NewError(domain.ErrUnauthenticated, "missing authentication token")
)
