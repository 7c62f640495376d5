package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	// GenerateToken creates a signed access token for the given identity.
	GenerateToken(ctx context.Context, identity Identity) (string, error)

	// ValidateToken verifies the signature and expiry of tokenString and
	// returns its claims. Fails with ErrInvalidToken or ErrExpiredToken.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Identity is the minimal user payload carried in a token.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// Claims is the decoded payload of a valid token.
type Claims struct {
	// Subject is the ID of the user the token was issued for.
	Subject   string    `json:"sub"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
	ID        string    `json:"jti,omitempty"`
}

// UserID parses the subject as a user ID.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}
