package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/taskr-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// GenerateTokenFn allows test cases to mock the GenerateToken behavior
	GenerateTokenFn func(ctx context.Context, identity auth.Identity) (string, error)

	// ValidateTokenFn allows test cases to mock the ValidateToken behavior
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	// Default values used when functions aren't explicitly defined
	Token       string
	Err         error
	ValidateErr error
	Claims      *auth.Claims

	mu              sync.Mutex
	GeneratedFor    []auth.Identity
	ValidatedTokens []string
}

var _ auth.TokenService = (*MockTokenService)(nil)

// GenerateToken implements the auth.TokenService interface
func (m *MockTokenService) GenerateToken(ctx context.Context, identity auth.Identity) (string, error) {
	m.mu.Lock()
	m.GeneratedFor = append(m.GeneratedFor, identity)
	m.mu.Unlock()

	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, identity)
	}
	return m.Token, m.Err
}

// ValidateToken implements the auth.TokenService interface
func (m *MockTokenService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	m.mu.Lock()
	m.ValidatedTokens = append(m.ValidatedTokens, tokenString)
	m.mu.Unlock()

	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}
