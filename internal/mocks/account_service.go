package mocks

import (
	"context"

	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/service"
)

// MockAccountService implements service.AccountService for handler tests.
type MockAccountService struct {
	RegisterFn func(ctx context.Context, input service.RegisterInput) (*domain.PublicUser, error)
	LoginFn    func(ctx context.Context, email, password string) (*service.LoginResult, error)

	// RegisteredWith records the last Register input
	RegisteredWith *service.RegisterInput
}

var _ service.AccountService = (*MockAccountService)(nil)

// Register implements service.AccountService
func (m *MockAccountService) Register(ctx context.Context, input service.RegisterInput) (*domain.PublicUser, error) {
	m.RegisteredWith = &input
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, input)
	}
	return &domain.PublicUser{Email: input.Email, FirstName: input.FirstName, LastName: input.LastName}, nil
}

// Login implements service.AccountService
func (m *MockAccountService) Login(ctx context.Context, email, password string) (*service.LoginResult, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email, password)
	}
	return &service.LoginResult{AccessToken: "mock-token"}, nil
}
