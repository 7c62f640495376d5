package mocks

import (
	"context"

	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	CreateFn           func(ctx context.Context, user *domain.User) error
	GetActiveByEmailFn func(ctx context.Context, email string) (*domain.User, error)

	// Default values used when functions aren't explicitly defined
	User *domain.User
	Err  error

	// Created records every user passed to Create
	Created []*domain.User
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements store.UserStore
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.Created = append(m.Created, user)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

// GetActiveByEmail implements store.UserStore
func (m *MockUserStore) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetActiveByEmailFn != nil {
		return m.GetActiveByEmailFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.User == nil {
		return nil, store.ErrUserNotFound
	}
	return m.User, nil
}
