package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/service/auth"
	"github.com/phrazzld/taskr-api/internal/store"
)

// RegisterInput carries the fields accepted at registration.
// Password is plaintext; it is hashed before anything is stored.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// LoginResult is returned by a successful login.
type LoginResult struct {
	AccessToken string `json:"accessToken"`
}

// AccountService registers users and exchanges credentials for tokens.
type AccountService interface {
	// Register creates a user and returns its public projection.
	// Fails with domain.ErrEmailExists if an active user already has the email.
	Register(ctx context.Context, input RegisterInput) (*domain.PublicUser, error)

	// Login verifies credentials and issues an access token.
	// Fails with domain.ErrUserNotFound or domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type accountService struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	tokens auth.TokenService
	logger *slog.Logger
}

var _ AccountService = (*accountService)(nil)

// NewAccountService creates a new AccountService.
func NewAccountService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	logger *slog.Logger,
) (AccountService, error) {
	if users == nil {
		return nil, errors.New("users cannot be nil")
	}
	if hasher == nil {
		return nil, errors.New("hasher cannot be nil")
	}
	if tokens == nil {
		return nil, errors.New("tokens cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &accountService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("component", "account_service"),
	}, nil
}

// Register hashes the password, builds the user and stores it.
func (s *accountService) Register(ctx context.Context, input RegisterInput) (*domain.PublicUser, error) {
	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		s.logger.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	user, err := domain.NewUser(input.Email, hashed, input.FirstName, input.LastName, input.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.DebugContext(ctx, "registration with existing email rejected")
			return nil, domain.ErrEmailExists
		}
		s.logger.ErrorContext(ctx, "failed to save user", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID)

	return user.Public(), nil
}

// Login looks up the active user by email, verifies the password and
// issues a token carrying the user's ID, email and display name.
func (s *accountService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.DebugContext(ctx, "login for unknown email")
			return nil, domain.ErrUserNotFound
		}
		s.logger.ErrorContext(ctx, "failed to look up user", "error", err)
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	if !s.hasher.Verify(user.HashedPassword, password) {
		s.logger.DebugContext(ctx, "login with wrong password", "user_id", user.ID)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(ctx, auth.Identity{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.DisplayName(),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.DebugContext(ctx, "user logged in", "user_id", user.ID)

	return &LoginResult{AccessToken: token}, nil
}
