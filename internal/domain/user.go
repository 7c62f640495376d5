package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User validation errors
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrEmptyFirstName      = errors.New("first name cannot be empty")
)

// User represents a registered account.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Phone          string    `json:"phone,omitempty"`
	IsDeleted      bool      `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PublicUser is the subset of User fields that may be returned to callers.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

// NewUser creates a new User with a fresh ID and timestamps.
// The password must already be hashed.
func NewUser(email, hashedPassword, firstName, lastName, phone string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: hashedPassword,
		FirstName:      firstName,
		LastName:       lastName,
		Phone:          phone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the invariants every stored user must satisfy.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrEmptyUserID)
	}
	if u.Email == "" {
		return NewValidationError("email", "cannot be empty", ErrEmptyEmail)
	}
	if u.HashedPassword == "" {
		return NewValidationError("password", "cannot be empty", ErrEmptyHashedPassword)
	}
	if strings.TrimSpace(u.FirstName) == "" {
		return NewValidationError("firstName", "cannot be empty", ErrEmptyFirstName)
	}
	return nil
}

// Public returns the caller-safe projection of the user.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// DisplayName joins first and last name with a single space.
// A missing last name yields just the first name.
func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
