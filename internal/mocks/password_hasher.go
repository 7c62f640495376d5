package mocks

import "github.com/phrazzld/taskr-api/internal/service/auth"

// MockPasswordHasher implements auth.PasswordHasher for testing
type MockPasswordHasher struct {
	// HashFn allows for custom hashing logic in tests
	HashFn func(password string) (string, error)

	// VerifyFn allows for custom comparison logic in tests
	VerifyFn func(hashedPassword, password string) bool

	// ShouldSucceed is returned by Verify when VerifyFn is nil
	ShouldSucceed bool

	// HashCalledWith stores the last password passed to Hash
	HashCalledWith string

	// VerifyCalledWith stores the arguments passed to Verify for verification
	VerifyCalledWith struct {
		HashedPassword string
		Password       string
	}

	// VerifyCallCount tracks how many times Verify was called
	VerifyCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements the auth.PasswordHasher interface.
// The default prefixes the password with "hashed:".
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCalledWith = password
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Verify implements the auth.PasswordHasher interface
func (m *MockPasswordHasher) Verify(hashedPassword, password string) bool {
	m.VerifyCalledWith.HashedPassword = hashedPassword
	m.VerifyCalledWith.Password = password
	m.VerifyCallCount++

	if m.VerifyFn != nil {
		return m.VerifyFn(hashedPassword, password)
	}
	return m.ShouldSucceed
}
