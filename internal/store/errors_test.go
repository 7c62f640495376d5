package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, expected: true},
		{name: "wrapped ErrTaskNotFound", err: fmt.Errorf("find task: %w", ErrTaskNotFound), expected: true},
		{name: "store error wrapping not found", err: NewStoreError("task", "update", ErrTaskNotFound), expected: true},
		{name: "duplicate", err: ErrEmailExists, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("create user: %w", ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrUserNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewStoreError("task", "count", cause)

	assert.Equal(t, "count operation on task failed: connection reset", err.Error())
	assert.ErrorIs(t, err, cause)

	var storeErr *StoreError
	assert.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &storeErr))
	assert.Equal(t, "task", storeErr.Entity)
}
