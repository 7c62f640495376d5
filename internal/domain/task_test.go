package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	task, err := NewTask(userID, "Write report", "Quarterly numbers")
	require.NoError(t, err)

	assert.Equal(t, userID, task.UserID)
	assert.Equal(t, "Write report", task.Title)
	assert.Equal(t, "Quarterly numbers", task.Description)
	assert.False(t, task.IsComplete)
	assert.False(t, task.IsDeleted)
	assert.Zero(t, task.ID, "ID is assigned by storage")
	assert.False(t, task.CreatedAt.IsZero())

	_, err = NewTask(uuid.Nil, "title", "")
	assert.ErrorIs(t, err, ErrEmptyTaskUserID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewTask(userID, "   ", "")
	assert.ErrorIs(t, err, ErrEmptyTaskTitle)
}

func TestTaskUpdateValidate(t *testing.T) {
	t.Parallel()

	title := "new title"
	blank := " "
	done := true

	tests := []struct {
		name    string
		update  TaskUpdate
		wantErr error
	}{
		{name: "empty update", update: TaskUpdate{}, wantErr: ErrEmptyTaskUpdate},
		{name: "blank title", update: TaskUpdate{Title: &blank}, wantErr: ErrEmptyTaskTitle},
		{name: "title only", update: TaskUpdate{Title: &title}},
		{name: "completion only", update: TaskUpdate{IsComplete: &done}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.update.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}
