package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task validation errors
var (
	ErrEmptyTaskUserID = errors.New("task user ID cannot be empty")
	ErrEmptyTaskTitle  = errors.New("task title cannot be empty")
	ErrEmptyTaskUpdate = errors.New("task update has no fields")
)

// Task is a unit of work owned by exactly one user.
// A task is never removed from storage; Remove only sets IsDeleted.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsComplete  bool      `json:"isComplete"`
	IsDeleted   bool      `json:"isDeleted"`
	UserID      uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTask creates an incomplete, non-deleted task for the given owner.
// ID is assigned by storage.
func NewTask(userID uuid.UUID, title, description string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       title,
		Description: description,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the invariants every stored task must satisfy.
func (t *Task) Validate() error {
	if t.UserID == uuid.Nil {
		return NewValidationError("userId", "cannot be empty", ErrEmptyTaskUserID)
	}
	if strings.TrimSpace(t.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTaskTitle)
	}
	return nil
}

// TaskUpdate is a partial update. Nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsComplete  *bool   `json:"isComplete,omitempty"`
	IsDeleted   *bool   `json:"-"`
}

// IsEmpty reports whether the update would change nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.IsComplete == nil && u.IsDeleted == nil
}

// Validate rejects empty updates and blank titles.
func (u TaskUpdate) Validate() error {
	if u.IsEmpty() {
		return NewValidationError("", "at least one field must be provided", ErrEmptyTaskUpdate)
	}
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyTaskTitle)
	}
	return nil
}
