package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
)

// TaskFilter selects tasks belonging to a single owner.
// UserID is mandatory; implementations return ErrMissingOwner when it is nil.
type TaskFilter struct {
	UserID uuid.UUID

	// ID restricts the filter to a single task when non-zero.
	ID int64

	// IncludeDeleted disables the is_deleted = false condition.
	IncludeDeleted bool

	// Search matches title OR description, case-insensitively.
	Search *string

	// IsComplete matches the completion flag exactly when set.
	IsComplete *bool
}

// TaskSort orders a task listing.
type TaskSort struct {
	Field domain.TaskSortField
	Order domain.SortOrder
}

// TaskKey identifies a single task for mutation: (id AND owner).
type TaskKey struct {
	ID     int64
	UserID uuid.UUID
}

// TaskStore defines the interface for task data persistence.
// Every method is scoped to one owner.
type TaskStore interface {
	// Create saves a new task and fills in its ID and timestamps.
	Create(ctx context.Context, task *domain.Task) error

	// Find returns one page of tasks matching the filter.
	Find(ctx context.Context, filter TaskFilter, sort TaskSort, offset, limit int) ([]*domain.Task, error)

	// Count returns the number of tasks matching the filter, ignoring paging.
	Count(ctx context.Context, filter TaskFilter) (int, error)

	// FindFirst returns the first task matching the filter.
	// Returns ErrTaskNotFound if none matches.
	FindFirst(ctx context.Context, filter TaskFilter) (*domain.Task, error)

	// Update applies a partial update to the task identified by key,
	// refreshes updated_at and returns the stored row.
	// Returns ErrTaskNotFound if no task matches key.
	Update(ctx context.Context, key TaskKey, update domain.TaskUpdate) (*domain.Task, error)
}
