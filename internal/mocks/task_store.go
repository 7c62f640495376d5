package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// It is safe for concurrent use because Find and Count run in parallel.
type MockTaskStore struct {
	CreateFn    func(ctx context.Context, task *domain.Task) error
	FindFn      func(ctx context.Context, filter store.TaskFilter, sort store.TaskSort, offset, limit int) ([]*domain.Task, error)
	CountFn     func(ctx context.Context, filter store.TaskFilter) (int, error)
	FindFirstFn func(ctx context.Context, filter store.TaskFilter) (*domain.Task, error)
	UpdateFn    func(ctx context.Context, key store.TaskKey, update domain.TaskUpdate) (*domain.Task, error)

	mu    sync.Mutex
	calls []string
}

var _ store.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

// Calls returns the names of the methods invoked so far.
func (m *MockTaskStore) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Create implements store.TaskStore
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	m.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	return nil
}

// Find implements store.TaskStore
func (m *MockTaskStore) Find(
	ctx context.Context,
	filter store.TaskFilter,
	sort store.TaskSort,
	offset, limit int,
) ([]*domain.Task, error) {
	m.record("Find")
	if m.FindFn != nil {
		return m.FindFn(ctx, filter, sort, offset, limit)
	}
	return []*domain.Task{}, nil
}

// Count implements store.TaskStore
func (m *MockTaskStore) Count(ctx context.Context, filter store.TaskFilter) (int, error) {
	m.record("Count")
	if m.CountFn != nil {
		return m.CountFn(ctx, filter)
	}
	return 0, nil
}

// FindFirst implements store.TaskStore
func (m *MockTaskStore) FindFirst(ctx context.Context, filter store.TaskFilter) (*domain.Task, error) {
	m.record("FindFirst")
	if m.FindFirstFn != nil {
		return m.FindFirstFn(ctx, filter)
	}
	return nil, store.ErrTaskNotFound
}

// Update implements store.TaskStore
func (m *MockTaskStore) Update(
	ctx context.Context,
	key store.TaskKey,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	m.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, key, update)
	}
	return nil, store.ErrTaskNotFound
}
