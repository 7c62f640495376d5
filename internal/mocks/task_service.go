package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/service"
)

// MockTaskService implements service.TaskService for handler tests.
// Unset functions fail with domain.ErrTaskNotFound.
type MockTaskService struct {
	CreateFn  func(ctx context.Context, userID uuid.UUID, input service.CreateTaskInput) (*domain.Task, error)
	FindAllFn func(ctx context.Context, userID uuid.UUID, query domain.TaskQuery) (*domain.TaskPage, error)
	FindOneFn func(ctx context.Context, userID uuid.UUID, id int64) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, userID uuid.UUID, id int64, update domain.TaskUpdate) (*domain.Task, error)
	RemoveFn  func(ctx context.Context, userID uuid.UUID, id int64) (*domain.Task, error)
}

var _ service.TaskService = (*MockTaskService)(nil)

// Create implements service.TaskService
func (m *MockTaskService) Create(ctx context.Context, userID uuid.UUID, input service.CreateTaskInput) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, userID, input)
	}
	return domain.NewTask(userID, input.Title, input.Description)
}

// FindAll implements service.TaskService
func (m *MockTaskService) FindAll(ctx context.Context, userID uuid.UUID, query domain.TaskQuery) (*domain.TaskPage, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx, userID, query)
	}
	q := query.WithDefaults()
	return &domain.TaskPage{Data: []*domain.Task{}, Metadata: domain.NewPageMetadata(0, q.Page, q.Limit)}, nil
}

// FindOne implements service.TaskService
func (m *MockTaskService) FindOne(ctx context.Context, userID uuid.UUID, id int64) (*domain.Task, error) {
	if m.FindOneFn != nil {
		return m.FindOneFn(ctx, userID, id)
	}
	return nil, domain.ErrTaskNotFound
}

// Update implements service.TaskService
func (m *MockTaskService) Update(ctx context.Context, userID uuid.UUID, id int64, update domain.TaskUpdate) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, userID, id, update)
	}
	return nil, domain.ErrTaskNotFound
}

// Remove implements service.TaskService
func (m *MockTaskService) Remove(ctx context.Context, userID uuid.UUID, id int64) (*domain.Task, error) {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, userID, id)
	}
	return nil, domain.ErrTaskNotFound
}
