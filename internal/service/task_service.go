package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/store"
	"golang.org/x/sync/errgroup"
)

// CreateTaskInput carries the fields accepted when creating a task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// TaskService manages the tasks of a single authenticated user.
// Every operation is scoped to userID; tasks of other users are invisible.
type TaskService interface {
	// Create stores a new incomplete task owned by userID.
	Create(ctx context.Context, userID uuid.UUID, input CreateTaskInput) (*domain.Task, error)

	// FindAll returns one page of the user's non-deleted tasks with metadata.
	FindAll(ctx context.Context, userID uuid.UUID, query domain.TaskQuery) (*domain.TaskPage, error)

	// FindOne returns a single non-deleted task.
	// Fails with domain.ErrTaskNotFound if it does not exist or is not owned by userID.
	FindOne(ctx context.Context, userID uuid.UUID, id int64) (*domain.Task, error)

	// Update applies a partial update and returns the stored task.
	Update(ctx context.Context, userID uuid.UUID, id int64, update domain.TaskUpdate) (*domain.Task, error)

	// Remove soft-deletes a task and returns it.
	Remove(ctx context.Context, userID uuid.UUID, id int64) (*domain.Task, error)
}

type taskService struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

var _ TaskService = (*taskService)(nil)

// NewTaskService creates a new TaskService.
func NewTaskService(tasks store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if tasks == nil {
		return nil, errors.New("tasks cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &taskService{
		tasks:  tasks,
		logger: logger.With("component", "task_service"),
	}, nil
}

func (s *taskService) Create(ctx context.Context, userID uuid.UUID, input CreateTaskInput) (*domain.Task, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	task, err := domain.NewTask(userID, input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.ErrorContext(ctx, "failed to create task", "error", err, "user_id", userID)
		return nil, mapTaskError("create", err)
	}

	s.logger.DebugContext(ctx, "task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// FindAll reads the requested page and the total match count concurrently.
// Both reads share the filter; if either fails the call fails.
func (s *taskService) FindAll(
	ctx context.Context,
	userID uuid.UUID,
	query domain.TaskQuery,
) (*domain.TaskPage, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	q := query.WithDefaults()
	filter := store.TaskFilter{
		UserID:     userID,
		Search:     q.Search,
		IsComplete: q.IsComplete,
	}
	sort := store.TaskSort{Field: q.SortBy, Order: q.SortOrder}

	var (
		tasks []*domain.Task
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.tasks.Find(gctx, filter, sort, q.Offset(), q.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.tasks.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks", "error", err, "user_id", userID)
		return nil, mapTaskError("list", err)
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}

	return &domain.TaskPage{
		Data:     tasks,
		Metadata: domain.NewPageMetadata(total, q.Page, q.Limit),
	}, nil
}

func (s *taskService) FindOne(ctx context.Context, userID uuid.UUID, id int64) (*domain.Task, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	task, err := s.tasks.FindFirst(ctx, store.TaskFilter{UserID: userID, ID: id})
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.ErrorContext(ctx, "failed to fetch task", "error", err, "task_id", id)
		}
		return nil, mapTaskError("fetch", err)
	}
	return task, nil
}

// Update merges the non-nil fields of update into the task.
// The soft-delete flag cannot be set through Update; use Remove.
func (s *taskService) Update(
	ctx context.Context,
	userID uuid.UUID,
	id int64,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	update.IsDeleted = nil
	if err := update.Validate(); err != nil {
		return nil, err
	}

	task, err := s.tasks.Update(ctx, store.TaskKey{ID: id, UserID: userID}, update)
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.ErrorContext(ctx, "failed to update task", "error", err, "task_id", id)
		}
		return nil, mapTaskError("update", err)
	}

	s.logger.DebugContext(ctx, "task updated", "task_id", id, "user_id", userID)
	return task, nil
}

func (s *taskService) Remove(ctx context.Context, userID uuid.UUID, id int64) (*domain.Task, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingOwner
	}

	deleted := true
	task, err := s.tasks.Update(ctx, store.TaskKey{ID: id, UserID: userID}, domain.TaskUpdate{IsDeleted: &deleted})
	if err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.ErrorContext(ctx, "failed to remove task", "error", err, "task_id", id)
		}
		return nil, mapTaskError("remove", err)
	}

	s.logger.InfoContext(ctx, "task removed", "task_id", id, "user_id", userID)
	return task, nil
}
