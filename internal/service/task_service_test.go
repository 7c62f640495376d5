package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/mocks"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
	"github.com/phrazzld/taskr-api/internal/service"
	"github.com/phrazzld/taskr-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTaskService(t *testing.T, tasks *mocks.MockTaskStore) service.TaskService {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	svc, err := service.NewTaskService(tasks, log)
	require.NoError(t, err)
	return svc
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTaskService_Create(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("creates incomplete task", func(t *testing.T) {
		t.Parallel()
		var stored *domain.Task
		tasks := &mocks.MockTaskStore{
			CreateFn: func(_ context.Context, task *domain.Task) error {
				task.ID = 7
				stored = task
				return nil
			},
		}
		svc := newTaskService(t, tasks)

		got, err := svc.Create(context.Background(), userID, service.CreateTaskInput{
			Title:       "Write report",
			Description: "Quarterly numbers",
		})
		require.NoError(t, err)
		assert.Same(t, stored, got)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, userID, got.UserID)
		assert.False(t, got.IsComplete)
		assert.False(t, got.IsDeleted)
	})

	t.Run("blank title", func(t *testing.T) {
		t.Parallel()
		tasks := &mocks.MockTaskStore{}
		svc := newTaskService(t, tasks)

		_, err := svc.Create(context.Background(), userID, service.CreateTaskInput{Title: " "})
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, tasks.Calls())
	})

	t.Run("missing owner", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(t, &mocks.MockTaskStore{})

		_, err := svc.Create(context.Background(), uuid.Nil, service.CreateTaskInput{Title: "x"})
		require.ErrorIs(t, err, service.ErrMissingOwner)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		dbErr := errors.New("disk full")
		tasks := &mocks.MockTaskStore{
			CreateFn: func(context.Context, *domain.Task) error { return dbErr },
		}
		svc := newTaskService(t, tasks)

		_, err := svc.Create(context.Background(), userID, service.CreateTaskInput{Title: "x"})
		require.ErrorIs(t, err, dbErr)
	})
}

func TestTaskService_FindAll(t *testing.T) {
	userID := uuid.New()

	t.Run("defaults and metadata", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

		var gotFilter store.TaskFilter
		var gotSort store.TaskSort
		var gotOffset, gotLimit int
		tasks := &mocks.MockTaskStore{
			FindFn: func(_ context.Context, f store.TaskFilter, s store.TaskSort, offset, limit int) ([]*domain.Task, error) {
				gotFilter, gotSort, gotOffset, gotLimit = f, s, offset, limit
				return []*domain.Task{{ID: 1, UserID: userID}}, nil
			},
			CountFn: func(context.Context, store.TaskFilter) (int, error) { return 1, nil },
		}
		svc := newTaskService(t, tasks)

		page, err := svc.FindAll(context.Background(), userID, domain.TaskQuery{})
		require.NoError(t, err)

		assert.Equal(t, userID, gotFilter.UserID)
		assert.False(t, gotFilter.IncludeDeleted)
		assert.Nil(t, gotFilter.Search)
		assert.Nil(t, gotFilter.IsComplete)
		assert.Equal(t, store.TaskSort{Field: domain.SortByCreatedAt, Order: domain.SortAsc}, gotSort)
		assert.Equal(t, 0, gotOffset)
		assert.Equal(t, 10, gotLimit)

		require.Len(t, page.Data, 1)
		assert.Equal(t, domain.PageMetadata{
			Total: 1, Page: 1, Limit: 10, TotalPages: 1,
		}, page.Metadata)
	})

	t.Run("second page with filters", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

		var countFilter store.TaskFilter
		var gotOffset, gotLimit int
		tasks := &mocks.MockTaskStore{
			FindFn: func(_ context.Context, _ store.TaskFilter, _ store.TaskSort, offset, limit int) ([]*domain.Task, error) {
				gotOffset, gotLimit = offset, limit
				return []*domain.Task{{ID: 11}, {ID: 12}}, nil
			},
			CountFn: func(_ context.Context, f store.TaskFilter) (int, error) {
				countFilter = f
				return 15, nil
			},
		}
		svc := newTaskService(t, tasks)

		page, err := svc.FindAll(context.Background(), userID, domain.TaskQuery{
			Search:     strPtr("report"),
			IsComplete: boolPtr(false),
			SortBy:     domain.SortByTitle,
			SortOrder:  domain.SortDesc,
			Page:       2,
			Limit:      10,
		})
		require.NoError(t, err)

		assert.Equal(t, 10, gotOffset)
		assert.Equal(t, 10, gotLimit)
		require.NotNil(t, countFilter.Search)
		assert.Equal(t, "report", *countFilter.Search)
		require.NotNil(t, countFilter.IsComplete)
		assert.False(t, *countFilter.IsComplete)

		assert.Equal(t, domain.PageMetadata{
			Total: 15, Page: 2, Limit: 10, TotalPages: 2,
			HasNextPage: false, HasPreviousPage: true,
		}, page.Metadata)
	})

	t.Run("empty result is not nil", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

		tasks := &mocks.MockTaskStore{
			FindFn: func(context.Context, store.TaskFilter, store.TaskSort, int, int) ([]*domain.Task, error) {
				return nil, nil
			},
		}
		svc := newTaskService(t, tasks)

		page, err := svc.FindAll(context.Background(), userID, domain.TaskQuery{})
		require.NoError(t, err)
		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
		assert.Equal(t, 0, page.Metadata.TotalPages)
		assert.False(t, page.Metadata.HasNextPage)
	})

	t.Run("reads run concurrently", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

		var inFlight atomic.Int32
		bothStarted := make(chan struct{})
		arrive := func() {
			if inFlight.Add(1) == 2 {
				close(bothStarted)
			}
		}
		wait := func(ctx context.Context) error {
			select {
			case <-bothStarted:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return errors.New("reads were not concurrent")
			}
		}
		tasks := &mocks.MockTaskStore{
			FindFn: func(ctx context.Context, _ store.TaskFilter, _ store.TaskSort, _, _ int) ([]*domain.Task, error) {
				arrive()
				return []*domain.Task{}, wait(ctx)
			},
			CountFn: func(ctx context.Context, _ store.TaskFilter) (int, error) {
				arrive()
				return 0, wait(ctx)
			},
		}
		svc := newTaskService(t, tasks)

		_, err := svc.FindAll(context.Background(), userID, domain.TaskQuery{})
		require.NoError(t, err)
	})

	t.Run("count failure fails the call", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

		countErr := errors.New("count failed")
		tasks := &mocks.MockTaskStore{
			CountFn: func(context.Context, store.TaskFilter) (int, error) { return 0, countErr },
		}
		svc := newTaskService(t, tasks)

		page, err := svc.FindAll(context.Background(), userID, domain.TaskQuery{})
		assert.Nil(t, page)
		require.ErrorIs(t, err, countErr)
	})

	t.Run("find failure fails the call", func(t *testing.T) {
		defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

		findErr := errors.New("find failed")
		tasks := &mocks.MockTaskStore{
			FindFn: func(context.Context, store.TaskFilter, store.TaskSort, int, int) ([]*domain.Task, error) {
				return nil, findErr
			},
		}
		svc := newTaskService(t, tasks)

		_, err := svc.FindAll(context.Background(), userID, domain.TaskQuery{})
		require.ErrorIs(t, err, findErr)
	})
}

func TestTaskService_FindOne(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		var gotFilter store.TaskFilter
		want := &domain.Task{ID: 3, UserID: userID, Title: "x"}
		tasks := &mocks.MockTaskStore{
			FindFirstFn: func(_ context.Context, f store.TaskFilter) (*domain.Task, error) {
				gotFilter = f
				return want, nil
			},
		}
		svc := newTaskService(t, tasks)

		got, err := svc.FindOne(context.Background(), userID, 3)
		require.NoError(t, err)
		assert.Same(t, want, got)
		assert.Equal(t, store.TaskFilter{UserID: userID, ID: 3}, gotFilter)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(t, &mocks.MockTaskStore{})

		_, err := svc.FindOne(context.Background(), userID, 99)
		require.ErrorIs(t, err, domain.ErrTaskNotFound)
		assert.Equal(t, "task not found", err.Error())
	})
}

func TestTaskService_Update(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("merges provided fields", func(t *testing.T) {
		t.Parallel()
		var gotKey store.TaskKey
		var gotUpdate domain.TaskUpdate
		tasks := &mocks.MockTaskStore{
			UpdateFn: func(_ context.Context, key store.TaskKey, u domain.TaskUpdate) (*domain.Task, error) {
				gotKey, gotUpdate = key, u
				return &domain.Task{ID: key.ID, UserID: key.UserID, IsComplete: true}, nil
			},
		}
		svc := newTaskService(t, tasks)

		got, err := svc.Update(context.Background(), userID, 5, domain.TaskUpdate{IsComplete: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, got.IsComplete)
		assert.Equal(t, store.TaskKey{ID: 5, UserID: userID}, gotKey)
		assert.Nil(t, gotUpdate.Title)
		assert.Nil(t, gotUpdate.IsDeleted)
	})

	t.Run("cannot set deleted flag", func(t *testing.T) {
		t.Parallel()
		tasks := &mocks.MockTaskStore{}
		svc := newTaskService(t, tasks)

		_, err := svc.Update(context.Background(), userID, 5, domain.TaskUpdate{IsDeleted: boolPtr(true)})
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Empty(t, tasks.Calls())
	})

	t.Run("empty update", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(t, &mocks.MockTaskStore{})

		_, err := svc.Update(context.Background(), userID, 5, domain.TaskUpdate{})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("other owner's task is not found", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(t, &mocks.MockTaskStore{})

		_, err := svc.Update(context.Background(), userID, 5, domain.TaskUpdate{Title: strPtr("x")})
		require.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}

func TestTaskService_Remove(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("soft deletes", func(t *testing.T) {
		t.Parallel()
		var gotUpdate domain.TaskUpdate
		tasks := &mocks.MockTaskStore{
			UpdateFn: func(_ context.Context, key store.TaskKey, u domain.TaskUpdate) (*domain.Task, error) {
				gotUpdate = u
				return &domain.Task{ID: key.ID, UserID: key.UserID, IsDeleted: true}, nil
			},
		}
		svc := newTaskService(t, tasks)

		got, err := svc.Remove(context.Background(), userID, 4)
		require.NoError(t, err)
		assert.True(t, got.IsDeleted)
		require.NotNil(t, gotUpdate.IsDeleted)
		assert.True(t, *gotUpdate.IsDeleted)
		assert.Nil(t, gotUpdate.Title)
		assert.Equal(t, []string{"Update"}, tasks.Calls())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		svc := newTaskService(t, &mocks.MockTaskStore{})

		_, err := svc.Remove(context.Background(), userID, 4)
		require.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("missing owner from store", func(t *testing.T) {
		t.Parallel()
		tasks := &mocks.MockTaskStore{
			UpdateFn: func(context.Context, store.TaskKey, domain.TaskUpdate) (*domain.Task, error) {
				return nil, store.ErrMissingOwner
			},
		}
		svc := newTaskService(t, tasks)

		_, err := svc.Remove(context.Background(), userID, 4)
		require.ErrorIs(t, err, service.ErrMissingOwner)
	})
}
