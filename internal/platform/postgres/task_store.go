package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
	"github.com/phrazzld/taskr-api/internal/store"
)

// taskColumns is the column list every task read selects, in scan order.
const taskColumns = "id, title, description, is_complete, is_deleted, user_id, created_at, updated_at"

// sortColumns whitelists the sortable fields. User input never reaches
// ORDER BY except through this map.
var sortColumns = map[domain.TaskSortField]string{
	domain.SortByCreatedAt:  "created_at",
	domain.SortByUpdatedAt:  "updated_at",
	domain.SortByTitle:      "title",
	domain.SortByIsComplete: "is_complete",
	domain.SortByID:         "id",
}

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.IsComplete,
		&t.IsDeleted,
		&t.UserID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// queryBuilder accumulates SQL fragments and numbered placeholders.
type queryBuilder struct {
	conds []string
	args  []any
}

// arg appends v to the argument list and returns its placeholder.
func (b *queryBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// where renders the accumulated conditions joined with AND.
func (b *queryBuilder) where() string {
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// newTaskQuery starts a builder scoped to the filter's owner.
// It refuses to build an unscoped query.
func newTaskQuery(filter store.TaskFilter) (*queryBuilder, error) {
	if filter.UserID == uuid.Nil {
		return nil, store.ErrMissingOwner
	}

	b := &queryBuilder{}
	b.conds = append(b.conds, "user_id = "+b.arg(filter.UserID))
	if filter.ID != 0 {
		b.conds = append(b.conds, "id = "+b.arg(filter.ID))
	}
	if !filter.IncludeDeleted {
		b.conds = append(b.conds, "is_deleted = FALSE")
	}
	if filter.Search != nil && *filter.Search != "" {
		p := b.arg("%" + escapeLike(*filter.Search) + "%")
		b.conds = append(b.conds,
			fmt.Sprintf(`(title ILIKE %s ESCAPE '\' OR description ILIKE %s ESCAPE '\')`, p, p))
	}
	if filter.IsComplete != nil {
		b.conds = append(b.conds, "is_complete = "+b.arg(*filter.IsComplete))
	}
	return b, nil
}

// escapeLike escapes the LIKE metacharacters in a user-supplied term so it
// matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// orderBy renders the ORDER BY clause. Unknown fields fall back to
// created_at ascending; id breaks ties so paging is stable.
func orderBy(sort store.TaskSort) string {
	col, ok := sortColumns[sort.Field]
	if !ok {
		col = sortColumns[domain.DefaultSortBy]
	}
	dir := "ASC"
	if sort.Order == domain.SortDesc {
		dir = "DESC"
	}
	if col == "id" {
		return " ORDER BY id " + dir
	}
	return " ORDER BY " + col + " " + dir + ", id ASC"
}

// Create implements store.TaskStore.Create.
// The database assigns the ID; timestamps are taken from the returned row.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO tasks (title, description, is_complete, is_deleted, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.Title,
		task.Description,
		task.IsComplete,
		task.IsDeleted,
		task.UserID,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("user_id", task.UserID.String()))
		return store.NewStoreError("task", "create", MapError(err))
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.String("user_id", task.UserID.String()))
	return nil
}

// Find implements store.TaskStore.Find.
func (s *PostgresTaskStore) Find(
	ctx context.Context,
	filter store.TaskFilter,
	sort store.TaskSort,
	offset, limit int,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b, err := newTaskQuery(filter)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + taskColumns + " FROM tasks" + b.where() + orderBy(sort)
	if limit > 0 {
		query += " LIMIT " + b.arg(limit)
	}
	if offset > 0 {
		query += " OFFSET " + b.arg(offset)
	}

	rows, err := s.db.QueryContext(ctx, query, b.args...)
	if err != nil {
		log.Error("failed to query tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", filter.UserID.String()))
		return nil, store.NewStoreError("task", "find", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close task rows", slog.String("error", cerr.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, store.NewStoreError("task", "find", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "find", MapError(err))
	}

	return tasks, nil
}

// Count implements store.TaskStore.Count.
func (s *PostgresTaskStore) Count(ctx context.Context, filter store.TaskFilter) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b, err := newTaskQuery(filter)
	if err != nil {
		return 0, err
	}

	var total int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tasks"+b.where(), b.args...).Scan(&total); err != nil {
		log.Error("failed to count tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", filter.UserID.String()))
		return 0, store.NewStoreError("task", "count", MapError(err))
	}
	return total, nil
}

// FindFirst implements store.TaskStore.FindFirst.
func (s *PostgresTaskStore) FindFirst(ctx context.Context, filter store.TaskFilter) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b, err := newTaskQuery(filter)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + taskColumns + " FROM tasks" + b.where() + " ORDER BY id ASC LIMIT 1"
	task, err := scanTask(s.db.QueryRowContext(ctx, query, b.args...))
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			log.Debug("task not found",
				slog.Int64("task_id", filter.ID),
				slog.String("user_id", filter.UserID.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to fetch task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", filter.ID))
		return nil, store.NewStoreError("task", "find_first", mapped)
	}
	return task, nil
}

// Update implements store.TaskStore.Update.
// Only non-nil fields are written; updated_at is always refreshed.
func (s *PostgresTaskStore) Update(
	ctx context.Context,
	key store.TaskKey,
	update domain.TaskUpdate,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if key.UserID == uuid.Nil {
		return nil, store.ErrMissingOwner
	}
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: empty task update", store.ErrInvalidEntity)
	}

	b := &queryBuilder{}
	var sets []string
	if update.Title != nil {
		sets = append(sets, "title = "+b.arg(*update.Title))
	}
	if update.Description != nil {
		sets = append(sets, "description = "+b.arg(*update.Description))
	}
	if update.IsComplete != nil {
		sets = append(sets, "is_complete = "+b.arg(*update.IsComplete))
	}
	if update.IsDeleted != nil {
		sets = append(sets, "is_deleted = "+b.arg(*update.IsDeleted))
	}
	sets = append(sets, "updated_at = NOW()")

	b.conds = append(b.conds, "id = "+b.arg(key.ID), "user_id = "+b.arg(key.UserID))

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + b.where() + " RETURNING " + taskColumns
	task, err := scanTask(s.db.QueryRowContext(ctx, query, b.args...))
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrNotFound) {
			log.Debug("task to update not found",
				slog.Int64("task_id", key.ID),
				slog.String("user_id", key.UserID.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", key.ID))
		return nil, store.NewStoreError("task", "update", mapped)
	}

	log.Debug("task updated",
		slog.Int64("task_id", task.ID),
		slog.Bool("is_deleted", task.IsDeleted))
	return task, nil
}
