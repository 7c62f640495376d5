package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

var taskRowColumns = []string{
	"id", "title", "description", "is_complete", "is_deleted", "user_id", "created_at", "updated_at",
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func newTestTaskStore(t *testing.T) (*PostgresTaskStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	log, _ := logger.NewTestLogger(t)
	return NewPostgresTaskStore(db, log), mock
}

func newTestUserStore(t *testing.T) (*PostgresUserStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	log, _ := logger.NewTestLogger(t)
	return NewPostgresUserStore(db, log), mock
}

func taskRows(tasks ...*domain.Task) *sqlmock.Rows {
	rows := sqlmock.NewRows(taskRowColumns)
	for _, t := range tasks {
		rows.AddRow(t.ID, t.Title, t.Description, t.IsComplete, t.IsDeleted, t.UserID.String(), t.CreatedAt, t.UpdatedAt)
	}
	return rows
}

func sampleTask(id int64, owner uuid.UUID) *domain.Task {
	ts := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.Task{
		ID:          id,
		Title:       "Write report",
		Description: "Quarterly numbers",
		UserID:      owner,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
