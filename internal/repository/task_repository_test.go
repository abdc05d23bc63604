package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aminrezaei/hr-panel-api/internal/models"
)

func taskRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "status", "priority", "due_date",
		"created_at", "updated_at", "is_deleted",
	})
}

func TestTaskRepositoryListFiltersDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	rows := taskRows().
		AddRow(2, "Buy milk", "", 1, 2, "1404/07/01", "1404/06/20", "1404/06/20", false)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, status, priority, due_date, created_at, updated_at, is_deleted FROM tasks WHERE is_deleted = FALSE ORDER BY id DESC")).
		WillReturnRows(rows)

	tasks, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepositoryFindByIDFiltersDeleted(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	query := regexp.QuoteMeta("FROM tasks WHERE id = $1 AND is_deleted = FALSE")

	mock.ExpectQuery(query).
		WithArgs(int64(5)).
		WillReturnRows(taskRows().AddRow(5, "Draft report", "numbers", 2, 3, "1404/07/05", "1404/06/20", "1404/06/21", false))

	task, err := repo.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusInProgress, task.Status)
	assert.Equal(t, models.TaskPriorityHigh, task.Priority)

	mock.ExpectQuery(query).
		WithArgs(int64(6)).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindByID(context.Background(), 6)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepositoryCreateCapturesID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery("INSERT INTO tasks .+ RETURNING id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	task := &models.Task{
		Title:     "Buy milk",
		Status:    models.TaskStatusPending,
		Priority:  models.TaskPriorityMedium,
		DueDate:   "1404/07/01",
		CreatedAt: "1404/06/20",
		UpdatedAt: "1404/06/20",
	}
	require.NoError(t, repo.Create(context.Background(), task))
	assert.Equal(t, int64(11), task.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepositoryUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectExec("UPDATE tasks SET title = .+ WHERE id = .+").
		WillReturnResult(sqlmock.NewResult(0, 1))

	task := &models.Task{
		ID:        11,
		Title:     "Buy oat milk",
		Status:    models.TaskStatusCompleted,
		Priority:  models.TaskPriorityLow,
		DueDate:   "1404/07/02",
		UpdatedAt: "1404/06/21",
	}
	require.NoError(t, repo.Update(context.Background(), task))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepositorySoftDeleteKeepsRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE tasks SET is_deleted = TRUE, updated_at = $2 WHERE id = $1")).
		WithArgs(int64(11), "1404/06/22").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SoftDelete(context.Background(), 11, "1404/06/22"))
	require.NoError(t, mock.ExpectationsWereMet())
}
