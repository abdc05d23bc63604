package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aminrezaei/hr-panel-api/internal/dto"
	"github.com/aminrezaei/hr-panel-api/internal/models"
	"github.com/aminrezaei/hr-panel-api/internal/service"
	"github.com/aminrezaei/hr-panel-api/internal/validation"
)

type stubTaskRepo struct {
	items  map[int64]*models.Task
	nextID int64
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{items: make(map[int64]*models.Task), nextID: 1}
}

func (s *stubTaskRepo) List(ctx context.Context) ([]models.Task, error) {
	out := make([]models.Task, 0, len(s.items))
	for _, task := range s.items {
		if task.IsDeleted {
			continue
		}
		out = append(out, *task)
	}
	return out, nil
}

func (s *stubTaskRepo) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	task, ok := s.items[id]
	if !ok || task.IsDeleted {
		return nil, sql.ErrNoRows
	}
	cp := *task
	return &cp, nil
}

func (s *stubTaskRepo) Create(ctx context.Context, task *models.Task) error {
	task.ID = s.nextID
	s.nextID++
	cp := *task
	s.items[task.ID] = &cp
	return nil
}

func (s *stubTaskRepo) Update(ctx context.Context, task *models.Task) error {
	cp := *task
	s.items[task.ID] = &cp
	return nil
}

func (s *stubTaskRepo) SoftDelete(ctx context.Context, id int64, updatedAt string) error {
	if task, ok := s.items[id]; ok {
		task.IsDeleted = true
		task.UpdatedAt = updatedAt
	}
	return nil
}

func newTaskRouter(t *testing.T) (*gin.Engine, *stubTaskRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := newStubTaskRepo()
	svc := service.NewTaskService(repo, nil, time.Minute, nil, validation.New(), zap.NewNop())

	r := gin.New()
	api := r.Group("/api/v1")
	NewTaskHandler(svc).Register(api)
	return r, repo
}

const taskPayload = `{"title": "Buy milk", "due_date": "1404/07/01"}`

func TestTaskHandlerCreateAppliesDefaults(t *testing.T) {
	r, _ := newTaskRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/tasks", taskPayload)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "task created successfully", env.Message)

	var task dto.TaskDTO
	require.NoError(t, json.Unmarshal(env.Data, &task))
	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "Pending", task.Status)
	assert.Equal(t, "Medium", task.Priority)
	assert.NotEmpty(t, task.CreatedAt)
}

func TestTaskHandlerCreateMalformedJSON(t *testing.T) {
	r, _ := newTaskRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/tasks", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "invalid task payload", env.Message)
}

func TestTaskHandlerCreateValidationFailure(t *testing.T) {
	r, _ := newTaskRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/tasks", `{"title": "", "due_date": "someday"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "title is required")
	assert.Contains(t, env.Message, "due_date must match the yyyy/MM/dd format")
}

func TestTaskHandlerListEmpty(t *testing.T) {
	r, _ := newTaskRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/tasks", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestTaskHandlerGetNotFound(t *testing.T) {
	r, _ := newTaskRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/tasks/42", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "task not found", env.Message)
}

func TestTaskHandlerUpdateOverwrites(t *testing.T) {
	r, repo := newTaskRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/tasks", taskPayload)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodPut, "/api/v1/tasks/1", `{"title": "Buy oat milk", "status": "Completed", "priority": "Low", "due_date": "1404/07/02"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var task dto.TaskDTO
	require.NoError(t, json.Unmarshal(env.Data, &task))
	assert.Equal(t, "Buy oat milk", task.Title)
	assert.Equal(t, "Completed", task.Status)
	assert.Equal(t, "Low", task.Priority)
	assert.Equal(t, models.TaskStatusCompleted, repo.items[1].Status)
}

func TestTaskHandlerSoftDelete(t *testing.T) {
	r, repo := newTaskRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/v1/tasks", taskPayload)
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, r, http.MethodDelete, "/api/v1/tasks/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"id": 1}`, string(env.Data))

	require.Contains(t, repo.items, int64(1))
	assert.True(t, repo.items[1].IsDeleted)

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/tasks/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
