package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/aminrezaei/hr-panel-api/internal/dto"
	"github.com/aminrezaei/hr-panel-api/internal/models"
	"github.com/aminrezaei/hr-panel-api/internal/validation"
	appErrors "github.com/aminrezaei/hr-panel-api/pkg/errors"
)

const (
	taskListCacheKey   = "tasks:all"
	taskCachePattern   = "tasks:*"
	taskItemCacheKeyFn = "tasks:%d"
)

type taskRepository interface {
	List(ctx context.Context) ([]models.Task, error)
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	SoftDelete(ctx context.Context, id int64, updatedAt string) error
}

// TaskCache is the read-side cache contract; a nil value disables caching.
type TaskCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// CreateTaskRequest represents the payload for creating tasks. Status and
// priority are parsed leniently and fall back to Pending/Medium when the
// name is unknown.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date" validate:"required,jdate"`
	CreatedAt   string `json:"created_at" validate:"omitempty,jdate"`
}

// UpdateTaskRequest represents the payload for updating tasks. Unlike the
// employee update this is a full overwrite of every mutable field.
type UpdateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date" validate:"required,jdate"`
}

// TaskService orchestrates task operations with an optional cache-aside
// layer over the read path.
type TaskService struct {
	repo      taskRepository
	cache     TaskCache
	cacheTTL  time.Duration
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTaskService constructs a TaskService. Passing a nil cache disables the
// read-side cache entirely.
func NewTaskService(repo taskRepository, cache TaskCache, cacheTTL time.Duration, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *TaskService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{repo: repo, cache: cache, cacheTTL: cacheTTL, metrics: metrics, validator: validate, logger: logger}
}

// List returns all non-deleted tasks as wire DTOs, newest first.
func (s *TaskService) List(ctx context.Context) ([]dto.TaskDTO, error) {
	var cached []dto.TaskDTO
	if s.lookupCache(ctx, taskListCacheKey, &cached) {
		return cached, nil
	}

	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tasks")
	}

	result := dto.FromTasks(tasks)
	s.fillCache(ctx, taskListCacheKey, result)
	return result, nil
}

// Get returns a non-deleted task by id. Soft-deleted tasks surface as not
// found.
func (s *TaskService) Get(ctx context.Context, id int64) (*dto.TaskDTO, error) {
	key := fmt.Sprintf(taskItemCacheKeyFn, id)
	var cached dto.TaskDTO
	if s.lookupCache(ctx, key, &cached) {
		return &cached, nil
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load task")
	}

	result := dto.FromTask(*task)
	s.fillCache(ctx, key, result)
	return &result, nil
}

// Create validates and persists a new task, stamping created_at when the
// payload leaves it blank.
func (s *TaskService) Create(ctx context.Context, req CreateTaskRequest) (*dto.TaskDTO, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err)
	}

	stamp := dto.OrToday(req.CreatedAt)
	task := &models.Task{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Status:      models.ParseTaskStatus(req.Status),
		Priority:    models.ParseTaskPriority(req.Priority),
		DueDate:     req.DueDate,
		CreatedAt:   stamp,
		UpdatedAt:   stamp,
		IsDeleted:   false,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create task")
	}

	s.invalidateCache(ctx)
	result := dto.FromTask(*task)
	return &result, nil
}

// Update overwrites every mutable field of an existing task and stamps
// updated_at.
func (s *TaskService) Update(ctx context.Context, id int64, req UpdateTaskRequest) (*dto.TaskDTO, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load task")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err)
	}

	task.Title = strings.TrimSpace(req.Title)
	task.Description = strings.TrimSpace(req.Description)
	task.Status = models.ParseTaskStatus(req.Status)
	task.Priority = models.ParseTaskPriority(req.Priority)
	task.DueDate = req.DueDate
	task.UpdatedAt = dto.Today()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update task")
	}

	s.invalidateCache(ctx)
	result := dto.FromTask(*task)
	return &result, nil
}

// Delete marks a task deleted; the record stays in the store.
func (s *TaskService) Delete(ctx context.Context, id int64) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load task")
	}

	if err := s.repo.SoftDelete(ctx, id, dto.Today()); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete task")
	}

	s.invalidateCache(ctx)
	return id, nil
}

func (s *TaskService) lookupCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	start := time.Now()
	err := s.cache.Get(ctx, key, dest)
	if err != nil {
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("task cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		s.metrics.RecordCacheOperation(false, time.Since(start))
		return false
	}
	s.metrics.RecordCacheOperation(true, time.Since(start))
	return true
}

func (s *TaskService) fillCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Warn("task cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *TaskService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, taskCachePattern); err != nil {
		s.logger.Warn("task cache invalidation failed", zap.Error(err))
	}
}
