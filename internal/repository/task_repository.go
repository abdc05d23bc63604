package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/aminrezaei/hr-panel-api/internal/models"
)

const taskColumns = "id, title, description, status, priority, due_date, created_at, updated_at, is_deleted"

// TaskRepository manages persistence for tasks. Deleted tasks stay in the
// table with is_deleted = TRUE and are invisible to every read here.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository constructs a TaskRepository.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// List returns all non-deleted tasks, newest first.
func (r *TaskRepository) List(ctx context.Context) ([]models.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE is_deleted = FALSE ORDER BY id DESC", taskColumns)
	var tasks []models.Task
	if err := r.db.SelectContext(ctx, &tasks, query); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// FindByID fetches a non-deleted task by ID.
func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE id = $1 AND is_deleted = FALSE", taskColumns)
	var task models.Task
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		return nil, err
	}
	return &task, nil
}

// Create inserts a new task record and captures the assigned id.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	const query = `INSERT INTO tasks (title, description, status, priority, due_date, created_at, updated_at, is_deleted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		task.CreatedAt,
		task.UpdatedAt,
		task.IsDeleted,
	).Scan(&task.ID); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Update persists the mutable task fields.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	const query = `UPDATE tasks SET title = :title, description = :description, status = :status, priority = :priority, due_date = :due_date, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, task); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// SoftDelete flips the is_deleted flag; the record is never removed.
func (r *TaskRepository) SoftDelete(ctx context.Context, id int64, updatedAt string) error {
	const query = `UPDATE tasks SET is_deleted = TRUE, updated_at = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, updatedAt); err != nil {
		return fmt.Errorf("soft delete task: %w", err)
	}
	return nil
}
