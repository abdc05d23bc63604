package dto

import "github.com/aminrezaei/hr-panel-api/internal/models"

// TaskDTO is the wire representation of a task. Status and priority carry
// their display names.
type TaskDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
	IsDeleted   bool   `json:"is_deleted"`
}

// FromTask maps a persisted task onto its wire shape.
func FromTask(t models.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
		Priority:    t.Priority.String(),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		IsDeleted:   t.IsDeleted,
	}
}

// FromTasks maps a list of tasks onto wire shapes.
func FromTasks(tasks []models.Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, FromTask(t))
	}
	return out
}

// ToTask maps a wire task back onto the persisted shape. Unknown status and
// priority names fall back to Pending and Medium rather than erroring, and a
// blank created_at is replaced with today's date.
func (d TaskDTO) ToTask() models.Task {
	return models.Task{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Status:      models.ParseTaskStatus(d.Status),
		Priority:    models.ParseTaskPriority(d.Priority),
		DueDate:     d.DueDate,
		CreatedAt:   OrToday(d.CreatedAt),
		UpdatedAt:   d.UpdatedAt,
		IsDeleted:   d.IsDeleted,
	}
}
