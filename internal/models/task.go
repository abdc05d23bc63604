package models

import "strings"

// TaskStatus enumerates task workflow states.
type TaskStatus int

const (
	TaskStatusPending TaskStatus = iota + 1
	TaskStatusInProgress
	TaskStatusCompleted
	TaskStatusCancelled
)

var taskStatusNames = map[TaskStatus]string{
	TaskStatusPending:    "Pending",
	TaskStatusInProgress: "InProgress",
	TaskStatusCompleted:  "Completed",
	TaskStatusCancelled:  "Cancelled",
}

// String returns the display name of the status.
func (s TaskStatus) String() string {
	if name, ok := taskStatusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// ParseTaskStatus resolves a status name case-insensitively. Unknown names
// fall back to Pending; the API is intentionally lenient here.
func ParseTaskStatus(raw string) TaskStatus {
	for value, name := range taskStatusNames {
		if strings.EqualFold(name, raw) {
			return value
		}
	}
	return TaskStatusPending
}

// TaskPriority enumerates task priorities.
type TaskPriority int

const (
	TaskPriorityLow TaskPriority = iota + 1
	TaskPriorityMedium
	TaskPriorityHigh
	TaskPriorityCritical
)

var taskPriorityNames = map[TaskPriority]string{
	TaskPriorityLow:      "Low",
	TaskPriorityMedium:   "Medium",
	TaskPriorityHigh:     "High",
	TaskPriorityCritical: "Critical",
}

// String returns the display name of the priority.
func (p TaskPriority) String() string {
	if name, ok := taskPriorityNames[p]; ok {
		return name
	}
	return "Unknown"
}

// ParseTaskPriority resolves a priority name case-insensitively. Unknown
// names fall back to Medium.
func ParseTaskPriority(raw string) TaskPriority {
	for value, name := range taskPriorityNames {
		if strings.EqualFold(name, raw) {
			return value
		}
	}
	return TaskPriorityMedium
}

// Task represents a work item. Tasks are soft-deleted: every read filters
// is_deleted = FALSE and delete only flips the flag.
type Task struct {
	ID          int64        `db:"id" json:"id"`
	Title       string       `db:"title" json:"title"`
	Description string       `db:"description" json:"description,omitempty"`
	Status      TaskStatus   `db:"status" json:"status"`
	Priority    TaskPriority `db:"priority" json:"priority"`
	DueDate     string       `db:"due_date" json:"due_date"`
	CreatedAt   string       `db:"created_at" json:"created_at"`
	UpdatedAt   string       `db:"updated_at" json:"updated_at"`
	IsDeleted   bool         `db:"is_deleted" json:"is_deleted"`
}
