package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskStatus(t *testing.T) {
	assert.Equal(t, TaskStatusInProgress, ParseTaskStatus("InProgress"))
	assert.Equal(t, TaskStatusCompleted, ParseTaskStatus("completed"))
	assert.Equal(t, TaskStatusCancelled, ParseTaskStatus("CANCELLED"))

	// Unknown and blank names fall back to Pending.
	assert.Equal(t, TaskStatusPending, ParseTaskStatus("bogus"))
	assert.Equal(t, TaskStatusPending, ParseTaskStatus(""))
}

func TestParseTaskPriority(t *testing.T) {
	assert.Equal(t, TaskPriorityCritical, ParseTaskPriority("critical"))
	assert.Equal(t, TaskPriorityLow, ParseTaskPriority("Low"))

	assert.Equal(t, TaskPriorityMedium, ParseTaskPriority("urgent-ish"))
	assert.Equal(t, TaskPriorityMedium, ParseTaskPriority(""))
}

func TestTaskEnumNames(t *testing.T) {
	assert.Equal(t, "Pending", TaskStatusPending.String())
	assert.Equal(t, "Critical", TaskPriorityCritical.String())
	assert.Equal(t, "Unknown", TaskStatus(99).String())
	assert.Equal(t, "Unknown", TaskPriority(0).String())
}
