package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aminrezaei/hr-panel-api/internal/service"
	appErrors "github.com/aminrezaei/hr-panel-api/pkg/errors"
	"github.com/aminrezaei/hr-panel-api/pkg/response"
)

// TaskHandler wires task services to HTTP routes.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler constructs a new TaskHandler.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// Register mounts the task routes.
func (h *TaskHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/tasks")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List godoc
// @Summary List tasks
// @Tags Tasks
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.tasks.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "tasks retrieved successfully", tasks)
}

// Get godoc
// @Summary Get task detail
// @Tags Tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} response.Envelope
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	task, err := h.tasks.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "task retrieved successfully", task)
}

// Create godoc
// @Summary Create task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body service.CreateTaskRequest true "Task payload"
// @Success 201 {object} response.Envelope
// @Router /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid task payload"))
		return
	}
	task, err := h.tasks.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "task created successfully", task)
}

// Update godoc
// @Summary Update task (full overwrite)
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param payload body service.UpdateTaskRequest true "Task payload"
// @Success 200 {object} response.Envelope
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid task payload"))
		return
	}
	task, err := h.tasks.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "task updated successfully", task)
}

// Delete godoc
// @Summary Delete task (soft)
// @Tags Tasks
// @Param id path int true "Task ID"
// @Success 200 {object} response.Envelope
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	deleted, err := h.tasks.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "task deleted successfully", gin.H{"id": deleted})
}
