package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aminrezaei/hr-panel-api/internal/service"
	appErrors "github.com/aminrezaei/hr-panel-api/pkg/errors"
	"github.com/aminrezaei/hr-panel-api/pkg/response"
)

// EmployeeHandler wires employee services to HTTP routes.
type EmployeeHandler struct {
	employees     *service.EmployeeService
	exportEnabled bool
}

// NewEmployeeHandler constructs a new EmployeeHandler.
func NewEmployeeHandler(employees *service.EmployeeService, exportEnabled bool) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, exportEnabled: exportEnabled}
}

// Register mounts the employee routes. The verb-style paths mirror the
// public surface this API replaces.
func (h *EmployeeHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/employees")
	g.GET("/get-all", h.List)
	g.GET("/get-by-id/:id", h.Get)
	g.POST("/create", h.Create)
	g.PUT("/update", h.Update)
	g.DELETE("/delete/:id", h.Delete)
	if h.exportEnabled {
		g.GET("/export", h.Export)
	}
}

// List godoc
// @Summary List employees
// @Tags Employees
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /employees/get-all [get]
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employees.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "employees retrieved successfully", employees)
}

// Get godoc
// @Summary Get employee detail
// @Tags Employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} response.Envelope
// @Router /employees/get-by-id/{id} [get]
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	employee, err := h.employees.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "employee retrieved successfully", employee)
}

// Create godoc
// @Summary Create employee
// @Tags Employees
// @Accept json
// @Produce json
// @Param payload body service.CreateEmployeeRequest true "Employee payload"
// @Success 201 {object} response.Envelope
// @Router /employees/create [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid employee payload"))
		return
	}
	id, err := h.employees.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "employee created successfully", gin.H{"id": id})
}

// Update godoc
// @Summary Update employee (partial)
// @Tags Employees
// @Accept json
// @Produce json
// @Param payload body service.UpdateEmployeeRequest true "Employee payload; absent fields stay unchanged"
// @Success 200 {object} response.Envelope
// @Router /employees/update [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid employee payload"))
		return
	}
	id, err := h.employees.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "employee updated successfully", gin.H{"id": id})
}

// Delete godoc
// @Summary Delete employee permanently
// @Tags Employees
// @Param id path int true "Employee ID"
// @Success 200 {object} response.Envelope
// @Router /employees/delete/{id} [delete]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	deleted, err := h.employees.Delete(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "employee deleted successfully", gin.H{"id": deleted})
}

// Export godoc
// @Summary Export employee roster
// @Tags Employees
// @Param format query string false "csv or pdf"
// @Success 200 {file} binary
// @Router /employees/export [get]
func (h *EmployeeHandler) Export(c *gin.Context) {
	payload, contentType, err := h.employees.Export(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	ext := "csv"
	if contentType == "application/pdf" {
		ext = "pdf"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=employees.%s", ext))
	c.Data(http.StatusOK, contentType, payload)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "id must be a positive integer")
	}
	return id, nil
}
