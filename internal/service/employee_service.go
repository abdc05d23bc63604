package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/aminrezaei/hr-panel-api/internal/dto"
	"github.com/aminrezaei/hr-panel-api/internal/models"
	"github.com/aminrezaei/hr-panel-api/internal/validation"
	appErrors "github.com/aminrezaei/hr-panel-api/pkg/errors"
	"github.com/aminrezaei/hr-panel-api/pkg/export"
)

type employeeRepository interface {
	List(ctx context.Context) ([]models.Employee, error)
	FindByID(ctx context.Context, id int64) (*models.Employee, error)
	ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id int64) error
}

// CreateEmployeeRequest represents the payload for creating employees.
// Optional fields are validated only when non-empty.
type CreateEmployeeRequest struct {
	FirstName      string  `json:"first_name" validate:"required,max=60"`
	LastName       string  `json:"last_name" validate:"required,max=60"`
	Gender         int     `json:"gender" validate:"gender"`
	MobileNumber   string  `json:"mobile_number" validate:"required,mobile11"`
	BirthDate      *string `json:"birth_date" validate:"omitempty,jdate"`
	EducationLevel int     `json:"education_level" validate:"edulevel"`
	FieldOfStudy   *string `json:"field_of_study" validate:"omitempty,max=100"`
	Position       string  `json:"position" validate:"required,max=80"`
	Email          string  `json:"email" validate:"required,email,max=150"`
	Description    *string `json:"description" validate:"omitempty,max=500"`
}

// UpdateEmployeeRequest represents a partial update. A nil field means
// "leave unchanged" and is never validated; a present-but-empty value is
// still checked against its rules.
type UpdateEmployeeRequest struct {
	ID             int64   `json:"id" validate:"required"`
	FirstName      *string `json:"first_name" validate:"omitnil,max=60"`
	LastName       *string `json:"last_name" validate:"omitnil,max=60"`
	Gender         *int    `json:"gender" validate:"omitnil,gender"`
	MobileNumber   *string `json:"mobile_number" validate:"omitnil,mobile11"`
	BirthDate      *string `json:"birth_date" validate:"omitnil,jdate"`
	EducationLevel *int    `json:"education_level" validate:"omitnil,edulevel"`
	FieldOfStudy   *string `json:"field_of_study" validate:"omitnil,max=100"`
	Position       *string `json:"position" validate:"omitnil,max=80"`
	Email          *string `json:"email" validate:"omitnil,email,max=150"`
	IsActive       *bool   `json:"is_active"`
	Description    *string `json:"description" validate:"omitnil,max=500"`
}

// EmployeeService orchestrates employee operations.
type EmployeeService struct {
	repo      employeeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEmployeeService constructs an EmployeeService.
func NewEmployeeService(repo employeeRepository, validate *validator.Validate, logger *zap.Logger) *EmployeeService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{repo: repo, validator: validate, logger: logger}
}

// List returns all employees as wire DTOs, newest first. An empty roster is
// a success with an empty list.
func (s *EmployeeService) List(ctx context.Context) ([]dto.EmployeeDTO, error) {
	employees, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list employees")
	}
	return dto.FromEmployees(employees), nil
}

// Get returns an employee by id.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*dto.EmployeeDTO, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "employee not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}
	d := dto.FromEmployee(*employee)
	return &d, nil
}

// Create registers a new employee after the duplicate check. Returns the
// store-assigned id.
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, validation.Error(err)
	}

	exists, err := s.repo.ExistsByEmailOrMobile(ctx, req.Email, req.MobileNumber)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check employee uniqueness")
	}
	if exists {
		return 0, appErrors.Clone(appErrors.ErrDuplicate, "an employee with this email or mobile number already exists")
	}

	employee := &models.Employee{
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Gender:         models.Gender(req.Gender),
		MobileNumber:   strings.TrimSpace(req.MobileNumber),
		EducationLevel: models.EducationLevel(req.EducationLevel),
		Position:       strings.TrimSpace(req.Position),
		Email:          strings.TrimSpace(req.Email),
		IsActive:       true,
	}
	employee.BirthDate = normalizeOptional(req.BirthDate)
	employee.FieldOfStudy = normalizeOptional(req.FieldOfStudy)
	employee.Description = normalizeOptional(req.Description)

	if err := s.repo.Create(ctx, employee); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create employee")
	}
	return employee.ID, nil
}

// Update applies a partial update: only non-nil fields overwrite the loaded
// record. The record is resolved before field validation, so a missing id
// answers 404 even when the payload is also invalid. There is no duplicate
// re-check on update.
func (s *EmployeeService) Update(ctx context.Context, req UpdateEmployeeRequest) (int64, error) {
	if req.ID <= 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "id is required")
	}

	employee, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "employee not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}

	if err := s.validator.Struct(req); err != nil {
		return 0, validation.Error(err)
	}

	if req.FirstName != nil {
		employee.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		employee.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Gender != nil {
		employee.Gender = models.Gender(*req.Gender)
	}
	if req.MobileNumber != nil {
		employee.MobileNumber = strings.TrimSpace(*req.MobileNumber)
	}
	if req.BirthDate != nil {
		employee.BirthDate = normalizeOptional(req.BirthDate)
	}
	if req.EducationLevel != nil {
		employee.EducationLevel = models.EducationLevel(*req.EducationLevel)
	}
	if req.FieldOfStudy != nil {
		employee.FieldOfStudy = normalizeOptional(req.FieldOfStudy)
	}
	if req.Position != nil {
		employee.Position = strings.TrimSpace(*req.Position)
	}
	if req.Email != nil {
		employee.Email = strings.TrimSpace(*req.Email)
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if req.Description != nil {
		employee.Description = normalizeOptional(req.Description)
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update employee")
	}
	return employee.ID, nil
}

// Delete physically removes an employee record.
func (s *EmployeeService) Delete(ctx context.Context, id int64) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return 0, appErrors.Clone(appErrors.ErrNotFound, "employee not found")
		}
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load employee")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete employee")
	}
	return id, nil
}

// Export renders the roster into the requested tabular format.
func (s *EmployeeService) Export(ctx context.Context, format string) ([]byte, string, error) {
	employees, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}

	table := export.Table{
		Title:   "Employee Roster",
		Headers: []string{"ID", "Full Name", "Gender", "Mobile", "Email", "Position", "Education", "Active"},
	}
	for _, e := range employees {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", e.ID),
			e.FullName,
			e.Gender,
			e.MobileNumber,
			e.Email,
			e.Position,
			e.EducationLevel,
			fmt.Sprintf("%t", e.IsActive),
		})
	}

	switch strings.ToLower(format) {
	case "pdf":
		payload, err := export.PDF(table)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return payload, "application/pdf", nil
	case "", "csv":
		payload, err := export.CSV(table)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return payload, "text/csv", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
