package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/aminrezaei/hr-panel-api/internal/models"
)

const employeeColumns = "id, first_name, last_name, gender, mobile_number, birth_date, education_level, field_of_study, position, email, hire_date, is_active, description"

// EmployeeRepository manages persistence for employees.
type EmployeeRepository struct {
	db *sqlx.DB
}

// NewEmployeeRepository constructs an EmployeeRepository.
func NewEmployeeRepository(db *sqlx.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// List returns all employees, newest first.
func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM employees ORDER BY id DESC", employeeColumns)
	var employees []models.Employee
	if err := r.db.SelectContext(ctx, &employees, query); err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// FindByID fetches an employee by ID.
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*models.Employee, error) {
	query := fmt.Sprintf("SELECT %s FROM employees WHERE id = $1", employeeColumns)
	var employee models.Employee
	if err := r.db.GetContext(ctx, &employee, query, id); err != nil {
		return nil, err
	}
	return &employee, nil
}

// ExistsByEmailOrMobile checks whether any employee already uses the email
// or the mobile number.
func (r *EmployeeRepository) ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error) {
	const query = `SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1) OR mobile_number = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, email, mobile); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check employee uniqueness: %w", err)
	}
	return true, nil
}

// Create inserts a new employee record and captures the assigned id.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	if employee.HireDate.IsZero() {
		employee.HireDate = time.Now().UTC()
	}

	const query = `INSERT INTO employees (first_name, last_name, gender, mobile_number, birth_date, education_level, field_of_study, position, email, hire_date, is_active, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Gender,
		employee.MobileNumber,
		employee.BirthDate,
		employee.EducationLevel,
		employee.FieldOfStudy,
		employee.Position,
		employee.Email,
		employee.HireDate,
		employee.IsActive,
		employee.Description,
	).Scan(&employee.ID); err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// Update persists the full employee record.
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	const query = `UPDATE employees SET first_name = :first_name, last_name = :last_name, gender = :gender, mobile_number = :mobile_number, birth_date = :birth_date, education_level = :education_level, field_of_study = :field_of_study, position = :position, email = :email, hire_date = :hire_date, is_active = :is_active, description = :description WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, employee); err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete physically removes an employee record.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM employees WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
