package dto

import (
	"time"

	"github.com/aminrezaei/hr-panel-api/internal/models"
)

// EmployeeDTO is the wire representation of an employee. Enum fields carry
// their display names and full_name is derived, never stored.
type EmployeeDTO struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	FullName       string    `json:"full_name"`
	Gender         string    `json:"gender"`
	MobileNumber   string    `json:"mobile_number"`
	BirthDate      string    `json:"birth_date,omitempty"`
	EducationLevel string    `json:"education_level"`
	FieldOfStudy   string    `json:"field_of_study,omitempty"`
	Position       string    `json:"position"`
	Email          string    `json:"email"`
	HireDate       time.Time `json:"hire_date"`
	IsActive       bool      `json:"is_active"`
	Description    string    `json:"description,omitempty"`
}

// FromEmployee maps a persisted employee onto its wire shape.
func FromEmployee(e models.Employee) EmployeeDTO {
	d := EmployeeDTO{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FirstName + " " + e.LastName,
		Gender:         e.Gender.String(),
		MobileNumber:   e.MobileNumber,
		EducationLevel: e.EducationLevel.String(),
		Position:       e.Position,
		Email:          e.Email,
		HireDate:       e.HireDate,
		IsActive:       e.IsActive,
	}
	if e.BirthDate != nil {
		d.BirthDate = *e.BirthDate
	}
	if e.FieldOfStudy != nil {
		d.FieldOfStudy = *e.FieldOfStudy
	}
	if e.Description != nil {
		d.Description = *e.Description
	}
	return d
}

// FromEmployees maps a list of employees onto wire shapes.
func FromEmployees(employees []models.Employee) []EmployeeDTO {
	out := make([]EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		out = append(out, FromEmployee(e))
	}
	return out
}
