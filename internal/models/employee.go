package models

import "time"

// Gender enumerates employee gender values.
type Gender int

const (
	GenderMale Gender = iota + 1
	GenderFemale
	GenderOther
)

var genderNames = map[Gender]string{
	GenderMale:   "Male",
	GenderFemale: "Female",
	GenderOther:  "Other",
}

// String returns the display name of the gender.
func (g Gender) String() string {
	if name, ok := genderNames[g]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether the value is a defined gender member.
func (g Gender) Valid() bool {
	_, ok := genderNames[g]
	return ok
}

// EducationLevel enumerates employee education levels.
type EducationLevel int

const (
	EducationDiploma EducationLevel = iota + 1
	EducationAssociate
	EducationBachelor
	EducationMaster
	EducationDoctorate
	EducationOther
)

var educationNames = map[EducationLevel]string{
	EducationDiploma:   "Diploma",
	EducationAssociate: "Associate",
	EducationBachelor:  "Bachelor",
	EducationMaster:    "Master",
	EducationDoctorate: "Doctorate",
	EducationOther:     "Other",
}

// String returns the display name of the education level.
func (e EducationLevel) String() string {
	if name, ok := educationNames[e]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether the value is a defined education level member.
func (e EducationLevel) Valid() bool {
	_, ok := educationNames[e]
	return ok
}

// Employee represents a personnel record. Employees are hard-deleted;
// there is no soft-delete flag on this entity.
type Employee struct {
	ID             int64          `db:"id" json:"id"`
	FirstName      string         `db:"first_name" json:"first_name"`
	LastName       string         `db:"last_name" json:"last_name"`
	Gender         Gender         `db:"gender" json:"gender"`
	MobileNumber   string         `db:"mobile_number" json:"mobile_number"`
	BirthDate      *string        `db:"birth_date" json:"birth_date,omitempty"`
	EducationLevel EducationLevel `db:"education_level" json:"education_level"`
	FieldOfStudy   *string        `db:"field_of_study" json:"field_of_study,omitempty"`
	Position       string         `db:"position" json:"position"`
	Email          string         `db:"email" json:"email"`
	HireDate       time.Time      `db:"hire_date" json:"hire_date"`
	IsActive       bool           `db:"is_active" json:"is_active"`
	Description    *string        `db:"description" json:"description,omitempty"`
}
