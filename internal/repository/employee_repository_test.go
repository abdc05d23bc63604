package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aminrezaei/hr-panel-api/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func employeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "gender", "mobile_number", "birth_date",
		"education_level", "field_of_study", "position", "email", "hire_date",
		"is_active", "description",
	})
}

func TestEmployeeRepositoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	rows := employeeRows().
		AddRow(2, "Sara", "Ahmadi", 2, "09123456789", nil, 4, nil, "Backend Developer", "sara@example.com", time.Now(), true, nil).
		AddRow(1, "Omid", "Karimi", 1, "09351112233", nil, 3, nil, "Designer", "omid@example.com", time.Now(), true, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, first_name, last_name, gender, mobile_number, birth_date, education_level, field_of_study, position, email, hire_date, is_active, description FROM employees ORDER BY id DESC")).
		WillReturnRows(rows)

	employees, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, int64(2), employees[0].ID)
	assert.Equal(t, "Sara", employees[0].FirstName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery("SELECT .+ FROM employees WHERE id = \\$1").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryExistsByEmailOrMobile(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	query := regexp.QuoteMeta("SELECT 1 FROM employees WHERE LOWER(email) = LOWER($1) OR mobile_number = $2 LIMIT 1")

	mock.ExpectQuery(query).
		WithArgs("sara@example.com", "09123456789").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByEmailOrMobile(context.Background(), "sara@example.com", "09123456789")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(query).
		WithArgs("new@example.com", "09000000000").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.ExistsByEmailOrMobile(context.Background(), "new@example.com", "09000000000")
	require.NoError(t, err)
	assert.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryCreateCapturesID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectQuery("INSERT INTO employees .+ RETURNING id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	employee := &models.Employee{
		FirstName:      "Sara",
		LastName:       "Ahmadi",
		Gender:         models.GenderFemale,
		MobileNumber:   "09123456789",
		EducationLevel: models.EducationBachelor,
		Position:       "Backend Developer",
		Email:          "sara@example.com",
		IsActive:       true,
	}
	require.NoError(t, repo.Create(context.Background(), employee))
	assert.Equal(t, int64(7), employee.ID)
	assert.False(t, employee.HireDate.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectExec("UPDATE employees SET first_name = .+ WHERE id = .+").
		WillReturnResult(sqlmock.NewResult(0, 1))

	employee := &models.Employee{
		ID:             7,
		FirstName:      "Mina",
		LastName:       "Ahmadi",
		Gender:         models.GenderFemale,
		MobileNumber:   "09123456789",
		EducationLevel: models.EducationBachelor,
		Position:       "Backend Developer",
		Email:          "sara@example.com",
		HireDate:       time.Now(),
		IsActive:       true,
	}
	require.NoError(t, repo.Update(context.Background(), employee))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepositoryDeleteIsPhysical(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewEmployeeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}
