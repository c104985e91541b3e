package employees_test

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/UnknownOlympus/hrms/internal/apperror"
	"github.com/UnknownOlympus/hrms/internal/metrics"
	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/UnknownOlympus/hrms/internal/repository"
	"github.com/UnknownOlympus/hrms/internal/services/employees"
	mocks "github.com/UnknownOlympus/hrms/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStaff(t *testing.T) (*employees.Staff, *mocks.EmployeeRepoIface, *mocks.AttendanceRepoIface, *metrics.Metrics) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	employeeRepo := mocks.NewEmployeeRepoIface(t)
	attendanceRepo := mocks.NewAttendanceRepoIface(t)
	testMetrics := metrics.NewMetrics(prometheus.NewRegistry())

	return employees.NewStaff(logger, employeeRepo, attendanceRepo, testMetrics), employeeRepo, attendanceRepo, testMetrics
}

func validInput() employees.CreateEmployeeInput {
	return employees.CreateEmployeeInput{
		EmployeeID: "EMP001",
		FullName:   "Ada Lovelace",
		Email:      "ada@example.com",
		Department: "Engineering",
	}
}

func TestNewStaff(t *testing.T) {
	t.Parallel()

	s, _, _, _ := newStaff(t)

	assert.NotNil(t, s)
}

func TestCreateEmployee(t *testing.T) {
	t.Parallel()

	t.Run("should create employee with trimmed fields", func(t *testing.T) {
		t.Parallel()
		s, repo, _, testMetrics := newStaff(t)

		input := validInput()
		input.FullName = "  Ada Lovelace  "
		stored := models.Employee{
			EmployeeID: "EMP001",
			FullName:   "Ada Lovelace",
			Email:      "ada@example.com",
			Department: "Engineering",
		}
		created := stored
		created.ID = "uuid-1"

		repo.On("FindEmployeeByCodeOrEmail", mock.Anything, "EMP001", "ada@example.com").
			Return(models.Employee{}, repository.ErrNotFound).Once()
		repo.On("CreateEmployee", mock.Anything, stored).Return(created, nil).Once()

		actual, err := s.CreateEmployee(t.Context(), input)

		require.NoError(t, err)
		assert.Equal(t, created, actual)
		assert.InDelta(t, 1, testutil.ToFloat64(testMetrics.EmployeesCreated), 0)
	})

	t.Run("should reject taken employee id", func(t *testing.T) {
		t.Parallel()
		s, repo, _, _ := newStaff(t)

		repo.On("FindEmployeeByCodeOrEmail", mock.Anything, "EMP001", "ada@example.com").
			Return(models.Employee{EmployeeID: "EMP001", Email: "other@example.com"}, nil).Once()

		_, err := s.CreateEmployee(t.Context(), validInput())

		require.Error(t, err)
		assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
		assert.EqualError(t, err, "Employee ID already exists")
		repo.AssertNotCalled(t, "CreateEmployee", mock.Anything, mock.Anything)
	})

	t.Run("should reject taken email", func(t *testing.T) {
		t.Parallel()
		s, repo, _, _ := newStaff(t)

		repo.On("FindEmployeeByCodeOrEmail", mock.Anything, "EMP001", "ada@example.com").
			Return(models.Employee{EmployeeID: "EMP042", Email: "ada@example.com"}, nil).Once()

		_, err := s.CreateEmployee(t.Context(), validInput())

		assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
		assert.EqualError(t, err, "Email already exists")
	})

	t.Run("should map concurrent duplicate from insert", func(t *testing.T) {
		t.Parallel()
		s, repo, _, testMetrics := newStaff(t)

		repo.On("FindEmployeeByCodeOrEmail", mock.Anything, mock.Anything, mock.Anything).
			Return(models.Employee{}, repository.ErrNotFound).Once()
		repo.On("CreateEmployee", mock.Anything, mock.Anything).
			Return(models.Employee{}, repository.ErrDuplicateEmail).Once()

		_, err := s.CreateEmployee(t.Context(), validInput())

		assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
		assert.EqualError(t, err, "Email already exists")
		assert.InDelta(t, 0, testutil.ToFloat64(testMetrics.EmployeesCreated), 0)
	})

	t.Run("should reject invalid email before touching the store", func(t *testing.T) {
		t.Parallel()
		s, _, _, _ := newStaff(t)

		input := validInput()
		input.Email = "not-an-email"

		_, err := s.CreateEmployee(t.Context(), input)

		assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
	})

	t.Run("should fail when lookup fails", func(t *testing.T) {
		t.Parallel()
		s, repo, _, _ := newStaff(t)

		repo.On("FindEmployeeByCodeOrEmail", mock.Anything, mock.Anything, mock.Anything).
			Return(models.Employee{}, assert.AnError).Once()

		_, err := s.CreateEmployee(t.Context(), validInput())

		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, apperror.CodeInternal, apperror.GetCode(err))
	})
}

func TestListEmployees(t *testing.T) {
	t.Parallel()
	s, repo, _, _ := newStaff(t)

	expected := []models.Employee{{ID: "1", EmployeeID: "EMP001"}}
	repo.On("ListEmployees", mock.Anything, models.EmployeeFilter{Department: "Sales", Search: "ada"}).
		Return(expected, nil).Once()

	actual, err := s.ListEmployees(t.Context(), models.EmployeeFilter{Department: " Sales ", Search: "ada "})

	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestGetEmployee(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		s, repo, _, _ := newStaff(t)

		expected := models.Employee{ID: "1", EmployeeID: "EMP001"}
		repo.On("GetEmployeeByID", mock.Anything, "1").Return(expected, nil).Once()

		actual, err := s.GetEmployee(t.Context(), "1")

		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		s, repo, _, _ := newStaff(t)

		repo.On("GetEmployeeByID", mock.Anything, "missing").Return(models.Employee{}, repository.ErrNotFound).Once()

		_, err := s.GetEmployee(t.Context(), "missing")

		assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
		assert.EqualError(t, err, "Employee not found")
	})
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()
		s, repo, _, _ := newStaff(t)

		repo.On("DeleteEmployee", mock.Anything, "1").Return(nil).Once()

		require.NoError(t, s.DeleteEmployee(t.Context(), "1"))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		s, repo, _, _ := newStaff(t)

		repo.On("DeleteEmployee", mock.Anything, "missing").Return(repository.ErrNotFound).Once()

		err := s.DeleteEmployee(t.Context(), "missing")

		assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		s, repo, _, _ := newStaff(t)

		repo.On("DeleteEmployee", mock.Anything, "1").Return(assert.AnError).Once()

		require.ErrorIs(t, s.DeleteEmployee(t.Context(), "1"), assert.AnError)
	})
}

func TestGetEmployeeWithStats(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	employee := models.Employee{ID: "1", EmployeeID: "EMP001", FullName: "Ada Lovelace"}

	t.Run("counts statuses and rounds percentage", func(t *testing.T) {
		t.Parallel()
		s, repo, attendanceRepo, _ := newStaff(t)

		records := []models.Attendance{
			{ID: "a1", EmployeeID: "1", Date: day, Status: models.StatusPresent},
			{ID: "a2", EmployeeID: "1", Date: day.AddDate(0, 0, 1), Status: models.StatusPresent},
			{ID: "a3", EmployeeID: "1", Date: day.AddDate(0, 0, 2), Status: models.StatusAbsent},
		}
		repo.On("GetEmployeeByID", mock.Anything, "1").Return(employee, nil).Once()
		attendanceRepo.On("ListAttendanceByEmployee", mock.Anything, "1").Return(records, nil).Once()

		stats, err := s.GetEmployeeWithStats(t.Context(), "1")

		require.NoError(t, err)
		assert.Equal(t, employee, stats.Employee)
		assert.Equal(t, 2, stats.TotalPresent)
		assert.Equal(t, 1, stats.TotalAbsent)
		assert.InDelta(t, 66.67, stats.AttendancePercentage, 1e-9)
		assert.Equal(t, records, stats.Attendances)
	})

	t.Run("no attendance yields zero percentage", func(t *testing.T) {
		t.Parallel()
		s, repo, attendanceRepo, _ := newStaff(t)

		repo.On("GetEmployeeByID", mock.Anything, "1").Return(employee, nil).Once()
		attendanceRepo.On("ListAttendanceByEmployee", mock.Anything, "1").Return([]models.Attendance{}, nil).Once()

		stats, err := s.GetEmployeeWithStats(t.Context(), "1")

		require.NoError(t, err)
		assert.Zero(t, stats.TotalPresent)
		assert.Zero(t, stats.TotalAbsent)
		assert.InDelta(t, 0, stats.AttendancePercentage, 0)
		assert.Empty(t, stats.Attendances)
	})

	t.Run("unknown employee", func(t *testing.T) {
		t.Parallel()
		s, repo, attendanceRepo, _ := newStaff(t)

		repo.On("GetEmployeeByID", mock.Anything, "missing").Return(models.Employee{}, repository.ErrNotFound).Once()

		_, err := s.GetEmployeeWithStats(t.Context(), "missing")

		assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
		attendanceRepo.AssertNotCalled(t, "ListAttendanceByEmployee", mock.Anything, mock.Anything)
	})
}

func TestSuggestNextEmployeeID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lastID   string
		expected string
	}{
		{name: "empty store", lastID: "", expected: "EMP001"},
		{name: "increment", lastID: "EMP007", expected: "EMP008"},
		{name: "unparsable", lastID: "BOSS", expected: "EMP001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, repo, _, _ := newStaff(t)

			repo.On("GetLastEmployeeCode", mock.Anything).Return(tt.lastID, nil).Once()

			actual, err := s.SuggestNextEmployeeID(t.Context())

			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		s, repo, _, _ := newStaff(t)

		repo.On("GetLastEmployeeCode", mock.Anything).Return("", assert.AnError).Once()

		_, err := s.SuggestNextEmployeeID(t.Context())

		require.ErrorIs(t, err, assert.AnError)
	})
}
