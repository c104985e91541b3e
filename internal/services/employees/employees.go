package employees

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/UnknownOlympus/hrms/internal/apperror"
	"github.com/UnknownOlympus/hrms/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms/internal/lib/validator"
	"github.com/UnknownOlympus/hrms/internal/metrics"
	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/UnknownOlympus/hrms/internal/repository"
)

const (
	msgEmployeeNotFound   = "Employee not found"
	msgEmployeeIDConflict = "Employee ID already exists"
	msgEmailConflict      = "Email already exists"

	maxEmployeeIDLen = 50
	maxFullNameLen   = 100
	maxDepartmentLen = 50
)

// CreateEmployeeInput carries the client supplied fields of a new employee.
type CreateEmployeeInput struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

type Staff struct {
	log            *slog.Logger
	repo           repository.EmployeeRepoIface
	attendanceRepo repository.AttendanceRepoIface
	metrics        *metrics.Metrics
}

func NewStaff(
	log *slog.Logger,
	repo repository.EmployeeRepoIface,
	attendanceRepo repository.AttendanceRepoIface,
	metrics *metrics.Metrics,
) *Staff {
	return &Staff{log: log, repo: repo, attendanceRepo: attendanceRepo, metrics: metrics}
}

func (s *Staff) initLogger(opn string) *slog.Logger {
	return s.log.With(
		sl.Op(opn),
		slog.String("division", "employee"),
	)
}

// CreateEmployee validates the input, rejects a taken employee ID or email
// and stores the new employee.
func (s *Staff) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (models.Employee, error) {
	const opn = "Employee.CreateEmployee"
	log := s.initLogger(opn)

	employee, err := normalizeInput(input)
	if err != nil {
		return models.Employee{}, err
	}

	existing, err := s.repo.FindEmployeeByCodeOrEmail(ctx, employee.EmployeeID, employee.Email)
	switch {
	case err == nil:
		if existing.EmployeeID == employee.EmployeeID {
			return models.Employee{}, apperror.Conflict(msgEmployeeIDConflict)
		}
		return models.Employee{}, apperror.Conflict(msgEmailConflict)
	case !errors.Is(err, repository.ErrNotFound):
		return models.Employee{}, fmt.Errorf("failed to check employee uniqueness: %w", err)
	}

	created, err := s.repo.CreateEmployee(ctx, employee)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmployeeID):
			return models.Employee{}, apperror.Conflict(msgEmployeeIDConflict)
		case errors.Is(err, repository.ErrDuplicateEmail):
			return models.Employee{}, apperror.Conflict(msgEmailConflict)
		}
		return models.Employee{}, err
	}

	s.metrics.EmployeesCreated.Inc()
	log.InfoContext(ctx, "Employee created", "employee_id", created.EmployeeID, "id", created.ID)

	return created, nil
}

// ListEmployees returns the employees matching filter, newest first.
func (s *Staff) ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	filter.Department = strings.TrimSpace(filter.Department)
	filter.Search = strings.TrimSpace(filter.Search)

	return s.repo.ListEmployees(ctx, filter)
}

func (s *Staff) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	employee, err := s.repo.GetEmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Employee{}, apperror.NotFound(msgEmployeeNotFound)
		}
		return models.Employee{}, err
	}

	return employee, nil
}

// DeleteEmployee removes the employee; its attendance goes with it.
func (s *Staff) DeleteEmployee(ctx context.Context, id string) error {
	const opn = "Employee.DeleteEmployee"
	log := s.initLogger(opn)

	if err := s.repo.DeleteEmployee(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(msgEmployeeNotFound)
		}
		return err
	}

	log.InfoContext(ctx, "Employee deleted", "id", id)
	return nil
}

// GetEmployeeWithStats loads the employee with its full attendance history
// and present/absent totals.
func (s *Staff) GetEmployeeWithStats(ctx context.Context, id string) (models.EmployeeStats, error) {
	employee, err := s.GetEmployee(ctx, id)
	if err != nil {
		return models.EmployeeStats{}, err
	}

	attendances, err := s.attendanceRepo.ListAttendanceByEmployee(ctx, employee.ID)
	if err != nil {
		return models.EmployeeStats{}, err
	}

	stats := models.EmployeeStats{Employee: employee, Attendances: attendances}
	for _, attendance := range attendances {
		switch attendance.Status {
		case models.StatusPresent:
			stats.TotalPresent++
		case models.StatusAbsent:
			stats.TotalAbsent++
		}
	}
	stats.AttendancePercentage = attendancePercentage(stats.TotalPresent, len(attendances))

	return stats, nil
}

// SuggestNextEmployeeID proposes the code following the greatest stored one.
func (s *Staff) SuggestNextEmployeeID(ctx context.Context) (string, error) {
	lastID, err := s.repo.GetLastEmployeeCode(ctx)
	if err != nil {
		return "", err
	}

	return validator.GenerateNextEmployeeID(lastID), nil
}

func normalizeInput(input CreateEmployeeInput) (models.Employee, error) {
	employee := models.Employee{
		EmployeeID: strings.TrimSpace(input.EmployeeID),
		FullName:   strings.TrimSpace(input.FullName),
		Email:      strings.TrimSpace(input.Email),
		Department: strings.TrimSpace(input.Department),
	}

	switch {
	case !validator.ValidateEmployeeID(employee.EmployeeID):
		return models.Employee{}, apperror.Validation("employee_id must not be empty")
	case utf8.RuneCountInString(employee.EmployeeID) > maxEmployeeIDLen:
		return models.Employee{}, apperror.Validation(
			fmt.Sprintf("employee_id must be at most %d characters", maxEmployeeIDLen))
	case !lengthBetween(employee.FullName, 1, maxFullNameLen):
		return models.Employee{}, apperror.Validation(
			fmt.Sprintf("full_name must be between 1 and %d characters", maxFullNameLen))
	case !validator.ValidateEmail(employee.Email):
		return models.Employee{}, apperror.Validation("email is not a valid email address")
	case !lengthBetween(employee.Department, 1, maxDepartmentLen):
		return models.Employee{}, apperror.Validation(
			fmt.Sprintf("department must be between 1 and %d characters", maxDepartmentLen))
	}

	return employee, nil
}

func lengthBetween(value string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(value)
	return n >= minLen && n <= maxLen
}

// attendancePercentage rounds to two decimals, half to even.
func attendancePercentage(present, total int) float64 {
	if total == 0 {
		return 0
	}

	const hundred = 100
	return math.RoundToEven(float64(present)/float64(total)*hundred*hundred) / hundred
}
