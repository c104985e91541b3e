package repository

import (
	"context"
	"errors"
	"time"

	"github.com/UnknownOlympus/hrms/internal/metrics"
	"github.com/UnknownOlympus/hrms/internal/models"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmployeeID is returned when the business code is already taken.
	ErrDuplicateEmployeeID = errors.New("employee id already exists")
	// ErrDuplicateEmail is returned when the email is already taken.
	ErrDuplicateEmail = errors.New("email already exists")
)

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee data in the repository.
type EmployeeRepoIface interface {
	CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error)
	FindEmployeeByCodeOrEmail(ctx context.Context, employeeID, email string) (models.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (models.Employee, error)
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	GetLastEmployeeCode(ctx context.Context) (string, error)
	CountEmployees(ctx context.Context) (int, error)
}

func NewEmployeeRepository(db Database, metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// AttendanceRepoIface represents the interface for interacting with attendance data in the repository.
type AttendanceRepoIface interface {
	UpsertAttendance(
		ctx context.Context, employeeID string, date time.Time, status models.AttendanceStatus,
	) (models.Attendance, error)
	GetAttendanceByID(ctx context.Context, id string) (models.Attendance, error)
	ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
	ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]models.Attendance, error)
	ListAttendanceByDate(ctx context.Context, date time.Time) ([]models.Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error
}

func NewAttendanceRepository(db Database, metrics *metrics.Metrics) AttendanceRepoIface {
	return &Repository{db: db, metrics: metrics}
}

// observe records how long the query labelled queryType took since startTime.
func (r *Repository) observe(queryType string, startTime time.Time) {
	r.metrics.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(startTime).Seconds())
}
