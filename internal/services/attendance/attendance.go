package attendance

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/UnknownOlympus/hrms/internal/apperror"
	"github.com/UnknownOlympus/hrms/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms/internal/metrics"
	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/UnknownOlympus/hrms/internal/repository"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000

	msgEmployeeNotFound   = "Employee not found"
	msgAttendanceNotFound = "Attendance record not found"
)

// MarkInput describes one attendance mark. Status is accepted in any letter case.
type MarkInput struct {
	EmployeeID string
	Date       time.Time
	Status     string
}

type Service struct {
	log          *slog.Logger
	repo         repository.AttendanceRepoIface
	employeeRepo repository.EmployeeRepoIface
	metrics      *metrics.Metrics
}

func NewService(
	log *slog.Logger,
	repo repository.AttendanceRepoIface,
	employeeRepo repository.EmployeeRepoIface,
	metrics *metrics.Metrics,
) *Service {
	return &Service{log: log, repo: repo, employeeRepo: employeeRepo, metrics: metrics}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		sl.Op(opn),
		slog.String("division", "attendance"),
	)
}

// MarkAttendance records the status of an employee for a calendar day.
// Marking the same day again overwrites the earlier status.
func (s *Service) MarkAttendance(ctx context.Context, input MarkInput) (models.Attendance, error) {
	const opn = "Attendance.MarkAttendance"
	log := s.initLogger(opn)

	employeeID := strings.TrimSpace(input.EmployeeID)
	if employeeID == "" {
		return models.Attendance{}, apperror.Validation("employee_id must not be empty")
	}

	status, ok := models.ParseAttendanceStatus(input.Status)
	if !ok {
		return models.Attendance{}, apperror.Validation("status must be one of PRESENT, ABSENT")
	}

	if _, err := s.employeeRepo.GetEmployeeByID(ctx, employeeID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Attendance{}, apperror.NotFound(msgEmployeeNotFound)
		}
		return models.Attendance{}, err
	}

	record, err := s.repo.UpsertAttendance(ctx, employeeID, models.NormalizeDate(input.Date), status)
	if err != nil {
		// The employee can be deleted between the lookup and the write.
		if errors.Is(err, repository.ErrNotFound) {
			return models.Attendance{}, apperror.NotFound(msgEmployeeNotFound)
		}
		return models.Attendance{}, err
	}

	s.metrics.AttendanceMarked.WithLabelValues(string(status)).Inc()
	log.DebugContext(ctx, "Attendance marked",
		"employee_id", employeeID, "date", record.Date.Format(time.DateOnly), "status", status)

	return record, nil
}

// ListAttendance returns records matching filter, newest date first.
// The limit is clamped to [1, MaxLimit]; zero selects DefaultLimit.
func (s *Service) ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	return s.repo.ListAttendance(ctx, normalizeFilter(filter))
}

func (s *Service) GetAttendance(ctx context.Context, id string) (models.Attendance, error) {
	record, err := s.repo.GetAttendanceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Attendance{}, apperror.NotFound(msgAttendanceNotFound)
		}
		return models.Attendance{}, err
	}

	return record, nil
}

func (s *Service) DeleteAttendance(ctx context.Context, id string) error {
	const opn = "Attendance.DeleteAttendance"
	log := s.initLogger(opn)

	if err := s.repo.DeleteAttendance(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound(msgAttendanceNotFound)
		}
		return err
	}

	log.InfoContext(ctx, "Attendance deleted", "id", id)
	return nil
}

func normalizeFilter(filter models.AttendanceFilter) models.AttendanceFilter {
	filter.EmployeeID = strings.TrimSpace(filter.EmployeeID)
	filter.Status = strings.ToUpper(strings.TrimSpace(filter.Status))

	switch {
	case filter.Limit == 0:
		filter.Limit = DefaultLimit
	case filter.Limit < 1:
		filter.Limit = 1
	case filter.Limit > MaxLimit:
		filter.Limit = MaxLimit
	}

	return filter
}
