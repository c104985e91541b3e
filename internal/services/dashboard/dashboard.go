package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/hrms/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/UnknownOlympus/hrms/internal/repository"
)

type Service struct {
	log            *slog.Logger
	employeeRepo   repository.EmployeeRepoIface
	attendanceRepo repository.AttendanceRepoIface
	now            func() time.Time
}

func NewService(
	log *slog.Logger,
	employeeRepo repository.EmployeeRepoIface,
	attendanceRepo repository.AttendanceRepoIface,
) *Service {
	return &Service{
		log:            log,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

func (s *Service) initLogger(opn string) *slog.Logger {
	return s.log.With(
		sl.Op(opn),
		slog.String("division", "dashboard"),
	)
}

// today is the process-local calendar date.
func (s *Service) today() time.Time {
	return models.NormalizeDate(s.now())
}

// GetStats aggregates headcount, today's marks and the number of departments.
func (s *Service) GetStats(ctx context.Context) (models.DashboardStats, error) {
	const opn = "Dashboard.GetStats"
	log := s.initLogger(opn)

	total, err := s.employeeRepo.CountEmployees(ctx)
	if err != nil {
		return models.DashboardStats{}, err
	}

	marks, err := s.attendanceRepo.ListAttendanceByDate(ctx, s.today())
	if err != nil {
		return models.DashboardStats{}, err
	}

	stats := models.DashboardStats{TotalEmployees: total}
	for _, mark := range marks {
		switch mark.Status {
		case models.StatusPresent:
			stats.PresentToday++
		case models.StatusAbsent:
			stats.AbsentToday++
		}
	}
	stats.NotMarkedAttendance = stats.TotalEmployees - (stats.PresentToday + stats.AbsentToday)

	employees, err := s.employeeRepo.ListEmployees(ctx, models.EmployeeFilter{})
	if err != nil {
		return models.DashboardStats{}, err
	}

	departments := make(map[string]struct{}, len(employees))
	for _, employee := range employees {
		departments[employee.Department] = struct{}{}
	}
	stats.TotalDepartments = len(departments)

	log.DebugContext(ctx, "Dashboard stats computed",
		"total", stats.TotalEmployees, "present", stats.PresentToday, "absent", stats.AbsentToday)

	return stats, nil
}

// GetNotMarkedEmployees lists employees without an attendance mark today,
// in the order of the employee listing.
func (s *Service) GetNotMarkedEmployees(ctx context.Context) ([]models.Employee, error) {
	marks, err := s.attendanceRepo.ListAttendanceByDate(ctx, s.today())
	if err != nil {
		return nil, err
	}

	marked := make(map[string]struct{}, len(marks))
	for _, mark := range marks {
		marked[mark.EmployeeID] = struct{}{}
	}

	employees, err := s.employeeRepo.ListEmployees(ctx, models.EmployeeFilter{})
	if err != nil {
		return nil, err
	}

	notMarked := make([]models.Employee, 0, len(employees))
	for _, employee := range employees {
		if _, ok := marked[employee.ID]; !ok {
			notMarked = append(notMarked, employee)
		}
	}

	return notMarked, nil
}
