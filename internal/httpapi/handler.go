package httpapi

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/UnknownOlympus/hrms/internal/services/attendance"
	"github.com/UnknownOlympus/hrms/internal/services/employees"
	"github.com/gin-gonic/gin"
)

const (
	apiName    = "HRMS Lite API"
	apiVersion = "1.0.0"
)

type EmployeeManager interface {
	CreateEmployee(ctx context.Context, input employees.CreateEmployeeInput) (models.Employee, error)
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id string) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) error
	GetEmployeeWithStats(ctx context.Context, id string) (models.EmployeeStats, error)
	SuggestNextEmployeeID(ctx context.Context) (string, error)
}

type AttendanceManager interface {
	MarkAttendance(ctx context.Context, input attendance.MarkInput) (models.Attendance, error)
	ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
	GetAttendance(ctx context.Context, id string) (models.Attendance, error)
	DeleteAttendance(ctx context.Context, id string) error
	ExportAttendance(ctx context.Context, filter models.AttendanceFilter) (*bytes.Buffer, error)
}

type DashboardProvider interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
	GetNotMarkedEmployees(ctx context.Context) ([]models.Employee, error)
}

type Handler struct {
	employees  EmployeeManager
	attendance AttendanceManager
	dashboard  DashboardProvider
	log        *slog.Logger
}

func NewHandler(
	employees EmployeeManager,
	attendance AttendanceManager,
	dashboard DashboardProvider,
	log *slog.Logger,
) *Handler {
	return &Handler{
		employees:  employees,
		attendance: attendance,
		dashboard:  dashboard,
		log:        log.With(slog.String("division", "httpapi")),
	}
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": apiName,
		"version": apiVersion,
		"status":  "running",
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
