package httpapi

import (
	"bytes"
	"context"

	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/UnknownOlympus/hrms/internal/services/attendance"
	"github.com/UnknownOlympus/hrms/internal/services/employees"
)

type stubEmployees struct {
	createFn    func(ctx context.Context, input employees.CreateEmployeeInput) (models.Employee, error)
	listFn      func(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error)
	getFn       func(ctx context.Context, id string) (models.Employee, error)
	deleteFn    func(ctx context.Context, id string) error
	withStatsFn func(ctx context.Context, id string) (models.EmployeeStats, error)
	suggestFn   func(ctx context.Context) (string, error)
}

func (s stubEmployees) CreateEmployee(ctx context.Context, input employees.CreateEmployeeInput) (models.Employee, error) {
	if s.createFn == nil {
		return models.Employee{}, nil
	}
	return s.createFn(ctx, input)
}

func (s stubEmployees) ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, filter)
}

func (s stubEmployees) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	if s.getFn == nil {
		return models.Employee{}, nil
	}
	return s.getFn(ctx, id)
}

func (s stubEmployees) DeleteEmployee(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s stubEmployees) GetEmployeeWithStats(ctx context.Context, id string) (models.EmployeeStats, error) {
	if s.withStatsFn == nil {
		return models.EmployeeStats{}, nil
	}
	return s.withStatsFn(ctx, id)
}

func (s stubEmployees) SuggestNextEmployeeID(ctx context.Context) (string, error) {
	if s.suggestFn == nil {
		return "", nil
	}
	return s.suggestFn(ctx)
}

type stubAttendance struct {
	markFn   func(ctx context.Context, input attendance.MarkInput) (models.Attendance, error)
	listFn   func(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error)
	getFn    func(ctx context.Context, id string) (models.Attendance, error)
	deleteFn func(ctx context.Context, id string) error
	exportFn func(ctx context.Context, filter models.AttendanceFilter) (*bytes.Buffer, error)
}

func (s stubAttendance) MarkAttendance(ctx context.Context, input attendance.MarkInput) (models.Attendance, error) {
	if s.markFn == nil {
		return models.Attendance{}, nil
	}
	return s.markFn(ctx, input)
}

func (s stubAttendance) ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, filter)
}

func (s stubAttendance) GetAttendance(ctx context.Context, id string) (models.Attendance, error) {
	if s.getFn == nil {
		return models.Attendance{}, nil
	}
	return s.getFn(ctx, id)
}

func (s stubAttendance) DeleteAttendance(ctx context.Context, id string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, id)
}

func (s stubAttendance) ExportAttendance(ctx context.Context, filter models.AttendanceFilter) (*bytes.Buffer, error) {
	if s.exportFn == nil {
		return &bytes.Buffer{}, nil
	}
	return s.exportFn(ctx, filter)
}

type stubDashboard struct {
	statsFn     func(ctx context.Context) (models.DashboardStats, error)
	notMarkedFn func(ctx context.Context) ([]models.Employee, error)
}

func (s stubDashboard) GetStats(ctx context.Context) (models.DashboardStats, error) {
	if s.statsFn == nil {
		return models.DashboardStats{}, nil
	}
	return s.statsFn(ctx)
}

func (s stubDashboard) GetNotMarkedEmployees(ctx context.Context) ([]models.Employee, error) {
	if s.notMarkedFn == nil {
		return nil, nil
	}
	return s.notMarkedFn(ctx)
}
