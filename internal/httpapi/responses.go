package httpapi

import (
	"time"

	"github.com/UnknownOlympus/hrms/internal/models"
)

type employeeResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type attendanceResponse struct {
	ID         string            `json:"id"`
	EmployeeID string            `json:"employee_id"`
	Date       string            `json:"date"`
	Status     string            `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	Employee   *employeeResponse `json:"employee"`
}

type employeeStatsResponse struct {
	employeeResponse

	TotalPresent         int                  `json:"total_present"`
	TotalAbsent          int                  `json:"total_absent"`
	AttendancePercentage float64              `json:"attendance_percentage"`
	Attendances          []attendanceResponse `json:"attendances"`
}

type dashboardStatsResponse struct {
	TotalEmployees      int `json:"total_employees"`
	PresentToday        int `json:"present_today"`
	AbsentToday         int `json:"absent_today"`
	NotMarkedAttendance int `json:"not_marked_attendance"`
	TotalDepartments    int `json:"total_departments"`
}

type suggestedIDResponse struct {
	SuggestedID string `json:"suggested_id"`
}

type ackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func toEmployeeResponse(employee models.Employee) employeeResponse {
	return employeeResponse{
		ID:         employee.ID,
		EmployeeID: employee.EmployeeID,
		FullName:   employee.FullName,
		Email:      employee.Email,
		Department: employee.Department,
		CreatedAt:  employee.CreatedAt,
		UpdatedAt:  employee.UpdatedAt,
	}
}

func toEmployeeResponses(list []models.Employee) []employeeResponse {
	out := make([]employeeResponse, 0, len(list))
	for _, employee := range list {
		out = append(out, toEmployeeResponse(employee))
	}
	return out
}

func toAttendanceResponse(record models.Attendance) attendanceResponse {
	resp := attendanceResponse{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		Date:       record.Date.Format(time.DateOnly),
		Status:     string(record.Status),
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
	if record.Employee != nil {
		employee := toEmployeeResponse(*record.Employee)
		resp.Employee = &employee
	}
	return resp
}

func toAttendanceResponses(list []models.Attendance) []attendanceResponse {
	out := make([]attendanceResponse, 0, len(list))
	for _, record := range list {
		out = append(out, toAttendanceResponse(record))
	}
	return out
}

func toEmployeeStatsResponse(stats models.EmployeeStats) employeeStatsResponse {
	return employeeStatsResponse{
		employeeResponse:     toEmployeeResponse(stats.Employee),
		TotalPresent:         stats.TotalPresent,
		TotalAbsent:          stats.TotalAbsent,
		AttendancePercentage: stats.AttendancePercentage,
		Attendances:          toAttendanceResponses(stats.Attendances),
	}
}

func toDashboardStatsResponse(stats models.DashboardStats) dashboardStatsResponse {
	return dashboardStatsResponse(stats)
}

func ack(message string) ackResponse {
	return ackResponse{Success: true, Message: message}
}
