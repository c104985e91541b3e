package models

import "time"

// Employee represents a registered member of staff.
type Employee struct {
	ID         string
	EmployeeID string // human-facing business code, e.g. EMP001
	FullName   string
	Email      string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EmployeeFilter narrows an employee listing. Zero values disable a filter.
type EmployeeFilter struct {
	Department string
	Search     string
}

// EmployeeStats is an employee together with its attendance history.
type EmployeeStats struct {
	Employee

	TotalPresent         int
	TotalAbsent          int
	AttendancePercentage float64
	Attendances          []Attendance
}

// DashboardStats aggregates headcount and today's attendance.
type DashboardStats struct {
	TotalEmployees      int
	PresentToday        int
	AbsentToday         int
	NotMarkedAttendance int
	TotalDepartments    int
}
