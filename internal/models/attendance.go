package models

import (
	"strings"
	"time"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
)

// ParseAttendanceStatus accepts a status in any letter case.
func ParseAttendanceStatus(raw string) (AttendanceStatus, bool) {
	switch status := AttendanceStatus(strings.ToUpper(strings.TrimSpace(raw))); status {
	case StatusPresent, StatusAbsent:
		return status, true
	default:
		return "", false
	}
}

// Attendance is a single day mark for an employee.
// Employee is populated only by queries that join the owner.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     AttendanceStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Employee   *Employee
}

// AttendanceFilter narrows an attendance listing.
type AttendanceFilter struct {
	EmployeeID string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     string
	Limit      int
}

// NormalizeDate drops the time of day, keeping the calendar date of t.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
