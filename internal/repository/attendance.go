package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	attendanceColumns       = "id, employee_id, date, status, created_at, updated_at"
	attendanceJoinedColumns = `a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at,
		e.id, e.employee_id, e.full_name, e.email, e.department, e.created_at, e.updated_at`
)

// UpsertAttendance marks the employee for the given day. An existing mark for the same
// (employee, date) pair has its status overwritten; otherwise a new row is inserted.
// It returns ErrNotFound when the employee does not exist.
func (r *Repository) UpsertAttendance(
	ctx context.Context,
	employeeID string,
	date time.Time,
	status models.AttendanceStatus,
) (models.Attendance, error) {
	defer r.observe("upsert_attendance", time.Now())

	query := `
		INSERT INTO attendances (id, employee_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET status = EXCLUDED.status, updated_at = CURRENT_TIMESTAMP
		RETURNING ` + attendanceColumns

	attendance, err := scanAttendance(r.db.QueryRow(ctx, query,
		uuid.NewString(), employeeID, models.NormalizeDate(date), string(status)))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return models.Attendance{}, ErrNotFound
		}
		return models.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return attendance, nil
}

// GetAttendanceByID retrieves an attendance record together with its employee.
func (r *Repository) GetAttendanceByID(ctx context.Context, id string) (models.Attendance, error) {
	defer r.observe("get_attendance_by_id", time.Now())

	query := `SELECT ` + attendanceJoinedColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1`

	attendance, err := scanAttendanceWithEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Attendance{}, ErrNotFound
		}
		return models.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return attendance, nil
}

// ListAttendance returns attendance records with their employees, newest date first.
// The filter's Limit is used as-is; callers clamp it.
func (r *Repository) ListAttendance(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, error) {
	defer r.observe("list_attendance", time.Now())

	var (
		conditions []string
		args       []any
	)

	addCondition := func(format string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if filter.EmployeeID != "" {
		addCondition("a.employee_id = $%d", filter.EmployeeID)
	}
	if filter.StartDate != nil {
		addCondition("a.date >= $%d", models.NormalizeDate(*filter.StartDate))
	}
	if filter.EndDate != nil {
		addCondition("a.date <= $%d", models.NormalizeDate(*filter.EndDate))
	}
	if filter.Status != "" {
		addCondition("a.status = $%d", filter.Status)
	}

	var query strings.Builder
	query.WriteString(`SELECT ` + attendanceJoinedColumns + `
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id`)
	if len(conditions) > 0 {
		query.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	args = append(args, filter.Limit)
	fmt.Fprintf(&query, " ORDER BY a.date DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return collectAttendance(rows, scanAttendanceWithEmployee)
}

// ListAttendanceByEmployee returns every attendance record of one employee.
func (r *Repository) ListAttendanceByEmployee(ctx context.Context, employeeID string) ([]models.Attendance, error) {
	defer r.observe("list_attendance_by_employee", time.Now())

	rows, err := r.db.Query(ctx, `SELECT `+attendanceColumns+` FROM attendances WHERE employee_id = $1`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by employee: %w", err)
	}

	return collectAttendance(rows, scanAttendance)
}

// ListAttendanceByDate returns every attendance record dated on the given day.
func (r *Repository) ListAttendanceByDate(ctx context.Context, date time.Time) ([]models.Attendance, error) {
	defer r.observe("list_attendance_by_date", time.Now())

	rows, err := r.db.Query(ctx,
		`SELECT `+attendanceColumns+` FROM attendances WHERE date = $1`, models.NormalizeDate(date))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}

	return collectAttendance(rows, scanAttendance)
}

// DeleteAttendance removes a single attendance record.
func (r *Repository) DeleteAttendance(ctx context.Context, id string) error {
	defer r.observe("delete_attendance", time.Now())

	tag, err := r.db.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func collectAttendance(rows pgx.Rows, scan func(pgx.Row) (models.Attendance, error)) ([]models.Attendance, error) {
	defer rows.Close()

	records := make([]models.Attendance, 0)
	for rows.Next() {
		record, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

func scanAttendance(row pgx.Row) (models.Attendance, error) {
	var (
		attendance models.Attendance
		status     string
	)
	err := row.Scan(
		&attendance.ID,
		&attendance.EmployeeID,
		&attendance.Date,
		&status,
		&attendance.CreatedAt,
		&attendance.UpdatedAt,
	)
	attendance.Status = models.AttendanceStatus(status)
	return attendance, err
}

func scanAttendanceWithEmployee(row pgx.Row) (models.Attendance, error) {
	var (
		attendance models.Attendance
		employee   models.Employee
		status     string
	)
	err := row.Scan(
		&attendance.ID,
		&attendance.EmployeeID,
		&attendance.Date,
		&status,
		&attendance.CreatedAt,
		&attendance.UpdatedAt,
		&employee.ID,
		&employee.EmployeeID,
		&employee.FullName,
		&employee.Email,
		&employee.Department,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		return models.Attendance{}, err
	}

	attendance.Status = models.AttendanceStatus(status)
	attendance.Employee = &employee
	return attendance, nil
}
