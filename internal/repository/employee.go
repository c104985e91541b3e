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
	employeeColumns = "id, employee_id, full_name, email, department, created_at, updated_at"

	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"

	employeeIDConstraint = "employees_employee_id_key"
	emailConstraint      = "employees_email_key"
)

// CreateEmployee inserts a new employee and returns the stored row.
// A unique violation is reported as ErrDuplicateEmployeeID or ErrDuplicateEmail.
func (r *Repository) CreateEmployee(ctx context.Context, employee models.Employee) (models.Employee, error) {
	defer r.observe("create_employee", time.Now())

	query := `
		INSERT INTO employees (id, employee_id, full_name, email, department)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(r.db.QueryRow(ctx, query,
		uuid.NewString(), employee.EmployeeID, employee.FullName, employee.Email, employee.Department))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			switch pgErr.ConstraintName {
			case employeeIDConstraint:
				return models.Employee{}, ErrDuplicateEmployeeID
			case emailConstraint:
				return models.Employee{}, ErrDuplicateEmail
			}
		}
		return models.Employee{}, fmt.Errorf("failed to save employee: %w", err)
	}

	return created, nil
}

// FindEmployeeByCodeOrEmail returns an employee matching either the business code or the email.
// A row matching the business code wins over one matching only the email.
func (r *Repository) FindEmployeeByCodeOrEmail(
	ctx context.Context,
	employeeID, email string,
) (models.Employee, error) {
	defer r.observe("find_employee_by_code_or_email", time.Now())

	query := `SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_id = $1 OR email = $2
		ORDER BY (employee_id = $1) DESC
		LIMIT 1`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, employeeID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to find employee by code or email: %w", err)
	}

	return employee, nil
}

// GetEmployeeByID retrieves an employee from the database by its ID.
func (r *Repository) GetEmployeeByID(ctx context.Context, id string) (models.Employee, error) {
	defer r.observe("get_employee_by_id", time.Now())

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	employee, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Employee{}, ErrNotFound
		}
		return models.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return employee, nil
}

// ListEmployees returns employees matching the filter, newest first.
func (r *Repository) ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, error) {
	defer r.observe("list_employees", time.Now())

	var (
		conditions []string
		args       []any
	)

	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, fmt.Sprintf("department = $%d", len(args)))
	}

	if filter.Search != "" {
		args = append(args, "%"+escapeLike(filter.Search)+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(full_name ILIKE $%d OR employee_id ILIKE $%d OR email ILIKE $%d)", n, n, n))
	}

	var query strings.Builder
	query.WriteString(`SELECT ` + employeeColumns + ` FROM employees`)
	if len(conditions) > 0 {
		query.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	query.WriteString(" ORDER BY created_at DESC")

	rows, err := r.db.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		employee, scanErr := scanEmployee(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", scanErr)
		}
		employees = append(employees, employee)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// DeleteEmployee removes the employee; its attendance rows go with it (ON DELETE CASCADE).
func (r *Repository) DeleteEmployee(ctx context.Context, id string) error {
	defer r.observe("delete_employee", time.Now())

	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// GetLastEmployeeCode returns the greatest business code by string ordering,
// or an empty string when there are no employees.
func (r *Repository) GetLastEmployeeCode(ctx context.Context) (string, error) {
	defer r.observe("get_last_employee_code", time.Now())

	var code string
	err := r.db.QueryRow(ctx, `SELECT employee_id FROM employees ORDER BY employee_id DESC LIMIT 1`).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get last employee code: %w", err)
	}

	return code, nil
}

// CountEmployees returns the number of registered employees.
func (r *Repository) CountEmployees(ctx context.Context) (int, error) {
	defer r.observe("count_employees", time.Now())

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var employee models.Employee
	err := row.Scan(
		&employee.ID,
		&employee.EmployeeID,
		&employee.FullName,
		&employee.Email,
		&employee.Department,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	return employee, err
}

// escapeLike makes user input literal inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
