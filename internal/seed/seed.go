package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/UnknownOlympus/hrms/internal/apperror"
	"github.com/UnknownOlympus/hrms/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/UnknownOlympus/hrms/internal/services/employees"
	"github.com/tamathecxder/randomail"
)

const maxAttempts = 3

var (
	firstNames  = []string{"Ada", "Grace", "Alan", "Linus", "Barbara", "Ken", "Margaret", "Dennis", "Frances", "Edsger"}
	lastNames   = []string{"Lovelace", "Hopper", "Turing", "Torvalds", "Liskov", "Thompson", "Hamilton", "Ritchie"}
	departments = []string{"Engineering", "Sales", "Marketing", "Finance", "Human Resources", "Support"}
)

type EmployeeCreator interface {
	SuggestNextEmployeeID(ctx context.Context) (string, error)
	CreateEmployee(ctx context.Context, input employees.CreateEmployeeInput) (models.Employee, error)
}

// Employees creates n demo employees with suggested codes and random mailboxes.
// A conflict on the generated email is retried with a fresh one.
func Employees(
	ctx context.Context,
	log *slog.Logger,
	creator EmployeeCreator,
	rnd *rand.Rand,
	n int,
) ([]models.Employee, error) {
	created := make([]models.Employee, 0, n)

	for range n {
		employee, err := createOne(ctx, log, creator, rnd)
		if err != nil {
			return created, err
		}

		log.InfoContext(ctx, "Seeded employee", "employee_id", employee.EmployeeID, "email", employee.Email)
		created = append(created, employee)
	}

	return created, nil
}

func createOne(
	ctx context.Context,
	log *slog.Logger,
	creator EmployeeCreator,
	rnd *rand.Rand,
) (models.Employee, error) {
	var lastErr error

	for range maxAttempts {
		code, err := creator.SuggestNextEmployeeID(ctx)
		if err != nil {
			return models.Employee{}, fmt.Errorf("failed to suggest employee id: %w", err)
		}

		employee, err := creator.CreateEmployee(ctx, employees.CreateEmployeeInput{
			EmployeeID: code,
			FullName:   pick(rnd, firstNames) + " " + pick(rnd, lastNames),
			Email:      randomail.GenerateRandomEmail(),
			Department: pick(rnd, departments),
		})
		if err == nil {
			return employee, nil
		}
		if apperror.GetCode(err) != apperror.CodeConflict {
			return models.Employee{}, fmt.Errorf("failed to create employee %s: %w", code, err)
		}

		log.DebugContext(ctx, "Seed conflict, retrying", sl.Err(err))
		lastErr = err
	}

	return models.Employee{}, fmt.Errorf("gave up after %d attempts: %w", maxAttempts, lastErr)
}

func pick(rnd *rand.Rand, values []string) string {
	return values[rnd.IntN(len(values))]
}
