package seed_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/UnknownOlympus/hrms/internal/apperror"
	"github.com/UnknownOlympus/hrms/internal/lib/validator"
	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/UnknownOlympus/hrms/internal/seed"
	"github.com/UnknownOlympus/hrms/internal/services/employees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCreator hands out sequential codes and can reject the first few creates.
type fakeCreator struct {
	lastCode  string
	conflicts int
	fail      error
	inputs    []employees.CreateEmployeeInput
}

func (f *fakeCreator) SuggestNextEmployeeID(context.Context) (string, error) {
	return validator.GenerateNextEmployeeID(f.lastCode), nil
}

func (f *fakeCreator) CreateEmployee(_ context.Context, input employees.CreateEmployeeInput) (models.Employee, error) {
	f.inputs = append(f.inputs, input)
	if f.fail != nil {
		return models.Employee{}, f.fail
	}
	if f.conflicts > 0 {
		f.conflicts--
		return models.Employee{}, apperror.Conflict("Email already exists")
	}

	f.lastCode = input.EmployeeID
	return models.Employee{
		EmployeeID: input.EmployeeID,
		FullName:   input.FullName,
		Email:      input.Email,
		Department: input.Department,
	}, nil
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEmployees(t *testing.T) {
	t.Parallel()

	creator := &fakeCreator{}
	rnd := rand.New(rand.NewPCG(1, 2))

	created, err := seed.Employees(t.Context(), newLogger(), creator, rnd, 3)

	require.NoError(t, err)
	require.Len(t, created, 3)
	assert.Equal(t, "EMP001", created[0].EmployeeID)
	assert.Equal(t, "EMP002", created[1].EmployeeID)
	assert.Equal(t, "EMP003", created[2].EmployeeID)
	for _, employee := range created {
		assert.NotEmpty(t, employee.FullName)
		assert.NotEmpty(t, employee.Department)
		assert.Contains(t, employee.Email, "@")
	}
}

func TestEmployees_RetriesConflict(t *testing.T) {
	t.Parallel()

	creator := &fakeCreator{conflicts: 2}

	created, err := seed.Employees(t.Context(), newLogger(), creator, rand.New(rand.NewPCG(3, 4)), 1)

	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.Len(t, creator.inputs, 3)
}

func TestEmployees_GivesUp(t *testing.T) {
	t.Parallel()

	creator := &fakeCreator{conflicts: 10}

	created, err := seed.Employees(t.Context(), newLogger(), creator, rand.New(rand.NewPCG(5, 6)), 2)

	require.Error(t, err)
	assert.Empty(t, created)
	assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
}

func TestEmployees_StopsOnStoreFailure(t *testing.T) {
	t.Parallel()

	creator := &fakeCreator{fail: assert.AnError}

	_, err := seed.Employees(t.Context(), newLogger(), creator, rand.New(rand.NewPCG(7, 8)), 2)

	require.ErrorIs(t, err, assert.AnError)
	assert.Len(t, creator.inputs, 1)
}
