package validator_test

import (
	"testing"

	"github.com/UnknownOlympus/hrms/internal/lib/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"john.doe@example.com", true},
		{"a+tag@sub.domain.io", true},
		{"x_y%z@host-name.org", true},
		{"testuser.com", false},
		{"user@host", false},
		{"user@host.c", false},
		{"@example.com", false},
		{"", false},
		{"user name@example.com", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validator.ValidateEmail(tt.email), tt.email)
	}
}

func TestValidateEmployeeID(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ValidateEmployeeID("EMP001"))
	assert.True(t, validator.ValidateEmployeeID(" x "))
	assert.False(t, validator.ValidateEmployeeID(""))
	assert.False(t, validator.ValidateEmployeeID("   \t"))
}

func TestGenerateNextEmployeeID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lastID string
		want   string
	}{
		{name: "no previous id", lastID: "", want: "EMP001"},
		{name: "first increment", lastID: "EMP001", want: "EMP002"},
		{name: "padded", lastID: "EMP007", want: "EMP008"},
		{name: "carry", lastID: "EMP099", want: "EMP100"},
		{name: "no width clamp", lastID: "EMP999", want: "EMP1000"},
		{name: "garbage", lastID: "garbage", want: "EMP001"},
		{name: "prefix only", lastID: "EMP", want: "EMP001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validator.GenerateNextEmployeeID(tt.lastID))
		})
	}
}
