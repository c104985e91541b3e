package models_test

import (
	"testing"
	"time"

	"github.com/UnknownOlympus/hrms/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseAttendanceStatus(t *testing.T) {
	t.Parallel()

	status, ok := models.ParseAttendanceStatus("present")
	assert.True(t, ok)
	assert.Equal(t, models.StatusPresent, status)

	status, ok = models.ParseAttendanceStatus(" ABSENT ")
	assert.True(t, ok)
	assert.Equal(t, models.StatusAbsent, status)

	_, ok = models.ParseAttendanceStatus("late")
	assert.False(t, ok)
}

func TestNormalizeDate(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+7", 7*60*60)
	got := models.NormalizeDate(time.Date(2026, time.March, 4, 23, 59, 1, 500, loc))

	assert.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), got)
}
