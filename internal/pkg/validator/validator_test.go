package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("night shift"))
}

func TestIsValidTime(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"08:00", true},
		{"22:30", true},
		{"00:00", true},
		{"23:59", true},
		{"24:00", false},
		{"8am", false},
		{"08:60", false},
		{"", false},
	}

	for _, tt := range tests {
		_, ok := IsValidTime(tt.input)
		assert.Equal(t, tt.valid, ok, "input %q", tt.input)
	}
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-12-25")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 25, d.Day())

	_, ok = IsValidDate("25-12-2024")
	assert.False(t, ok)
	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestIsValidMonthYear(t *testing.T) {
	assert.True(t, IsValidMonth(1))
	assert.True(t, IsValidMonth(12))
	assert.False(t, IsValidMonth(0))
	assert.False(t, IsValidMonth(13))

	assert.True(t, IsValidYear(2024))
	assert.False(t, IsValidYear(1999))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "start_time", Message: "start_time must be a valid time in HH:MM format"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "name is required", m["name"])
	assert.Contains(t, errs.Error(), "start_time")
}
