package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-03-17")
	assert.True(t, ok)

	_, ok = IsValidDate("17-03-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("09:00"))
	assert.True(t, IsValidClockTime("23:59"))
	assert.True(t, IsValidClockTime(" 08:15 "))
	assert.False(t, IsValidClockTime("24:00"))
	assert.False(t, IsValidClockTime("9am"))
	assert.False(t, IsValidClockTime(""))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("018f6f3c-1b2a-7c3d-89ab-0123456789ab"))
	assert.True(t, IsValidUUID("6ba7b810-9dad-41d1-80b4-00c04fd430c8"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsInSlice(t *testing.T) {
	assert.True(t, IsInSlice("ONSITE", []string{"ONSITE", "REMOTE"}))
	assert.False(t, IsInSlice("HYBRID", []string{"ONSITE", "REMOTE"}))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "work_type", Message: "work_type is required"},
		{Field: "date", Message: "date must be in YYYY-MM-DD format"},
	}

	assert.Contains(t, errs.Error(), "work_type")
	assert.Contains(t, errs.Error(), "date")
	assert.Equal(t, "work_type is required", errs.ToMap()["work_type"])
}
