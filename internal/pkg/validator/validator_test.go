package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("ana@empresa.cr"))
	assert.False(t, IsValidEmail("ana@empresa"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidDate("2025-03-14"))
	assert.False(t, IsValidDate("2025-03-32"))
	assert.False(t, IsValidDate("14/03/2025"))
}

func TestIsValidMonth(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidMonth("2025-03"))
	assert.False(t, IsValidMonth("2025-13"))
	assert.False(t, IsValidMonth("2025-03-14"))
}

func TestIsValidIdentityNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidIdentityNumber("1-2345-6789"))
	assert.True(t, IsValidIdentityNumber("123456789"))
	assert.False(t, IsValidIdentityNumber("12"))
	assert.False(t, IsValidIdentityNumber("abc-def"))
}

func TestIsValidRate(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidRate(decimal.RequireFromString("0.0967")))
	assert.True(t, IsValidRate(decimal.Zero))
	assert.False(t, IsValidRate(decimal.RequireFromString("1")))
	assert.False(t, IsValidRate(decimal.RequireFromString("-0.1")))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	var errs ValidationErrors
	assert.True(t, errs.IsEmpty())

	errs = append(errs, ValidationError{Field: "month", Message: "month is required"})
	assert.False(t, errs.IsEmpty())
	assert.Equal(t, "month: month is required", errs.Error())
	assert.Equal(t, map[string]string{"month": "month is required"}, errs.ToMap())
}
