package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	t.Parallel()

	p, err := ParsePeriod("2025-02")
	require.NoError(t, err)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, time.February, p.Month)
	assert.Equal(t, "2025-02", p.String())

	_, err = ParsePeriod("2025-13")
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = ParsePeriod("February 2025")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPeriodBounds(t *testing.T) {
	t.Parallel()

	p, err := ParsePeriod("2024-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), p.End())
	assert.Equal(t, 29, p.DaysInMonth())
}

func TestPeriodNext(t *testing.T) {
	t.Parallel()

	december, err := ParsePeriod("2024-12")
	require.NoError(t, err)
	january := december.Next()
	assert.Equal(t, "2025-01", january.String())
	assert.Equal(t, "2025-02", january.Next().String())
}
