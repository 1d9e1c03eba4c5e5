package vacation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAccruePeriods_FullYearCapsAtTwelve(t *testing.T) {
	t.Parallel()

	balances := AccruePeriods(day("2023-04-01"), day("2024-03-31"))

	require.Len(t, balances, 1)
	assert.Equal(t, 12, balances[0].AccruedDays)
	assert.Equal(t, day("2023-04-01"), balances[0].PeriodStart)
	assert.Equal(t, day("2024-03-31"), balances[0].PeriodEnd)
}

func TestAccruePeriods_PartialOpenPeriod(t *testing.T) {
	t.Parallel()

	// Five full months plus a few days into the sixth.
	balances := AccruePeriods(day("2025-01-01"), day("2025-06-10"))

	require.Len(t, balances, 1)
	assert.Equal(t, 5, balances[0].AccruedDays)
}

func TestAccruePeriods_MultiplePeriods(t *testing.T) {
	t.Parallel()

	balances := AccruePeriods(day("2023-04-01"), day("2025-06-10"))

	require.Len(t, balances, 3)
	assert.Equal(t, 12, balances[0].AccruedDays)
	assert.Equal(t, 12, balances[1].AccruedDays)
	assert.Equal(t, 2, balances[2].AccruedDays)
	assert.Equal(t, day("2025-04-01"), balances[2].PeriodStart)
}

func TestAccruePeriods_BeforeHireDate(t *testing.T) {
	t.Parallel()

	assert.Nil(t, AccruePeriods(day("2025-01-01"), day("2024-12-31")))
}

func TestPeriodFor(t *testing.T) {
	t.Parallel()

	period, ok := PeriodFor(day("2023-04-01"), day("2025-05-10"))
	require.True(t, ok)
	assert.Equal(t, day("2025-04-01"), period.PeriodStart)
	assert.Equal(t, day("2026-03-31"), period.PeriodEnd)

	_, ok = PeriodFor(day("2023-04-01"), day("2023-03-31"))
	assert.False(t, ok)
}
