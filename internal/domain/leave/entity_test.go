package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCountDays_CalendarInclusive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, CountDays(CategoryIllness, day("2025-03-10"), day("2025-03-10")))
	assert.Equal(t, 5, CountDays(CategoryIllness, day("2025-03-10"), day("2025-03-14")))
	assert.Equal(t, 31, CountDays(CategoryMaternity, day("2025-03-01"), day("2025-03-31")))
}

func TestCountDays_PaternitySkipsWeekends(t *testing.T) {
	t.Parallel()

	// Monday through Sunday holds five weekdays.
	assert.Equal(t, 5, CountDays(CategoryPaternity, day("2025-03-10"), day("2025-03-16")))
	// Saturday and Sunday alone count nothing.
	assert.Equal(t, 0, CountDays(CategoryPaternity, day("2025-03-15"), day("2025-03-16")))
}

func TestCountDays_ReversedRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, CountDays(CategoryIllness, day("2025-03-14"), day("2025-03-10")))
}

func TestCategoryIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, CategoryIllness.IsValid())
	assert.True(t, CategoryPaternity.IsValid())
	assert.False(t, Category("sabbatical").IsValid())
}
