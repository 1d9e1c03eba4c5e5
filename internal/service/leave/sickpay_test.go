package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
)

func TestAllocateMonth_IllnessWithinMonth(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-03-10", "2025-03-14"),
	})
	require.Len(t, blocks, 1)

	alloc := AllocateMonth(blocks[0], day("2025-03-01"), day("2025-03-31"))
	assert.Equal(t, 5, alloc.DaysInMonth)
	assert.Equal(t, 3, alloc.HalfPayDays)
	assert.Equal(t, 2, alloc.UnpaidDays)
}

func TestAllocateMonth_IllnessShorterThanWindow(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-03-10", "2025-03-11"),
	})

	alloc := AllocateMonth(blocks[0], day("2025-03-01"), day("2025-03-31"))
	assert.Equal(t, 2, alloc.DaysInMonth)
	assert.Equal(t, 2, alloc.HalfPayDays)
	assert.Equal(t, 0, alloc.UnpaidDays)
}

// An illness case that starts at the end of one month carries its
// half-pay window into the next: only the unconsumed part of the first
// three days is paid at half rate in the second month.
func TestAllocateMonth_IllnessCrossingMonthBoundary(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-01-30", "2025-01-31"),
		record(leave.CategoryIllness, "INC-001", "2025-02-01", "2025-02-05"),
	})
	require.Len(t, blocks, 1)

	january := AllocateMonth(blocks[0], day("2025-01-01"), day("2025-01-31"))
	assert.Equal(t, 2, january.DaysInMonth)
	assert.Equal(t, 2, january.HalfPayDays)
	assert.Equal(t, 0, january.UnpaidDays)

	february := AllocateMonth(blocks[0], day("2025-02-01"), day("2025-02-28"))
	assert.Equal(t, 5, february.DaysInMonth)
	assert.Equal(t, 1, february.HalfPayDays)
	assert.Equal(t, 4, february.UnpaidDays)
}

func TestAllocateMonth_WindowFullyConsumedBeforeMonth(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-01-25", "2025-01-31"),
		record(leave.CategoryIllness, "INC-001", "2025-02-01", "2025-02-10"),
	})
	require.Len(t, blocks, 1)

	february := AllocateMonth(blocks[0], day("2025-02-01"), day("2025-02-28"))
	assert.Equal(t, 10, february.DaysInMonth)
	assert.Equal(t, 0, february.HalfPayDays)
	assert.Equal(t, 10, february.UnpaidDays)
}

// Splitting a case into separate records must not restart the half-pay
// window: the same dates recorded under two case numbers behave
// differently from one merged case.
func TestAllocateMonth_SeparateCasesEachGetOwnWindow(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-01-30", "2025-01-31"),
		record(leave.CategoryIllness, "INC-002", "2025-02-01", "2025-02-05"),
	})
	require.Len(t, blocks, 2)

	february := AllocateMonth(blocks[1], day("2025-02-01"), day("2025-02-28"))
	assert.Equal(t, 3, february.HalfPayDays)
	assert.Equal(t, 2, february.UnpaidDays)
}

func TestAllocateMonth_AccidentFullyDeducted(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryAccident, "ACC-001", "2025-03-10", "2025-03-14"),
	})

	alloc := AllocateMonth(blocks[0], day("2025-03-01"), day("2025-03-31"))
	assert.Equal(t, 5, alloc.DaysInMonth)
	assert.Equal(t, 0, alloc.HalfPayDays)
	assert.Equal(t, 5, alloc.UnpaidDays)
}

func TestAllocateMonth_MaternityFullyDeducted(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryMaternity, "MAT-001", "2025-03-01", "2025-03-31"),
	})

	alloc := AllocateMonth(blocks[0], day("2025-03-01"), day("2025-03-31"))
	assert.Equal(t, 31, alloc.DaysInMonth)
	assert.Equal(t, 31, alloc.UnpaidDays)
}

func TestAllocateMonth_PaternityHasNoPayEffect(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryPaternity, "", "2025-03-10", "2025-03-14"),
	})

	alloc := AllocateMonth(blocks[0], day("2025-03-01"), day("2025-03-31"))
	assert.Zero(t, alloc.DaysInMonth)
	assert.Zero(t, alloc.HalfPayDays)
	assert.Zero(t, alloc.UnpaidDays)
}

func TestAllocateMonth_BlockOutsideMonth(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-01-10", "2025-01-12"),
	})

	alloc := AllocateMonth(blocks[0], day("2025-02-01"), day("2025-02-28"))
	assert.Zero(t, alloc.DaysInMonth)
}
