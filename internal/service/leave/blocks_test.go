package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
)

func day(value string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func record(category leave.Category, caseNumber, start, end string) *leave.Record {
	startDate := day(start)
	endDate := day(end)
	return &leave.Record{
		EmployeeID: "emp-1",
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       leave.CountDays(category, startDate, endDate),
		Month:      startDate.Format("2006-01"),
		Category:   category,
		CaseNumber: caseNumber,
	}
}

func TestMergeBlocks_MergesAdjacentSameCase(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-01-30", "2025-01-31"),
		record(leave.CategoryIllness, "INC-001", "2025-02-01", "2025-02-03"),
	})

	require.Len(t, blocks, 1)
	assert.Equal(t, day("2025-01-30"), blocks[0].StartDate)
	assert.Equal(t, day("2025-02-03"), blocks[0].EndDate)
	assert.Equal(t, 5, blocks[0].Days)
}

func TestMergeBlocks_SortsBeforeMerging(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-02-01", "2025-02-03"),
		record(leave.CategoryIllness, "INC-001", "2025-01-30", "2025-01-31"),
	})

	require.Len(t, blocks, 1)
	assert.Equal(t, 5, blocks[0].Days)
}

func TestMergeBlocks_DifferentCaseNumbersStaySeparate(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-01-30", "2025-01-31"),
		record(leave.CategoryIllness, "INC-002", "2025-02-01", "2025-02-03"),
	})

	assert.Len(t, blocks, 2)
}

func TestMergeBlocks_EmptyCaseNumberNeverMerges(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryGeneralPermit, "", "2025-01-30", "2025-01-31"),
		record(leave.CategoryGeneralPermit, "", "2025-02-01", "2025-02-03"),
	})

	assert.Len(t, blocks, 2)
}

func TestMergeBlocks_GapBreaksBlock(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-01-10", "2025-01-12"),
		record(leave.CategoryIllness, "INC-001", "2025-01-14", "2025-01-16"),
	})

	assert.Len(t, blocks, 2)
}

func TestMergeBlocks_DifferentCategoryStaysSeparate(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-01-30", "2025-01-31"),
		record(leave.CategoryAccident, "INC-001", "2025-02-01", "2025-02-03"),
	})

	assert.Len(t, blocks, 2)
}

func TestMergeBlocks_Idempotent(t *testing.T) {
	t.Parallel()

	merged := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-01-30", "2025-01-31"),
		record(leave.CategoryIllness, "INC-001", "2025-02-01", "2025-02-03"),
		record(leave.CategoryAccident, "ACC-001", "2025-02-10", "2025-02-12"),
	})
	require.Len(t, merged, 2)

	// Feeding merged blocks back in as records must reproduce them.
	var records []*leave.Record
	for _, block := range merged {
		records = append(records, &leave.Record{
			EmployeeID: block.EmployeeID,
			StartDate:  block.StartDate,
			EndDate:    block.EndDate,
			Days:       block.Days,
			Category:   block.Category,
			CaseNumber: block.CaseNumber,
		})
	}

	assert.Equal(t, merged, MergeBlocks(records))
}

func TestMergeBlocks_Empty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeBlocks(nil))
}

func TestBlocksForMonth_FiltersNonOverlapping(t *testing.T) {
	t.Parallel()

	blocks := MergeBlocks([]*leave.Record{
		record(leave.CategoryIllness, "INC-001", "2025-01-10", "2025-01-12"),
		record(leave.CategoryIllness, "INC-002", "2025-03-05", "2025-03-08"),
	})

	february := BlocksForMonth(blocks, day("2025-02-01"), day("2025-02-28"))
	assert.Empty(t, february)

	january := BlocksForMonth(blocks, day("2025-01-01"), day("2025-01-31"))
	require.Len(t, january, 1)
	assert.Equal(t, "INC-001", january[0].CaseNumber)
}
