package leave

import (
	"sort"
	"time"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
)

// MergeBlocks reassembles month-scoped leave records into contiguous
// blocks per case. Records belong to the same block when they share the
// category and a non-empty case number and the next record starts the
// day after the previous one ends. Records without a case number never
// merge; each stands as its own block.
//
// The continuity of a block matters for sick pay: only the first three
// days of an illness case are paid at half rate, no matter how many
// monthly records the case was split into.
func MergeBlocks(records []*leave.Record) []leave.Block {
	if len(records) == 0 {
		return nil
	}

	sorted := make([]*leave.Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	var blocks []leave.Block
	for _, rec := range sorted {
		if len(blocks) > 0 {
			last := &blocks[len(blocks)-1]
			if extends(last, rec) {
				last.EndDate = rec.EndDate
				last.Days += rec.Days
				continue
			}
		}
		blocks = append(blocks, leave.Block{
			EmployeeID: rec.EmployeeID,
			Category:   rec.Category,
			CaseNumber: rec.CaseNumber,
			StartDate:  rec.StartDate,
			EndDate:    rec.EndDate,
			Days:       rec.Days,
		})
	}
	return blocks
}

func extends(block *leave.Block, rec *leave.Record) bool {
	if block.CaseNumber == "" || rec.CaseNumber == "" {
		return false
	}
	if block.Category != rec.Category || block.CaseNumber != rec.CaseNumber {
		return false
	}
	return rec.StartDate.Equal(block.EndDate.AddDate(0, 0, 1))
}

// BlocksForMonth filters blocks down to those overlapping the given
// month window.
func BlocksForMonth(blocks []leave.Block, monthStart, monthEnd time.Time) []leave.Block {
	var overlapping []leave.Block
	for _, b := range blocks {
		if b.StartDate.After(monthEnd) || b.EndDate.Before(monthStart) {
			continue
		}
		overlapping = append(overlapping, b)
	}
	return overlapping
}
