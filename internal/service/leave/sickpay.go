package leave

import (
	"time"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
)

// Half-pay window at the start of each illness case.
const halfPayDayLimit = 3

// MonthAllocation is the pay effect a block has inside one month.
type MonthAllocation struct {
	// DaysInMonth is the number of leave days the block contributes to
	// the month.
	DaysInMonth int
	// HalfPayDays is how many of those days are paid at half the daily
	// rate. Only illness blocks ever allocate half-pay days.
	HalfPayDays int
	// UnpaidDays are deducted in full.
	UnpaidDays int
}

// AllocateMonth splits a block's days for the month between half-pay
// and unpaid. For an illness case the half-pay window covers the first
// three days of the whole case, so a block that started in an earlier
// month may have spent part or all of its window already.
//
// Paternity blocks have no pay effect and allocate nothing.
func AllocateMonth(block leave.Block, monthStart, monthEnd time.Time) MonthAllocation {
	if block.Category == leave.CategoryPaternity {
		return MonthAllocation{}
	}

	start := block.StartDate
	if start.Before(monthStart) {
		start = monthStart
	}
	end := block.EndDate
	if end.After(monthEnd) {
		end = monthEnd
	}
	if end.Before(start) {
		return MonthAllocation{}
	}
	daysInMonth := int(end.Sub(start).Hours()/24) + 1

	if block.Category != leave.CategoryIllness {
		return MonthAllocation{
			DaysInMonth: daysInMonth,
			UnpaidDays:  daysInMonth,
		}
	}

	daysBeforeMonth := 0
	if block.StartDate.Before(monthStart) {
		daysBeforeMonth = int(monthStart.Sub(block.StartDate).Hours() / 24)
	}
	remainingHalfPay := halfPayDayLimit - daysBeforeMonth
	if remainingHalfPay < 0 {
		remainingHalfPay = 0
	}
	halfPayDays := remainingHalfPay
	if halfPayDays > daysInMonth {
		halfPayDays = daysInMonth
	}

	return MonthAllocation{
		DaysInMonth: daysInMonth,
		HalfPayDays: halfPayDays,
		UnpaidDays:  daysInMonth - halfPayDays,
	}
}
