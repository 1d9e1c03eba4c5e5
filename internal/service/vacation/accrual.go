package vacation

import (
	"time"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/vacation"
)

// Vacation accrues one day per full month worked, up to twelve days per
// anniversary period.
const (
	daysPerAccruedMonth = 30
	maxAccruedPerPeriod = 12
)

// AccruePeriods builds the anniversary periods between the hire date
// and asOf. Each period runs from one hire-date anniversary to the day
// before the next. The open period accrues only for the months already
// worked.
func AccruePeriods(hireDate, asOf time.Time) []vacation.PeriodBalance {
	if asOf.Before(hireDate) {
		return nil
	}

	var balances []vacation.PeriodBalance
	for start := hireDate; !start.After(asOf); start = start.AddDate(1, 0, 0) {
		end := start.AddDate(1, 0, -1)

		accrualEnd := end
		if accrualEnd.After(asOf) {
			accrualEnd = asOf
		}
		daysWorked := int(accrualEnd.Sub(start).Hours()/24) + 1
		accrued := daysWorked / daysPerAccruedMonth
		if accrued > maxAccruedPerPeriod {
			accrued = maxAccruedPerPeriod
		}

		balances = append(balances, vacation.PeriodBalance{
			Period:      start.Format("2006-01-02"),
			PeriodStart: start,
			PeriodEnd:   end,
			AccruedDays: accrued,
		})
	}
	return balances
}

// PeriodFor returns the anniversary period containing the given date,
// or false when the date precedes the hire date.
func PeriodFor(hireDate, date time.Time) (vacation.PeriodBalance, bool) {
	if date.Before(hireDate) {
		return vacation.PeriodBalance{}, false
	}
	start := hireDate
	for !start.AddDate(1, 0, 0).After(date) {
		start = start.AddDate(1, 0, 0)
	}
	return vacation.PeriodBalance{
		Period:      start.Format("2006-01-02"),
		PeriodStart: start,
		PeriodEnd:   start.AddDate(1, 0, -1),
	}, true
}
