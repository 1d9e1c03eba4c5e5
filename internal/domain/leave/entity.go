package leave

import "time"

// Category identifies the kind of absence. Illness is the only category
// with partial pay; paternity leave does not affect pay at all.
type Category string

const (
	CategoryIllness       Category = "illness"
	CategoryAccident      Category = "accident"
	CategoryMaternity     Category = "maternity"
	CategoryGeneralPermit Category = "general_permit"
	CategoryPaternity     Category = "paternity"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryIllness, CategoryAccident, CategoryMaternity, CategoryGeneralPermit, CategoryPaternity:
		return true
	}
	return false
}

// Record is a single leave entry scoped to one calendar month. A leave
// spanning a month boundary is stored as one record per month, all
// sharing the same case number.
type Record struct {
	ID         string
	CompanyID  string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Month      string
	Category   Category
	CaseNumber string
	CreatedAt  time.Time
}

// Block is a run of contiguous same-case records merged back together
// for payroll purposes.
type Block struct {
	EmployeeID string
	Category   Category
	CaseNumber string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
}

// CountDays returns the number of leave days between start and end
// inclusive. Paternity leave counts weekdays only; every other category
// counts calendar days.
func CountDays(category Category, start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	if category != CategoryPaternity {
		return int(end.Sub(start).Hours()/24) + 1
	}
	days := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}
	return days
}
