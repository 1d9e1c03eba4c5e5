package vacation

import "time"

// Request is a vacation request counted against an anniversary period.
type Request struct {
	ID         string
	CompanyID  string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Period     string
	CreatedAt  time.Time
}

// PeriodBalance is the vacation standing for one anniversary period.
// Accrual is one day per full month worked, capped at twelve per period.
type PeriodBalance struct {
	Period        string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	AccruedDays   int
	RequestedDays int
	PendingDays   int
}
