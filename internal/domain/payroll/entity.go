package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Period is one calendar month of payroll.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a month in the YYYY-MM format.
func ParsePeriod(value string) (Period, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// PeriodOf returns the period containing the given date.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Start returns midnight UTC on the first day of the month.
func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns midnight UTC on the last day of the month.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, -1)
}

// DaysInMonth returns the number of calendar days in the month.
func (p Period) DaysInMonth() int {
	return p.End().Day()
}

// Next returns the following calendar month.
func (p Period) Next() Period {
	return PeriodOf(p.Start().AddDate(0, 1, 0))
}

// Run is a filed payroll for one company and month.
type Run struct {
	ID                   string
	CompanyID            string
	Month                string
	TotalNet             decimal.Decimal
	TotalEmployerCharges decimal.Decimal
	Lines                []*RunLine
	CreatedAt            time.Time
}

// RunLine is one employee's result inside a run.
type RunLine struct {
	ID             string
	RunID          string
	EmployeeID     string
	EmployeeName   string
	DaysWorked     int
	Gross          decimal.Decimal
	EmployeeCharge decimal.Decimal
	EmployerCharge decimal.Decimal
	NetPay         decimal.Decimal
}

// Computation is the full breakdown of a single employee's month. It is
// what the calculator produces and what run lines are built from.
// RunInput carries the per-employee figures entered for one run:
// the worked-day count for daily-paid employees and any manual
// bonus or adjustment added on top of the computed pay.
type RunInput struct {
	DaysWorked int
	Extras     decimal.Decimal
}

type Computation struct {
	DailyRate      decimal.Decimal
	NominalDays    int
	DeductedDays   int
	HalfPayDays    int
	DaysWorked     int
	Gross          decimal.Decimal
	EmployeeCharge decimal.Decimal
	EmployerCharge decimal.Decimal
	Net            decimal.Decimal
}
