package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID              string
	CompanyID       string
	IdentityNumber  string
	FullName        string
	Position        string
	HireDate        time.Time
	PayType         PayType
	MonthlySalary   decimal.Decimal
	DailyRate       decimal.Decimal
	ContractType    ContractType
	ContractEndDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PayType string

const (
	PayTypeMonthly PayType = "monthly"
	PayTypeDaily   PayType = "daily"
)

type ContractType string

const (
	ContractTypeIndefinite ContractType = "indefinite"
	ContractTypeFixedTerm  ContractType = "fixed_term"
)

// thirtyDays is the notional month length for monthly-paid employees.
var thirtyDays = decimal.NewFromInt(30)

// BaseDailyRate returns the amount one calendar day of work is worth:
// a thirtieth of the monthly salary for monthly pay, the configured
// day rate otherwise.
func (e Employee) BaseDailyRate() decimal.Decimal {
	if e.PayType == PayTypeMonthly {
		return e.MonthlySalary.Div(thirtyDays)
	}
	return e.DailyRate
}
