package rates

import (
	"time"

	"github.com/shopspring/decimal"
)

// SocialCharges holds the payroll contribution rates a company applies.
// Rates are fractions of gross pay, not percentages.
type SocialCharges struct {
	CompanyID    string
	EmployeeRate decimal.Decimal
	EmployerRate decimal.Decimal
	UpdatedAt    time.Time
}

// HistoryEntry records one change to a company's rates.
type HistoryEntry struct {
	ID           string
	CompanyID    string
	EmployeeRate decimal.Decimal
	EmployerRate decimal.Decimal
	ChangedBy    string
	ChangedAt    time.Time
}

// Statutory defaults applied until a company sets its own rates.
var (
	DefaultEmployeeRate = decimal.RequireFromString("0.0967")
	DefaultEmployerRate = decimal.RequireFromString("0.1467")
)

// Defaults returns the statutory rates for a company that has never
// customized them.
func Defaults(companyID string) *SocialCharges {
	return &SocialCharges{
		CompanyID:    companyID,
		EmployeeRate: DefaultEmployeeRate,
		EmployerRate: DefaultEmployerRate,
	}
}
