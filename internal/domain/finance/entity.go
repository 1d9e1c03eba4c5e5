package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is one income or expense entry in the company ledger.
type Transaction struct {
	ID          string
	CompanyID   string
	Type        TransactionType
	Description string
	Amount      decimal.Decimal
	Month       string
	CreatedAt   time.Time
}

// Summary aggregates the ledger for one month.
type Summary struct {
	Month        string
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}
