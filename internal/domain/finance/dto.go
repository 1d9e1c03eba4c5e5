package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/planilla-cr/planilla-backend-go/internal/pkg/validator"
)

type CreateTransactionRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Month       string `json:"month"`
}

func (r CreateTransactionRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if !TransactionType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be income or expense"})
	}
	if r.Description == "" {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
	}
	if amount, err := decimal.NewFromString(r.Amount); err != nil || amount.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "amount must be a positive number"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must use the YYYY-MM format"})
	}
	return errs
}

type TransactionResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Month       string `json:"month"`
	CreatedAt   string `json:"created_at"`
}

func ToTransactionResponse(t *Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Description: t.Description,
		Amount:      t.Amount.String(),
		Month:       t.Month,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

func ToTransactionResponses(transactions []*Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, ToTransactionResponse(t))
	}
	return responses
}

type SummaryResponse struct {
	Month        string `json:"month"`
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
}

func ToSummaryResponse(s Summary) SummaryResponse {
	return SummaryResponse{
		Month:        s.Month,
		TotalIncome:  s.TotalIncome.String(),
		TotalExpense: s.TotalExpense.String(),
		Balance:      s.Balance.String(),
	}
}
