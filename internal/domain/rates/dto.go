package rates

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/planilla-cr/planilla-backend-go/internal/pkg/validator"
)

type UpdateRatesRequest struct {
	EmployeeRate string `json:"employee_rate"`
	EmployerRate string `json:"employer_rate"`
}

func (r UpdateRatesRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if rate, err := decimal.NewFromString(r.EmployeeRate); err != nil || !validator.IsValidRate(rate) {
		errs = append(errs, validator.ValidationError{Field: "employee_rate", Message: "employee rate must be at least 0 and below 1"})
	}
	if rate, err := decimal.NewFromString(r.EmployerRate); err != nil || !validator.IsValidRate(rate) {
		errs = append(errs, validator.ValidationError{Field: "employer_rate", Message: "employer rate must be at least 0 and below 1"})
	}
	return errs
}

type RatesResponse struct {
	EmployeeRate string `json:"employee_rate"`
	EmployerRate string `json:"employer_rate"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

func ToRatesResponse(c *SocialCharges) RatesResponse {
	resp := RatesResponse{
		EmployeeRate: c.EmployeeRate.String(),
		EmployerRate: c.EmployerRate.String(),
	}
	if !c.UpdatedAt.IsZero() {
		resp.UpdatedAt = c.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

type HistoryEntryResponse struct {
	ID           string `json:"id"`
	EmployeeRate string `json:"employee_rate"`
	EmployerRate string `json:"employer_rate"`
	ChangedBy    string `json:"changed_by"`
	ChangedAt    string `json:"changed_at"`
}

func ToHistoryEntryResponses(entries []*HistoryEntry) []HistoryEntryResponse {
	responses := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, HistoryEntryResponse{
			ID:           e.ID,
			EmployeeRate: e.EmployeeRate.String(),
			EmployerRate: e.EmployerRate.String(),
			ChangedBy:    e.ChangedBy,
			ChangedAt:    e.ChangedAt.Format(time.RFC3339),
		})
	}
	return responses
}
