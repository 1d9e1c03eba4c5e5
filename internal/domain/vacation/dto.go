package vacation

import (
	"time"

	"github.com/planilla-cr/planilla-backend-go/internal/pkg/validator"
)

type CreateVacationRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r CreateVacationRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee is required"})
	}
	if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must use the YYYY-MM-DD format"})
	}
	if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must use the YYYY-MM-DD format"})
	}
	return errs
}

type VacationRequestResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Days       int    `json:"days"`
	Period     string `json:"period"`
	CreatedAt  string `json:"created_at"`
}

func ToVacationRequestResponse(r *Request) VacationRequestResponse {
	return VacationRequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		StartDate:  r.StartDate.Format("2006-01-02"),
		EndDate:    r.EndDate.Format("2006-01-02"),
		Days:       r.Days,
		Period:     r.Period,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func ToVacationRequestResponses(requests []*Request) []VacationRequestResponse {
	responses := make([]VacationRequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, ToVacationRequestResponse(r))
	}
	return responses
}

type PeriodBalanceResponse struct {
	Period        string `json:"period"`
	PeriodStart   string `json:"period_start"`
	PeriodEnd     string `json:"period_end"`
	AccruedDays   int    `json:"accrued_days"`
	RequestedDays int    `json:"requested_days"`
	PendingDays   int    `json:"pending_days"`
}

func ToPeriodBalanceResponses(balances []PeriodBalance) []PeriodBalanceResponse {
	responses := make([]PeriodBalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, PeriodBalanceResponse{
			Period:        b.Period,
			PeriodStart:   b.PeriodStart.Format("2006-01-02"),
			PeriodEnd:     b.PeriodEnd.Format("2006-01-02"),
			AccruedDays:   b.AccruedDays,
			RequestedDays: b.RequestedDays,
			PendingDays:   b.PendingDays,
		})
	}
	return responses
}
