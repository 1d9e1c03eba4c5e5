package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/planilla-cr/planilla-backend-go/internal/pkg/validator"
)

type CreateRunRequest struct {
	Month  string            `json:"month"`
	Inputs []RunInputRequest `json:"inputs,omitempty"`
}

// RunInputRequest is one employee's manual figures for the run.
// DaysWorked only applies to daily-paid employees and defaults to a
// full 30-day month when omitted.
type RunInputRequest struct {
	EmployeeID string `json:"employee_id"`
	DaysWorked *int   `json:"days_worked,omitempty"`
	Extras     string `json:"extras,omitempty"`
}

func (r CreateRunRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if r.Month == "" {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month is required"})
	} else if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must use the YYYY-MM format"})
	}
	for i, input := range r.Inputs {
		if input.EmployeeID == "" {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("inputs[%d].employee_id", i),
				Message: "employee_id is required",
			})
		}
		if input.DaysWorked != nil && (*input.DaysWorked < 0 || *input.DaysWorked > 31) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("inputs[%d].days_worked", i),
				Message: "days_worked must be between 0 and 31",
			})
		}
		if input.Extras != "" {
			if amount, err := decimal.NewFromString(input.Extras); err != nil || amount.IsNegative() {
				errs = append(errs, validator.ValidationError{
					Field:   fmt.Sprintf("inputs[%d].extras", i),
					Message: "extras must be a non-negative amount",
				})
			}
		}
	}
	return errs
}

type RunLineResponse struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	DaysWorked     int    `json:"days_worked"`
	Gross          string `json:"gross"`
	EmployeeCharge string `json:"employee_charge"`
	EmployerCharge string `json:"employer_charge"`
	NetPay         string `json:"net_pay"`
}

type RunResponse struct {
	ID                   string            `json:"id"`
	Month                string            `json:"month"`
	TotalNet             string            `json:"total_net"`
	TotalEmployerCharges string            `json:"total_employer_charges"`
	Lines                []RunLineResponse `json:"lines,omitempty"`
	CreatedAt            string            `json:"created_at"`
}

func ToRunResponse(run *Run) RunResponse {
	resp := RunResponse{
		ID:                   run.ID,
		Month:                run.Month,
		TotalNet:             run.TotalNet.String(),
		TotalEmployerCharges: run.TotalEmployerCharges.String(),
		CreatedAt:            run.CreatedAt.Format(time.RFC3339),
	}
	for _, line := range run.Lines {
		resp.Lines = append(resp.Lines, RunLineResponse{
			EmployeeID:     line.EmployeeID,
			EmployeeName:   line.EmployeeName,
			DaysWorked:     line.DaysWorked,
			Gross:          line.Gross.String(),
			EmployeeCharge: line.EmployeeCharge.String(),
			EmployerCharge: line.EmployerCharge.String(),
			NetPay:         line.NetPay.String(),
		})
	}
	return resp
}

func ToRunResponses(runs []*Run) []RunResponse {
	responses := make([]RunResponse, 0, len(runs))
	for _, run := range runs {
		responses = append(responses, ToRunResponse(run))
	}
	return responses
}

// BonusEstimate is the year-end bonus projection for one employee,
// computed as the employee's accumulated net pay divided by twelve.
type BonusEstimate struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	YearNetTotal string `json:"year_net_total"`
	Estimate     string `json:"estimate"`
}
