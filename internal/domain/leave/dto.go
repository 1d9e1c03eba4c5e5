package leave

import (
	"time"

	"github.com/planilla-cr/planilla-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Category   string `json:"category"`
	CaseNumber string `json:"case_number,omitempty"`
}

func (r CreateLeaveRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	if r.EmployeeID == "" {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee is required"})
	}
	if r.StartDate == "" {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date is required"})
	} else if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must use the YYYY-MM-DD format"})
	}
	if r.EndDate == "" {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date is required"})
	} else if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must use the YYYY-MM-DD format"})
	}
	if !Category(r.Category).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category must be one of illness, accident, maternity, general_permit, paternity"})
	}

	return errs
}

type LeaveRecordResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Days       int    `json:"days"`
	Month      string `json:"month"`
	Category   string `json:"category"`
	CaseNumber string `json:"case_number,omitempty"`
	CreatedAt  string `json:"created_at"`
}

func ToLeaveRecordResponse(r *Record) LeaveRecordResponse {
	return LeaveRecordResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		StartDate:  r.StartDate.Format("2006-01-02"),
		EndDate:    r.EndDate.Format("2006-01-02"),
		Days:       r.Days,
		Month:      r.Month,
		Category:   string(r.Category),
		CaseNumber: r.CaseNumber,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func ToLeaveRecordResponses(records []*Record) []LeaveRecordResponse {
	responses := make([]LeaveRecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, ToLeaveRecordResponse(r))
	}
	return responses
}
