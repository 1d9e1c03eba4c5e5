package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/planilla-cr/planilla-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	IdentityNumber  string  `json:"identity_number"`
	FullName        string  `json:"full_name"`
	Position        string  `json:"position"`
	HireDate        string  `json:"hire_date"`
	PayType         string  `json:"pay_type"`
	MonthlySalary   string  `json:"monthly_salary,omitempty"`
	DailyRate       string  `json:"daily_rate,omitempty"`
	ContractType    string  `json:"contract_type"`
	ContractEndDate *string `json:"contract_end_date,omitempty"`
}

type UpdateEmployeeRequest struct {
	IdentityNumber  string  `json:"identity_number"`
	FullName        string  `json:"full_name"`
	Position        string  `json:"position"`
	HireDate        string  `json:"hire_date"`
	PayType         string  `json:"pay_type"`
	MonthlySalary   string  `json:"monthly_salary,omitempty"`
	DailyRate       string  `json:"daily_rate,omitempty"`
	ContractType    string  `json:"contract_type"`
	ContractEndDate *string `json:"contract_end_date,omitempty"`
}

func (r CreateEmployeeRequest) Validate() validator.ValidationErrors {
	return validateEmployeePayload(r.IdentityNumber, r.FullName, r.HireDate, r.PayType, r.MonthlySalary, r.DailyRate, r.ContractType, r.ContractEndDate)
}

func (r UpdateEmployeeRequest) Validate() validator.ValidationErrors {
	return validateEmployeePayload(r.IdentityNumber, r.FullName, r.HireDate, r.PayType, r.MonthlySalary, r.DailyRate, r.ContractType, r.ContractEndDate)
}

func validateEmployeePayload(identityNumber, fullName, hireDate, payType, monthlySalary, dailyRate, contractType string, contractEndDate *string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if identityNumber == "" {
		errs = append(errs, validator.ValidationError{Field: "identity_number", Message: "identity number is required"})
	} else if !validator.IsValidIdentityNumber(identityNumber) {
		errs = append(errs, validator.ValidationError{Field: "identity_number", Message: "identity number format is invalid"})
	}

	if fullName == "" {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name is required"})
	}

	if hireDate == "" {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire date is required"})
	} else if !validator.IsValidDate(hireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire date must use the YYYY-MM-DD format"})
	}

	switch PayType(payType) {
	case PayTypeMonthly:
		if amount, err := decimal.NewFromString(monthlySalary); err != nil || amount.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "monthly salary must be a positive amount"})
		}
	case PayTypeDaily:
		if amount, err := decimal.NewFromString(dailyRate); err != nil || amount.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, validator.ValidationError{Field: "daily_rate", Message: "daily rate must be a positive amount"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "pay_type", Message: "pay type must be monthly or daily"})
	}

	switch ContractType(contractType) {
	case ContractTypeIndefinite:
	case ContractTypeFixedTerm:
		if contractEndDate == nil || *contractEndDate == "" {
			errs = append(errs, validator.ValidationError{Field: "contract_end_date", Message: "contract end date is required for fixed-term contracts"})
		} else if !validator.IsValidDate(*contractEndDate) {
			errs = append(errs, validator.ValidationError{Field: "contract_end_date", Message: "contract end date must use the YYYY-MM-DD format"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "contract_type", Message: "contract type must be indefinite or fixed_term"})
	}

	return errs
}

type EmployeeResponse struct {
	ID              string  `json:"id"`
	IdentityNumber  string  `json:"identity_number"`
	FullName        string  `json:"full_name"`
	Position        string  `json:"position"`
	HireDate        string  `json:"hire_date"`
	PayType         string  `json:"pay_type"`
	MonthlySalary   string  `json:"monthly_salary,omitempty"`
	DailyRate       string  `json:"daily_rate,omitempty"`
	ContractType    string  `json:"contract_type"`
	ContractEndDate *string `json:"contract_end_date,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func ToEmployeeResponse(e *Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:             e.ID,
		IdentityNumber: e.IdentityNumber,
		FullName:       e.FullName,
		Position:       e.Position,
		HireDate:       e.HireDate.Format("2006-01-02"),
		PayType:        string(e.PayType),
		ContractType:   string(e.ContractType),
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
	}
	if e.PayType == PayTypeMonthly {
		resp.MonthlySalary = e.MonthlySalary.String()
	} else {
		resp.DailyRate = e.DailyRate.String()
	}
	if e.ContractEndDate != nil {
		endDate := e.ContractEndDate.Format("2006-01-02")
		resp.ContractEndDate = &endDate
	}
	return resp
}

func ToEmployeeResponses(employees []*Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, ToEmployeeResponse(e))
	}
	return responses
}
