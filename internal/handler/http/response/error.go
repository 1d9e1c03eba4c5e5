package response

import (
	"errors"
	"net/http"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/company"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/employee"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/finance"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/payroll"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/rates"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/user"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/vacation"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrSupervisorAccessRequired):
		Forbidden(w, "Supervisor role required")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrIdentityNumberExists):
		Conflict(w, "Company identity number already registered")

	// Employees
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrIdentityNumberExists):
		Conflict(w, "Identity number already registered in this company")
	case errors.Is(err, employee.ErrInvalidPayType),
		errors.Is(err, employee.ErrInvalidContractType),
		errors.Is(err, employee.ErrContractEndDateMissing):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrUnauthorized):
		Forbidden(w, "Employee belongs to another company")

	// Leave
	case errors.Is(err, leave.ErrRecordNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrMonthAlreadyFiled):
		Conflict(w, "Payroll already filed for the requested month")
	case errors.Is(err, leave.ErrInvalidDateRange),
		errors.Is(err, leave.ErrInvalidCategory),
		errors.Is(err, leave.ErrCaseNumberRequired):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrUnauthorized):
		Forbidden(w, "Leave record belongs to another company")

	// Payroll
	case errors.Is(err, payroll.ErrRunNotFound):
		NotFound(w, "Payroll run not found")
	case errors.Is(err, payroll.ErrRunExistsForMonth):
		Conflict(w, "Payroll run already exists for this month")
	case errors.Is(err, payroll.ErrRunDeletionWindowClosed):
		Conflict(w, "Payroll run is too old to be deleted")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Month must use the YYYY-MM format", nil)
	case errors.Is(err, payroll.ErrNoEmployees):
		BadRequest(w, "Company has no employees to pay", nil)
	case errors.Is(err, payroll.ErrUnauthorized):
		Forbidden(w, "Payroll run belongs to another company")

	// Vacations
	case errors.Is(err, vacation.ErrRequestNotFound):
		NotFound(w, "Vacation request not found")
	case errors.Is(err, vacation.ErrInvalidDateRange),
		errors.Is(err, vacation.ErrBeforeHireDate),
		errors.Is(err, vacation.ErrInsufficientDays):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, vacation.ErrUnauthorized):
		Forbidden(w, "Vacation request belongs to another company")

	// Finance
	case errors.Is(err, finance.ErrTransactionNotFound):
		NotFound(w, "Transaction not found")
	case errors.Is(err, finance.ErrInvalidType),
		errors.Is(err, finance.ErrInvalidAmount):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, finance.ErrUnauthorized):
		Forbidden(w, "Transaction belongs to another company")

	// Rates
	case errors.Is(err, rates.ErrInvalidRate):
		BadRequest(w, "Rate must be at least 0 and below 1", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
