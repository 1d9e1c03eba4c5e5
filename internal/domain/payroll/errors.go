package payroll

import "errors"

var (
	ErrRunNotFound             = errors.New("payroll run not found")
	ErrRunExistsForMonth       = errors.New("payroll run already exists for this month")
	ErrRunDeletionWindowClosed = errors.New("payroll run is too old to be deleted")
	ErrInvalidPeriod           = errors.New("month must use the YYYY-MM format")
	ErrNoEmployees             = errors.New("company has no employees to pay")
	ErrUnauthorized            = errors.New("unauthorized to access this payroll run")
)
