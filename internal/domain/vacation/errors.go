package vacation

import "errors"

var (
	ErrRequestNotFound  = errors.New("vacation request not found")
	ErrInvalidDateRange = errors.New("end date must not be before start date")
	ErrBeforeHireDate   = errors.New("vacation cannot start before the hire date")
	ErrInsufficientDays = errors.New("not enough accrued vacation days")
	ErrUnauthorized     = errors.New("unauthorized to access this vacation request")
)
