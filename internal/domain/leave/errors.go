package leave

import "errors"

var (
	ErrRecordNotFound     = errors.New("leave record not found")
	ErrMonthAlreadyFiled  = errors.New("payroll already filed for the requested month")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrInvalidCategory    = errors.New("unknown leave category")
	ErrCaseNumberRequired = errors.New("case number is required for this category")
	ErrUnauthorized       = errors.New("unauthorized to access this leave record")
)
