package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrIdentityNumberExists   = errors.New("identity number already registered in this company")
	ErrInvalidIdentityNumber  = errors.New("invalid identity number format")
	ErrInvalidPayType         = errors.New("pay type must be monthly or daily")
	ErrInvalidContractType    = errors.New("contract type must be indefinite or fixed_term")
	ErrContractEndDateMissing = errors.New("fixed-term contract requires an end date")
	ErrUnauthorized           = errors.New("unauthorized to access this employee")
)
