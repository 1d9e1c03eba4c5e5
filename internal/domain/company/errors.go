package company

import "errors"

var (
	ErrCompanyNotFound        = errors.New("company not found")
	ErrIdentityNumberExists   = errors.New("company identity number already registered")
	ErrCompanyHasNoEmployees  = errors.New("company has no employees")
	ErrInvalidCompanyIdentity = errors.New("invalid company identity number")
)
