package user

import (
	"github.com/planilla-cr/planilla-backend-go/internal/domain/company"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	CompanyName           string `json:"company_name"`
	CompanyIdentityNumber string `json:"company_identity_number"`
	FullName              string `json:"full_name"`
	Email                 string `json:"email"`
	Password              string `json:"password"`
}

func (r RegisterRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if r.CompanyName == "" {
		errs = append(errs, validator.ValidationError{Field: "company_name", Message: "company name is required"})
	}
	if r.CompanyIdentityNumber == "" {
		errs = append(errs, validator.ValidationError{Field: "company_identity_number", Message: "company identity number is required"})
	}
	if r.FullName == "" {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	return errs
}

type LoginRequest struct {
	CompanyIdentityNumber string `json:"company_identity_number"`
	Email                 string `json:"email"`
	Password              string `json:"password"`
}

func (r LoginRequest) Validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if r.CompanyIdentityNumber == "" {
		errs = append(errs, validator.ValidationError{Field: "company_identity_number", Message: "company identity number is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}
	return errs
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
}

type ProfileResponse struct {
	User    UserResponse            `json:"user"`
	Company company.CompanyResponse `json:"company"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
	}
}
