package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id string) (*Company, error)
	GetByIdentityNumber(ctx context.Context, identityNumber string) (*Company, error)
}
