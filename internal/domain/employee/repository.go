package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e *Employee) error
	GetByID(ctx context.Context, id string) (*Employee, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
	ExistsByIdentityNumber(ctx context.Context, companyID, identityNumber, excludeID string) (bool, error)
}
