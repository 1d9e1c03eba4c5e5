package leave

import "context"

type LeaveRepository interface {
	CreateAll(ctx context.Context, records []*Record) error
	GetByID(ctx context.Context, id string) (*Record, error)
	ListByCompany(ctx context.Context, companyID string) ([]*Record, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Record, error)
	ListByEmployeeAndMonth(ctx context.Context, employeeID, month string) ([]*Record, error)
	Delete(ctx context.Context, id string) error
}
