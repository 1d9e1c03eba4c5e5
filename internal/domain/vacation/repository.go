package vacation

import "context"

type VacationRepository interface {
	Create(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id string) (*Request, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*Request, error)
	Delete(ctx context.Context, id string) error
}
