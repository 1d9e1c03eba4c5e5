package finance

import "context"

type FinanceRepository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByID(ctx context.Context, id string) (*Transaction, error)
	ListByMonth(ctx context.Context, companyID, month string) ([]*Transaction, error)
	Delete(ctx context.Context, id string) error
}
