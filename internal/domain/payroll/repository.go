package payroll

import "context"

type PayrollRepository interface {
	CreateRun(ctx context.Context, run *Run) error
	GetRunByID(ctx context.Context, id string) (*Run, error)
	FindByMonth(ctx context.Context, companyID, month string) (*Run, error)
	ListByCompany(ctx context.Context, companyID string) ([]*Run, error)
	ListByYear(ctx context.Context, companyID string, year int) ([]*Run, error)
	Delete(ctx context.Context, id string) error
}
