package rates

import "context"

type RatesRepository interface {
	GetByCompany(ctx context.Context, companyID string) (*SocialCharges, error)
	Upsert(ctx context.Context, charges *SocialCharges) error
	AppendHistory(ctx context.Context, entry *HistoryEntry) error
	ListHistory(ctx context.Context, companyID string) ([]*HistoryEntry, error)
}
