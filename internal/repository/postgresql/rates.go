package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/rates"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
)

type ratesRepositoryImpl struct {
	db *database.DB
}

func NewRatesRepository(db *database.DB) rates.RatesRepository {
	return &ratesRepositoryImpl{db: db}
}

// GetByCompany returns nil without error when the company has never set
// its own rates; the service falls back to the statutory defaults.
func (r *ratesRepositoryImpl) GetByCompany(ctx context.Context, companyID string) (*rates.SocialCharges, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT company_id, employee_rate, employer_rate, updated_at
		FROM social_charge_rates
		WHERE company_id = $1`

	var charges rates.SocialCharges
	err := q.QueryRow(ctx, query, companyID).Scan(
		&charges.CompanyID, &charges.EmployeeRate, &charges.EmployerRate, &charges.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get social charge rates: %w", err)
	}
	return &charges, nil
}

func (r *ratesRepositoryImpl) Upsert(ctx context.Context, charges *rates.SocialCharges) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO social_charge_rates (company_id, employee_rate, employer_rate, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (company_id)
		DO UPDATE SET employee_rate = $2, employer_rate = $3, updated_at = NOW()
		RETURNING updated_at`

	err := q.QueryRow(ctx, query, charges.CompanyID, charges.EmployeeRate, charges.EmployerRate).
		Scan(&charges.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert social charge rates: %w", err)
	}
	return nil
}

func (r *ratesRepositoryImpl) AppendHistory(ctx context.Context, entry *rates.HistoryEntry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO social_charge_rate_history (id, company_id, employee_rate, employer_rate, changed_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING changed_at`

	err := q.QueryRow(ctx, query,
		entry.ID, entry.CompanyID, entry.EmployeeRate, entry.EmployerRate, entry.ChangedBy,
	).Scan(&entry.ChangedAt)
	if err != nil {
		return fmt.Errorf("failed to append rate history: %w", err)
	}
	return nil
}

func (r *ratesRepositoryImpl) ListHistory(ctx context.Context, companyID string) ([]*rates.HistoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_rate, employer_rate, changed_by, changed_at
		FROM social_charge_rate_history
		WHERE company_id = $1
		ORDER BY changed_at DESC`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate history: %w", err)
	}
	defer rows.Close()

	var entries []*rates.HistoryEntry
	for rows.Next() {
		var entry rates.HistoryEntry
		if err := rows.Scan(
			&entry.ID, &entry.CompanyID, &entry.EmployeeRate, &entry.EmployerRate,
			&entry.ChangedBy, &entry.ChangedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rate history row: %w", err)
		}
		entries = append(entries, &entry)
	}
	return entries, rows.Err()
}
