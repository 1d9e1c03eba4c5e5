package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/finance"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
)

type financeRepositoryImpl struct {
	db *database.DB
}

func NewFinanceRepository(db *database.DB) finance.FinanceRepository {
	return &financeRepositoryImpl{db: db}
}

func (r *financeRepositoryImpl) Create(ctx context.Context, t *finance.Transaction) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO finance_transactions (id, company_id, type, description, amount, month)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := q.QueryRow(ctx, query, t.ID, t.CompanyID, t.Type, t.Description, t.Amount, t.Month).
		Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *financeRepositoryImpl) GetByID(ctx context.Context, id string) (*finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, type, description, amount, month, created_at
		FROM finance_transactions
		WHERE id = $1`

	var t finance.Transaction
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.CompanyID, &t.Type, &t.Description, &t.Amount, &t.Month, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, finance.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by id: %w", err)
	}
	return &t, nil
}

func (r *financeRepositoryImpl) ListByMonth(ctx context.Context, companyID, month string) ([]*finance.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, type, description, amount, month, created_at
		FROM finance_transactions
		WHERE company_id = $1 AND month = $2
		ORDER BY created_at`

	rows, err := q.Query(ctx, query, companyID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*finance.Transaction
	for rows.Next() {
		var t finance.Transaction
		if err := rows.Scan(
			&t.ID, &t.CompanyID, &t.Type, &t.Description, &t.Amount, &t.Month, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, &t)
	}
	return transactions, rows.Err()
}

func (r *financeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM finance_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return finance.ErrTransactionNotFound
	}
	return nil
}
