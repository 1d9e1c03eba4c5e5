package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/company"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
)

type companyRepositoryImpl struct {
	db *database.DB
}

func NewCompanyRepository(db *database.DB) company.CompanyRepository {
	return &companyRepositoryImpl{db: db}
}

func (r *companyRepositoryImpl) Create(ctx context.Context, c *company.Company) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO companies (id, name, identity_number)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query, c.ID, c.Name, c.IdentityNumber).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "companies_identity_number_key") {
			return company.ErrIdentityNumberExists
		}
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *companyRepositoryImpl) GetByID(ctx context.Context, id string) (*company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, identity_number, created_at, updated_at
		FROM companies
		WHERE id = $1`

	var c company.Company
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.IdentityNumber, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company by id: %w", err)
	}
	return &c, nil
}

func (r *companyRepositoryImpl) GetByIdentityNumber(ctx context.Context, identityNumber string) (*company.Company, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, identity_number, created_at, updated_at
		FROM companies
		WHERE identity_number = $1`

	var c company.Company
	err := q.QueryRow(ctx, query, identityNumber).Scan(&c.ID, &c.Name, &c.IdentityNumber, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to get company by identity number: %w", err)
	}
	return &c, nil
}
