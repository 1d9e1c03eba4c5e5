package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/vacation"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
)

type vacationRepositoryImpl struct {
	db *database.DB
}

func NewVacationRepository(db *database.DB) vacation.VacationRepository {
	return &vacationRepositoryImpl{db: db}
}

func (r *vacationRepositoryImpl) Create(ctx context.Context, req *vacation.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vacation_requests (id, company_id, employee_id, start_date, end_date, days, period)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	err := q.QueryRow(ctx, query,
		req.ID, req.CompanyID, req.EmployeeID, req.StartDate, req.EndDate, req.Days, req.Period,
	).Scan(&req.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create vacation request: %w", err)
	}
	return nil
}

func (r *vacationRepositoryImpl) GetByID(ctx context.Context, id string) (*vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, start_date, end_date, days, period, created_at
		FROM vacation_requests
		WHERE id = $1`

	var req vacation.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.CompanyID, &req.EmployeeID, &req.StartDate, &req.EndDate,
		&req.Days, &req.Period, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vacation.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get vacation request by id: %w", err)
	}
	return &req, nil
}

func (r *vacationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]*vacation.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, start_date, end_date, days, period, created_at
		FROM vacation_requests
		WHERE employee_id = $1
		ORDER BY start_date`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vacation requests: %w", err)
	}
	defer rows.Close()

	var requests []*vacation.Request
	for rows.Next() {
		var req vacation.Request
		if err := rows.Scan(
			&req.ID, &req.CompanyID, &req.EmployeeID, &req.StartDate, &req.EndDate,
			&req.Days, &req.Period, &req.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan vacation request row: %w", err)
		}
		requests = append(requests, &req)
	}
	return requests, rows.Err()
}

func (r *vacationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM vacation_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vacation request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return vacation.ErrRequestNotFound
	}
	return nil
}
