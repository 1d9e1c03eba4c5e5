package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func (r *leaveRepositoryImpl) CreateAll(ctx context.Context, records []*leave.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_records (
			id, company_id, employee_id, start_date, end_date, days, month, category, case_number
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at`

	for _, rec := range records {
		err := q.QueryRow(ctx, query,
			rec.ID, rec.CompanyID, rec.EmployeeID, rec.StartDate, rec.EndDate,
			rec.Days, rec.Month, rec.Category, rec.CaseNumber,
		).Scan(&rec.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to create leave record: %w", err)
		}
	}
	return nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, start_date, end_date, days, month, category, case_number, created_at
		FROM leave_records
		WHERE id = $1`

	var rec leave.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.CompanyID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate,
		&rec.Days, &rec.Month, &rec.Category, &rec.CaseNumber, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get leave record by id: %w", err)
	}
	return &rec, nil
}

func (r *leaveRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]*leave.Record, error) {
	return r.list(ctx, `company_id = $1`, companyID)
}

func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]*leave.Record, error) {
	return r.list(ctx, `employee_id = $1`, employeeID)
}

func (r *leaveRepositoryImpl) ListByEmployeeAndMonth(ctx context.Context, employeeID, month string) ([]*leave.Record, error) {
	return r.list(ctx, `employee_id = $1 AND month = $2`, employeeID, month)
}

func (r *leaveRepositoryImpl) list(ctx context.Context, where string, args ...any) ([]*leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, start_date, end_date, days, month, category, case_number, created_at
		FROM leave_records
		WHERE ` + where + `
		ORDER BY start_date`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	defer rows.Close()

	var records []*leave.Record
	for rows.Next() {
		var rec leave.Record
		if err := rows.Scan(
			&rec.ID, &rec.CompanyID, &rec.EmployeeID, &rec.StartDate, &rec.EndDate,
			&rec.Days, &rec.Month, &rec.Category, &rec.CaseNumber, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave record row: %w", err)
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRecordNotFound
	}
	return nil
}
