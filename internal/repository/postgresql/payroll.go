package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/payroll"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func (r *payrollRepositoryImpl) CreateRun(ctx context.Context, run *payroll.Run) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		runQuery := `
			INSERT INTO payroll_runs (id, company_id, month, total_net, total_employer_charges)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING created_at`

		err := q.QueryRow(ctx, runQuery,
			run.ID, run.CompanyID, run.Month, run.TotalNet, run.TotalEmployerCharges,
		).Scan(&run.CreatedAt)
		if err != nil {
			if strings.Contains(err.Error(), "payroll_runs_company_month_key") {
				return payroll.ErrRunExistsForMonth
			}
			return fmt.Errorf("failed to create payroll run: %w", err)
		}

		lineQuery := `
			INSERT INTO payroll_run_lines (
				id, run_id, employee_id, employee_name, days_worked,
				gross, employee_charge, employer_charge, net_pay
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

		for _, line := range run.Lines {
			line.RunID = run.ID
			_, err := q.Exec(ctx, lineQuery,
				line.ID, line.RunID, line.EmployeeID, line.EmployeeName, line.DaysWorked,
				line.Gross, line.EmployeeCharge, line.EmployerCharge, line.NetPay,
			)
			if err != nil {
				return fmt.Errorf("failed to create payroll run line: %w", err)
			}
		}
		return nil
	})
}

func (r *payrollRepositoryImpl) GetRunByID(ctx context.Context, id string) (*payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, month, total_net, total_employer_charges, created_at
		FROM payroll_runs
		WHERE id = $1`

	var run payroll.Run
	err := q.QueryRow(ctx, query, id).Scan(
		&run.ID, &run.CompanyID, &run.Month, &run.TotalNet, &run.TotalEmployerCharges, &run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get payroll run by id: %w", err)
	}

	lines, err := r.listLines(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Lines = lines
	return &run, nil
}

func (r *payrollRepositoryImpl) FindByMonth(ctx context.Context, companyID, month string) (*payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, month, total_net, total_employer_charges, created_at
		FROM payroll_runs
		WHERE company_id = $1 AND month = $2`

	var run payroll.Run
	err := q.QueryRow(ctx, query, companyID, month).Scan(
		&run.ID, &run.CompanyID, &run.Month, &run.TotalNet, &run.TotalEmployerCharges, &run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to find payroll run by month: %w", err)
	}

	lines, err := r.listLines(ctx, run.ID)
	if err != nil {
		return nil, err
	}
	run.Lines = lines
	return &run, nil
}

func (r *payrollRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]*payroll.Run, error) {
	return r.listRuns(ctx, `company_id = $1`, companyID)
}

func (r *payrollRepositoryImpl) ListByYear(ctx context.Context, companyID string, year int) ([]*payroll.Run, error) {
	return r.listRuns(ctx, `company_id = $1 AND month LIKE $2`, companyID, fmt.Sprintf("%04d-%%", year))
}

func (r *payrollRepositoryImpl) listRuns(ctx context.Context, where string, args ...any) ([]*payroll.Run, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, month, total_net, total_employer_charges, created_at
		FROM payroll_runs
		WHERE ` + where + `
		ORDER BY month DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []*payroll.Run
	for rows.Next() {
		var run payroll.Run
		if err := rows.Scan(
			&run.ID, &run.CompanyID, &run.Month, &run.TotalNet, &run.TotalEmployerCharges, &run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll run row: %w", err)
		}
		runs = append(runs, &run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, run := range runs {
		lines, err := r.listLines(ctx, run.ID)
		if err != nil {
			return nil, err
		}
		run.Lines = lines
	}
	return runs, nil
}

func (r *payrollRepositoryImpl) listLines(ctx context.Context, runID string) ([]*payroll.RunLine, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, run_id, employee_id, employee_name, days_worked,
		       gross, employee_charge, employer_charge, net_pay
		FROM payroll_run_lines
		WHERE run_id = $1
		ORDER BY employee_name`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll run lines: %w", err)
	}
	defer rows.Close()

	var lines []*payroll.RunLine
	for rows.Next() {
		var line payroll.RunLine
		if err := rows.Scan(
			&line.ID, &line.RunID, &line.EmployeeID, &line.EmployeeName, &line.DaysWorked,
			&line.Gross, &line.EmployeeCharge, &line.EmployerCharge, &line.NetPay,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll run line row: %w", err)
		}
		lines = append(lines, &line)
	}
	return lines, rows.Err()
}

func (r *payrollRepositoryImpl) Delete(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if _, err := q.Exec(ctx, `DELETE FROM payroll_run_lines WHERE run_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete payroll run lines: %w", err)
		}

		tag, err := q.Exec(ctx, `DELETE FROM payroll_runs WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete payroll run: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return payroll.ErrRunNotFound
		}
		return nil
	})
}
