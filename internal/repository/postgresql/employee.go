package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/employee"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, company_id, identity_number, full_name, position, hire_date,
			pay_type, monthly_salary, daily_rate, contract_type, contract_end_date
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at`

	err := q.QueryRow(ctx, query,
		e.ID, e.CompanyID, e.IdentityNumber, e.FullName, e.Position, e.HireDate,
		e.PayType, e.MonthlySalary, e.DailyRate, e.ContractType, e.ContractEndDate,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, identity_number, full_name, position, hire_date,
		       pay_type, monthly_salary, daily_rate, contract_type, contract_end_date,
		       created_at, updated_at
		FROM employees
		WHERE id = $1`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.CompanyID, &e.IdentityNumber, &e.FullName, &e.Position, &e.HireDate,
		&e.PayType, &e.MonthlySalary, &e.DailyRate, &e.ContractType, &e.ContractEndDate,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return &e, nil
}

func (r *employeeRepositoryImpl) ListByCompanyID(ctx context.Context, companyID string) ([]*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, identity_number, full_name, position, hire_date,
		       pay_type, monthly_salary, daily_rate, contract_type, contract_end_date,
		       created_at, updated_at
		FROM employees
		WHERE company_id = $1
		ORDER BY full_name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []*employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.IdentityNumber, &e.FullName, &e.Position, &e.HireDate,
			&e.PayType, &e.MonthlySalary, &e.DailyRate, &e.ContractType, &e.ContractEndDate,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, &e)
	}
	return employees, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e *employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET identity_number = $1, full_name = $2, position = $3, hire_date = $4,
		    pay_type = $5, monthly_salary = $6, daily_rate = $7,
		    contract_type = $8, contract_end_date = $9, updated_at = $10
		WHERE id = $11
		RETURNING id`

	var updatedID string
	err := q.QueryRow(ctx, query,
		e.IdentityNumber, e.FullName, e.Position, e.HireDate,
		e.PayType, e.MonthlySalary, e.DailyRate,
		e.ContractType, e.ContractEndDate, time.Now(),
		e.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) ExistsByIdentityNumber(ctx context.Context, companyID, identityNumber, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM employees
			WHERE company_id = $1 AND identity_number = $2 AND id <> $3
		)`

	var exists bool
	if err := q.QueryRow(ctx, query, companyID, identityNumber, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee identity number: %w", err)
	}
	return exists, nil
}
