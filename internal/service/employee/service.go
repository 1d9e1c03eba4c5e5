package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/employee"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
)

type Service interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error)
	List(ctx context.Context) ([]employee.EmployeeResponse, error)
	Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
}

func NewService(db *database.DB, employeeRepo employee.EmployeeRepository) Service {
	return &ServiceImpl{db: db, employeeRepo: employeeRepo}
}

func getClaimsFromContext(ctx context.Context) (companyID, userID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	userID, _ = claims["user_id"].(string)

	return companyID, userID, nil
}

func (s *ServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.employeeRepo.ExistsByIdentityNumber(ctx, companyID, req.IdentityNumber, "")
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrIdentityNumberExists
	}

	emp, err := buildEmployee(companyID, uuid.New().String(), req.IdentityNumber, req.FullName, req.Position,
		req.HireDate, req.PayType, req.MonthlySalary, req.DailyRate, req.ContractType, req.ContractEndDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Create(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

func buildEmployee(companyID, id, identityNumber, fullName, position, hireDate, payType, monthlySalary, dailyRate, contractType string, contractEndDate *string) (*employee.Employee, error) {
	hired, err := time.ParseInLocation("2006-01-02", hireDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid hire date: %w", err)
	}

	emp := &employee.Employee{
		ID:             id,
		CompanyID:      companyID,
		IdentityNumber: identityNumber,
		FullName:       fullName,
		Position:       position,
		HireDate:       hired,
		PayType:        employee.PayType(payType),
		ContractType:   employee.ContractType(contractType),
	}

	switch emp.PayType {
	case employee.PayTypeMonthly:
		emp.MonthlySalary, err = decimal.NewFromString(monthlySalary)
	case employee.PayTypeDaily:
		emp.DailyRate, err = decimal.NewFromString(dailyRate)
	default:
		return nil, employee.ErrInvalidPayType
	}
	if err != nil {
		return nil, fmt.Errorf("invalid pay amount: %w", err)
	}

	if emp.ContractType == employee.ContractTypeFixedTerm {
		if contractEndDate == nil || *contractEndDate == "" {
			return nil, employee.ErrContractEndDateMissing
		}
		end, err := time.ParseInLocation("2006-01-02", *contractEndDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid contract end date: %w", err)
		}
		emp.ContractEndDate = &end
	}

	return emp, nil
}

func (s *ServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if emp.CompanyID != companyID {
		return employee.EmployeeResponse{}, employee.ErrUnauthorized
	}
	return employee.ToEmployeeResponse(emp), nil
}

func (s *ServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return employee.ToEmployeeResponses(employees), nil
}

func (s *ServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if existing.CompanyID != companyID {
		return employee.EmployeeResponse{}, employee.ErrUnauthorized
	}

	exists, err := s.employeeRepo.ExistsByIdentityNumber(ctx, companyID, req.IdentityNumber, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrIdentityNumberExists
	}

	emp, err := buildEmployee(companyID, id, req.IdentityNumber, req.FullName, req.Position,
		req.HireDate, req.PayType, req.MonthlySalary, req.DailyRate, req.ContractType, req.ContractEndDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	emp.CreatedAt = existing.CreatedAt

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if emp.CompanyID != companyID {
		return employee.ErrUnauthorized
	}

	return s.employeeRepo.Delete(ctx, id)
}
