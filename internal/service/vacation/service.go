package vacation

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/employee"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/vacation"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
)

type Service interface {
	Create(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationRequestResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]vacation.VacationRequestResponse, error)
	Balances(ctx context.Context, employeeID string) ([]vacation.PeriodBalanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	db           *database.DB
	vacationRepo vacation.VacationRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewService(db *database.DB, vacationRepo vacation.VacationRepository, employeeRepo employee.EmployeeRepository) *ServiceImpl {
	return &ServiceImpl{
		db:           db,
		vacationRepo: vacationRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
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

// Create files a vacation request against the anniversary period the
// start date falls in. The request is rejected when the period has
// fewer pending days than the request spans.
func (s *ServiceImpl) Create(ctx context.Context, req vacation.CreateVacationRequest) (vacation.VacationRequestResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return vacation.VacationRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return vacation.VacationRequestResponse{}, err
	}
	if emp.CompanyID != companyID {
		return vacation.VacationRequestResponse{}, vacation.ErrUnauthorized
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
	if err != nil {
		return vacation.VacationRequestResponse{}, vacation.ErrInvalidDateRange
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, time.UTC)
	if err != nil {
		return vacation.VacationRequestResponse{}, vacation.ErrInvalidDateRange
	}
	if endDate.Before(startDate) {
		return vacation.VacationRequestResponse{}, vacation.ErrInvalidDateRange
	}

	period, ok := PeriodFor(emp.HireDate, startDate)
	if !ok {
		return vacation.VacationRequestResponse{}, vacation.ErrBeforeHireDate
	}
	days := int(endDate.Sub(startDate).Hours()/24) + 1

	balances, err := s.balancesFor(ctx, emp)
	if err != nil {
		return vacation.VacationRequestResponse{}, err
	}
	for _, b := range balances {
		if b.Period == period.Period && b.PendingDays < days {
			return vacation.VacationRequestResponse{}, vacation.ErrInsufficientDays
		}
	}

	request := &vacation.Request{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		EmployeeID: emp.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Days:       days,
		Period:     period.Period,
	}
	if err := s.vacationRepo.Create(ctx, request); err != nil {
		return vacation.VacationRequestResponse{}, err
	}
	return vacation.ToVacationRequestResponse(request), nil
}

func (s *ServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]vacation.VacationRequestResponse, error) {
	emp, err := s.authorizedEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	requests, err := s.vacationRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	return vacation.ToVacationRequestResponses(requests), nil
}

// Balances reports the accrued, requested, and pending days per
// anniversary period.
func (s *ServiceImpl) Balances(ctx context.Context, employeeID string) ([]vacation.PeriodBalanceResponse, error) {
	emp, err := s.authorizedEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	balances, err := s.balancesFor(ctx, emp)
	if err != nil {
		return nil, err
	}
	return vacation.ToPeriodBalanceResponses(balances), nil
}

func (s *ServiceImpl) balancesFor(ctx context.Context, emp *employee.Employee) ([]vacation.PeriodBalance, error) {
	requests, err := s.vacationRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	requestedByPeriod := make(map[string]int)
	for _, r := range requests {
		requestedByPeriod[r.Period] += r.Days
	}

	balances := AccruePeriods(emp.HireDate, s.now().UTC())
	for i := range balances {
		balances[i].RequestedDays = requestedByPeriod[balances[i].Period]
		pending := balances[i].AccruedDays - balances[i].RequestedDays
		if pending < 0 {
			pending = 0
		}
		balances[i].PendingDays = pending
	}
	return balances, nil
}

func (s *ServiceImpl) authorizedEmployee(ctx context.Context, employeeID string) (*employee.Employee, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.CompanyID != companyID {
		return nil, vacation.ErrUnauthorized
	}
	return emp, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	request, err := s.vacationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if request.CompanyID != companyID {
		return vacation.ErrUnauthorized
	}

	return s.vacationRepo.Delete(ctx, id)
}
