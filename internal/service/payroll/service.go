package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/employee"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/payroll"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/rates"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/pdf"
)

// Runs older than this many months can no longer be deleted.
const deletionWindowMonths = 2

var twelve = decimal.NewFromInt(12)

type Service interface {
	CreateRun(ctx context.Context, req payroll.CreateRunRequest) (payroll.RunResponse, error)
	PreviewRun(ctx context.Context, req payroll.CreateRunRequest) (payroll.RunResponse, error)
	GetRun(ctx context.Context, id string) (payroll.RunResponse, error)
	ListRuns(ctx context.Context) ([]payroll.RunResponse, error)
	DeleteRun(ctx context.Context, id string) error
	BonusEstimates(ctx context.Context, year int) ([]payroll.BonusEstimate, error)
	ExportRunPDF(ctx context.Context, id string) ([]byte, error)
}

type ServiceImpl struct {
	db           *database.DB
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
	leaveRepo    leave.LeaveRepository
	ratesRepo    rates.RatesRepository
	now          func() time.Time
}

func NewService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
	ratesRepo rates.RatesRepository,
) *ServiceImpl {
	return &ServiceImpl{
		db:           db,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		ratesRepo:    ratesRepo,
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

// CreateRun computes and files the payroll for one month. A company can
// file at most one run per month.
func (s *ServiceImpl) CreateRun(ctx context.Context, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	period, err := payroll.ParsePeriod(req.Month)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	if _, err := s.payrollRepo.FindByMonth(ctx, companyID, period.String()); err == nil {
		return payroll.RunResponse{}, payroll.ErrRunExistsForMonth
	} else if !errors.Is(err, payroll.ErrRunNotFound) {
		return payroll.RunResponse{}, err
	}

	run, err := s.buildRun(ctx, companyID, period, runInputs(req.Inputs))
	if err != nil {
		return payroll.RunResponse{}, err
	}

	if err := s.payrollRepo.CreateRun(ctx, run); err != nil {
		return payroll.RunResponse{}, err
	}
	return payroll.ToRunResponse(run), nil
}

// PreviewRun computes a month without filing it.
func (s *ServiceImpl) PreviewRun(ctx context.Context, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	period, err := payroll.ParsePeriod(req.Month)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	run, err := s.buildRun(ctx, companyID, period, runInputs(req.Inputs))
	if err != nil {
		return payroll.RunResponse{}, err
	}
	return payroll.ToRunResponse(run), nil
}

// runInputs indexes the manually entered per-employee figures. Extras
// strings were already validated by the request, so parse failures
// fall back to zero.
func runInputs(reqs []payroll.RunInputRequest) map[string]payroll.RunInput {
	inputs := make(map[string]payroll.RunInput, len(reqs))
	for _, r := range reqs {
		input := payroll.RunInput{DaysWorked: nominalDaysPerMonth}
		if r.DaysWorked != nil {
			input.DaysWorked = *r.DaysWorked
		}
		if r.Extras != "" {
			if extras, err := decimal.NewFromString(r.Extras); err == nil {
				input.Extras = extras
			}
		}
		inputs[r.EmployeeID] = input
	}
	return inputs
}

func (s *ServiceImpl) buildRun(ctx context.Context, companyID string, period payroll.Period, inputs map[string]payroll.RunInput) (*payroll.Run, error) {
	employees, err := s.employeeRepo.ListByCompanyID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, payroll.ErrNoEmployees
	}

	charges, err := s.companyRates(ctx, companyID)
	if err != nil {
		return nil, err
	}

	run := &payroll.Run{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Month:     period.String(),
	}
	for _, emp := range employees {
		records, err := s.leaveRepo.ListByEmployee(ctx, emp.ID)
		if err != nil {
			return nil, err
		}

		input, ok := inputs[emp.ID]
		if !ok {
			input = payroll.RunInput{DaysWorked: nominalDaysPerMonth}
		}
		comp := Compute(emp, period, records, charges, input)
		run.Lines = append(run.Lines, &payroll.RunLine{
			ID:             uuid.New().String(),
			RunID:          run.ID,
			EmployeeID:     emp.ID,
			EmployeeName:   emp.FullName,
			DaysWorked:     comp.DaysWorked,
			Gross:          comp.Gross,
			EmployeeCharge: comp.EmployeeCharge,
			EmployerCharge: comp.EmployerCharge,
			NetPay:         comp.Net,
		})
		run.TotalNet = run.TotalNet.Add(comp.Net)
		run.TotalEmployerCharges = run.TotalEmployerCharges.Add(comp.EmployerCharge)
	}
	return run, nil
}

func (s *ServiceImpl) companyRates(ctx context.Context, companyID string) (*rates.SocialCharges, error) {
	charges, err := s.ratesRepo.GetByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if charges == nil {
		charges = rates.Defaults(companyID)
	}
	return charges, nil
}

func (s *ServiceImpl) GetRun(ctx context.Context, id string) (payroll.RunResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.RunResponse{}, err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, id)
	if err != nil {
		return payroll.RunResponse{}, err
	}
	if run.CompanyID != companyID {
		return payroll.RunResponse{}, payroll.ErrUnauthorized
	}
	return payroll.ToRunResponse(run), nil
}

func (s *ServiceImpl) ListRuns(ctx context.Context) ([]payroll.RunResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	runs, err := s.payrollRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return payroll.ToRunResponses(runs), nil
}

// DeleteRun unfiles a run so its month can be corrected and refiled.
// Only runs filed within the last two months may be deleted; anything
// older is settled history.
func (s *ServiceImpl) DeleteRun(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, id)
	if err != nil {
		return err
	}
	if run.CompanyID != companyID {
		return payroll.ErrUnauthorized
	}

	cutoff := run.CreatedAt.AddDate(0, deletionWindowMonths, 0)
	if s.now().UTC().After(cutoff) {
		return payroll.ErrRunDeletionWindowClosed
	}

	return s.payrollRepo.Delete(ctx, id)
}

// BonusEstimates projects the year-end bonus per employee as one
// twelfth of the net pay accumulated across the year's filed runs.
func (s *ServiceImpl) BonusEstimates(ctx context.Context, year int) ([]payroll.BonusEstimate, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	runs, err := s.payrollRepo.ListByYear(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	names := make(map[string]string)
	var order []string
	for _, run := range runs {
		for _, line := range run.Lines {
			if _, seen := totals[line.EmployeeID]; !seen {
				order = append(order, line.EmployeeID)
				names[line.EmployeeID] = line.EmployeeName
			}
			totals[line.EmployeeID] = totals[line.EmployeeID].Add(line.NetPay)
		}
	}

	estimates := make([]payroll.BonusEstimate, 0, len(order))
	for _, employeeID := range order {
		total := totals[employeeID]
		estimates = append(estimates, payroll.BonusEstimate{
			EmployeeID:   employeeID,
			EmployeeName: names[employeeID],
			YearNetTotal: total.String(),
			Estimate:     total.Div(twelve).Round(2).String(),
		})
	}
	return estimates, nil
}

// ExportRunPDF renders a filed run as a printable summary.
func (s *ServiceImpl) ExportRunPDF(ctx context.Context, id string) ([]byte, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if run.CompanyID != companyID {
		return nil, payroll.ErrUnauthorized
	}

	return pdf.GenerateRunSummary(run)
}
