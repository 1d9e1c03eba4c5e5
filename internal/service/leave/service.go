package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/employee"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/leave"
	"github.com/planilla-cr/planilla-backend-go/internal/domain/payroll"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
	"github.com/planilla-cr/planilla-backend-go/internal/repository/postgresql"
)

type Service interface {
	Create(ctx context.Context, req leave.CreateLeaveRequest) ([]leave.LeaveRecordResponse, error)
	List(ctx context.Context) ([]leave.LeaveRecordResponse, error)
	ListByEmployee(ctx context.Context, employeeID, month string) ([]leave.LeaveRecordResponse, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	db           *database.DB
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	payrollRepo  payroll.PayrollRepository
}

func NewService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	payrollRepo payroll.PayrollRepository,
) Service {
	return &ServiceImpl{
		db:           db,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		payrollRepo:  payrollRepo,
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

// Create stores a leave, splitting it into one record per calendar
// month. All pieces of a split share the same case number so payroll
// can merge them back into one block. Creation is rejected when any
// touched month already has a filed payroll run.
func (s *ServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) ([]leave.LeaveRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp.CompanyID != companyID {
		return nil, leave.ErrUnauthorized
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, time.UTC)
	if err != nil {
		return nil, leave.ErrInvalidDateRange
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, time.UTC)
	if err != nil {
		return nil, leave.ErrInvalidDateRange
	}
	if endDate.Before(startDate) {
		return nil, leave.ErrInvalidDateRange
	}

	category := leave.Category(req.Category)
	caseNumber := req.CaseNumber
	if caseNumber == "" && categoryNeedsCase(category) {
		caseNumber = uuid.New().String()
	}

	records := splitByMonth(companyID, emp.ID, category, caseNumber, startDate, endDate)

	for _, rec := range records {
		_, err := s.payrollRepo.FindByMonth(ctx, companyID, rec.Month)
		if err == nil {
			return nil, leave.ErrMonthAlreadyFiled
		}
		if !errors.Is(err, payroll.ErrRunNotFound) {
			return nil, err
		}
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		return s.leaveRepo.CreateAll(ctx, records)
	})
	if err != nil {
		return nil, err
	}

	return leave.ToLeaveRecordResponses(records), nil
}

// Categories that span months and carry partial-pay state need a case
// number so their pieces can be merged again.
func categoryNeedsCase(category leave.Category) bool {
	switch category {
	case leave.CategoryIllness, leave.CategoryAccident, leave.CategoryMaternity:
		return true
	}
	return false
}

func splitByMonth(companyID, employeeID string, category leave.Category, caseNumber string, startDate, endDate time.Time) []*leave.Record {
	// Paternity never affects pay, so there is no per-month state to
	// keep. It stays one record filed under its start month.
	if category == leave.CategoryPaternity {
		return []*leave.Record{{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			EmployeeID: employeeID,
			StartDate:  startDate,
			EndDate:    endDate,
			Days:       leave.CountDays(category, startDate, endDate),
			Month:      payroll.PeriodOf(startDate).String(),
			Category:   category,
			CaseNumber: caseNumber,
		}}
	}

	var records []*leave.Record
	for cursor := startDate; !cursor.After(endDate); {
		period := payroll.PeriodOf(cursor)
		segmentEnd := period.End()
		if segmentEnd.After(endDate) {
			segmentEnd = endDate
		}
		records = append(records, &leave.Record{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			EmployeeID: employeeID,
			StartDate:  cursor,
			EndDate:    segmentEnd,
			Days:       leave.CountDays(category, cursor, segmentEnd),
			Month:      period.String(),
			Category:   category,
			CaseNumber: caseNumber,
		})
		cursor = period.Next().Start()
	}
	return records
}

func (s *ServiceImpl) List(ctx context.Context) ([]leave.LeaveRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.leaveRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return leave.ToLeaveRecordResponses(records), nil
}

// ListByEmployee returns an employee's leave records, optionally
// narrowed to one filing month (YYYY-MM).
func (s *ServiceImpl) ListByEmployee(ctx context.Context, employeeID, month string) ([]leave.LeaveRecordResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.CompanyID != companyID {
		return nil, leave.ErrUnauthorized
	}

	var records []*leave.Record
	if month != "" {
		records, err = s.leaveRepo.ListByEmployeeAndMonth(ctx, employeeID, month)
	} else {
		records, err = s.leaveRepo.ListByEmployee(ctx, employeeID)
	}
	if err != nil {
		return nil, err
	}
	return leave.ToLeaveRecordResponses(records), nil
}

// Delete removes a leave record unless the month it belongs to has
// already been filed.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	rec, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.CompanyID != companyID {
		return leave.ErrUnauthorized
	}

	_, err = s.payrollRepo.FindByMonth(ctx, companyID, rec.Month)
	if err == nil {
		return leave.ErrMonthAlreadyFiled
	}
	if !errors.Is(err, payroll.ErrRunNotFound) {
		return err
	}

	return s.leaveRepo.Delete(ctx, id)
}
