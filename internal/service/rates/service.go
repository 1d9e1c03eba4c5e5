package rates

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/rates"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/validator"
	"github.com/planilla-cr/planilla-backend-go/internal/repository/postgresql"
)

type Service interface {
	Get(ctx context.Context) (rates.RatesResponse, error)
	Update(ctx context.Context, req rates.UpdateRatesRequest) (rates.RatesResponse, error)
	History(ctx context.Context) ([]rates.HistoryEntryResponse, error)
}

type ServiceImpl struct {
	db        *database.DB
	ratesRepo rates.RatesRepository
}

func NewService(db *database.DB, ratesRepo rates.RatesRepository) Service {
	return &ServiceImpl{db: db, ratesRepo: ratesRepo}
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

// Get returns the company's rates, falling back to the statutory
// defaults when none have been set.
func (s *ServiceImpl) Get(ctx context.Context) (rates.RatesResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return rates.RatesResponse{}, err
	}

	charges, err := s.ratesRepo.GetByCompany(ctx, companyID)
	if err != nil {
		return rates.RatesResponse{}, err
	}
	if charges == nil {
		charges = rates.Defaults(companyID)
	}
	return rates.ToRatesResponse(charges), nil
}

// Update replaces the company's rates and appends a history entry
// recording who changed them.
func (s *ServiceImpl) Update(ctx context.Context, req rates.UpdateRatesRequest) (rates.RatesResponse, error) {
	companyID, userID, err := getClaimsFromContext(ctx)
	if err != nil {
		return rates.RatesResponse{}, err
	}

	employeeRate, err := decimal.NewFromString(req.EmployeeRate)
	if err != nil || !validator.IsValidRate(employeeRate) {
		return rates.RatesResponse{}, rates.ErrInvalidRate
	}
	employerRate, err := decimal.NewFromString(req.EmployerRate)
	if err != nil || !validator.IsValidRate(employerRate) {
		return rates.RatesResponse{}, rates.ErrInvalidRate
	}

	charges := &rates.SocialCharges{
		CompanyID:    companyID,
		EmployeeRate: employeeRate,
		EmployerRate: employerRate,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if err := s.ratesRepo.Upsert(ctx, charges); err != nil {
			return err
		}
		return s.ratesRepo.AppendHistory(ctx, &rates.HistoryEntry{
			ID:           uuid.New().String(),
			CompanyID:    companyID,
			EmployeeRate: employeeRate,
			EmployerRate: employerRate,
			ChangedBy:    userID,
		})
	})
	if err != nil {
		return rates.RatesResponse{}, err
	}
	return rates.ToRatesResponse(charges), nil
}

func (s *ServiceImpl) History(ctx context.Context) ([]rates.HistoryEntryResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.ratesRepo.ListHistory(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return rates.ToHistoryEntryResponses(entries), nil
}
