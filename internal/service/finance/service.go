package finance

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/planilla-cr/planilla-backend-go/internal/domain/finance"
	"github.com/planilla-cr/planilla-backend-go/internal/pkg/database"
)

type Service interface {
	Create(ctx context.Context, req finance.CreateTransactionRequest) (finance.TransactionResponse, error)
	ListByMonth(ctx context.Context, month string) ([]finance.TransactionResponse, error)
	SummaryByMonth(ctx context.Context, month string) (finance.SummaryResponse, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	db          *database.DB
	financeRepo finance.FinanceRepository
}

func NewService(db *database.DB, financeRepo finance.FinanceRepository) Service {
	return &ServiceImpl{db: db, financeRepo: financeRepo}
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

func (s *ServiceImpl) Create(ctx context.Context, req finance.CreateTransactionRequest) (finance.TransactionResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return finance.TransactionResponse{}, err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return finance.TransactionResponse{}, finance.ErrInvalidAmount
	}

	transaction := &finance.Transaction{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Type:        finance.TransactionType(req.Type),
		Description: req.Description,
		Amount:      amount,
		Month:       req.Month,
	}
	if !transaction.Type.IsValid() {
		return finance.TransactionResponse{}, finance.ErrInvalidType
	}

	if err := s.financeRepo.Create(ctx, transaction); err != nil {
		return finance.TransactionResponse{}, err
	}
	return finance.ToTransactionResponse(transaction), nil
}

func (s *ServiceImpl) ListByMonth(ctx context.Context, month string) ([]finance.TransactionResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	transactions, err := s.financeRepo.ListByMonth(ctx, companyID, month)
	if err != nil {
		return nil, err
	}
	return finance.ToTransactionResponses(transactions), nil
}

func (s *ServiceImpl) SummaryByMonth(ctx context.Context, month string) (finance.SummaryResponse, error) {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return finance.SummaryResponse{}, err
	}

	transactions, err := s.financeRepo.ListByMonth(ctx, companyID, month)
	if err != nil {
		return finance.SummaryResponse{}, err
	}

	summary := finance.Summary{Month: month}
	for _, t := range transactions {
		switch t.Type {
		case finance.TransactionIncome:
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
		case finance.TransactionExpense:
			summary.TotalExpense = summary.TotalExpense.Add(t.Amount)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)
	return finance.ToSummaryResponse(summary), nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	companyID, _, err := getClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	transaction, err := s.financeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if transaction.CompanyID != companyID {
		return finance.ErrUnauthorized
	}

	return s.financeRepo.Delete(ctx, id)
}
