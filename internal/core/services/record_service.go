package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finly-app/finly_backend/internal/apperrors"
	"github.com/finly-app/finly_backend/internal/core/domain"
	portsrepo "github.com/finly-app/finly_backend/internal/core/ports/repositories"
	portssvc "github.com/finly-app/finly_backend/internal/core/ports/services"
	"github.com/finly-app/finly_backend/internal/dto"
	"github.com/google/uuid"
)

// recordService implements the RecordSvcFacade interface
type recordService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	holdingRepo     portsrepo.HoldingRepository
	currencyService portssvc.CurrencyReaderSvc
	rateService     portssvc.RateResolverSvc
	baseCurrency    string
}

// NewRecordService creates a new record service.
func NewRecordService(
	transactionRepo portsrepo.TransactionRepository,
	holdingRepo portsrepo.HoldingRepository,
	currencyService portssvc.CurrencyReaderSvc,
	rateService portssvc.RateResolverSvc,
	baseCurrency string,
) portssvc.RecordSvcFacade {
	return &recordService{
		transactionRepo: transactionRepo,
		holdingRepo:     holdingRepo,
		currencyService: currencyService,
		rateService:     rateService,
		baseCurrency:    strings.ToUpper(baseCurrency),
	}
}

var _ portssvc.RecordSvcFacade = (*recordService)(nil)

// CreateIncome persists a new income record with its write-time reporting snapshot.
func (s *recordService) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*domain.Income, error) {
	amount, date, err := s.buildMoney(ctx, req.Amount, req.CurrencyCode, req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	income := domain.Income{
		IncomeID: uuid.NewString(),
		UserID:   userID,
		Source:   strings.TrimSpace(req.Source),
		Category: strings.TrimSpace(req.Category),
		Date:     date,
		Amount:   amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.transactionRepo.SaveIncome(ctx, income); err != nil {
		return nil, fmt.Errorf("failed to create income in service: %w", err)
	}

	s.LogInfo(ctx, "Income recorded",
		slog.String("income_id", income.IncomeID),
		slog.String("currency", amount.NativeCurrencyCode))
	return &income, nil
}

// CreateExpense persists a new expense record with its write-time reporting snapshot.
func (s *recordService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	amount, date, err := s.buildMoney(ctx, req.Amount, req.CurrencyCode, req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		UserID:      userID,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Date:        date,
		Amount:      amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.transactionRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense in service: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("category", expense.Category),
		slog.String("currency", amount.NativeCurrencyCode))
	return &expense, nil
}

// buildMoney validates the currency and date and freezes the reporting-currency
// snapshot from the rate in effect on the record's date.
func (s *recordService) buildMoney(ctx context.Context, nativeAmount float64, currencyCode, dateStr string) (domain.Money, time.Time, error) {
	code := strings.ToUpper(currencyCode)

	if _, err := s.currencyService.GetCurrencyByCode(ctx, code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Money{}, time.Time{}, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, code)
		}
		return domain.Money{}, time.Time{}, fmt.Errorf("failed to validate currency '%s': %w", code, err)
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return domain.Money{}, time.Time{}, fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", apperrors.ErrValidation)
	}

	reporting, err := reportingSnapshot(ctx, s.rateService, s.baseCurrency, nativeAmount, code, date)
	if err != nil {
		return domain.Money{}, time.Time{}, err
	}

	return domain.NewMoney(nativeAmount, code, reporting), date, nil
}

// ListIncome retrieves a user's income records within a date range.
func (s *recordService) ListIncome(ctx context.Context, userID string, from, to time.Time) ([]domain.Income, error) {
	incomes, err := s.transactionRepo.ListIncome(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list income in service: %w", err)
	}
	if incomes == nil {
		return []domain.Income{}, nil
	}
	return incomes, nil
}

// ListExpenses retrieves a user's expense records within a date range.
func (s *recordService) ListExpenses(ctx context.Context, userID string, from, to time.Time) ([]domain.Expense, error) {
	expenses, err := s.transactionRepo.ListExpenses(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses in service: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// ListAccounts retrieves a user's accounts.
func (s *recordService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.holdingRepo.ListAccounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts in service: %w", err)
	}
	return accounts, nil
}

// ListInvestments retrieves a user's investment positions.
func (s *recordService) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	investments, err := s.holdingRepo.ListInvestments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments in service: %w", err)
	}
	return investments, nil
}

// ListDebts retrieves a user's debts.
func (s *recordService) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	debts, err := s.holdingRepo.ListDebts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts in service: %w", err)
	}
	return debts, nil
}
