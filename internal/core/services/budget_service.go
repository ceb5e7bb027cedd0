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

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo      portsrepo.BudgetRepository
	transactionRepo portsrepo.TransactionReader
	currencyService portssvc.CurrencyReaderSvc
	rateService     portssvc.RateResolverSvc
	baseCurrency    string
}

// NewBudgetService creates a new budget service.
func NewBudgetService(
	budgetRepo portsrepo.BudgetRepository,
	transactionRepo portsrepo.TransactionReader,
	currencyService portssvc.CurrencyReaderSvc,
	rateService portssvc.RateResolverSvc,
	baseCurrency string,
) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		currencyService: currencyService,
		rateService:     rateService,
		baseCurrency:    strings.ToUpper(baseCurrency),
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget persists a new monthly budget. The limit's reporting-currency
// equivalent is snapshotted here, once, from the rate in effect on the
// period's start date; it is never recomputed when rates move later.
func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error) {
	currencyCode := strings.ToUpper(req.CurrencyCode)

	if _, err := s.currencyService.GetCurrencyByCode(ctx, currencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, currencyCode)
		}
		return nil, fmt.Errorf("failed to validate budget currency '%s': %w", currencyCode, err)
	}

	startDate, err := time.Parse(time.DateOnly, req.PeriodStartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: periodStartDate must be formatted as YYYY-MM-DD", apperrors.ErrValidation)
	}
	periodStart := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)

	limitReporting, err := reportingSnapshot(ctx, s.rateService, s.baseCurrency, req.AmountLimit, currencyCode, periodStart)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:        uuid.NewString(),
		UserID:          userID,
		Category:        strings.TrimSpace(req.Category),
		Period:          domain.Monthly,
		PeriodStartDate: periodStart.Format(time.DateOnly),
		Limit:           domain.NewMoney(req.AmountLimit, currencyCode, limitReporting),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a budget for category '%s' and period %s already exists",
				apperrors.ErrDuplicate, budget.Category, budget.PeriodStartDate)
		}
		return nil, fmt.Errorf("failed to create budget in service: %w", err)
	}

	s.LogInfo(ctx, "Budget created",
		slog.String("budget_id", budget.BudgetID),
		slog.String("category", budget.Category),
		slog.String("period_start", budget.PeriodStartDate))
	return &budget, nil
}

// ListBudgetsWithActuals retrieves a user's budgets joined with the expenses
// recorded in each budget's month.
func (s *budgetService) ListBudgetsWithActuals(ctx context.Context, userID string) ([]domain.BudgetActual, error) {
	budgets, err := s.budgetRepo.ListBudgets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets in service: %w", err)
	}
	if len(budgets) == 0 {
		return []domain.BudgetActual{}, nil
	}

	from, to := budgetSpan(budgets)
	expenses, err := s.transactionRepo.ListExpenses(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for budget actuals: %w", err)
	}

	return ComputeBudgetActuals(budgets, expenses, s.GetLogger(ctx)), nil
}

// budgetSpan returns the date range covering every parsable budget period, so
// one expense query serves the whole batch. Unparsable dates are skipped here;
// the actuals pass degrades them individually.
func budgetSpan(budgets []domain.Budget) (time.Time, time.Time) {
	var from, to time.Time
	for _, b := range budgets {
		start, err := parsePeriodStart(b)
		if err != nil {
			continue
		}
		end := start.AddDate(0, 1, 0)
		if from.IsZero() || start.Before(from) {
			from = start
		}
		if to.IsZero() || end.After(to) {
			to = end
		}
	}
	return from, to
}
