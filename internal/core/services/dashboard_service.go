package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finly-app/finly_backend/internal/core/domain"
	portsrepo "github.com/finly-app/finly_backend/internal/core/ports/repositories"
	portssvc "github.com/finly-app/finly_backend/internal/core/ports/services"
	"github.com/finly-app/finly_backend/internal/dto"
	"golang.org/x/sync/errgroup"
)

// dashboardService implements the DashboardSvc interface
type dashboardService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	holdingRepo     portsrepo.HoldingReader
	budgetService   portssvc.BudgetReaderSvc
	converter       portssvc.ConverterSvc
	baseCurrency    string
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	transactionRepo portsrepo.TransactionReader,
	holdingRepo portsrepo.HoldingReader,
	budgetService portssvc.BudgetReaderSvc,
	converter portssvc.ConverterSvc,
	baseCurrency string,
) portssvc.DashboardSvc {
	return &dashboardService{
		transactionRepo: transactionRepo,
		holdingRepo:     holdingRepo,
		budgetService:   budgetService,
		converter:       converter,
		baseCurrency:    baseCurrency,
	}
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// GetDashboard fans out the independent reads, waits for all of them, then
// runs the aggregation pass synchronously and converts the headline figures
// into the display currency. If any read fails the whole request fails; no
// partial aggregate is published.
func (s *dashboardService) GetDashboard(ctx context.Context, userID string, from, to time.Time, displayCurrency string) (*dto.DashboardResponse, error) {
	rateDate := to
	if rateDate.IsZero() {
		rateDate = time.Now().UTC()
	}

	var (
		incomes     []domain.Income
		expenses    []domain.Expense
		accounts    []domain.Account
		investments []domain.Investment
		debts       []domain.Debt
		actuals     []domain.BudgetActual
		cc          domain.ConversionContext
	)

	// None of these reads depends on another's result.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		incomes, err = s.transactionRepo.ListIncome(gctx, userID, from, to)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.transactionRepo.ListExpenses(gctx, userID, from, to)
		return err
	})
	g.Go(func() (err error) {
		accounts, err = s.holdingRepo.ListAccounts(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		investments, err = s.holdingRepo.ListInvestments(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		debts, err = s.holdingRepo.ListDebts(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		actuals, err = s.budgetService.ListBudgetsWithActuals(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		cc, err = s.converter.BuildContext(gctx, rateDate, displayCurrency)
		return err
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Dashboard fan-out failed", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	summary := ComputeSummary(incomes, expenses, accounts, investments, debts)

	resp := &dto.DashboardResponse{
		BaseCurrency:    cc.BaseCurrency,
		DisplayCurrency: cc.DisplayCurrency,
		Budgets:         dto.ToListBudgetActualResponse(actuals),
	}
	if !from.IsZero() {
		resp.FromDate = from.Format(time.DateOnly)
	}
	if !to.IsZero() {
		resp.ToDate = to.Format(time.DateOnly)
	}

	resp.Summary.TotalIncome = s.display(ctx, summary.TotalIncome, cc)
	resp.Summary.TotalSpending = s.display(ctx, summary.TotalSpending, cc)
	resp.Summary.NetSavings = s.display(ctx, summary.NetSavings, cc)
	resp.Summary.TotalAccountBalance = s.display(ctx, summary.TotalAccountBalance, cc)
	resp.Summary.TotalInvestmentValue = s.display(ctx, summary.TotalInvestmentValue, cc)
	resp.Summary.TotalOutstandingDebt = s.display(ctx, summary.TotalOutstandingDebt, cc)
	resp.Summary.NetWorth = s.display(ctx, summary.NetWorth, cc)

	return resp, nil
}

// display converts one reporting-currency figure for presentation.
func (s *dashboardService) display(ctx context.Context, reporting float64, cc domain.ConversionContext) dto.DisplayAmount {
	converted := s.converter.Convert(ctx, &reporting, s.baseCurrency, cc)
	return dto.ToDisplayAmount(reporting, converted)
}
