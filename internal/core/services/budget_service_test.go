package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finly-app/finly_backend/internal/apperrors"
	"github.com/finly-app/finly_backend/internal/core/domain"
	portssvc "github.com/finly-app/finly_backend/internal/core/ports/services"
	"github.com/finly-app/finly_backend/internal/core/services"
	"github.com/finly-app/finly_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

// --- Mock TransactionReader ---
type MockTransactionReader struct {
	mock.Mock
}

func (m *MockTransactionReader) ListIncome(ctx context.Context, userID string, from, to time.Time) ([]domain.Income, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockTransactionReader) ListExpenses(ctx context.Context, userID string, from, to time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// --- Mock RateResolverSvc ---
type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) Resolve(ctx context.Context, date time.Time, sourceCurrency, targetCurrency string) (float64, error) {
	args := m.Called(ctx, date, sourceCurrency, targetCurrency)
	return args.Get(0).(float64), args.Error(1)
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockBudgetRepo  *MockBudgetRepository
	mockTxReader    *MockTransactionReader
	mockCurrencySvc *MockCurrencyReaderSvc
	mockRates       *MockRateResolver
	service         portssvc.BudgetSvcFacade
	userID          string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockBudgetRepo = new(MockBudgetRepository)
	suite.mockTxReader = new(MockTransactionReader)
	suite.mockCurrencySvc = new(MockCurrencyReaderSvc)
	suite.mockRates = new(MockRateResolver)
	suite.service = services.NewBudgetService(
		suite.mockBudgetRepo,
		suite.mockTxReader,
		suite.mockCurrencySvc,
		suite.mockRates,
		"USD",
	)
	suite.userID = uuid.NewString()
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NormalizesPeriodToFirstOfMonth() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:        "Food",
		PeriodType:      "monthly",
		PeriodStartDate: "2025-03-17",
		AmountLimit:     500,
		CurrencyCode:    "USD",
	}
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(budget)
	suite.Equal("2025-03-01", budget.PeriodStartDate)
	suite.Equal(domain.Monthly, budget.Period)
	// Base-currency limit snapshots 1:1.
	suite.Equal(500.0, budget.Limit.Reporting())
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	// Base-currency amounts never consult the rate store.
	suite.mockRates.AssertNotCalled(suite.T(), "Resolve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_SnapshotsForeignCurrencyLimit() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:        "Travel",
		PeriodType:      "monthly",
		PeriodStartDate: "2025-03-01",
		AmountLimit:     800, // EUR
		CurrencyCode:    "EUR",
	}
	periodStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(&domain.Currency{CurrencyCode: "EUR"}, nil).Once()
	// 1 USD = 0.8 EUR, so 800 EUR = 1000 USD.
	suite.mockRates.On("Resolve", ctx, periodStart, "USD", "EUR").Return(0.8, nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(nil).Once()

	budget, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.InDelta(1000.0, budget.Limit.Reporting(), 1e-9)
	suite.Equal(800.0, budget.Limit.NativeAmount)
	suite.Equal("EUR", budget.Limit.NativeCurrencyCode)
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_NoRateForPeriod() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:        "Travel",
		PeriodType:      "monthly",
		PeriodStartDate: "2025-03-01",
		AmountLimit:     800,
		CurrencyCode:    "EUR",
	}
	periodStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "EUR").Return(&domain.Currency{CurrencyCode: "EUR"}, nil).Once()
	suite.mockRates.On("Resolve", ctx, periodStart, "USD", "EUR").Return(0.0, apperrors.ErrNotFound).Once()

	budget, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockBudgetRepo.AssertNotCalled(suite.T(), "SaveBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Duplicate() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:        "Food",
		PeriodType:      "monthly",
		PeriodStartDate: "2025-03-01",
		AmountLimit:     500,
		CurrencyCode:    "USD",
	}
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "USD").Return(&domain.Currency{CurrencyCode: "USD"}, nil).Once()
	suite.mockBudgetRepo.On("SaveBudget", ctx, mock.AnythingOfType("domain.Budget")).Return(apperrors.ErrDuplicate).Once()

	budget, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateBudgetRequest{
		Category:        "Food",
		PeriodType:      "monthly",
		PeriodStartDate: "2025-03-01",
		AmountLimit:     500,
		CurrencyCode:    "ZZZ",
	}
	suite.mockCurrencySvc.On("GetCurrencyByCode", ctx, "ZZZ").Return(nil, apperrors.ErrNotFound).Once()

	budget, err := suite.service.CreateBudget(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.Nil(budget)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestListBudgetsWithActuals_Empty() {
	ctx := context.Background()
	suite.mockBudgetRepo.On("ListBudgets", ctx, suite.userID).Return([]domain.Budget{}, nil).Once()

	actuals, err := suite.service.ListBudgetsWithActuals(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Empty(actuals)
	suite.NotNil(actuals)
	suite.mockTxReader.AssertNotCalled(suite.T(), "ListExpenses", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestListBudgetsWithActuals_JoinsExpenses() {
	ctx := context.Background()
	budgets := []domain.Budget{
		testBudget("Food", "2025-03-01", 500),
	}
	expenses := []domain.Expense{
		testExpense("Food", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 200),
	}
	periodStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)
	suite.mockBudgetRepo.On("ListBudgets", ctx, suite.userID).Return(budgets, nil).Once()
	suite.mockTxReader.On("ListExpenses", ctx, suite.userID, periodStart, periodEnd).Return(expenses, nil).Once()

	actuals, err := suite.service.ListBudgetsWithActuals(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(actuals, 1)
	suite.Equal(200.0, actuals[0].ActualSpending)
	suite.Equal(300.0, actuals[0].Remaining)
	suite.InDelta(40.0, actuals[0].Progress, 1e-9)
	suite.mockBudgetRepo.AssertExpectations(suite.T())
	suite.mockTxReader.AssertExpectations(suite.T())
}

func TestBudgetService(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
