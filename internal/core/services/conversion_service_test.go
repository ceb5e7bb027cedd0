package services_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/finly-app/finly_backend/internal/apperrors"
	"github.com/finly-app/finly_backend/internal/core/domain"
	"github.com/finly-app/finly_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RateBatchResolverSvc ---
type MockRateBatchResolver struct {
	mock.Mock
}

func (m *MockRateBatchResolver) ResolveFromBase(ctx context.Context, date time.Time, baseCurrency string, targetCurrencies []string) (map[string]float64, error) {
	args := m.Called(ctx, date, baseCurrency, targetCurrencies)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}

// --- Test Suite ---
type ConverterServiceTestSuite struct {
	suite.Suite
	mockCurrencySvc *MockCurrencyReaderSvc
	mockRates       *MockRateBatchResolver
	service         *services.ConverterService
	cc              domain.ConversionContext
}

func (suite *ConverterServiceTestSuite) SetupTest() {
	suite.mockCurrencySvc = new(MockCurrencyReaderSvc)
	suite.mockRates = new(MockRateBatchResolver)
	suite.service = services.NewConverterService(suite.mockCurrencySvc, suite.mockRates, "USD", "USD")

	registry := domain.NewCurrencyRegistry([]domain.Currency{
		{CurrencyCode: "USD", Name: "US Dollar", Symbol: "$", DecimalDigits: 2, IsActive: true},
		{CurrencyCode: "EUR", Name: "Euro", Symbol: "€", DecimalDigits: 2, IsActive: true},
		{CurrencyCode: "JPY", Name: "Yen", Symbol: "¥", DecimalDigits: 0, IsActive: true},
	})
	suite.cc = domain.ConversionContext{
		Registry: registry,
		Rates: map[string]float64{
			"USD": 1.0,
			"EUR": 0.8, // 1 USD = 0.8 EUR
			"JPY": 150.0,
		},
		BaseCurrency:    "USD",
		DisplayCurrency: "EUR",
	}
}

// --- BuildContext ---

func (suite *ConverterServiceTestSuite) TestBuildContext_Success() {
	ctx := context.Background()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	registry := domain.NewCurrencyRegistry([]domain.Currency{
		{CurrencyCode: "USD", IsActive: true},
		{CurrencyCode: "EUR", IsActive: true},
	})
	suite.mockCurrencySvc.On("BuildRegistry", ctx).Return(registry, nil).Once()
	suite.mockRates.On("ResolveFromBase", ctx, date, "USD", registry.Codes()).
		Return(map[string]float64{"USD": 1.0, "EUR": 0.8}, nil).Once()

	cc, err := suite.service.BuildContext(ctx, date, "eur")

	suite.Require().NoError(err)
	suite.Equal("USD", cc.BaseCurrency)
	suite.Equal("EUR", cc.DisplayCurrency)
	suite.Equal(0.8, cc.Rates["EUR"])
	suite.mockCurrencySvc.AssertExpectations(suite.T())
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *ConverterServiceTestSuite) TestBuildContext_DefaultsDisplayCurrency() {
	ctx := context.Background()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	registry := domain.NewCurrencyRegistry([]domain.Currency{{CurrencyCode: "USD", IsActive: true}})
	suite.mockCurrencySvc.On("BuildRegistry", ctx).Return(registry, nil).Once()
	suite.mockRates.On("ResolveFromBase", ctx, date, "USD", registry.Codes()).
		Return(map[string]float64{"USD": 1.0}, nil).Once()

	cc, err := suite.service.BuildContext(ctx, date, "")

	suite.Require().NoError(err)
	suite.Equal("USD", cc.DisplayCurrency)
}

func (suite *ConverterServiceTestSuite) TestBuildContext_EmptyRegistryEscalates() {
	ctx := context.Background()
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	suite.mockCurrencySvc.On("BuildRegistry", ctx).Return(domain.NewCurrencyRegistry(nil), nil).Once()

	_, err := suite.service.BuildContext(ctx, date, "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
	suite.mockRates.AssertNotCalled(suite.T(), "ResolveFromBase", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Convert ---

func (suite *ConverterServiceTestSuite) TestConvert_SameCurrencyFastPath() {
	ctx := context.Background()
	amount := 1234.5

	result := suite.service.Convert(ctx, &amount, "EUR", suite.cc)

	suite.False(result.Degraded)
	suite.Equal(1234.5, result.Value)
	suite.NotEmpty(result.Formatted)
}

func (suite *ConverterServiceTestSuite) TestConvert_TwoHopThroughBase() {
	ctx := context.Background()
	amount := 150.0 // JPY

	result := suite.service.Convert(ctx, &amount, "JPY", suite.cc)

	suite.False(result.Degraded)
	// 150 JPY -> 1 USD -> 0.8 EUR
	suite.InDelta(0.8, result.Value, 1e-9)
}

func (suite *ConverterServiceTestSuite) TestConvert_FromBaseSingleHop() {
	ctx := context.Background()
	amount := 100.0 // USD

	result := suite.service.Convert(ctx, &amount, "USD", suite.cc)

	suite.False(result.Degraded)
	suite.InDelta(80.0, result.Value, 1e-9)
}

func (suite *ConverterServiceTestSuite) TestConvert_RoundTripWithinTolerance() {
	ctx := context.Background()
	amount := 999.99

	toDisplay := suite.service.Convert(ctx, &amount, "USD", suite.cc)
	suite.Require().False(toDisplay.Degraded)

	back := domain.ConversionContext{
		Registry:        suite.cc.Registry,
		Rates:           suite.cc.Rates,
		BaseCurrency:    "USD",
		DisplayCurrency: "USD",
	}
	roundTripped := suite.service.Convert(ctx, &toDisplay.Value, "EUR", back)
	suite.Require().False(roundTripped.Degraded)
	suite.InDelta(amount, roundTripped.Value, 1e-9)
}

func (suite *ConverterServiceTestSuite) TestConvert_MissingSourceRateDegrades() {
	ctx := context.Background()
	amount := 42.0

	result := suite.service.Convert(ctx, &amount, "GBP", suite.cc)

	suite.True(result.Degraded)
	suite.Equal(services.FallbackDisplay, result.Formatted)
	suite.Zero(result.Value)
}

func (suite *ConverterServiceTestSuite) TestConvert_MissingTargetRateDegrades() {
	ctx := context.Background()
	amount := 42.0
	cc := suite.cc
	cc.Rates = map[string]float64{"USD": 1.0} // no EUR rate

	result := suite.service.Convert(ctx, &amount, "USD", cc)

	suite.True(result.Degraded)
	suite.Equal(services.FallbackDisplay, result.Formatted)
}

func (suite *ConverterServiceTestSuite) TestConvert_UnknownDisplayCurrencyDegradesWithRawAmount() {
	ctx := context.Background()
	amount := 42.5
	cc := suite.cc
	cc.DisplayCurrency = "ZZZ"

	result := suite.service.Convert(ctx, &amount, "USD", cc)

	suite.True(result.Degraded)
	suite.Equal(42.5, result.Value)
	suite.Equal("42.50 ZZZ", result.Formatted)
}

func (suite *ConverterServiceTestSuite) TestConvert_NilAmountDegrades() {
	ctx := context.Background()

	result := suite.service.Convert(ctx, nil, "USD", suite.cc)

	suite.True(result.Degraded)
	suite.Equal(services.FallbackDisplay, result.Formatted)
}

func (suite *ConverterServiceTestSuite) TestConvert_NaNAmountDegrades() {
	ctx := context.Background()
	amount := math.NaN()

	result := suite.service.Convert(ctx, &amount, "USD", suite.cc)

	suite.True(result.Degraded)
	suite.Equal(services.FallbackDisplay, result.Formatted)
}

func TestConverterService(t *testing.T) {
	suite.Run(t, new(ConverterServiceTestSuite))
}
