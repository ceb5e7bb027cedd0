package services

import (
	"context"

	"github.com/finly-app/finly_backend/internal/core/domain"
	"github.com/finly-app/finly_backend/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency metadata
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves currencies, optionally restricted to active ones.
	ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error)

	// BuildRegistry loads active currencies into a request-scoped registry.
	BuildRegistry(ctx context.Context) (*domain.CurrencyRegistry, error)
}

// CurrencyWriterSvc defines write operations for currency metadata
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
