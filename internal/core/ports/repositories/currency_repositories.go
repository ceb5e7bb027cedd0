package repositories

import (
	"context"

	"github.com/finly-app/finly_backend/internal/core/domain"
)

// CurrencyReader defines read operations for currency metadata
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves currencies, optionally restricted to active ones.
	ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency metadata
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepository combines all currency-related repository interfaces
type CurrencyRepository interface {
	CurrencyReader
	CurrencyWriter
}
