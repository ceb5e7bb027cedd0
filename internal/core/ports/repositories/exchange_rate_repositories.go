package repositories

import (
	"context"
	"time"

	"github.com/finly-app/finly_backend/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindRateOn retrieves the most recent rate for a currency pair effective on
	// or before the given date. Returns apperrors.ErrNotFound when no such rate
	// is stored.
	FindRateOn(ctx context.Context, date time.Time, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data.
// Rates are normally populated by an independent daily process; this port
// exists for the admin upsert surface.
type ExchangeRateWriter interface {
	// SaveRate inserts or updates a rate for its (pair, date) key.
	SaveRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepository combines all exchange-rate repository interfaces
type ExchangeRateRepository interface {
	ExchangeRateReader
	ExchangeRateWriter
}
