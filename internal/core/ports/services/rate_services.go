package services

import (
	"context"
	"time"

	"github.com/finly-app/finly_backend/internal/core/domain"
	"github.com/finly-app/finly_backend/internal/dto"
)

// RateResolverSvc resolves a single exchange rate for a date.
type RateResolverSvc interface {
	// Resolve returns the rate converting one unit of sourceCurrency into
	// targetCurrency on the given date. Same-currency pairs short-circuit to
	// 1.0 without consulting the store. Absence is apperrors.ErrNotFound, a
	// zero/invalid stored rate is apperrors.ErrInvalidRate; anything else is a
	// transport failure.
	Resolve(ctx context.Context, date time.Time, sourceCurrency, targetCurrency string) (float64, error)
}

// RateBatchResolverSvc resolves rates from the base currency to a set of
// target currencies, tolerating partial failure.
type RateBatchResolverSvc interface {
	// ResolveFromBase returns a map of target currency code to rate-from-base
	// for the given date. Targets that fail to resolve are omitted. An error is
	// returned only when zero non-base targets resolved and at least one
	// lookup failed with a transport error.
	ResolveFromBase(ctx context.Context, date time.Time, baseCurrency string, targetCurrencies []string) (map[string]float64, error)
}

// RateWriterSvc defines write operations for exchange rates (admin surface;
// the daily rate feed runs independently).
type RateWriterSvc interface {
	// UpsertRate persists a rate for a (pair, date) key.
	UpsertRate(ctx context.Context, req dto.UpsertExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// RateSvcFacade combines all exchange-rate service interfaces
type RateSvcFacade interface {
	RateResolverSvc
	RateBatchResolverSvc
	RateWriterSvc
}
