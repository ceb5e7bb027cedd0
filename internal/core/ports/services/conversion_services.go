package services

import (
	"context"
	"time"

	"github.com/finly-app/finly_backend/internal/core/domain"
)

// ConverterSvc builds the per-request conversion context and converts amounts
// into the user's display currency.
type ConverterSvc interface {
	// BuildContext assembles the registry and rate map for a date and display
	// currency. It fails only when no currency metadata is available at all;
	// missing individual rates degrade later, per-cell.
	BuildContext(ctx context.Context, date time.Time, displayCurrency string) (domain.ConversionContext, error)

	// Convert converts an amount from its source currency into the context's
	// display currency and formats it. Total: every data-quality problem
	// yields a degraded result, never an error.
	Convert(ctx context.Context, amount *float64, sourceCurrency string, cc domain.ConversionContext) domain.ConversionResult
}
