package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finly-app/finly_backend/internal/apperrors"
	portssvc "github.com/finly-app/finly_backend/internal/core/ports/services"
)

// reportingSnapshot converts a native amount into the base reporting currency
// using the rate effective on the record's date. This is the only place the
// engine derives a reporting amount; once stored it is never recomputed.
// Stored rates run base->native, so the native amount is divided by the rate.
func reportingSnapshot(ctx context.Context, rates portssvc.RateResolverSvc, baseCurrency string, nativeAmount float64, currencyCode string, date time.Time) (float64, error) {
	if currencyCode == baseCurrency {
		return nativeAmount, nil
	}
	rate, err := rates.Resolve(ctx, date, baseCurrency, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidRate) {
			return 0, fmt.Errorf("%w: no usable exchange rate from %s to %s on %s",
				apperrors.ErrValidation, baseCurrency, currencyCode, date.Format(time.DateOnly))
		}
		return 0, fmt.Errorf("failed to resolve rate for reporting snapshot: %w", err)
	}
	return nativeAmount / rate, nil
}
