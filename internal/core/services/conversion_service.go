package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/finly-app/finly_backend/internal/apperrors"
	"github.com/finly-app/finly_backend/internal/core/domain"
	portssvc "github.com/finly-app/finly_backend/internal/core/ports/services"
	"github.com/finly-app/finly_backend/internal/utils"
)

// FallbackDisplay is the degraded string shown when conversion or formatting
// cannot succeed for a cell.
const FallbackDisplay = "N/A"

// ConverterService converts amounts between currencies through the base
// reporting currency and renders them for display. Conversion is total: every
// data-quality problem yields a degraded result, never an error.
type ConverterService struct {
	BaseService
	currencyService portssvc.CurrencyReaderSvc
	rateService     portssvc.RateBatchResolverSvc
	baseCurrency    string
	displayCurrency string
}

// NewConverterService creates a new ConverterService. baseCurrency is the
// fixed reporting currency; displayCurrency is the default used when a request
// does not name one.
func NewConverterService(currencyService portssvc.CurrencyReaderSvc, rateService portssvc.RateBatchResolverSvc, baseCurrency, displayCurrency string) *ConverterService {
	return &ConverterService{
		currencyService: currencyService,
		rateService:     rateService,
		baseCurrency:    strings.ToUpper(baseCurrency),
		displayCurrency: strings.ToUpper(displayCurrency),
	}
}

var _ portssvc.ConverterSvc = (*ConverterService)(nil)

// BuildContext assembles the registry and rate map for one request. Missing
// individual rates are tolerated (they degrade per-cell later); having no
// currency metadata at all, or no rates resolvable at all, escalates, since no
// meaningful amount could be displayed.
func (s *ConverterService) BuildContext(ctx context.Context, date time.Time, displayCurrency string) (domain.ConversionContext, error) {
	display := strings.ToUpper(displayCurrency)
	if display == "" {
		display = s.displayCurrency
	}

	registry, err := s.currencyService.BuildRegistry(ctx)
	if err != nil {
		return domain.ConversionContext{}, fmt.Errorf("failed to build currency registry: %w", err)
	}
	if registry.Len() == 0 {
		return domain.ConversionContext{}, fmt.Errorf("%w: no currency metadata available", apperrors.ErrUnavailable)
	}

	rates, err := s.rateService.ResolveFromBase(ctx, date, s.baseCurrency, registry.Codes())
	if err != nil {
		return domain.ConversionContext{}, fmt.Errorf("failed to resolve rates for conversion context: %w", err)
	}

	return domain.ConversionContext{
		Registry:        registry,
		Rates:           rates,
		BaseCurrency:    s.baseCurrency,
		DisplayCurrency: display,
	}, nil
}

// Convert converts an amount from sourceCurrency into the context's display
// currency via the base currency and formats the result.
func (s *ConverterService) Convert(ctx context.Context, amount *float64, sourceCurrency string, cc domain.ConversionContext) domain.ConversionResult {
	if amount == nil || math.IsNaN(*amount) {
		return domain.ConversionResult{Formatted: FallbackDisplay, Degraded: true}
	}

	source := strings.ToUpper(sourceCurrency)
	target := cc.DisplayCurrency

	targetCurrency, ok := cc.Registry.Lookup(target)
	if !ok {
		// No metadata for the display currency: render the raw amount with the
		// bare code appended so the gap is visible, never an error.
		s.LogWarn(ctx, "Display currency missing from registry", slog.String("currency", target))
		return domain.ConversionResult{
			Value:     *amount,
			Formatted: fmt.Sprintf("%.2f %s", *amount, target),
			Degraded:  true,
		}
	}

	if source == target {
		return domain.ConversionResult{
			Value:     *amount,
			Formatted: utils.FormatAmount(*amount, targetCurrency),
		}
	}

	// Two hops through the base currency: source -> base, base -> target.
	amountInBase := *amount
	if source != cc.BaseCurrency {
		rate, present := cc.Rates[source]
		if !present || rate == 0 {
			s.LogWarn(ctx, "No usable rate for source currency",
				slog.String("currency", source),
				slog.Bool("present", present))
			return domain.ConversionResult{Formatted: FallbackDisplay, Degraded: true}
		}
		amountInBase = *amount / rate
	}

	amountInTarget := amountInBase
	if target != cc.BaseCurrency {
		rate, present := cc.Rates[target]
		if !present {
			s.LogWarn(ctx, "No rate for display currency", slog.String("currency", target))
			return domain.ConversionResult{Formatted: FallbackDisplay, Degraded: true}
		}
		amountInTarget = amountInBase * rate
	}

	if math.IsNaN(amountInTarget) {
		s.LogWarn(ctx, "Conversion produced NaN",
			slog.String("source", source),
			slog.String("target", target))
		return domain.ConversionResult{Formatted: FallbackDisplay, Degraded: true}
	}

	return domain.ConversionResult{
		Value:     amountInTarget,
		Formatted: utils.FormatAmount(amountInTarget, targetCurrency),
	}
}
