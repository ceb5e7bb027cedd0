package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/finly-app/finly_backend/internal/apperrors"
	"github.com/finly-app/finly_backend/internal/core/domain"
	portsrepo "github.com/finly-app/finly_backend/internal/core/ports/repositories"
	portssvc "github.com/finly-app/finly_backend/internal/core/ports/services"
	"github.com/finly-app/finly_backend/internal/dto"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentRateLookups caps the fan-out of a batch resolution.
const maxConcurrentRateLookups = 8

// RateService resolves exchange rates through the fixed base reporting
// currency. It wraps the rate store with not-found / zero-rate semantics and
// never retries; staleness and backfill are the rate feed's responsibility.
type RateService struct {
	BaseService
	rateRepo        portsrepo.ExchangeRateRepository
	currencyService portssvc.CurrencyReaderSvc
	baseCurrency    string
}

// NewRateService creates a new RateService.
func NewRateService(rateRepo portsrepo.ExchangeRateRepository, currencyService portssvc.CurrencyReaderSvc, baseCurrency string) *RateService {
	return &RateService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
		baseCurrency:    strings.ToUpper(baseCurrency),
	}
}

var _ portssvc.RateSvcFacade = (*RateService)(nil)

// Resolve returns the rate converting one unit of sourceCurrency into
// targetCurrency on the given date. Same-currency pairs return 1.0 without
// consulting the store.
func (s *RateService) Resolve(ctx context.Context, date time.Time, sourceCurrency, targetCurrency string) (float64, error) {
	source := strings.ToUpper(sourceCurrency)
	target := strings.ToUpper(targetCurrency)

	if source == target {
		return 1.0, nil
	}

	stored, err := s.rateRepo.FindRateOn(ctx, date, source, target)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Exchange rate not found",
				slog.String("from", source),
				slog.String("to", target),
				slog.String("date", date.Format(time.DateOnly)))
			return 0, fmt.Errorf("%w: no rate from %s to %s on %s", apperrors.ErrNotFound, source, target, date.Format(time.DateOnly))
		}
		return 0, fmt.Errorf("failed to look up rate from %s to %s: %w", source, target, err)
	}

	if stored.Rate <= 0 || math.IsNaN(stored.Rate) || math.IsInf(stored.Rate, 0) {
		s.LogWarn(ctx, "Stored exchange rate is unusable",
			slog.String("from", source),
			slog.String("to", target),
			slog.Float64("rate", stored.Rate),
			slog.String("date", date.Format(time.DateOnly)))
		return 0, fmt.Errorf("%w: rate from %s to %s on %s is %v", apperrors.ErrInvalidRate, source, target, date.Format(time.DateOnly), stored.Rate)
	}

	return stored.Rate, nil
}

// ResolveFromBase resolves rates from the base currency to each target
// currency for a date. Lookups run concurrently and independently; a target
// that fails to resolve is omitted from the map rather than aborting the
// batch. An error is returned only when zero non-base targets resolved and at
// least one lookup failed at the transport level.
func (s *RateService) ResolveFromBase(ctx context.Context, date time.Time, baseCurrency string, targetCurrencies []string) (map[string]float64, error) {
	base := strings.ToUpper(baseCurrency)

	seen := make(map[string]struct{}, len(targetCurrencies))
	rates := make(map[string]float64, len(targetCurrencies))

	// Dedupe and seed the base entry before any worker starts, so the map is
	// only ever written under the mutex once goroutines are in flight.
	lookups := make([]string, 0, len(targetCurrencies))
	for _, t := range targetCurrencies {
		target := strings.ToUpper(t)
		if _, dup := seen[target]; dup {
			continue
		}
		seen[target] = struct{}{}

		if target == base {
			rates[target] = 1.0
			continue
		}
		lookups = append(lookups, target)
	}

	var (
		mu       sync.Mutex
		resolved int
		failed   int
		firstErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentRateLookups)

	for _, target := range lookups {
		g.Go(func() error {
			rate, err := s.Resolve(gctx, date, base, target)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				rates[target] = rate
				resolved++
			case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrInvalidRate):
				// Already logged by Resolve; the entry is simply omitted.
			default:
				failed++
				if firstErr == nil {
					firstErr = err
				}
			}
			// Lookups are independent; a failure never cancels the batch.
			return nil
		})
	}

	_ = g.Wait()

	if resolved == 0 && failed > 0 {
		return rates, fmt.Errorf("%w: no exchange rates resolved from %s on %s: %v",
			apperrors.ErrUnavailable, base, date.Format(time.DateOnly), firstErr)
	}

	return rates, nil
}

// UpsertRate records a rate from the base reporting currency to a target
// currency for one date. The daily feed normally writes these; this is the
// admin surface.
func (s *RateService) UpsertRate(ctx context.Context, req dto.UpsertExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	target := strings.ToUpper(req.ToCurrencyCode)

	if req.Rate <= 0 || math.IsNaN(req.Rate) || math.IsInf(req.Rate, 0) {
		return nil, fmt.Errorf("%w: exchange rate must be a finite positive number", apperrors.ErrValidation)
	}
	if target == s.baseCurrency {
		return nil, fmt.Errorf("%w: target currency cannot be the base currency %s", apperrors.ErrValidation, s.baseCurrency)
	}

	if _, err := s.currencyService.GetCurrencyByCode(ctx, target); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: target currency code '%s' not found", apperrors.ErrValidation, target)
		}
		return nil, fmt.Errorf("failed to validate target currency '%s': %w", target, err)
	}

	dateEffective, err := time.Parse(time.DateOnly, req.DateEffective)
	if err != nil {
		return nil, fmt.Errorf("%w: dateEffective must be formatted as YYYY-MM-DD", apperrors.ErrValidation)
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: s.baseCurrency,
		ToCurrencyCode:   target,
		Rate:             req.Rate,
		DateEffective:    dateEffective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to save exchange rate in service: %w", err)
	}

	return &rate, nil
}
