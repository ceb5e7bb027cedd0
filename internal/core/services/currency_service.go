package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/finly-app/finly_backend/internal/core/domain"
	portsrepo "github.com/finly-app/finly_backend/internal/core/ports/repositories"
	portssvc "github.com/finly-app/finly_backend/internal/core/ports/services"
	"github.com/finly-app/finly_backend/internal/dto"
)

// CurrencyService provides currency metadata and builds the per-request registry.
type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// CreateCurrency persists a new currency.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	// Basic format validation is handled by DTO binding tags.
	now := time.Now()

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	currency := domain.Currency{
		CurrencyCode:  strings.ToUpper(req.CurrencyCode),
		Name:          req.Name,
		Symbol:        req.Symbol,
		DecimalDigits: req.DecimalDigits,
		IsActive:      isActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	return &currency, nil
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves currencies, optionally restricted to active ones.
func (s *CurrencyService) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// BuildRegistry loads active currencies into a read-only registry for the
// remainder of the request.
func (s *CurrencyService) BuildRegistry(ctx context.Context) (*domain.CurrencyRegistry, error) {
	currencies, err := s.ListCurrencies(ctx, true)
	if err != nil {
		return nil, err
	}
	return domain.NewCurrencyRegistry(currencies), nil
}
