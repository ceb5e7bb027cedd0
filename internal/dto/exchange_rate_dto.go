package dto

import (
	"time"

	"github.com/finly-app/finly_backend/internal/core/domain"
)

// UpsertExchangeRateRequest defines the data needed to record a rate from the
// base reporting currency to a target currency for one date.
type UpsertExchangeRateRequest struct {
	ToCurrencyCode string  `json:"toCurrencyCode" binding:"required,uppercase,len=3"`
	Rate           float64 `json:"rate" binding:"required,gt=0"`
	DateEffective  string  `json:"dateEffective" binding:"required,dateonly"`
}

// ExchangeRateResponse defines the data returned for an exchange rate.
type ExchangeRateResponse struct {
	FromCurrencyCode string    `json:"fromCurrencyCode"`
	ToCurrencyCode   string    `json:"toCurrencyCode"`
	Rate             float64   `json:"rate"`
	DateEffective    time.Time `json:"dateEffective"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to a response DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		DateEffective:    rate.DateEffective,
	}
}
