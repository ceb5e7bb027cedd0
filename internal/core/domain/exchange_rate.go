package domain

import "time"

// ExchangeRate stores the conversion rate from the base reporting currency to a
// target currency for a specific date: 1 unit of FromCurrencyCode = Rate units
// of ToCurrencyCode. Only rates from the base currency are stored; cross-rates
// between two non-base currencies are derived, never stored.
type ExchangeRate struct {
	ExchangeRateID   string    `json:"exchangeRateID"`   // Primary Key (e.g., UUID)
	FromCurrencyCode string    `json:"fromCurrencyCode"` // FK -> Currency.currencyCode
	ToCurrencyCode   string    `json:"toCurrencyCode"`   // FK -> Currency.currencyCode
	Rate             float64   `json:"rate"`
	DateEffective    time.Time `json:"dateEffective"`
	AuditFields
}

// ConversionContext is a request-scoped, read-only bundle of everything the
// converter needs: the currency registry, a possibly sparse map of rates from
// the base currency, and the configured base and display currencies. It is
// constructed once per request and discarded after.
type ConversionContext struct {
	Registry        *CurrencyRegistry
	Rates           map[string]float64 // target code -> rate from base; entries may be absent
	BaseCurrency    string
	DisplayCurrency string
}

// ConversionResult is the outcome of converting one amount for display.
// When Degraded is true, Formatted carries the fallback or degraded string and
// Value should not be trusted for further arithmetic.
type ConversionResult struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
	Degraded  bool    `json:"degraded"`
}
