package domain

import (
	"sort"
	"strings"
)

// Currency represents a supported currency. Immutable once referenced by a
// monetary record; within a request it is only read through a CurrencyRegistry.
type Currency struct {
	CurrencyCode  string `json:"currencyCode"`  // Primary Key (e.g., "USD")
	Name          string `json:"name"`          // e.g., "US Dollar"
	Symbol        string `json:"symbol"`        // e.g., "$"
	DecimalDigits int    `json:"decimalDigits"` // Fraction digits for rounding and display
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// CurrencyRegistry is an in-memory, read-only index of currency metadata,
// built once per request from the currency store.
type CurrencyRegistry struct {
	byCode map[string]Currency
}

// NewCurrencyRegistry builds a registry from a currency list. Codes are
// normalized to uppercase.
func NewCurrencyRegistry(currencies []Currency) *CurrencyRegistry {
	byCode := make(map[string]Currency, len(currencies))
	for _, c := range currencies {
		byCode[strings.ToUpper(c.CurrencyCode)] = c
	}
	return &CurrencyRegistry{byCode: byCode}
}

// Lookup returns the currency for a code, if known.
func (r *CurrencyRegistry) Lookup(code string) (Currency, bool) {
	c, ok := r.byCode[strings.ToUpper(code)]
	return c, ok
}

// Codes returns all registered currency codes in sorted order.
func (r *CurrencyRegistry) Codes() []string {
	codes := make([]string, 0, len(r.byCode))
	for code := range r.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of registered currencies.
func (r *CurrencyRegistry) Len() int {
	return len(r.byCode)
}
