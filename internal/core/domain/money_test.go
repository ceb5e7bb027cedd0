package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/finly-app/finly_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_ReportingSnapshotSurvivesJSON(t *testing.T) {
	m := domain.NewMoney(800, "EUR", 1000)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"nativeAmount":800,"nativeCurrencyCode":"EUR","reportingAmount":1000}`, string(data))

	var restored domain.Money
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, 1000.0, restored.Reporting(), "the frozen snapshot must survive serialization")
	assert.Equal(t, 800.0, restored.NativeAmount)
}

func TestCurrencyRegistry_LookupNormalizesCase(t *testing.T) {
	registry := domain.NewCurrencyRegistry([]domain.Currency{
		{CurrencyCode: "usd", Name: "US Dollar"},
	})

	c, ok := registry.Lookup("USD")
	require.True(t, ok)
	assert.Equal(t, "US Dollar", c.Name)

	c, ok = registry.Lookup("usd")
	require.True(t, ok)
	assert.Equal(t, "US Dollar", c.Name)

	_, ok = registry.Lookup("EUR")
	assert.False(t, ok)
}

func TestCurrencyRegistry_CodesSorted(t *testing.T) {
	registry := domain.NewCurrencyRegistry([]domain.Currency{
		{CurrencyCode: "JPY"},
		{CurrencyCode: "EUR"},
		{CurrencyCode: "USD"},
	})

	assert.Equal(t, []string{"EUR", "JPY", "USD"}, registry.Codes())
	assert.Equal(t, 3, registry.Len())
}
