package utils_test

import (
	"math"
	"testing"

	"github.com/finly-app/finly_backend/internal/core/domain"
	"github.com/finly-app/finly_backend/internal/utils"
	"github.com/stretchr/testify/assert"
)

var (
	usd = domain.Currency{CurrencyCode: "USD", Symbol: "$", DecimalDigits: 2}
	jpy = domain.Currency{CurrencyCode: "JPY", Symbol: "¥", DecimalDigits: 0}
)

func TestFormatAmount_LocaleFormatting(t *testing.T) {
	assert.Equal(t, "$1,234.50", utils.FormatAmount(1234.5, usd))
	assert.Equal(t, "$0.00", utils.FormatAmount(0, usd))
}

func TestFormatAmount_ZeroDecimalCurrency(t *testing.T) {
	got := utils.FormatAmount(1500.7, jpy)
	assert.Equal(t, "¥1,501", got, "zero-digit currencies round to whole units")
}

func TestFormatAmount_NegativeAmount(t *testing.T) {
	got := utils.FormatAmount(-42.5, usd)
	assert.Contains(t, got, "42.50")
	assert.Contains(t, got, "-")
}

func TestFormatAmount_UnknownBackendCurrencyFallsBack(t *testing.T) {
	cur := domain.Currency{CurrencyCode: "ZZZ", Symbol: "z", DecimalDigits: 2}
	assert.Equal(t, "12.34 z", utils.FormatAmount(12.34, cur))
}

func TestFormatAmount_FallbackUsesCodeWithoutSymbol(t *testing.T) {
	cur := domain.Currency{CurrencyCode: "ZZZ", DecimalDigits: 3}
	assert.Equal(t, "12.340 ZZZ", utils.FormatAmount(12.34, cur))
}

func TestFormatAmount_NonFiniteValues(t *testing.T) {
	assert.Equal(t, "NaN $", utils.FormatAmount(math.NaN(), usd))
	assert.Equal(t, "+Inf $", utils.FormatAmount(math.Inf(1), usd))
}

func TestFormatAmount_HugeValueFallsBack(t *testing.T) {
	// Too large for minor-unit int64 arithmetic.
	got := utils.FormatAmount(1e30, usd)
	assert.Contains(t, got, "$")
	assert.NotContains(t, got, ",")
}
