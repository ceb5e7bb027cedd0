package utils

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/finly-app/finly_backend/internal/core/domain"
)

// FormatAmount renders a monetary value per the locale conventions of its
// currency. The registry's decimal digits govern the fraction rendered, as
// both minimum and maximum. It never fails: currencies the formatting backend
// does not know, or values too large for minor-unit arithmetic, fall back to
// "<amount fixed to decimal digits> <symbol-or-code>".
func FormatAmount(value float64, cur domain.Currency) string {
	digits := cur.DecimalDigits
	if digits < 0 {
		digits = 0
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fixedFormat(value, cur, digits)
	}

	minor := value * math.Pow10(digits)
	if minor >= math.MaxInt64 || minor <= math.MinInt64 {
		return fixedFormat(value, cur, digits)
	}

	backend := money.GetCurrency(cur.CurrencyCode)
	if backend == nil {
		return fixedFormat(value, cur, digits)
	}

	formatter := money.NewFormatter(digits, backend.Decimal, backend.Thousand, backend.Grapheme, backend.Template)
	return formatter.Format(int64(math.Round(minor)))
}

func fixedFormat(value float64, cur domain.Currency, digits int) string {
	unit := cur.Symbol
	if unit == "" {
		unit = cur.CurrencyCode
	}
	return fmt.Sprintf("%.*f %s", digits, value, unit)
}
