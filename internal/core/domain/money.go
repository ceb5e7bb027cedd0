package domain

import "encoding/json"

// Money pairs an amount in the currency the user entered it in with the same
// value expressed in the fixed base reporting currency.
//
// The reporting amount is frozen at creation time: it is computed once by the
// write path, from the rate in effect on the record's date, and is never
// recomputed afterwards. The field is unexported so the aggregation layer can
// read it but cannot re-derive or mutate it. This is what keeps aggregation an
// O(n) sum with no per-record rate lookups.
type Money struct {
	NativeAmount       float64 `json:"nativeAmount"`
	NativeCurrencyCode string  `json:"nativeCurrencyCode"` // FK -> Currency.currencyCode

	reportingAmount float64
}

// NewMoney constructs a Money with its write-time reporting-currency snapshot.
func NewMoney(nativeAmount float64, nativeCurrencyCode string, reportingAmount float64) Money {
	return Money{
		NativeAmount:       nativeAmount,
		NativeCurrencyCode: nativeCurrencyCode,
		reportingAmount:    reportingAmount,
	}
}

// Reporting returns the value in the base reporting currency, as snapshotted
// when the record was written.
func (m Money) Reporting() float64 {
	return m.reportingAmount
}

type moneyJSON struct {
	NativeAmount       float64 `json:"nativeAmount"`
	NativeCurrencyCode string  `json:"nativeCurrencyCode"`
	ReportingAmount    float64 `json:"reportingAmount"`
}

// MarshalJSON includes the reporting snapshot in API payloads.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		NativeAmount:       m.NativeAmount,
		NativeCurrencyCode: m.NativeCurrencyCode,
		ReportingAmount:    m.reportingAmount,
	})
}

// UnmarshalJSON restores a Money from its API representation.
func (m *Money) UnmarshalJSON(data []byte) error {
	var aux moneyJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = NewMoney(aux.NativeAmount, aux.NativeCurrencyCode, aux.ReportingAmount)
	return nil
}
