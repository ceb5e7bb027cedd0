package domain

// PeriodType is the recurrence granularity of a budget.
type PeriodType string

// Monthly is the only supported period type.
const Monthly PeriodType = "monthly"

// Budget caps spending for one category over one calendar month. Category,
// currency and period are immutable after creation; only the native limit may
// be edited. The reporting-currency limit is a one-time snapshot taken when the
// budget is written, with the same invariant as Money.
type Budget struct {
	BudgetID string     `json:"budgetID"` // Primary Key (e.g., UUID)
	UserID   string     `json:"userID"`
	Category string     `json:"category"` // Case-insensitive match key
	Period   PeriodType `json:"periodType"`
	// PeriodStartDate is kept as the raw stored string ("2006-01-02", first day
	// of a month). Parsing happens at evaluation time so one malformed row
	// degrades only its own actuals.
	PeriodStartDate string `json:"periodStartDate"`
	Limit           Money  `json:"limit"`
	AuditFields
}

// BudgetActual is a budget joined with the spending recorded against it for
// its period. Remaining may be negative (overspend); Progress is clamped to
// [0, 100].
type BudgetActual struct {
	Budget         Budget  `json:"budget"`
	ActualSpending float64 `json:"actualSpending"`
	Remaining      float64 `json:"remaining"`
	Progress       float64 `json:"progress"`
}
