package domain

// Summary holds the top-level figures for a user's dashboard. Every field is
// expressed in the base reporting currency; conversion to the user's display
// currency happens only at presentation time.
type Summary struct {
	TotalIncome          float64 `json:"totalIncome"`
	TotalSpending        float64 `json:"totalSpending"`
	NetSavings           float64 `json:"netSavings"`
	TotalAccountBalance  float64 `json:"totalAccountBalance"`
	TotalInvestmentValue float64 `json:"totalInvestmentValue"`
	TotalOutstandingDebt float64 `json:"totalOutstandingDebt"`
	NetWorth             float64 `json:"netWorth"`
}
