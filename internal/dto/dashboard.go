package dto

import (
	"github.com/finly-app/finly_backend/internal/core/domain"
)

// DisplayAmount is a reporting-currency figure rendered in the user's display
// currency. Degraded marks cells where conversion or formatting fell back.
type DisplayAmount struct {
	Reporting float64 `json:"reporting"`
	Display   float64 `json:"display"`
	Formatted string  `json:"formatted"`
	Degraded  bool    `json:"degraded"`
}

// DashboardResponse is the full dashboard view model for one user and period.
type DashboardResponse struct {
	FromDate        string `json:"fromDate"`
	ToDate          string `json:"toDate"`
	BaseCurrency    string `json:"baseCurrency"`
	DisplayCurrency string `json:"displayCurrency"`

	Summary struct {
		TotalIncome          DisplayAmount `json:"totalIncome"`
		TotalSpending        DisplayAmount `json:"totalSpending"`
		NetSavings           DisplayAmount `json:"netSavings"`
		TotalAccountBalance  DisplayAmount `json:"totalAccountBalance"`
		TotalInvestmentValue DisplayAmount `json:"totalInvestmentValue"`
		TotalOutstandingDebt DisplayAmount `json:"totalOutstandingDebt"`
		NetWorth             DisplayAmount `json:"netWorth"`
	} `json:"summary"`

	Budgets []BudgetActualResponse `json:"budgets"`
}

// ToDisplayAmount pairs a reporting-currency figure with its converted rendering.
func ToDisplayAmount(reporting float64, converted domain.ConversionResult) DisplayAmount {
	return DisplayAmount{
		Reporting: reporting,
		Display:   converted.Value,
		Formatted: converted.Formatted,
		Degraded:  converted.Degraded,
	}
}
