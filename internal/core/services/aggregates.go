package services

import (
	"github.com/finly-app/finly_backend/internal/core/domain"
)

// ComputeSummary reduces the user's collections into the dashboard's headline
// figures. Every input already carries its reporting-currency snapshot, so
// this is a plain O(n) sum: no conversion, no rate lookups, no I/O, and the
// result is independent of input ordering.
func ComputeSummary(
	incomes []domain.Income,
	expenses []domain.Expense,
	accounts []domain.Account,
	investments []domain.Investment,
	debts []domain.Debt,
) domain.Summary {
	var summary domain.Summary

	for _, income := range incomes {
		summary.TotalIncome += income.Amount.Reporting()
	}
	for _, expense := range expenses {
		summary.TotalSpending += expense.Amount.Reporting()
	}
	summary.NetSavings = summary.TotalIncome - summary.TotalSpending

	for _, account := range accounts {
		summary.TotalAccountBalance += account.Balance.Reporting()
	}
	for _, investment := range investments {
		// Unvalued positions contribute zero rather than being excluded.
		if investment.CurrentValue != nil {
			summary.TotalInvestmentValue += investment.CurrentValue.Reporting()
		}
	}
	for _, debt := range debts {
		if debt.IsPaid {
			continue
		}
		summary.TotalOutstandingDebt += debt.CurrentBalance.Reporting()
	}
	summary.NetWorth = summary.TotalAccountBalance + summary.TotalInvestmentValue - summary.TotalOutstandingDebt

	return summary
}
