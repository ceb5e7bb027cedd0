package dto

import (
	"github.com/finly-app/finly_backend/internal/core/domain"
)

// CreateBudgetRequest defines the data needed to create a monthly budget.
// PeriodStartDate may be any day of the month; it is normalized to the first.
type CreateBudgetRequest struct {
	Category        string  `json:"category" binding:"required"`
	PeriodType      string  `json:"periodType" binding:"required,eq=monthly"`
	PeriodStartDate string  `json:"periodStartDate" binding:"required,dateonly"`
	AmountLimit     float64 `json:"amountLimit" binding:"required,gt=0"`
	CurrencyCode    string  `json:"currencyCode" binding:"required,uppercase,len=3"`
}

// BudgetActualResponse is a budget with the spending recorded against its month.
type BudgetActualResponse struct {
	BudgetID        string        `json:"budgetID"`
	Category        string        `json:"category"`
	PeriodType      string        `json:"periodType"`
	PeriodStartDate string        `json:"periodStartDate"`
	Limit           MoneyResponse `json:"limit"`
	ActualSpending  float64       `json:"actualSpending"`
	Remaining       float64       `json:"remaining"`
	Progress        float64       `json:"progress"`
}

// ToBudgetActualResponse converts a domain.BudgetActual to a response DTO
func ToBudgetActualResponse(a domain.BudgetActual) BudgetActualResponse {
	return BudgetActualResponse{
		BudgetID:        a.Budget.BudgetID,
		Category:        a.Budget.Category,
		PeriodType:      string(a.Budget.Period),
		PeriodStartDate: a.Budget.PeriodStartDate,
		Limit:           ToMoneyResponse(a.Budget.Limit),
		ActualSpending:  a.ActualSpending,
		Remaining:       a.Remaining,
		Progress:        a.Progress,
	}
}

// ToListBudgetActualResponse converts budget actuals to response DTOs
func ToListBudgetActualResponse(actuals []domain.BudgetActual) []BudgetActualResponse {
	res := make([]BudgetActualResponse, len(actuals))
	for i, a := range actuals {
		res[i] = ToBudgetActualResponse(a)
	}
	return res
}
