package dto

import (
	"time"

	"github.com/finly-app/finly_backend/internal/core/domain"
)

// CreateIncomeRequest defines the data needed to record an income.
type CreateIncomeRequest struct {
	Source       string  `json:"source" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	CurrencyCode string  `json:"currencyCode" binding:"required,uppercase,len=3"`
	Date         string  `json:"date" binding:"required,dateonly"`
}

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Description  string  `json:"description" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	CurrencyCode string  `json:"currencyCode" binding:"required,uppercase,len=3"`
	Date         string  `json:"date" binding:"required,dateonly"`
}

// MoneyResponse is the API shape of a monetary value with its write-time
// reporting-currency snapshot.
type MoneyResponse struct {
	NativeAmount       float64 `json:"nativeAmount"`
	NativeCurrencyCode string  `json:"nativeCurrencyCode"`
	ReportingAmount    float64 `json:"reportingAmount"`
}

// ToMoneyResponse converts a domain.Money to its response DTO
func ToMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{
		NativeAmount:       m.NativeAmount,
		NativeCurrencyCode: m.NativeCurrencyCode,
		ReportingAmount:    m.Reporting(),
	}
}

// IncomeResponse defines the data returned for an income record.
type IncomeResponse struct {
	IncomeID string        `json:"incomeID"`
	Source   string        `json:"source"`
	Category string        `json:"category"`
	Date     time.Time     `json:"date"`
	Amount   MoneyResponse `json:"amount"`
}

// ToIncomeResponse converts a domain.Income to a response DTO
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID: in.IncomeID,
		Source:   in.Source,
		Category: in.Category,
		Date:     in.Date,
		Amount:   ToMoneyResponse(in.Amount),
	}
}

// ToListIncomeResponse converts income records to response DTOs
func ToListIncomeResponse(incomes []domain.Income) []IncomeResponse {
	res := make([]IncomeResponse, len(incomes))
	for i := range incomes {
		res[i] = ToIncomeResponse(&incomes[i])
	}
	return res
}

// ExpenseResponse defines the data returned for an expense record.
type ExpenseResponse struct {
	ExpenseID   string        `json:"expenseID"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Date        time.Time     `json:"date"`
	Amount      MoneyResponse `json:"amount"`
}

// ToExpenseResponse converts a domain.Expense to a response DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
		Amount:      ToMoneyResponse(e.Amount),
	}
}

// ToListExpenseResponse converts expense records to response DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
