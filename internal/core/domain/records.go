package domain

import "time"

// Income represents money received by the user on a given date.
type Income struct {
	IncomeID string    `json:"incomeID"` // Primary Key (e.g., UUID)
	UserID   string    `json:"userID"`
	Source   string    `json:"source"` // e.g., "Salary"
	Category string    `json:"category"`
	Date     time.Time `json:"date"`
	Amount   Money     `json:"amount"`
	AuditFields
}

// Expense represents money spent by the user on a given date.
type Expense struct {
	ExpenseID   string    `json:"expenseID"` // Primary Key (e.g., UUID)
	UserID      string    `json:"userID"`
	Description string    `json:"description"`
	Category    string    `json:"category"` // Matched case-insensitively against budgets
	Date        time.Time `json:"date"`
	Amount      Money     `json:"amount"`
	AuditFields
}

// Account represents a bank or cash account with its current balance.
type Account struct {
	AccountID string `json:"accountID"` // Primary Key (e.g., UUID)
	UserID    string `json:"userID"`
	Name      string `json:"name"`
	Balance   Money  `json:"balance"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}

// Investment represents a position whose current value may not have been
// priced yet; CurrentValue is nil until a valuation exists.
type Investment struct {
	InvestmentID string  `json:"investmentID"` // Primary Key (e.g., UUID)
	UserID       string  `json:"userID"`
	Name         string  `json:"name"` // e.g., ticker or fund name
	Quantity     float64 `json:"quantity"`
	PurchaseCost Money   `json:"purchaseCost"`
	CurrentValue *Money  `json:"currentValue,omitempty"` // Nullable
	AuditFields
}

// Debt represents an outstanding liability. Paid-off debts keep their last
// balance but no longer count against net worth.
type Debt struct {
	DebtID         string `json:"debtID"` // Primary Key (e.g., UUID)
	UserID         string `json:"userID"`
	Name           string `json:"name"`
	CurrentBalance Money  `json:"currentBalance"`
	IsPaid         bool   `json:"isPaid"`
	AuditFields
}
