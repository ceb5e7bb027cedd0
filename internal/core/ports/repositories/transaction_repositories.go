package repositories

import (
	"context"
	"time"

	"github.com/finly-app/finly_backend/internal/core/domain"
)

// TransactionReader defines read operations for dated money movements.
// The zero value of from/to means an unbounded range on that side.
type TransactionReader interface {
	// ListIncome retrieves a user's income records within a date range.
	ListIncome(ctx context.Context, userID string, from, to time.Time) ([]domain.Income, error)

	// ListExpenses retrieves a user's expense records within a date range.
	ListExpenses(ctx context.Context, userID string, from, to time.Time) ([]domain.Expense, error)
}

// TransactionWriter defines write operations for dated money movements.
type TransactionWriter interface {
	// SaveIncome persists a new income record.
	SaveIncome(ctx context.Context, income domain.Income) error

	// SaveExpense persists a new expense record.
	SaveExpense(ctx context.Context, expense domain.Expense) error
}

// TransactionRepository combines income/expense repository interfaces
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
