package repositories

import (
	"context"

	"github.com/finly-app/finly_backend/internal/core/domain"
)

// BudgetReader defines read operations for budgets
type BudgetReader interface {
	// ListBudgets retrieves all budgets for a user.
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
}

// BudgetWriter defines write operations for budgets
type BudgetWriter interface {
	// SaveBudget persists a new budget. Returns apperrors.ErrDuplicate when a
	// budget already exists for the (user, category, period) tuple.
	SaveBudget(ctx context.Context, budget domain.Budget) error
}

// BudgetRepository combines budget repository interfaces
type BudgetRepository interface {
	BudgetReader
	BudgetWriter
}
