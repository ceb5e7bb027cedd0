package repositories

import (
	"context"

	"github.com/finly-app/finly_backend/internal/core/domain"
)

// HoldingReader defines read operations for the user's balance-carrying
// entities: accounts, investment positions and debts.
type HoldingReader interface {
	// ListAccounts retrieves a user's accounts.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)

	// ListInvestments retrieves a user's investment positions.
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)

	// ListDebts retrieves a user's debts, paid and unpaid.
	ListDebts(ctx context.Context, userID string) ([]domain.Debt, error)
}

// HoldingRepository combines holding-related repository interfaces
type HoldingRepository interface {
	HoldingReader
}
