package services

import (
	"context"
	"time"

	"github.com/finly-app/finly_backend/internal/core/domain"
	"github.com/finly-app/finly_backend/internal/dto"
)

// RecordReaderSvc defines read operations over the user's entity collections.
type RecordReaderSvc interface {
	// ListIncome retrieves a user's income records within a date range.
	ListIncome(ctx context.Context, userID string, from, to time.Time) ([]domain.Income, error)

	// ListExpenses retrieves a user's expense records within a date range.
	ListExpenses(ctx context.Context, userID string, from, to time.Time) ([]domain.Expense, error)

	// ListAccounts retrieves a user's accounts.
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)

	// ListInvestments retrieves a user's investment positions.
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)

	// ListDebts retrieves a user's debts.
	ListDebts(ctx context.Context, userID string) ([]domain.Debt, error)
}

// RecordWriterSvc defines the write path for dated money movements. Writes
// compute the reporting-currency snapshot from the rate in effect on the
// record's date; the engine never recomputes it afterwards.
type RecordWriterSvc interface {
	// CreateIncome persists a new income record.
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest, userID string) (*domain.Income, error)

	// CreateExpense persists a new expense record.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)
}

// RecordSvcFacade combines record service interfaces
type RecordSvcFacade interface {
	RecordReaderSvc
	RecordWriterSvc
}
