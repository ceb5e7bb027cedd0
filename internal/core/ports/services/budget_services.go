package services

import (
	"context"

	"github.com/finly-app/finly_backend/internal/core/domain"
	"github.com/finly-app/finly_backend/internal/dto"
)

// BudgetReaderSvc defines read operations for budgets
type BudgetReaderSvc interface {
	// ListBudgetsWithActuals retrieves a user's budgets joined with the
	// spending recorded against each budget's month.
	ListBudgetsWithActuals(ctx context.Context, userID string) ([]domain.BudgetActual, error)
}

// BudgetWriterSvc defines write operations for budgets
type BudgetWriterSvc interface {
	// CreateBudget persists a new monthly budget, snapshotting its limit in
	// the base reporting currency.
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest, userID string) (*domain.Budget, error)
}

// BudgetSvcFacade combines budget service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}
