package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/finly-app/finly_backend/internal/apperrors"
	"github.com/finly-app/finly_backend/internal/core/domain"
)

// ComputeBudgetActuals joins budgets with expense records by category and
// monthly period, producing spent/remaining/progress per budget. Pure and
// synchronous: input ordering is irrelevant and no I/O occurs. A budget whose
// period date cannot be parsed degrades to zero spending against its full
// limit instead of aborting its siblings.
func ComputeBudgetActuals(budgets []domain.Budget, expenses []domain.Expense, logger *slog.Logger) []domain.BudgetActual {
	actuals := make([]domain.BudgetActual, 0, len(budgets))
	for _, budget := range budgets {
		actuals = append(actuals, computeBudgetActual(budget, expenses, logger))
	}
	return actuals
}

func computeBudgetActual(budget domain.Budget, expenses []domain.Expense, logger *slog.Logger) domain.BudgetActual {
	limit := budget.Limit.Reporting()

	periodStart, err := parsePeriodStart(budget)
	if err != nil {
		if logger != nil {
			logger.Warn("Budget period is unusable, degrading to zero spending",
				slog.String("budget_id", budget.BudgetID),
				slog.String("error", err.Error()))
		}
		return domain.BudgetActual{Budget: budget, Remaining: limit}
	}

	// Monthly-only policy: the period runs through the last calendar day of
	// the start date's month, boundary days included.
	periodEnd := periodStart.AddDate(0, 1, 0)

	var spent float64
	for _, expense := range expenses {
		if !strings.EqualFold(expense.Category, budget.Category) {
			continue
		}
		if expense.Date.Before(periodStart) || !expense.Date.Before(periodEnd) {
			continue
		}
		spent += expense.Amount.Reporting()
	}

	return domain.BudgetActual{
		Budget:         budget,
		ActualSpending: spent,
		Remaining:      limit - spent,
		Progress:       budgetProgress(spent, limit),
	}
}

// parsePeriodStart parses a budget's stored period start date. Failure is
// ErrMalformedRecord: the row is unusable but only degrades itself. The
// result is normalized to the first day of its month, so a mid-month stored
// date still spans the full calendar month.
func parsePeriodStart(budget domain.Budget) (time.Time, error) {
	start, err := time.Parse(time.DateOnly, budget.PeriodStartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: budget %s has period start %q",
			apperrors.ErrMalformedRecord, budget.BudgetID, budget.PeriodStartDate)
	}
	return time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

// budgetProgress returns percent-of-limit spent, clamped to [0, 100].
// A zero limit with any spending reads as fully consumed.
func budgetProgress(spent, limit float64) float64 {
	var progress float64
	switch {
	case limit > 0:
		progress = spent / limit * 100
	case spent > 0:
		progress = 100
	}
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
