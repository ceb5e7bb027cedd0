package services_test

import (
	"testing"
	"time"

	"github.com/finly-app/finly_backend/internal/core/domain"
	"github.com/finly-app/finly_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBudget(category, periodStart string, limitReporting float64) domain.Budget {
	return domain.Budget{
		BudgetID:        "budget-" + category,
		UserID:          "user-1",
		Category:        category,
		Period:          domain.Monthly,
		PeriodStartDate: periodStart,
		Limit:           domain.NewMoney(limitReporting, "USD", limitReporting),
	}
}

func testExpense(category string, date time.Time, reporting float64) domain.Expense {
	return domain.Expense{
		ExpenseID: "expense",
		UserID:    "user-1",
		Category:  category,
		Date:      date,
		Amount:    domain.NewMoney(reporting, "USD", reporting),
	}
}

func TestComputeBudgetActuals_Overspend(t *testing.T) {
	budgets := []domain.Budget{testBudget("Food", "2025-03-01", 500)}
	expenses := []domain.Expense{
		testExpense("Food", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 750),
	}

	actuals := services.ComputeBudgetActuals(budgets, expenses, nil)

	require.Len(t, actuals, 1)
	assert.Equal(t, 750.0, actuals[0].ActualSpending)
	assert.Equal(t, -250.0, actuals[0].Remaining, "overspend goes negative, not clamped")
	assert.Equal(t, 100.0, actuals[0].Progress, "progress is clamped at 100")
}

func TestComputeBudgetActuals_UnderBudget(t *testing.T) {
	budgets := []domain.Budget{testBudget("Food", "2025-03-01", 500)}
	expenses := []domain.Expense{
		testExpense("Food", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 125),
	}

	actuals := services.ComputeBudgetActuals(budgets, expenses, nil)

	require.Len(t, actuals, 1)
	assert.Equal(t, 125.0, actuals[0].ActualSpending)
	assert.Equal(t, 375.0, actuals[0].Remaining)
	assert.InDelta(t, 25.0, actuals[0].Progress, 1e-9)
}

func TestComputeBudgetActuals_CategoryMatchIsCaseInsensitive(t *testing.T) {
	budgets := []domain.Budget{testBudget("Food_And_Drink", "2025-03-01", 500)}
	expenses := []domain.Expense{
		testExpense("food_and_drink", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), 100),
		testExpense("FOOD_AND_DRINK", time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC), 50),
		testExpense("groceries", time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), 999),
	}

	actuals := services.ComputeBudgetActuals(budgets, expenses, nil)

	require.Len(t, actuals, 1)
	assert.Equal(t, 150.0, actuals[0].ActualSpending)
}

func TestComputeBudgetActuals_PeriodBoundaries(t *testing.T) {
	budgets := []domain.Budget{testBudget("Food", "2025-03-01", 1000)}
	// Feb 28 and Apr 1 fall outside the period; both March boundary days count.
	expenses := []domain.Expense{
		testExpense("Food", time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), 1),
		testExpense("Food", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 10),
		testExpense("Food", time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), 20),
		testExpense("Food", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 2),
	}

	actuals := services.ComputeBudgetActuals(budgets, expenses, nil)

	require.Len(t, actuals, 1)
	assert.Equal(t, 30.0, actuals[0].ActualSpending)
}

func TestComputeBudgetActuals_MidMonthStoredDateSpansWholeMonth(t *testing.T) {
	// Create-path normalization guarantees the first of the month, but a row
	// written by another client may carry any day; the period is still the
	// full calendar month.
	budgets := []domain.Budget{testBudget("Food", "2025-03-17", 1000)}
	expenses := []domain.Expense{
		testExpense("Food", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), 40),
		testExpense("Food", time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC), 60),
		testExpense("Food", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 5),
	}

	actuals := services.ComputeBudgetActuals(budgets, expenses, nil)

	require.Len(t, actuals, 1)
	assert.Equal(t, 100.0, actuals[0].ActualSpending)
}

func TestComputeBudgetActuals_ZeroLimit(t *testing.T) {
	budgets := []domain.Budget{
		testBudget("Spent", "2025-03-01", 0),
		testBudget("Untouched", "2025-03-01", 0),
	}
	expenses := []domain.Expense{
		testExpense("Spent", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 40),
	}

	actuals := services.ComputeBudgetActuals(budgets, expenses, nil)

	require.Len(t, actuals, 2)
	assert.Equal(t, 100.0, actuals[0].Progress, "any spending against a zero limit reads as fully consumed")
	assert.Equal(t, -40.0, actuals[0].Remaining)
	assert.Equal(t, 0.0, actuals[1].Progress)
	assert.Equal(t, 0.0, actuals[1].Remaining)
}

func TestComputeBudgetActuals_MalformedPeriodDateDegradesAlone(t *testing.T) {
	budgets := []domain.Budget{
		testBudget("Broken", "not-a-date", 300),
		testBudget("Food", "2025-03-01", 500),
	}
	expenses := []domain.Expense{
		testExpense("Broken", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 100),
		testExpense("Food", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), 200),
	}

	actuals := services.ComputeBudgetActuals(budgets, expenses, nil)

	require.Len(t, actuals, 2, "a malformed row must not abort its siblings")
	assert.Equal(t, 0.0, actuals[0].ActualSpending)
	assert.Equal(t, 300.0, actuals[0].Remaining, "degraded budget shows its full limit remaining")
	assert.Equal(t, 0.0, actuals[0].Progress)
	assert.Equal(t, 200.0, actuals[1].ActualSpending)
}

func TestComputeBudgetActuals_EmptyInput(t *testing.T) {
	actuals := services.ComputeBudgetActuals(nil, nil, nil)
	assert.Empty(t, actuals)
	assert.NotNil(t, actuals)
}
