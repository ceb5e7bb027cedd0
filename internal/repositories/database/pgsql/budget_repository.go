package pgsql

import (
	"context"
	"fmt"

	"github.com/finly-app/finly_backend/internal/apperrors"
	"github.com/finly-app/finly_backend/internal/core/domain"
	portsrepo "github.com/finly-app/finly_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBudgetRepository implements the BudgetRepository port.
type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budgets.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepository {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BudgetRepository = (*PgxBudgetRepository)(nil)

// SaveBudget persists a new budget. A second budget for the same user,
// category (case-insensitive) and period collides with the unique index and
// surfaces as ErrDuplicate.
func (r *PgxBudgetRepository) SaveBudget(ctx context.Context, budget domain.Budget) error {
	query := `
		INSERT INTO budgets (budget_id, user_id, category, period_type, period_start_date,
		                     native_amount, native_currency_code, reporting_amount,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		budget.BudgetID,
		budget.UserID,
		budget.Category,
		budget.Period,
		budget.PeriodStartDate,
		budget.Limit.NativeAmount,
		budget.Limit.NativeCurrencyCode,
		budget.Limit.Reporting(),
		budget.CreatedAt,
		budget.CreatedBy,
		budget.LastUpdatedAt,
		budget.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: budget for category %q in period %s already exists", apperrors.ErrDuplicate, budget.Category, budget.PeriodStartDate)
		}
		return fmt.Errorf("%w: failed to save budget %s: %v", apperrors.ErrUnavailable, budget.BudgetID, err)
	}
	return nil
}

// ListBudgets retrieves all budgets for a user.
func (r *PgxBudgetRepository) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	query := `
		SELECT budget_id, user_id, category, period_type, period_start_date,
		       native_amount, native_currency_code, reporting_amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM budgets
		WHERE user_id = $1
		ORDER BY period_start_date, category;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query budgets: %v", apperrors.ErrUnavailable, err)
	}
	defer rows.Close()

	budgets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Budget, error) {
		var (
			budget          domain.Budget
			nativeAmount    float64
			nativeCurrency  string
			reportingAmount float64
		)
		err := row.Scan(
			&budget.BudgetID,
			&budget.UserID,
			&budget.Category,
			&budget.Period,
			&budget.PeriodStartDate,
			&nativeAmount,
			&nativeCurrency,
			&reportingAmount,
			&budget.CreatedAt,
			&budget.CreatedBy,
			&budget.LastUpdatedAt,
			&budget.LastUpdatedBy,
		)
		budget.Limit = domain.NewMoney(nativeAmount, nativeCurrency, reportingAmount)
		return budget, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan budgets: %v", apperrors.ErrUnavailable, err)
	}

	return budgets, nil
}
