package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finly-app/finly_backend/internal/apperrors"
	"github.com/finly-app/finly_backend/internal/core/domain"
	portsrepo "github.com/finly-app/finly_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository implements the TransactionRepository port for
// income and expense records.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for dated money movements.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveIncome persists a new income record.
func (r *PgxTransactionRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	query := `
		INSERT INTO incomes (income_id, user_id, source, category, date, native_amount, native_currency_code, reporting_amount,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		income.IncomeID,
		income.UserID,
		income.Source,
		income.Category,
		income.Date,
		income.Amount.NativeAmount,
		income.Amount.NativeCurrencyCode,
		income.Amount.Reporting(),
		income.CreatedAt,
		income.CreatedBy,
		income.LastUpdatedAt,
		income.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to save income %s: %v", apperrors.ErrUnavailable, income.IncomeID, err)
	}
	return nil
}

// SaveExpense persists a new expense record.
func (r *PgxTransactionRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (expense_id, user_id, description, category, date, native_amount, native_currency_code, reporting_amount,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.UserID,
		expense.Description,
		expense.Category,
		expense.Date,
		expense.Amount.NativeAmount,
		expense.Amount.NativeCurrencyCode,
		expense.Amount.Reporting(),
		expense.CreatedAt,
		expense.CreatedBy,
		expense.LastUpdatedAt,
		expense.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to save expense %s: %v", apperrors.ErrUnavailable, expense.ExpenseID, err)
	}
	return nil
}

// ListIncome retrieves a user's income records within a date range.
func (r *PgxTransactionRepository) ListIncome(ctx context.Context, userID string, from, to time.Time) ([]domain.Income, error) {
	query := `
		SELECT income_id, user_id, source, category, date, native_amount, native_currency_code, reporting_amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM incomes
		WHERE user_id = $1
	`
	args := []any{userID}
	query, args = appendDateRange(query, args, "date", from, to)
	query += ` ORDER BY date;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query incomes: %v", apperrors.ErrUnavailable, err)
	}
	defer rows.Close()

	incomes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Income, error) {
		var (
			income          domain.Income
			nativeAmount    float64
			nativeCurrency  string
			reportingAmount float64
		)
		err := row.Scan(
			&income.IncomeID,
			&income.UserID,
			&income.Source,
			&income.Category,
			&income.Date,
			&nativeAmount,
			&nativeCurrency,
			&reportingAmount,
			&income.CreatedAt,
			&income.CreatedBy,
			&income.LastUpdatedAt,
			&income.LastUpdatedBy,
		)
		income.Amount = domain.NewMoney(nativeAmount, nativeCurrency, reportingAmount)
		return income, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan incomes: %v", apperrors.ErrUnavailable, err)
	}

	return incomes, nil
}

// ListExpenses retrieves a user's expense records within a date range.
func (r *PgxTransactionRepository) ListExpenses(ctx context.Context, userID string, from, to time.Time) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, user_id, description, category, date, native_amount, native_currency_code, reporting_amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE user_id = $1
	`
	args := []any{userID}
	query, args = appendDateRange(query, args, "date", from, to)
	query += ` ORDER BY date;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query expenses: %v", apperrors.ErrUnavailable, err)
	}
	defer rows.Close()

	expenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Expense, error) {
		var (
			expense         domain.Expense
			nativeAmount    float64
			nativeCurrency  string
			reportingAmount float64
		)
		err := row.Scan(
			&expense.ExpenseID,
			&expense.UserID,
			&expense.Description,
			&expense.Category,
			&expense.Date,
			&nativeAmount,
			&nativeCurrency,
			&reportingAmount,
			&expense.CreatedAt,
			&expense.CreatedBy,
			&expense.LastUpdatedAt,
			&expense.LastUpdatedBy,
		)
		expense.Amount = domain.NewMoney(nativeAmount, nativeCurrency, reportingAmount)
		return expense, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan expenses: %v", apperrors.ErrUnavailable, err)
	}

	return expenses, nil
}
