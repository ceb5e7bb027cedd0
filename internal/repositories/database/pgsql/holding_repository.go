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

// PgxHoldingRepository implements the HoldingRepository port for accounts,
// investments and debts.
type PgxHoldingRepository struct {
	BaseRepository
}

// newPgxHoldingRepository creates a new repository for point-in-time holdings.
func newPgxHoldingRepository(pool *pgxpool.Pool) portsrepo.HoldingRepository {
	return &PgxHoldingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.HoldingRepository = (*PgxHoldingRepository)(nil)

// ListAccounts retrieves all active accounts for a user.
func (r *PgxHoldingRepository) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `
		SELECT account_id, user_id, name, native_amount, native_currency_code, reporting_amount, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query accounts: %v", apperrors.ErrUnavailable, err)
	}
	defer rows.Close()

	accounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Account, error) {
		var (
			account         domain.Account
			nativeAmount    float64
			nativeCurrency  string
			reportingAmount float64
		)
		err := row.Scan(
			&account.AccountID,
			&account.UserID,
			&account.Name,
			&nativeAmount,
			&nativeCurrency,
			&reportingAmount,
			&account.IsActive,
			&account.CreatedAt,
			&account.CreatedBy,
			&account.LastUpdatedAt,
			&account.LastUpdatedBy,
		)
		account.Balance = domain.NewMoney(nativeAmount, nativeCurrency, reportingAmount)
		return account, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan accounts: %v", apperrors.ErrUnavailable, err)
	}

	return accounts, nil
}

// ListInvestments retrieves all investments for a user. Positions without a
// valuation come back with a nil CurrentValue.
func (r *PgxHoldingRepository) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := `
		SELECT investment_id, user_id, name, quantity,
		       cost_native_amount, cost_native_currency_code, cost_reporting_amount,
		       value_native_amount, value_native_currency_code, value_reporting_amount,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM investments
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query investments: %v", apperrors.ErrUnavailable, err)
	}
	defer rows.Close()

	investments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Investment, error) {
		var (
			investment     domain.Investment
			costAmount     float64
			costCurrency   string
			costReporting  float64
			valueAmount    *float64
			valueCurrency  *string
			valueReporting *float64
		)
		err := row.Scan(
			&investment.InvestmentID,
			&investment.UserID,
			&investment.Name,
			&investment.Quantity,
			&costAmount,
			&costCurrency,
			&costReporting,
			&valueAmount,
			&valueCurrency,
			&valueReporting,
			&investment.CreatedAt,
			&investment.CreatedBy,
			&investment.LastUpdatedAt,
			&investment.LastUpdatedBy,
		)
		investment.PurchaseCost = domain.NewMoney(costAmount, costCurrency, costReporting)
		if valueAmount != nil && valueCurrency != nil && valueReporting != nil {
			value := domain.NewMoney(*valueAmount, *valueCurrency, *valueReporting)
			investment.CurrentValue = &value
		}
		return investment, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan investments: %v", apperrors.ErrUnavailable, err)
	}

	return investments, nil
}

// ListDebts retrieves all debts for a user, including paid-off ones.
func (r *PgxHoldingRepository) ListDebts(ctx context.Context, userID string) ([]domain.Debt, error) {
	query := `
		SELECT debt_id, user_id, name, native_amount, native_currency_code, reporting_amount, is_paid,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM debts
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query debts: %v", apperrors.ErrUnavailable, err)
	}
	defer rows.Close()

	debts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Debt, error) {
		var (
			debt            domain.Debt
			nativeAmount    float64
			nativeCurrency  string
			reportingAmount float64
		)
		err := row.Scan(
			&debt.DebtID,
			&debt.UserID,
			&debt.Name,
			&nativeAmount,
			&nativeCurrency,
			&reportingAmount,
			&debt.IsPaid,
			&debt.CreatedAt,
			&debt.CreatedBy,
			&debt.LastUpdatedAt,
			&debt.LastUpdatedBy,
		)
		debt.CurrentBalance = domain.NewMoney(nativeAmount, nativeCurrency, reportingAmount)
		return debt, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan debts: %v", apperrors.ErrUnavailable, err)
	}

	return debts, nil
}
