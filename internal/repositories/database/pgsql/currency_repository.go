package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finly-app/finly_backend/internal/apperrors"
	"github.com/finly-app/finly_backend/internal/core/domain"
	portsrepo "github.com/finly-app/finly_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCurrencyRepository implements the CurrencyRepository port using pgxpool.
type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency metadata.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepository = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a currency. Returns apperrors.ErrDuplicate when the
// code already exists; metadata is immutable once referenced so there is no
// update-on-conflict path.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	query := `
		INSERT INTO currencies (currency_code, name, symbol, decimal_digits, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		currency.CurrencyCode,
		currency.Name,
		currency.Symbol,
		currency.DecimalDigits,
		currency.IsActive,
		currency.CreatedAt,
		currency.CreatedBy,
		currency.LastUpdatedAt,
		currency.LastUpdatedBy,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, currency.CurrencyCode)
		}
		return fmt.Errorf("%w: failed to save currency %s: %v", apperrors.ErrUnavailable, currency.CurrencyCode, err)
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, name, symbol, decimal_digits, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE currency_code = $1;
	`
	var curr domain.Currency
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&curr.CurrencyCode,
		&curr.Name,
		&curr.Symbol,
		&curr.DecimalDigits,
		&curr.IsActive,
		&curr.CreatedAt,
		&curr.CreatedBy,
		&curr.LastUpdatedAt,
		&curr.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find currency by code %s: %v", apperrors.ErrUnavailable, currencyCode, err)
	}

	return &curr, nil
}

// ListCurrencies retrieves currencies, optionally only active ones.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, name, symbol, decimal_digits, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
	`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY currency_code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query currencies: %v", apperrors.ErrUnavailable, err)
	}
	defer rows.Close()

	currencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Currency, error) {
		var curr domain.Currency
		err := row.Scan(
			&curr.CurrencyCode,
			&curr.Name,
			&curr.Symbol,
			&curr.DecimalDigits,
			&curr.IsActive,
			&curr.CreatedAt,
			&curr.CreatedBy,
			&curr.LastUpdatedAt,
			&curr.LastUpdatedBy,
		)
		return curr, err
	})

	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan currencies: %v", apperrors.ErrUnavailable, err)
	}

	return currencies, nil
}
