package pgsql

import (
	portsrepo "github.com/finly-app/finly_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	holdingRepo := newPgxHoldingRepository(dbPool)
	budgetRepo := newPgxBudgetRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo:     currencyRepo,
		ExchangeRateRepo: exchangeRateRepo,
		TransactionRepo:  transactionRepo,
		HoldingRepo:      holdingRepo,
		BudgetRepo:       budgetRepo,
	}
}
