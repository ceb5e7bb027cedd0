package repositories

// RepositoryProvider holds instances of all repositories, wired once at
// startup and handed to the service container.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyRepository
	ExchangeRateRepo ExchangeRateRepository
	TransactionRepo  TransactionRepository
	HoldingRepo      HoldingRepository
	BudgetRepo       BudgetRepository
}
