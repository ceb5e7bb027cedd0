package services

import (
	portsrepo "github.com/finly-app/finly_backend/internal/core/ports/repositories"
	portssvc "github.com/finly-app/finly_backend/internal/core/ports/services"
	"github.com/finly-app/finly_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency and rate services first since everything downstream needs them.
	currencyService := NewCurrencyService(repos.CurrencyRepo)
	container.Currency = currencyService

	rateService := NewRateService(repos.ExchangeRateRepo, currencyService, cfg.BaseCurrency)
	container.Rate = rateService

	container.Converter = NewConverterService(currencyService, rateService, cfg.BaseCurrency, cfg.DefaultDisplayCurrency)

	container.Record = NewRecordService(repos.TransactionRepo, repos.HoldingRepo, currencyService, rateService, cfg.BaseCurrency)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.TransactionRepo, currencyService, rateService, cfg.BaseCurrency)
	container.Dashboard = NewDashboardService(repos.TransactionRepo, repos.HoldingRepo, container.Budget, container.Converter, cfg.BaseCurrency)

	return container
}
