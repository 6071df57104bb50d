package services

import (
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	portssvc "github.com/automationsflow/afbooks/internal/core/ports/services"
	"github.com/automationsflow/afbooks/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Partner = NewPartnerService(repos.PartnerRepo)
	container.Account = NewAccountService(repos.AccountRepo, repos.PartnerRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Client = NewClientService(repos.ClientRepo, repos.InvoiceRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.CategoryRepo, repos.AccountRepo, repos.ExchangeRateRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.ClientRepo, repos.PartnerRepo, repos.ExchangeRateRepo, cfg.DefaultVATRate)
	container.Withdrawal = NewWithdrawalService(repos.WithdrawalRepo, repos.PartnerRepo)
	container.RecurringExpense = NewRecurringExpenseService(repos.RecurringExpenseRepo, repos.ExpenseRepo, repos.CategoryRepo, repos.AccountRepo, repos.ExchangeRateRepo)
	container.Reporting = NewReportingService(repos)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.PartnerSvcFacade          = (*partnerService)(nil)
	_ portssvc.AccountSvcFacade          = (*accountService)(nil)
	_ portssvc.CategorySvcFacade         = (*categoryService)(nil)
	_ portssvc.ClientSvcFacade           = (*clientService)(nil)
	_ portssvc.ExpenseSvcFacade          = (*ExpenseService)(nil)
	_ portssvc.InvoiceSvcFacade          = (*InvoiceService)(nil)
	_ portssvc.WithdrawalSvcFacade       = (*withdrawalService)(nil)
	_ portssvc.RecurringExpenseSvcFacade = (*RecurringExpenseService)(nil)
	_ portssvc.ExchangeRateSvcFacade     = (*ExchangeRateService)(nil)
)
