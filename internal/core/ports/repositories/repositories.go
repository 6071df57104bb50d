package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	PartnerRepo          PartnerRepositoryFacade
	AccountRepo          AccountRepositoryFacade
	CategoryRepo         CategoryRepositoryFacade
	ClientRepo           ClientRepositoryFacade
	ExpenseRepo          ExpenseRepositoryFacade
	InvoiceRepo          InvoiceRepositoryFacade
	WithdrawalRepo       WithdrawalRepositoryFacade
	RecurringExpenseRepo RecurringExpenseRepositoryFacade
	ExchangeRateRepo     ExchangeRateRepositoryFacade
}
