package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Partner          PartnerSvcFacade
	Account          AccountSvcFacade
	Category         CategorySvcFacade
	Client           ClientSvcFacade
	Expense          ExpenseSvcFacade
	Invoice          InvoiceSvcFacade
	Withdrawal       WithdrawalSvcFacade
	RecurringExpense RecurringExpenseSvcFacade
	ExchangeRate     ExchangeRateSvcFacade
	Reporting        ReportingSvc
}
