package pgsql

import (
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	partnerRepo := newPgxPartnerRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	withdrawalRepo := newPgxWithdrawalRepository(dbPool)
	recurringExpenseRepo := newPgxRecurringExpenseRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)

	return portsrepo.RepositoryProvider{
		PartnerRepo:          partnerRepo,
		AccountRepo:          accountRepo,
		CategoryRepo:         categoryRepo,
		ClientRepo:           clientRepo,
		ExpenseRepo:          expenseRepo,
		InvoiceRepo:          invoiceRepo,
		WithdrawalRepo:       withdrawalRepo,
		RecurringExpenseRepo: recurringExpenseRepo,
		ExchangeRateRepo:     exchangeRateRepo,
	}
}
