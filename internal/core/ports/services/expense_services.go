package services

import (
	"context"

	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data.
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a specific expense by its identifier.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses matching the filter, newest first.
	ListExpenses(ctx context.Context, filter portsrepo.ExpenseListFilter) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data.
type ExpenseWriterSvc interface {
	// CreateExpense records a new expense, deriving the ILS amount from the
	// stored exchange rate for the expense's currency.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorID string) (*domain.Expense, error)

	// UpdateExpense applies a partial update. Amount changes re-derive the
	// ILS amount with the rate stored on the record.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterID string) (*domain.Expense, error)

	// DeleteExpense soft-deletes an expense.
	DeleteExpense(ctx context.Context, expenseID string, updaterID string) error
}

// ExpenseSvcFacade combines all expense-related service interfaces.
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
