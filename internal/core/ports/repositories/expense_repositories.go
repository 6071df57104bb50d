package repositories

import (
	"context"
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
)

// ExpenseListFilter narrows an expense listing. Year is mandatory; the other
// fields are applied only when non-empty.
type ExpenseListFilter struct {
	Year                 int
	Search               string // Matches supplier name or notes, case-insensitive
	CategoryID           string
	BeneficiaryPartnerID string
}

// ExpenseReader defines read operations for expense data. All reads exclude
// soft-deleted rows.
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses matching the filter, newest first.
	ListExpenses(ctx context.Context, filter ExpenseListFilter) ([]domain.Expense, error)

	// ListExpensesForYear retrieves every non-deleted expense dated in the
	// given fiscal year.
	ListExpensesForYear(ctx context.Context, year int) ([]domain.Expense, error)

	// ExistsMaterializedExpense reports whether a recurring template already
	// produced an expense dated in the given month.
	ExistsMaterializedExpense(ctx context.Context, recurringExpenseID string, year int, month time.Month) (bool, error)
}

// ExpenseWriter defines write operations for expense data.
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense updates an existing expense's details.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// SoftDeleteExpense marks an expense as deleted without removing the row.
	SoftDeleteExpense(ctx context.Context, expenseID string, userID string, now time.Time) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
