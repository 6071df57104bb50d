package repositories

import (
	"context"
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
)

// RecurringExpenseReader defines read operations for recurring templates.
type RecurringExpenseReader interface {
	// FindRecurringExpenseByID retrieves a template by its identifier.
	FindRecurringExpenseByID(ctx context.Context, recurringExpenseID string) (*domain.RecurringExpense, error)

	// ListActiveRecurringExpenses retrieves every active, non-deleted
	// template ordered by supplier name.
	ListActiveRecurringExpenses(ctx context.Context) ([]domain.RecurringExpense, error)
}

// RecurringExpenseWriter defines write operations for recurring templates.
type RecurringExpenseWriter interface {
	// SaveRecurringExpense persists a new template.
	SaveRecurringExpense(ctx context.Context, template domain.RecurringExpense) error

	// UpdateRecurringExpense updates an existing template.
	UpdateRecurringExpense(ctx context.Context, template domain.RecurringExpense) error

	// MarkGenerated advances a template's last generated date after a
	// successful materialization.
	MarkGenerated(ctx context.Context, recurringExpenseID string, generatedDate time.Time, now time.Time) error

	// SoftDeleteRecurringExpense marks a template as deleted.
	SoftDeleteRecurringExpense(ctx context.Context, recurringExpenseID string, userID string, now time.Time) error
}

// RecurringExpenseRepositoryFacade combines the recurring-template interfaces.
type RecurringExpenseRepositoryFacade interface {
	RecurringExpenseReader
	RecurringExpenseWriter
}
