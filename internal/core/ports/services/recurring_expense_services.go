package services

import (
	"context"
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/dto"
)

// RecurringExpenseReaderSvc defines read operations for recurring templates.
type RecurringExpenseReaderSvc interface {
	// GetRecurringExpenseByID retrieves a template by its identifier.
	GetRecurringExpenseByID(ctx context.Context, recurringExpenseID string) (*domain.RecurringExpense, error)

	// ListRecurringExpenses retrieves all active templates.
	ListRecurringExpenses(ctx context.Context) ([]domain.RecurringExpense, error)
}

// RecurringExpenseWriterSvc defines write operations for recurring templates.
type RecurringExpenseWriterSvc interface {
	// CreateRecurringExpense persists a new template.
	CreateRecurringExpense(ctx context.Context, req dto.CreateRecurringExpenseRequest, creatorID string) (*domain.RecurringExpense, error)

	// UpdateRecurringExpense applies a partial update to a template.
	UpdateRecurringExpense(ctx context.Context, recurringExpenseID string, req dto.UpdateRecurringExpenseRequest, updaterID string) (*domain.RecurringExpense, error)

	// DeleteRecurringExpense soft-deletes a template.
	DeleteRecurringExpense(ctx context.Context, recurringExpenseID string, updaterID string) error
}

// RecurringExpenseMaterializerSvc turns due templates into concrete expenses.
type RecurringExpenseMaterializerSvc interface {
	// MaterializeDue generates expenses for every active template with
	// occurrences due on or before now. A month already materialized for a
	// template is skipped, so repeated runs are safe. Returns the number of
	// expenses created.
	MaterializeDue(ctx context.Context, now time.Time) (int, error)
}

// RecurringExpenseSvcFacade combines the recurring-template interfaces.
type RecurringExpenseSvcFacade interface {
	RecurringExpenseReaderSvc
	RecurringExpenseWriterSvc
	RecurringExpenseMaterializerSvc
}
