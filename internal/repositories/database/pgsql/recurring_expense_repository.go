package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/models"
	"github.com/automationsflow/afbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recurringExpenseColumns = `recurring_expense_id, supplier_name, amount, currency, category_id, account_id,
		COALESCE(beneficiary_partner_id, ''), applied_tax_percent, notes, recurrence_day, start_date, end_date,
		is_active, last_generated_date, deleted_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxRecurringExpenseRepository struct {
	BaseRepository
}

// newPgxRecurringExpenseRepository creates a new repository for recurring
// expense templates.
func newPgxRecurringExpenseRepository(pool *pgxpool.Pool) portsrepo.RecurringExpenseRepositoryFacade {
	return &PgxRecurringExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RecurringExpenseRepositoryFacade = (*PgxRecurringExpenseRepository)(nil)

func scanRecurringExpense(row pgx.CollectableRow) (models.RecurringExpense, error) {
	var t models.RecurringExpense
	err := row.Scan(
		&t.RecurringExpenseID,
		&t.SupplierName,
		&t.Amount,
		&t.Currency,
		&t.CategoryID,
		&t.AccountID,
		&t.BeneficiaryPartnerID,
		&t.AppliedTaxPercent,
		&t.Notes,
		&t.RecurrenceDay,
		&t.StartDate,
		&t.EndDate,
		&t.IsActive,
		&t.LastGeneratedDate,
		&t.DeletedAt,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	return t, err
}

// SaveRecurringExpense inserts a new template row.
func (r *PgxRecurringExpenseRepository) SaveRecurringExpense(ctx context.Context, template domain.RecurringExpense) error {
	modelT := mapping.ToModelRecurringExpense(template)

	query := `
		INSERT INTO recurring_expenses (recurring_expense_id, supplier_name, amount, currency, category_id, account_id,
			beneficiary_partner_id, applied_tax_percent, notes, recurrence_day, start_date, end_date, is_active,
			last_generated_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelT.RecurringExpenseID,
		modelT.SupplierName,
		modelT.Amount,
		modelT.Currency,
		modelT.CategoryID,
		modelT.AccountID,
		modelT.BeneficiaryPartnerID,
		modelT.AppliedTaxPercent,
		modelT.Notes,
		modelT.RecurrenceDay,
		modelT.StartDate,
		modelT.EndDate,
		modelT.IsActive,
		modelT.LastGeneratedDate,
		modelT.CreatedAt,
		modelT.CreatedBy,
		modelT.LastUpdatedAt,
		modelT.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: recurring expense with ID %s already exists", apperrors.ErrDuplicate, modelT.RecurringExpenseID)
		}
		return fmt.Errorf("failed to save recurring expense %s: %w", modelT.RecurringExpenseID, err)
	}
	return nil
}

// UpdateRecurringExpense updates an existing template row.
func (r *PgxRecurringExpenseRepository) UpdateRecurringExpense(ctx context.Context, template domain.RecurringExpense) error {
	modelT := mapping.ToModelRecurringExpense(template)

	query := `
		UPDATE recurring_expenses
		SET supplier_name = $2, amount = $3, currency = $4, category_id = $5, account_id = $6,
			beneficiary_partner_id = NULLIF($7, ''), applied_tax_percent = $8, notes = $9, recurrence_day = $10,
			start_date = $11, end_date = $12, is_active = $13, last_updated_at = $14, last_updated_by = $15
		WHERE recurring_expense_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelT.RecurringExpenseID,
		modelT.SupplierName,
		modelT.Amount,
		modelT.Currency,
		modelT.CategoryID,
		modelT.AccountID,
		modelT.BeneficiaryPartnerID,
		modelT.AppliedTaxPercent,
		modelT.Notes,
		modelT.RecurrenceDay,
		modelT.StartDate,
		modelT.EndDate,
		modelT.IsActive,
		modelT.LastUpdatedAt,
		modelT.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update recurring expense %s: %w", modelT.RecurringExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkGenerated advances a template's last generated date.
func (r *PgxRecurringExpenseRepository) MarkGenerated(ctx context.Context, recurringExpenseID string, generatedDate time.Time, now time.Time) error {
	query := `
		UPDATE recurring_expenses
		SET last_generated_date = $2, last_updated_at = $3
		WHERE recurring_expense_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, recurringExpenseID, generatedDate, now)
	if err != nil {
		return fmt.Errorf("failed to mark recurring expense %s generated: %w", recurringExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SoftDeleteRecurringExpense marks a template as deleted.
func (r *PgxRecurringExpenseRepository) SoftDeleteRecurringExpense(ctx context.Context, recurringExpenseID string, userID string, now time.Time) error {
	query := `
		UPDATE recurring_expenses
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE recurring_expense_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, recurringExpenseID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to soft delete recurring expense %s: %w", recurringExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindRecurringExpenseByID retrieves a non-deleted template by its ID.
func (r *PgxRecurringExpenseRepository) FindRecurringExpenseByID(ctx context.Context, recurringExpenseID string) (*domain.RecurringExpense, error) {
	query := `
		SELECT ` + recurringExpenseColumns + `
		FROM recurring_expenses
		WHERE recurring_expense_id = $1 AND deleted_at IS NULL;
	`
	rows, err := r.Pool.Query(ctx, query, recurringExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring expense %s: %w", recurringExpenseID, err)
	}
	defer rows.Close()

	modelT, err := pgx.CollectOneRow(rows, scanRecurringExpense)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring expense by ID %s: %w", recurringExpenseID, err)
	}

	domainT := mapping.ToDomainRecurringExpense(modelT)
	return &domainT, nil
}

// ListActiveRecurringExpenses retrieves every active, non-deleted template
// ordered by supplier name.
func (r *PgxRecurringExpenseRepository) ListActiveRecurringExpenses(ctx context.Context) ([]domain.RecurringExpense, error) {
	query := `
		SELECT ` + recurringExpenseColumns + `
		FROM recurring_expenses
		WHERE deleted_at IS NULL AND is_active
		ORDER BY supplier_name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring expenses: %w", err)
	}
	defer rows.Close()

	modelTemplates, err := pgx.CollectRows(rows, scanRecurringExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to collect recurring expense rows: %w", err)
	}

	return mapping.ToDomainRecurringExpenseSlice(modelTemplates), nil
}
