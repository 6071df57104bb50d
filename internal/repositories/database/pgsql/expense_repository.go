package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
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

const expenseColumns = `expense_id, date, supplier_name, amount, currency, exchange_rate_to_ils, amount_ils,
		category_id, account_id, COALESCE(beneficiary_partner_id, ''), applied_tax_percent,
		COALESCE(client_id, ''), notes, COALESCE(recurring_expense_id, ''), deleted_at,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.CollectableRow) (models.Expense, error) {
	var e models.Expense
	err := row.Scan(
		&e.ExpenseID,
		&e.Date,
		&e.SupplierName,
		&e.Amount,
		&e.Currency,
		&e.ExchangeRateToILS,
		&e.AmountILS,
		&e.CategoryID,
		&e.AccountID,
		&e.BeneficiaryPartnerID,
		&e.AppliedTaxPercent,
		&e.ClientID,
		&e.Notes,
		&e.RecurringExpenseID,
		&e.DeletedAt,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

// SaveExpense inserts a new expense row.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	modelExp := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (expense_id, date, supplier_name, amount, currency, exchange_rate_to_ils, amount_ils,
			category_id, account_id, beneficiary_partner_id, applied_tax_percent, client_id, notes, recurring_expense_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, NULLIF($12, ''), $13, NULLIF($14, ''), $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelExp.ExpenseID,
		modelExp.Date,
		modelExp.SupplierName,
		modelExp.Amount,
		modelExp.Currency,
		modelExp.ExchangeRateToILS,
		modelExp.AmountILS,
		modelExp.CategoryID,
		modelExp.AccountID,
		modelExp.BeneficiaryPartnerID,
		modelExp.AppliedTaxPercent,
		modelExp.ClientID,
		modelExp.Notes,
		modelExp.RecurringExpenseID,
		modelExp.CreatedAt,
		modelExp.CreatedBy,
		modelExp.LastUpdatedAt,
		modelExp.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, modelExp.ExpenseID)
		}
		return fmt.Errorf("failed to save expense %s: %w", modelExp.ExpenseID, err)
	}
	return nil
}

// UpdateExpense updates an existing expense row.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	modelExp := mapping.ToModelExpense(expense)

	query := `
		UPDATE expenses
		SET date = $2, supplier_name = $3, amount = $4, currency = $5, exchange_rate_to_ils = $6, amount_ils = $7,
			category_id = $8, account_id = $9, beneficiary_partner_id = NULLIF($10, ''), applied_tax_percent = $11,
			client_id = NULLIF($12, ''), notes = $13, last_updated_at = $14, last_updated_by = $15
		WHERE expense_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelExp.ExpenseID,
		modelExp.Date,
		modelExp.SupplierName,
		modelExp.Amount,
		modelExp.Currency,
		modelExp.ExchangeRateToILS,
		modelExp.AmountILS,
		modelExp.CategoryID,
		modelExp.AccountID,
		modelExp.BeneficiaryPartnerID,
		modelExp.AppliedTaxPercent,
		modelExp.ClientID,
		modelExp.Notes,
		modelExp.LastUpdatedAt,
		modelExp.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", modelExp.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SoftDeleteExpense marks an expense as deleted without removing the row.
func (r *PgxExpenseRepository) SoftDeleteExpense(ctx context.Context, expenseID string, userID string, now time.Time) error {
	query := `
		UPDATE expenses
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE expense_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, expenseID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to soft delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindExpenseByID retrieves a non-deleted expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE expense_id = $1 AND deleted_at IS NULL;
	`
	rows, err := r.Pool.Query(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense %s: %w", expenseID, err)
	}
	defer rows.Close()

	modelExp, err := pgx.CollectOneRow(rows, scanExpense)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	domainExp := mapping.ToDomainExpense(modelExp)
	return &domainExp, nil
}

// ListExpenses retrieves expenses matching the filter, newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter portsrepo.ExpenseListFilter) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE deleted_at IS NULL AND EXTRACT(YEAR FROM date) = $1`
	args := []any{filter.Year}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		query += " AND (supplier_name ILIKE $" + n + " OR notes ILIKE $" + n + ")"
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += " AND category_id = $" + strconv.Itoa(len(args))
	}
	if filter.BeneficiaryPartnerID != "" {
		args = append(args, filter.BeneficiaryPartnerID)
		query += " AND beneficiary_partner_id = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY date DESC, created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, scanExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to collect expense rows: %w", err)
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

// ListExpensesForYear retrieves every non-deleted expense dated in the year.
func (r *PgxExpenseRepository) ListExpensesForYear(ctx context.Context, year int) ([]domain.Expense, error) {
	return r.ListExpenses(ctx, portsrepo.ExpenseListFilter{Year: year})
}

// ExistsMaterializedExpense reports whether a recurring template already
// produced an expense dated in the given month.
func (r *PgxExpenseRepository) ExistsMaterializedExpense(ctx context.Context, recurringExpenseID string, year int, month time.Month) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM expenses
			WHERE recurring_expense_id = $1
				AND EXTRACT(YEAR FROM date) = $2
				AND EXTRACT(MONTH FROM date) = $3
				AND deleted_at IS NULL
		);
	`
	var exists bool
	err := r.Pool.QueryRow(ctx, query, recurringExpenseID, year, int(month)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check materialized expense for template %s: %w", recurringExpenseID, err)
	}
	return exists, nil
}
