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

const invoiceColumns = `invoice_id, invoice_number, client_id, description, amount, currency, amount_ils,
		includes_vat, vat_rate, date_issued, due_date, date_paid, status, notes, deleted_at,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

func scanInvoice(row pgx.CollectableRow) (models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.InvoiceNumber,
		&inv.ClientID,
		&inv.Description,
		&inv.Amount,
		&inv.Currency,
		&inv.AmountILS,
		&inv.IncludesVAT,
		&inv.VATRate,
		&inv.DateIssued,
		&inv.DueDate,
		&inv.DatePaid,
		&inv.Status,
		&inv.Notes,
		&inv.DeletedAt,
		&inv.CreatedAt,
		&inv.CreatedBy,
		&inv.LastUpdatedAt,
		&inv.LastUpdatedBy,
	)
	return inv, err
}

// SaveInvoice inserts a new invoice row together with its split rows.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	modelInv := mapping.ToModelInvoice(invoice)
	modelSplits := mapping.ToModelInvoiceSplits(invoice)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO invoices (invoice_id, invoice_number, client_id, description, amount, currency, amount_ils,
			includes_vat, vat_rate, date_issued, due_date, date_paid, status, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, query,
		modelInv.InvoiceID,
		modelInv.InvoiceNumber,
		modelInv.ClientID,
		modelInv.Description,
		modelInv.Amount,
		modelInv.Currency,
		modelInv.AmountILS,
		modelInv.IncludesVAT,
		modelInv.VATRate,
		modelInv.DateIssued,
		modelInv.DueDate,
		modelInv.DatePaid,
		modelInv.Status,
		modelInv.Notes,
		modelInv.CreatedAt,
		modelInv.CreatedBy,
		modelInv.LastUpdatedAt,
		modelInv.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, modelInv.InvoiceNumber)
		}
		return fmt.Errorf("failed to save invoice %s: %w", modelInv.InvoiceID, err)
	}

	if err := insertSplits(ctx, tx, modelSplits); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateInvoice updates an invoice row and replaces its split rows in the
// same transaction.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	modelInv := mapping.ToModelInvoice(invoice)
	modelSplits := mapping.ToModelInvoiceSplits(invoice)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE invoices
		SET invoice_number = $2, client_id = $3, description = $4, amount = $5, currency = $6, amount_ils = $7,
			includes_vat = $8, vat_rate = $9, date_issued = $10, due_date = $11, date_paid = $12, status = $13,
			notes = $14, last_updated_at = $15, last_updated_by = $16
		WHERE invoice_id = $1 AND deleted_at IS NULL;
	`
	tag, err := tx.Exec(ctx, query,
		modelInv.InvoiceID,
		modelInv.InvoiceNumber,
		modelInv.ClientID,
		modelInv.Description,
		modelInv.Amount,
		modelInv.Currency,
		modelInv.AmountILS,
		modelInv.IncludesVAT,
		modelInv.VATRate,
		modelInv.DateIssued,
		modelInv.DueDate,
		modelInv.DatePaid,
		modelInv.Status,
		modelInv.Notes,
		modelInv.LastUpdatedAt,
		modelInv.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: invoice number %s already exists", apperrors.ErrDuplicate, modelInv.InvoiceNumber)
		}
		return fmt.Errorf("failed to update invoice %s: %w", modelInv.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_splits WHERE invoice_id = $1;`, modelInv.InvoiceID); err != nil {
		return fmt.Errorf("failed to clear splits for invoice %s: %w", modelInv.InvoiceID, err)
	}
	if err := insertSplits(ctx, tx, modelSplits); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

func insertSplits(ctx context.Context, tx pgx.Tx, splits []models.InvoiceSplit) error {
	query := `
		INSERT INTO invoice_splits (invoice_id, partner_id, percent)
		VALUES ($1, $2, $3);
	`
	for _, s := range splits {
		if _, err := tx.Exec(ctx, query, s.InvoiceID, s.PartnerID, s.Percent); err != nil {
			return fmt.Errorf("failed to save split for invoice %s partner %s: %w", s.InvoiceID, s.PartnerID, err)
		}
	}
	return nil
}

// SoftDeleteInvoice marks an invoice as deleted without removing the row.
func (r *PgxInvoiceRepository) SoftDeleteInvoice(ctx context.Context, invoiceID string, userID string, now time.Time) error {
	query := `
		UPDATE invoices
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE invoice_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to soft delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindInvoiceByID retrieves a non-deleted invoice with its splits.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_id = $1 AND deleted_at IS NULL;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	modelInv, err := pgx.CollectOneRow(rows, scanInvoice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice by ID %s: %w", invoiceID, err)
	}

	splitsByInvoice, err := r.loadSplits(ctx, []string{modelInv.InvoiceID})
	if err != nil {
		return nil, err
	}

	domainInv := mapping.ToDomainInvoice(modelInv, splitsByInvoice[modelInv.InvoiceID])
	return &domainInv, nil
}

// ListInvoices retrieves invoices matching the filter, newest issue first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE deleted_at IS NULL AND EXTRACT(YEAR FROM date_issued) = $1`
	args := []any{filter.Year}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += " AND status = $" + strconv.Itoa(len(args))
	}
	if filter.ClientID != "" {
		args = append(args, filter.ClientID)
		query += " AND client_id = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY date_issued DESC, created_at DESC;"

	return r.queryInvoices(ctx, query, args...)
}

// ListInvoicesForYear retrieves every non-deleted invoice issued in the year.
func (r *PgxInvoiceRepository) ListInvoicesForYear(ctx context.Context, year int) ([]domain.Invoice, error) {
	return r.ListInvoices(ctx, portsrepo.InvoiceListFilter{Year: year})
}

// ListInvoicesByClient retrieves every non-deleted invoice for a client.
func (r *PgxInvoiceRepository) ListInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE deleted_at IS NULL AND client_id = $1
		ORDER BY date_issued DESC, created_at DESC;
	`
	return r.queryInvoices(ctx, query, clientID)
}

func (r *PgxInvoiceRepository) queryInvoices(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	modelInvoices, err := pgx.CollectRows(rows, scanInvoice)
	if err != nil {
		return nil, fmt.Errorf("failed to collect invoice rows: %w", err)
	}

	ids := make([]string, len(modelInvoices))
	for i, inv := range modelInvoices {
		ids[i] = inv.InvoiceID
	}
	splitsByInvoice, err := r.loadSplits(ctx, ids)
	if err != nil {
		return nil, err
	}

	domainInvoices := make([]domain.Invoice, len(modelInvoices))
	for i, inv := range modelInvoices {
		domainInvoices[i] = mapping.ToDomainInvoice(inv, splitsByInvoice[inv.InvoiceID])
	}
	return domainInvoices, nil
}

// loadSplits fetches the split rows for a set of invoices in one query.
func (r *PgxInvoiceRepository) loadSplits(ctx context.Context, invoiceIDs []string) (map[string][]models.InvoiceSplit, error) {
	if len(invoiceIDs) == 0 {
		return map[string][]models.InvoiceSplit{}, nil
	}

	query := `
		SELECT invoice_id, partner_id, percent
		FROM invoice_splits
		WHERE invoice_id = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice splits: %w", err)
	}
	defer rows.Close()

	splits, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvoiceSplit, error) {
		var s models.InvoiceSplit
		err := row.Scan(&s.InvoiceID, &s.PartnerID, &s.Percent)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect invoice split rows: %w", err)
	}

	byInvoice := make(map[string][]models.InvoiceSplit, len(invoiceIDs))
	for _, s := range splits {
		byInvoice[s.InvoiceID] = append(byInvoice[s.InvoiceID], s)
	}
	return byInvoice, nil
}
