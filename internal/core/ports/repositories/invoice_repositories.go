package repositories

import (
	"context"
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
)

// InvoiceListFilter narrows an invoice listing. Year is mandatory (applied to
// the issue date); Status and ClientID are applied only when non-empty.
type InvoiceListFilter struct {
	Year     int
	Status   domain.InvoiceStatus
	ClientID string
}

// InvoiceReader defines read operations for invoice data. All reads exclude
// soft-deleted rows and include split rows.
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices matching the filter, newest issue first.
	ListInvoices(ctx context.Context, filter InvoiceListFilter) ([]domain.Invoice, error)

	// ListInvoicesForYear retrieves every non-deleted invoice issued in the
	// given fiscal year.
	ListInvoicesForYear(ctx context.Context, year int) ([]domain.Invoice, error)

	// ListInvoicesByClient retrieves every non-deleted invoice for a client.
	ListInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data. Saving and
// updating replace the invoice's split rows atomically with the invoice row.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice together with its splits.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice updates an existing invoice and replaces its splits.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error

	// SoftDeleteInvoice marks an invoice as deleted without removing the row.
	SoftDeleteInvoice(ctx context.Context, invoiceID string, userID string, now time.Time) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
