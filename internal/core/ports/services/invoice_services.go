package services

import (
	"context"

	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data.
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice by its identifier.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves invoices matching the filter, newest issue
	// first.
	ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines write operations for invoice data.
type InvoiceWriterSvc interface {
	// CreateInvoice records a new invoice in DRAFT with its splits.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorID string) (*domain.Invoice, error)

	// UpdateInvoice applies a partial update. Status changes must move the
	// workflow forward; moving to PAID stamps the paid date when absent.
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterID string) (*domain.Invoice, error)

	// DeleteInvoice soft-deletes an invoice.
	DeleteInvoice(ctx context.Context, invoiceID string, updaterID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
