package dto

import (
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceSplitRequest is one partner's revenue share of an invoice.
type InvoiceSplitRequest struct {
	PartnerID string          `json:"partnerID" binding:"required"`
	Percent   decimal.Decimal `json:"percent" binding:"required"`
}

// CreateInvoiceRequest defines the data needed to record an invoice.
// Splits must name both partners and sum to exactly 100; the service rejects
// anything else.
type CreateInvoiceRequest struct {
	InvoiceNumber string                `json:"invoiceNumber" binding:"required"`
	ClientID      string                `json:"clientID" binding:"required"`
	Description   string                `json:"description"`
	Amount        decimal.Decimal       `json:"amount" binding:"required"`
	Currency      string                `json:"currency"` // Defaults to ILS
	IncludesVAT   bool                  `json:"includesVAT"`
	VATRate       *decimal.Decimal      `json:"vatRate"` // Defaults to the configured rate
	DateIssued    time.Time             `json:"dateIssued" binding:"required" time_format:"2006-01-02"`
	DueDate       time.Time             `json:"dueDate" binding:"required" time_format:"2006-01-02"`
	Splits        []InvoiceSplitRequest `json:"splits" binding:"required,len=2,dive"`
	Notes         string                `json:"notes"`
}

// UpdateInvoiceRequest defines the partial-update surface for an invoice.
// A Status change is validated against the forward-only workflow; moving to
// PAID without a DatePaid stamps today.
type UpdateInvoiceRequest struct {
	InvoiceNumber *string               `json:"invoiceNumber"`
	ClientID      *string               `json:"clientID"`
	Description   *string               `json:"description"`
	Amount        *decimal.Decimal      `json:"amount"`
	IncludesVAT   *bool                 `json:"includesVAT"`
	VATRate       *decimal.Decimal      `json:"vatRate"`
	DateIssued    *time.Time            `json:"dateIssued" time_format:"2006-01-02"`
	DueDate       *time.Time            `json:"dueDate" time_format:"2006-01-02"`
	DatePaid      *time.Time            `json:"datePaid" time_format:"2006-01-02"`
	Status        *domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=DRAFT SENT PAID"`
	Splits        []InvoiceSplitRequest `json:"splits" binding:"omitempty,len=2,dive"`
	Notes         *string               `json:"notes"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Year     int    `form:"year"`
	Status   string `form:"status"`
	ClientID string `form:"clientID"`
}

// InvoiceSplitResponse is one partner's share in a response.
type InvoiceSplitResponse struct {
	PartnerID string          `json:"partnerID"`
	Percent   decimal.Decimal `json:"percent"`
}

// InvoiceResponse defines the data returned for an invoice. Status is the
// read-time effective status: a sent invoice past its due date reports
// OVERDUE even though OVERDUE is never stored.
type InvoiceResponse struct {
	InvoiceID     string                 `json:"invoiceID"`
	InvoiceNumber string                 `json:"invoiceNumber"`
	ClientID      string                 `json:"clientID"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Currency      string                 `json:"currency"`
	AmountILS     decimal.Decimal        `json:"amountILS"`
	IncludesVAT   bool                   `json:"includesVAT"`
	VATRate       decimal.Decimal        `json:"vatRate"`
	DateIssued    time.Time              `json:"dateIssued"`
	DueDate       time.Time              `json:"dueDate"`
	DatePaid      *time.Time             `json:"datePaid,omitempty"`
	Status        domain.InvoiceStatus   `json:"status"`
	Splits        []InvoiceSplitResponse `json:"splits"`
	Notes         string                 `json:"notes"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse, deriving
// the effective status as of now.
func ToInvoiceResponse(inv *domain.Invoice, now time.Time) InvoiceResponse {
	splits := make([]InvoiceSplitResponse, len(inv.Splits))
	for i, s := range inv.Splits {
		splits[i] = InvoiceSplitResponse{PartnerID: s.PartnerID, Percent: s.Percent}
	}
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		Description:   inv.Description,
		Amount:        inv.Amount,
		Currency:      inv.Currency,
		AmountILS:     inv.AmountILS,
		IncludesVAT:   inv.IncludesVAT,
		VATRate:       inv.VATRate,
		DateIssued:    inv.DateIssued,
		DueDate:       inv.DueDate,
		DatePaid:      inv.DatePaid,
		Status:        inv.EffectiveStatus(now),
		Splits:        splits,
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to responses.
func ToListInvoiceResponse(invoices []domain.Invoice, now time.Time) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv, now)
	}
	return res
}
