package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the workflow state of an invoice. The workflow moves
// forward only: DRAFT -> SENT -> OVERDUE -> PAID, where OVERDUE is derived at
// read time from DueDate and PAID is terminal.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "DRAFT"
	InvoiceSent    InvoiceStatus = "SENT"
	InvoiceOverdue InvoiceStatus = "OVERDUE"
	InvoicePaid    InvoiceStatus = "PAID"
)

// InvoiceSplit attributes a percentage of an invoice's net revenue to one
// partner. The percents of an invoice's splits always sum to 100.
type InvoiceSplit struct {
	PartnerID string          `json:"partnerID"`
	Percent   decimal.Decimal `json:"percent"`
}

// Invoice is an amount billed to a client. AmountILS mirrors the expense
// convention: fixed at recording time from the stored exchange rate.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"` // Primary Key (UUID)
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientID      string          `json:"clientID"` // FK -> clients
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	AmountILS     decimal.Decimal `json:"amountILS"`
	IncludesVAT   bool            `json:"includesVAT"`
	VATRate       decimal.Decimal `json:"vatRate"` // Fraction, e.g. 0.18
	DateIssued    time.Time       `json:"dateIssued"`
	DueDate       time.Time       `json:"dueDate"`
	DatePaid      *time.Time      `json:"datePaid,omitempty"`
	Status        InvoiceStatus   `json:"status"`
	Splits        []InvoiceSplit  `json:"splits"`
	Notes         string          `json:"notes"`
	DeletedAt     *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}

// NetAmountILS returns the VAT-exclusive ILS amount used for revenue
// attribution. Invoices recorded VAT-inclusive are divided by (1 + VATRate).
func (i Invoice) NetAmountILS() decimal.Decimal {
	if !i.IncludesVAT {
		return i.AmountILS
	}
	divisor := decimal.NewFromInt(1).Add(i.VATRate)
	if divisor.IsZero() {
		return i.AmountILS
	}
	return i.AmountILS.Div(divisor)
}

// EffectiveStatus derives the read-time status: a SENT invoice whose due date
// has passed reports OVERDUE. Stored status is never rewritten by the passage
// of time.
func (i Invoice) EffectiveStatus(today time.Time) InvoiceStatus {
	if i.Status == InvoiceSent && i.DueDate.Before(today) {
		return InvoiceOverdue
	}
	return i.Status
}

// IsOpen reports whether the invoice is awaiting payment (sent or overdue).
func (i Invoice) IsOpen(today time.Time) bool {
	s := i.EffectiveStatus(today)
	return s == InvoiceSent || s == InvoiceOverdue
}
