package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a billed amount row. Split percentages live in invoice_splits.
type Invoice struct {
	InvoiceID     string          `db:"invoice_id"`
	InvoiceNumber string          `db:"invoice_number"`
	ClientID      string          `db:"client_id"`
	Description   string          `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	AmountILS     decimal.Decimal `db:"amount_ils"`
	IncludesVAT   bool            `db:"includes_vat"`
	VATRate       decimal.Decimal `db:"vat_rate"`
	DateIssued    time.Time       `db:"date_issued"`
	DueDate       time.Time       `db:"due_date"`
	DatePaid      *time.Time      `db:"date_paid"`
	Status        string          `db:"status"`
	Notes         string          `db:"notes"`
	DeletedAt     *time.Time      `db:"deleted_at"`
	AuditFields
}

// InvoiceSplit attributes a revenue percentage of one invoice to one partner.
type InvoiceSplit struct {
	InvoiceID string          `db:"invoice_id"`
	PartnerID string          `db:"partner_id"`
	Percent   decimal.Decimal `db:"percent"`
}
