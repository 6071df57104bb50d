package domain

import "github.com/shopspring/decimal"

// ClientStatus marks whether a client is currently billed.
type ClientStatus string

const (
	ClientActive   ClientStatus = "ACTIVE"
	ClientInactive ClientStatus = "INACTIVE"
)

// Client is a party the business invoices.
type Client struct {
	ClientID       string       `json:"clientID"` // Primary Key (UUID)
	Name           string       `json:"name"`
	ContactInfo    string       `json:"contactInfo"`
	LineOfBusiness string       `json:"lineOfBusiness"`
	Status         ClientStatus `json:"status"`
	AuditFields
}

// ClientStats aggregates invoice totals for a single client.
type ClientStats struct {
	TotalInvoiced    decimal.Decimal `json:"totalInvoiced"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	InvoiceCount     int             `json:"invoiceCount"`
}
