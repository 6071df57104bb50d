package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single outgoing payment row. Soft-deleted rows carry a
// deleted_at timestamp and are excluded from every query.
type Expense struct {
	ExpenseID            string          `db:"expense_id"`
	Date                 time.Time       `db:"date"`
	SupplierName         string          `db:"supplier_name"`
	Amount               decimal.Decimal `db:"amount"`
	Currency             string          `db:"currency"`
	ExchangeRateToILS    decimal.Decimal `db:"exchange_rate_to_ils"`
	AmountILS            decimal.Decimal `db:"amount_ils"`
	CategoryID           string          `db:"category_id"`
	AccountID            string          `db:"account_id"`
	BeneficiaryPartnerID string          `db:"beneficiary_partner_id"` // Nullable; NULL = business
	AppliedTaxPercent    decimal.Decimal `db:"applied_tax_percent"`
	ClientID             string          `db:"client_id"` // Nullable
	Notes                string          `db:"notes"`
	RecurringExpenseID   string          `db:"recurring_expense_id"` // Nullable
	DeletedAt            *time.Time      `db:"deleted_at"`
	AuditFields
}
