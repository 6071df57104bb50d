package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringExpense is a materialization template row.
type RecurringExpense struct {
	RecurringExpenseID   string          `db:"recurring_expense_id"`
	SupplierName         string          `db:"supplier_name"`
	Amount               decimal.Decimal `db:"amount"`
	Currency             string          `db:"currency"`
	CategoryID           string          `db:"category_id"`
	AccountID            string          `db:"account_id"`
	BeneficiaryPartnerID string          `db:"beneficiary_partner_id"` // Nullable
	AppliedTaxPercent    decimal.Decimal `db:"applied_tax_percent"`
	Notes                string          `db:"notes"`
	RecurrenceDay        int             `db:"recurrence_day"`
	StartDate            time.Time       `db:"start_date"`
	EndDate              *time.Time      `db:"end_date"`
	IsActive             bool            `db:"is_active"`
	LastGeneratedDate    *time.Time      `db:"last_generated_date"`
	DeletedAt            *time.Time      `db:"deleted_at"`
	AuditFields
}
