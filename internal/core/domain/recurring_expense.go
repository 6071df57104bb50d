package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringExpense is a template the materializer turns into concrete Expense
// rows on RecurrenceDay of each month between StartDate and EndDate.
// Materialized expenses carry the template's ID back-reference and an empty
// CreatedBy, which marks them as auto-generated.
type RecurringExpense struct {
	RecurringExpenseID   string          `json:"recurringExpenseID"` // Primary Key (UUID)
	SupplierName         string          `json:"supplierName"`
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency"`
	CategoryID           string          `json:"categoryID"`
	AccountID            string          `json:"accountID"`
	BeneficiaryPartnerID string          `json:"beneficiaryPartnerID"`
	AppliedTaxPercent    decimal.Decimal `json:"appliedTaxPercent"`
	Notes                string          `json:"notes"`
	RecurrenceDay        int             `json:"recurrenceDay"` // Day of month, 1..28
	StartDate            time.Time       `json:"startDate"`
	EndDate              *time.Time      `json:"endDate,omitempty"`
	IsActive             bool            `json:"isActive"`
	LastGeneratedDate    *time.Time      `json:"lastGeneratedDate,omitempty"`
	DeletedAt            *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}

// NextDueDate returns the first occurrence strictly after the last generated
// date (or the first occurrence on/after StartDate when none was generated
// yet). The second return is false when the template has run past EndDate.
func (r RecurringExpense) NextDueDate() (time.Time, bool) {
	var anchor time.Time
	if r.LastGeneratedDate != nil {
		anchor = r.LastGeneratedDate.AddDate(0, 1, 0)
	} else {
		anchor = r.StartDate
	}
	due := time.Date(anchor.Year(), anchor.Month(), r.RecurrenceDay, 0, 0, 0, 0, time.UTC)
	if due.Before(anchor) {
		due = due.AddDate(0, 1, 0)
	}
	if r.EndDate != nil && due.After(*r.EndDate) {
		return time.Time{}, false
	}
	return due, true
}
