package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single outgoing payment. AmountILS is fixed at recording time
// as Amount * ExchangeRateToILS; the rate is never recomputed afterwards.
//
// BeneficiaryPartnerID names the partner who personally benefits from the
// expense; empty means the business itself is the beneficiary.
type Expense struct {
	ExpenseID            string          `json:"expenseID"` // Primary Key (UUID)
	Date                 time.Time       `json:"date"`
	SupplierName         string          `json:"supplierName"`
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency"` // ISO code, base is ILS
	ExchangeRateToILS    decimal.Decimal `json:"exchangeRateToILS"`
	AmountILS            decimal.Decimal `json:"amountILS"`
	CategoryID           string          `json:"categoryID"` // FK -> categories
	AccountID            string          `json:"accountID"`  // FK -> accounts
	BeneficiaryPartnerID string          `json:"beneficiaryPartnerID"`
	AppliedTaxPercent    decimal.Decimal `json:"appliedTaxPercent"`
	ClientID             string          `json:"clientID"` // Nullable FK -> clients
	Notes                string          `json:"notes"`
	RecurringExpenseID   string          `json:"recurringExpenseID"` // Set on materialized rows
	DeletedAt            *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}

// BenefitsBusiness reports whether the business is the economic beneficiary.
func (e Expense) BenefitsBusiness() bool {
	return e.BeneficiaryPartnerID == ""
}
