package dto

import (
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
// AmountILS is never accepted from the caller: the service derives it from
// the stored exchange rate at creation time and it stays fixed afterwards.
type CreateExpenseRequest struct {
	Date                 time.Time        `json:"date" binding:"required" time_format:"2006-01-02"`
	SupplierName         string           `json:"supplierName" binding:"required"`
	Amount               decimal.Decimal  `json:"amount" binding:"required"`
	Currency             string           `json:"currency"` // Defaults to ILS
	CategoryID           string           `json:"categoryID" binding:"required"`
	AccountID            string           `json:"accountID" binding:"required"`
	BeneficiaryPartnerID *string          `json:"beneficiaryPartnerID"` // Omit or empty = business
	AppliedTaxPercent    *decimal.Decimal `json:"appliedTaxPercent"`    // Defaults to the category's recognition percent
	ClientID             string           `json:"clientID"`
	Notes                string           `json:"notes"`
}

// UpdateExpenseRequest defines the partial-update surface for an expense.
// Changing Amount or Currency re-derives AmountILS with the rate stored on
// the record, not a fresh one.
type UpdateExpenseRequest struct {
	Date                 *time.Time       `json:"date" time_format:"2006-01-02"`
	SupplierName         *string          `json:"supplierName"`
	Amount               *decimal.Decimal `json:"amount"`
	CategoryID           *string          `json:"categoryID"`
	AccountID            *string          `json:"accountID"`
	BeneficiaryPartnerID *string          `json:"beneficiaryPartnerID"`
	AppliedTaxPercent    *decimal.Decimal `json:"appliedTaxPercent"`
	ClientID             *string          `json:"clientID"`
	Notes                *string          `json:"notes"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Year                 int    `form:"year"`
	Search               string `form:"search"`
	CategoryID           string `form:"categoryID"`
	BeneficiaryPartnerID string `form:"beneficiaryPartnerID"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID            string          `json:"expenseID"`
	Date                 time.Time       `json:"date"`
	SupplierName         string          `json:"supplierName"`
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency"`
	ExchangeRateToILS    decimal.Decimal `json:"exchangeRateToILS"`
	AmountILS            decimal.Decimal `json:"amountILS"`
	CategoryID           string          `json:"categoryID"`
	AccountID            string          `json:"accountID"`
	BeneficiaryPartnerID string          `json:"beneficiaryPartnerID"`
	AppliedTaxPercent    decimal.Decimal `json:"appliedTaxPercent"`
	ClientID             string          `json:"clientID"`
	Notes                string          `json:"notes"`
	RecurringExpenseID   string          `json:"recurringExpenseID"`
	CreatedAt            time.Time       `json:"createdAt"`
	CreatedBy            string          `json:"createdBy"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:            e.ExpenseID,
		Date:                 e.Date,
		SupplierName:         e.SupplierName,
		Amount:               e.Amount,
		Currency:             e.Currency,
		ExchangeRateToILS:    e.ExchangeRateToILS,
		AmountILS:            e.AmountILS,
		CategoryID:           e.CategoryID,
		AccountID:            e.AccountID,
		BeneficiaryPartnerID: e.BeneficiaryPartnerID,
		AppliedTaxPercent:    e.AppliedTaxPercent,
		ClientID:             e.ClientID,
		Notes:                e.Notes,
		RecurringExpenseID:   e.RecurringExpenseID,
		CreatedAt:            e.CreatedAt,
		CreatedBy:            e.CreatedBy,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to responses.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return res
}
