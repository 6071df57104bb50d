package dto

import (
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecurringExpenseRequest defines the data needed to create a
// recurring-expense template.
type CreateRecurringExpenseRequest struct {
	SupplierName         string           `json:"supplierName" binding:"required"`
	Amount               decimal.Decimal  `json:"amount" binding:"required"`
	Currency             string           `json:"currency"` // Defaults to ILS
	CategoryID           string           `json:"categoryID" binding:"required"`
	AccountID            string           `json:"accountID" binding:"required"`
	BeneficiaryPartnerID string           `json:"beneficiaryPartnerID"`
	AppliedTaxPercent    *decimal.Decimal `json:"appliedTaxPercent"`
	Notes                string           `json:"notes"`
	RecurrenceDay        int              `json:"recurrenceDay" binding:"required,min=1,max=28"`
	StartDate            time.Time        `json:"startDate" binding:"required" time_format:"2006-01-02"`
	EndDate              *time.Time       `json:"endDate" time_format:"2006-01-02"`
}

// UpdateRecurringExpenseRequest defines the partial-update surface for a
// recurring-expense template.
type UpdateRecurringExpenseRequest struct {
	SupplierName         *string          `json:"supplierName"`
	Amount               *decimal.Decimal `json:"amount"`
	CategoryID           *string          `json:"categoryID"`
	AccountID            *string          `json:"accountID"`
	BeneficiaryPartnerID *string          `json:"beneficiaryPartnerID"`
	AppliedTaxPercent    *decimal.Decimal `json:"appliedTaxPercent"`
	Notes                *string          `json:"notes"`
	RecurrenceDay        *int             `json:"recurrenceDay" binding:"omitempty,min=1,max=28"`
	EndDate              *time.Time       `json:"endDate" time_format:"2006-01-02"`
	IsActive             *bool            `json:"isActive"`
}

// RecurringExpenseResponse defines the data returned for a template.
type RecurringExpenseResponse struct {
	RecurringExpenseID   string          `json:"recurringExpenseID"`
	SupplierName         string          `json:"supplierName"`
	Amount               decimal.Decimal `json:"amount"`
	Currency             string          `json:"currency"`
	CategoryID           string          `json:"categoryID"`
	AccountID            string          `json:"accountID"`
	BeneficiaryPartnerID string          `json:"beneficiaryPartnerID,omitempty"`
	AppliedTaxPercent    decimal.Decimal `json:"appliedTaxPercent"`
	Notes                string          `json:"notes"`
	RecurrenceDay        int             `json:"recurrenceDay"`
	StartDate            time.Time       `json:"startDate"`
	EndDate              *time.Time      `json:"endDate,omitempty"`
	IsActive             bool            `json:"isActive"`
	LastGeneratedDate    *time.Time      `json:"lastGeneratedDate,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// MaterializeResponse reports how many expenses a materialization run created.
type MaterializeResponse struct {
	Generated int `json:"generated"`
}

// ToRecurringExpenseResponse converts a domain.RecurringExpense to its
// response form.
func ToRecurringExpenseResponse(r *domain.RecurringExpense) RecurringExpenseResponse {
	return RecurringExpenseResponse{
		RecurringExpenseID:   r.RecurringExpenseID,
		SupplierName:         r.SupplierName,
		Amount:               r.Amount,
		Currency:             r.Currency,
		CategoryID:           r.CategoryID,
		AccountID:            r.AccountID,
		BeneficiaryPartnerID: r.BeneficiaryPartnerID,
		AppliedTaxPercent:    r.AppliedTaxPercent,
		Notes:                r.Notes,
		RecurrenceDay:        r.RecurrenceDay,
		StartDate:            r.StartDate,
		EndDate:              r.EndDate,
		IsActive:             r.IsActive,
		LastGeneratedDate:    r.LastGeneratedDate,
		CreatedAt:            r.CreatedAt,
	}
}

// ToListRecurringExpenseResponse converts a slice of templates to responses.
func ToListRecurringExpenseResponse(templates []domain.RecurringExpense) []RecurringExpenseResponse {
	res := make([]RecurringExpenseResponse, len(templates))
	for i, r := range templates {
		res[i] = ToRecurringExpenseResponse(&r)
	}
	return res
}
