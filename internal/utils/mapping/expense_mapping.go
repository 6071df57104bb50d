package mapping

import (
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:            d.ExpenseID,
		Date:                 d.Date,
		SupplierName:         d.SupplierName,
		Amount:               d.Amount,
		Currency:             d.Currency,
		ExchangeRateToILS:    d.ExchangeRateToILS,
		AmountILS:            d.AmountILS,
		CategoryID:           d.CategoryID,
		AccountID:            d.AccountID,
		BeneficiaryPartnerID: d.BeneficiaryPartnerID,
		AppliedTaxPercent:    d.AppliedTaxPercent,
		ClientID:             d.ClientID,
		Notes:                d.Notes,
		RecurringExpenseID:   d.RecurringExpenseID,
		DeletedAt:            d.DeletedAt,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:            m.ExpenseID,
		Date:                 m.Date,
		SupplierName:         m.SupplierName,
		Amount:               m.Amount,
		Currency:             m.Currency,
		ExchangeRateToILS:    m.ExchangeRateToILS,
		AmountILS:            m.AmountILS,
		CategoryID:           m.CategoryID,
		AccountID:            m.AccountID,
		BeneficiaryPartnerID: m.BeneficiaryPartnerID,
		AppliedTaxPercent:    m.AppliedTaxPercent,
		ClientID:             m.ClientID,
		Notes:                m.Notes,
		RecurringExpenseID:   m.RecurringExpenseID,
		DeletedAt:            m.DeletedAt,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
