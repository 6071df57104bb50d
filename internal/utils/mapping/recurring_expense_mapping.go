package mapping

import (
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/models"
)

// ToModelRecurringExpense converts a domain RecurringExpense to a model row.
func ToModelRecurringExpense(d domain.RecurringExpense) models.RecurringExpense {
	return models.RecurringExpense{
		RecurringExpenseID:   d.RecurringExpenseID,
		SupplierName:         d.SupplierName,
		Amount:               d.Amount,
		Currency:             d.Currency,
		CategoryID:           d.CategoryID,
		AccountID:            d.AccountID,
		BeneficiaryPartnerID: d.BeneficiaryPartnerID,
		AppliedTaxPercent:    d.AppliedTaxPercent,
		Notes:                d.Notes,
		RecurrenceDay:        d.RecurrenceDay,
		StartDate:            d.StartDate,
		EndDate:              d.EndDate,
		IsActive:             d.IsActive,
		LastGeneratedDate:    d.LastGeneratedDate,
		DeletedAt:            d.DeletedAt,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecurringExpense converts a model row to a domain RecurringExpense.
func ToDomainRecurringExpense(m models.RecurringExpense) domain.RecurringExpense {
	return domain.RecurringExpense{
		RecurringExpenseID:   m.RecurringExpenseID,
		SupplierName:         m.SupplierName,
		Amount:               m.Amount,
		Currency:             m.Currency,
		CategoryID:           m.CategoryID,
		AccountID:            m.AccountID,
		BeneficiaryPartnerID: m.BeneficiaryPartnerID,
		AppliedTaxPercent:    m.AppliedTaxPercent,
		Notes:                m.Notes,
		RecurrenceDay:        m.RecurrenceDay,
		StartDate:            m.StartDate,
		EndDate:              m.EndDate,
		IsActive:             m.IsActive,
		LastGeneratedDate:    m.LastGeneratedDate,
		DeletedAt:            m.DeletedAt,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecurringExpenseSlice converts model rows to domain templates.
func ToDomainRecurringExpenseSlice(ms []models.RecurringExpense) []domain.RecurringExpense {
	ds := make([]domain.RecurringExpense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecurringExpense(m)
	}
	return ds
}
