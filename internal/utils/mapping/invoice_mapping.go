package mapping

import (
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice. Splits are
// persisted separately via ToModelInvoiceSplits.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		InvoiceNumber: d.InvoiceNumber,
		ClientID:      d.ClientID,
		Description:   d.Description,
		Amount:        d.Amount,
		Currency:      d.Currency,
		AmountILS:     d.AmountILS,
		IncludesVAT:   d.IncludesVAT,
		VATRate:       d.VATRate,
		DateIssued:    d.DateIssued,
		DueDate:       d.DueDate,
		DatePaid:      d.DatePaid,
		Status:        string(d.Status),
		Notes:         d.Notes,
		DeletedAt:     d.DeletedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToModelInvoiceSplits converts a domain invoice's splits to model rows.
func ToModelInvoiceSplits(d domain.Invoice) []models.InvoiceSplit {
	splits := make([]models.InvoiceSplit, len(d.Splits))
	for i, s := range d.Splits {
		splits[i] = models.InvoiceSplit{
			InvoiceID: d.InvoiceID,
			PartnerID: s.PartnerID,
			Percent:   s.Percent,
		}
	}
	return splits
}

// ToDomainInvoice converts a model Invoice plus its split rows to a domain
// Invoice.
func ToDomainInvoice(m models.Invoice, splits []models.InvoiceSplit) domain.Invoice {
	ds := make([]domain.InvoiceSplit, len(splits))
	for i, s := range splits {
		ds[i] = domain.InvoiceSplit{PartnerID: s.PartnerID, Percent: s.Percent}
	}
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		ClientID:      m.ClientID,
		Description:   m.Description,
		Amount:        m.Amount,
		Currency:      m.Currency,
		AmountILS:     m.AmountILS,
		IncludesVAT:   m.IncludesVAT,
		VATRate:       m.VATRate,
		DateIssued:    m.DateIssued,
		DueDate:       m.DueDate,
		DatePaid:      m.DatePaid,
		Status:        domain.InvoiceStatus(m.Status),
		Splits:        ds,
		Notes:         m.Notes,
		DeletedAt:     m.DeletedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
