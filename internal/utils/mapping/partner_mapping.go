package mapping

import (
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/models"
)

// ToModelPartner converts a domain Partner to a model Partner.
func ToModelPartner(d domain.Partner) models.Partner {
	return models.Partner{
		PartnerID:   d.PartnerID,
		Name:        d.Name,
		Email:       d.Email,
		IconColor:   d.IconColor,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPartner converts a model Partner to a domain Partner.
func ToDomainPartner(m models.Partner) domain.Partner {
	return domain.Partner{
		PartnerID:   m.PartnerID,
		Name:        m.Name,
		Email:       m.Email,
		IconColor:   m.IconColor,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartnerSlice converts a slice of model Partners to domain Partners.
func ToDomainPartnerSlice(ms []models.Partner) []domain.Partner {
	ds := make([]domain.Partner, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPartner(m)
	}
	return ds
}
