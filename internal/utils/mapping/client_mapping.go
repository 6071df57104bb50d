package mapping

import (
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/models"
)

// ToModelClient converts a domain Client to a model Client.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:       d.ClientID,
		Name:           d.Name,
		ContactInfo:    d.ContactInfo,
		LineOfBusiness: d.LineOfBusiness,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client.
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:       m.ClientID,
		Name:           m.Name,
		ContactInfo:    m.ContactInfo,
		LineOfBusiness: m.LineOfBusiness,
		Status:         domain.ClientStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients.
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
