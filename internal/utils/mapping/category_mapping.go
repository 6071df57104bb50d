package mapping

import (
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/models"
)

// ToModelCategory converts a domain Category to a model Category.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:            d.CategoryID,
		Name:                  d.Name,
		ParentCategory:        string(d.ParentCategory),
		TaxRecognitionPercent: d.TaxRecognitionPercent,
		Description:           d.Description,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:            m.CategoryID,
		Name:                  m.Name,
		ParentCategory:        domain.ParentCategory(m.ParentCategory),
		TaxRecognitionPercent: m.TaxRecognitionPercent,
		Description:           m.Description,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCategorySlice converts a slice of model Categories to domain Categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}
