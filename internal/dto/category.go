package dto

import (
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to create a category.
// TaxRecognitionPercent is a fraction in [0,1].
type CreateCategoryRequest struct {
	Name                  string                `json:"name" binding:"required"`
	ParentCategory        domain.ParentCategory `json:"parentCategory" binding:"required,oneof=COGS OPEX FINANCIAL MIXED"`
	TaxRecognitionPercent decimal.Decimal       `json:"taxRecognitionPercent"`
	Description           string                `json:"description"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name                  *string                `json:"name"`
	ParentCategory        *domain.ParentCategory `json:"parentCategory" binding:"omitempty,oneof=COGS OPEX FINANCIAL MIXED"`
	TaxRecognitionPercent *decimal.Decimal       `json:"taxRecognitionPercent"`
	Description           *string                `json:"description"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID            string                `json:"categoryID"`
	Name                  string                `json:"name"`
	ParentCategory        domain.ParentCategory `json:"parentCategory"`
	TaxRecognitionPercent decimal.Decimal       `json:"taxRecognitionPercent"`
	Description           string                `json:"description"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:            c.CategoryID,
		Name:                  c.Name,
		ParentCategory:        c.ParentCategory,
		TaxRecognitionPercent: c.TaxRecognitionPercent,
		Description:           c.Description,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to responses.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToCategoryResponse(&c)
	}
	return res
}
