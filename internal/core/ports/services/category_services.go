package services

import (
	"context"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/dto"
)

// CategoryReaderSvc defines read operations for category data.
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a specific category by its identifier.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for category data.
type CategoryWriterSvc interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorID string) (*domain.Category, error)

	// UpdateCategory updates a category's details.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterID string) (*domain.Category, error)
}

// CategorySvcFacade combines all category-related service interfaces.
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}
