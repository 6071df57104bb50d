package services

import (
	"context"
	"fmt"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) *categoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func validateRecognitionPercent(p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: tax recognition percent must be a fraction between 0 and 1", apperrors.ErrValidation)
	}
	return nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorID string) (*domain.Category, error) {
	if err := validateRecognitionPercent(req.TaxRecognitionPercent); err != nil {
		return nil, err
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:            uuid.NewString(),
		Name:                  req.Name,
		ParentCategory:        req.ParentCategory,
		TaxRecognitionPercent: req.TaxRecognitionPercent,
		Description:           req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "failed to save category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.ParentCategory != nil {
		category.ParentCategory = *req.ParentCategory
	}
	if req.TaxRecognitionPercent != nil {
		if err := validateRecognitionPercent(*req.TaxRecognitionPercent); err != nil {
			return nil, err
		}
		category.TaxRecognitionPercent = *req.TaxRecognitionPercent
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = updaterID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}
