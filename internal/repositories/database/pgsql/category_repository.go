package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/models"
	"github.com/automationsflow/afbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory inserts a new category row.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (category_id, name, parent_category, tax_recognition_percent, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.Name,
		modelCat.ParentCategory,
		modelCat.TaxRecognitionPercent,
		modelCat.Description,
		modelCat.CreatedAt,
		modelCat.CreatedBy,
		modelCat.LastUpdatedAt,
		modelCat.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: category with ID %s already exists", apperrors.ErrDuplicate, modelCat.CategoryID)
		}
		return fmt.Errorf("failed to save category %s: %w", modelCat.CategoryID, err)
	}
	return nil
}

// UpdateCategory updates an existing category row.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		UPDATE categories
		SET name = $2, parent_category = $3, tax_recognition_percent = $4, description = $5, last_updated_at = $6, last_updated_by = $7
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.Name,
		modelCat.ParentCategory,
		modelCat.TaxRecognitionPercent,
		modelCat.Description,
		modelCat.LastUpdatedAt,
		modelCat.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", modelCat.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCategoryByID retrieves a category by its ID.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, parent_category, tax_recognition_percent, description, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		WHERE category_id = $1;
	`
	var modelCat models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&modelCat.CategoryID,
		&modelCat.Name,
		&modelCat.ParentCategory,
		&modelCat.TaxRecognitionPercent,
		&modelCat.Description,
		&modelCat.CreatedAt,
		&modelCat.CreatedBy,
		&modelCat.LastUpdatedAt,
		&modelCat.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}

	domainCat := mapping.ToDomainCategory(modelCat)
	return &domainCat, nil
}

// ListCategories retrieves all categories ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, parent_category, tax_recognition_percent, description, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		var category models.Category
		err := row.Scan(
			&category.CategoryID,
			&category.Name,
			&category.ParentCategory,
			&category.TaxRecognitionPercent,
			&category.Description,
			&category.CreatedAt,
			&category.CreatedBy,
			&category.LastUpdatedAt,
			&category.LastUpdatedBy,
		)
		return category, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect category rows: %w", err)
	}

	return mapping.ToDomainCategorySlice(modelCategories), nil
}
