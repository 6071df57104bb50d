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

type PgxPartnerRepository struct {
	BaseRepository
}

// newPgxPartnerRepository creates a new repository for partner data.
func newPgxPartnerRepository(pool *pgxpool.Pool) portsrepo.PartnerRepositoryFacade {
	return &PgxPartnerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PartnerRepositoryFacade = (*PgxPartnerRepository)(nil)

// SavePartner inserts a new partner row.
func (r *PgxPartnerRepository) SavePartner(ctx context.Context, partner domain.Partner) error {
	modelPartner := mapping.ToModelPartner(partner)

	query := `
		INSERT INTO partners (partner_id, name, email, icon_color, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelPartner.PartnerID,
		modelPartner.Name,
		modelPartner.Email,
		modelPartner.IconColor,
		modelPartner.CreatedAt,
		modelPartner.CreatedBy,
		modelPartner.LastUpdatedAt,
		modelPartner.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: partner with ID %s already exists", apperrors.ErrDuplicate, modelPartner.PartnerID)
		}
		return fmt.Errorf("failed to save partner %s: %w", modelPartner.PartnerID, err)
	}
	return nil
}

// UpdatePartner updates an existing partner row.
func (r *PgxPartnerRepository) UpdatePartner(ctx context.Context, partner domain.Partner) error {
	modelPartner := mapping.ToModelPartner(partner)

	query := `
		UPDATE partners
		SET name = $2, email = $3, icon_color = $4, last_updated_at = $5, last_updated_by = $6
		WHERE partner_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelPartner.PartnerID,
		modelPartner.Name,
		modelPartner.Email,
		modelPartner.IconColor,
		modelPartner.LastUpdatedAt,
		modelPartner.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update partner %s: %w", modelPartner.PartnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPartnerByID retrieves a partner by its ID.
func (r *PgxPartnerRepository) FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	query := `
		SELECT partner_id, name, email, icon_color, created_at, created_by, last_updated_at, last_updated_by
		FROM partners
		WHERE partner_id = $1;
	`
	var modelPartner models.Partner
	err := r.Pool.QueryRow(ctx, query, partnerID).Scan(
		&modelPartner.PartnerID,
		&modelPartner.Name,
		&modelPartner.Email,
		&modelPartner.IconColor,
		&modelPartner.CreatedAt,
		&modelPartner.CreatedBy,
		&modelPartner.LastUpdatedAt,
		&modelPartner.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find partner by ID %s: %w", partnerID, err)
	}

	domainPartner := mapping.ToDomainPartner(modelPartner)
	return &domainPartner, nil
}

// ListPartners retrieves all partners ordered by creation time.
func (r *PgxPartnerRepository) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	query := `
		SELECT partner_id, name, email, icon_color, created_at, created_by, last_updated_at, last_updated_by
		FROM partners
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	defer rows.Close()

	modelPartners, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Partner, error) {
		var partner models.Partner
		err := row.Scan(
			&partner.PartnerID,
			&partner.Name,
			&partner.Email,
			&partner.IconColor,
			&partner.CreatedAt,
			&partner.CreatedBy,
			&partner.LastUpdatedAt,
			&partner.LastUpdatedBy,
		)
		return partner, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect partner rows: %w", err)
	}

	return mapping.ToDomainPartnerSlice(modelPartners), nil
}
