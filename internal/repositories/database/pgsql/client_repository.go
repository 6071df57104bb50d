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

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// SaveClient inserts a new client row.
func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	modelClient := mapping.ToModelClient(client)

	query := `
		INSERT INTO clients (client_id, name, contact_info, line_of_business, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelClient.ClientID,
		modelClient.Name,
		modelClient.ContactInfo,
		modelClient.LineOfBusiness,
		modelClient.Status,
		modelClient.CreatedAt,
		modelClient.CreatedBy,
		modelClient.LastUpdatedAt,
		modelClient.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: client with ID %s already exists", apperrors.ErrDuplicate, modelClient.ClientID)
		}
		return fmt.Errorf("failed to save client %s: %w", modelClient.ClientID, err)
	}
	return nil
}

// UpdateClient updates an existing client row.
func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	modelClient := mapping.ToModelClient(client)

	query := `
		UPDATE clients
		SET name = $2, contact_info = $3, line_of_business = $4, status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE client_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelClient.ClientID,
		modelClient.Name,
		modelClient.ContactInfo,
		modelClient.LineOfBusiness,
		modelClient.Status,
		modelClient.LastUpdatedAt,
		modelClient.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update client %s: %w", modelClient.ClientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindClientByID retrieves a client by its ID.
func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, name, contact_info, line_of_business, status, created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE client_id = $1;
	`
	var modelClient models.Client
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&modelClient.ClientID,
		&modelClient.Name,
		&modelClient.ContactInfo,
		&modelClient.LineOfBusiness,
		&modelClient.Status,
		&modelClient.CreatedAt,
		&modelClient.CreatedBy,
		&modelClient.LastUpdatedAt,
		&modelClient.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}

	domainClient := mapping.ToDomainClient(modelClient)
	return &domainClient, nil
}

// ListClients retrieves all clients ordered by name.
func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT client_id, name, contact_info, line_of_business, status, created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	modelClients, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Client, error) {
		var client models.Client
		err := row.Scan(
			&client.ClientID,
			&client.Name,
			&client.ContactInfo,
			&client.LineOfBusiness,
			&client.Status,
			&client.CreatedAt,
			&client.CreatedBy,
			&client.LastUpdatedAt,
			&client.LastUpdatedBy,
		)
		return client, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect client rows: %w", err)
	}

	return mapping.ToDomainClientSlice(modelClients), nil
}
