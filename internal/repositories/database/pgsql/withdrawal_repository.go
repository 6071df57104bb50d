package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/models"
	"github.com/automationsflow/afbooks/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const withdrawalColumns = `withdrawal_id, partner_id, amount, date, method, notes, deleted_at,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxWithdrawalRepository struct {
	BaseRepository
}

// newPgxWithdrawalRepository creates a new repository for withdrawal data.
func newPgxWithdrawalRepository(pool *pgxpool.Pool) portsrepo.WithdrawalRepositoryFacade {
	return &PgxWithdrawalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.WithdrawalRepositoryFacade = (*PgxWithdrawalRepository)(nil)

func scanWithdrawal(row pgx.CollectableRow) (models.Withdrawal, error) {
	var w models.Withdrawal
	err := row.Scan(
		&w.WithdrawalID,
		&w.PartnerID,
		&w.Amount,
		&w.Date,
		&w.Method,
		&w.Notes,
		&w.DeletedAt,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
	)
	return w, err
}

// SaveWithdrawal inserts a new withdrawal row.
func (r *PgxWithdrawalRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error {
	modelW := mapping.ToModelWithdrawal(withdrawal)

	query := `
		INSERT INTO withdrawals (withdrawal_id, partner_id, amount, date, method, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelW.WithdrawalID,
		modelW.PartnerID,
		modelW.Amount,
		modelW.Date,
		modelW.Method,
		modelW.Notes,
		modelW.CreatedAt,
		modelW.CreatedBy,
		modelW.LastUpdatedAt,
		modelW.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: withdrawal with ID %s already exists", apperrors.ErrDuplicate, modelW.WithdrawalID)
		}
		return fmt.Errorf("failed to save withdrawal %s: %w", modelW.WithdrawalID, err)
	}
	return nil
}

// SoftDeleteWithdrawal marks a withdrawal as deleted.
func (r *PgxWithdrawalRepository) SoftDeleteWithdrawal(ctx context.Context, withdrawalID string, userID string, now time.Time) error {
	query := `
		UPDATE withdrawals
		SET deleted_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE withdrawal_id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, withdrawalID, now, userID)
	if err != nil {
		return fmt.Errorf("failed to soft delete withdrawal %s: %w", withdrawalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindWithdrawalByID retrieves a non-deleted withdrawal by its ID.
func (r *PgxWithdrawalRepository) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE withdrawal_id = $1 AND deleted_at IS NULL;
	`
	rows, err := r.Pool.Query(ctx, query, withdrawalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawal %s: %w", withdrawalID, err)
	}
	defer rows.Close()

	modelW, err := pgx.CollectOneRow(rows, scanWithdrawal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find withdrawal by ID %s: %w", withdrawalID, err)
	}

	domainW := mapping.ToDomainWithdrawal(modelW)
	return &domainW, nil
}

// ListWithdrawals retrieves withdrawals for a year, newest first, optionally
// narrowed to a single partner.
func (r *PgxWithdrawalRepository) ListWithdrawals(ctx context.Context, year int, partnerID string) ([]domain.Withdrawal, error) {
	query := `
		SELECT ` + withdrawalColumns + `
		FROM withdrawals
		WHERE deleted_at IS NULL AND EXTRACT(YEAR FROM date) = $1`
	args := []any{year}

	if partnerID != "" {
		args = append(args, partnerID)
		query += " AND partner_id = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY date DESC, created_at DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals: %w", err)
	}
	defer rows.Close()

	modelWithdrawals, err := pgx.CollectRows(rows, scanWithdrawal)
	if err != nil {
		return nil, fmt.Errorf("failed to collect withdrawal rows: %w", err)
	}

	return mapping.ToDomainWithdrawalSlice(modelWithdrawals), nil
}
