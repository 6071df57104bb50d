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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for stored
// conversion rates.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// UpsertRate inserts or replaces the rate for a currency code.
func (r *PgxExchangeRateRepository) UpsertRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (currency_code, rate_to_ils, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (currency_code) DO UPDATE SET
			rate_to_ils = EXCLUDED.rate_to_ils,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelRate.CurrencyCode,
		modelRate.RateToILS,
		modelRate.CreatedAt,
		modelRate.CreatedBy,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert exchange rate for %s: %w", modelRate.CurrencyCode, err)
	}
	return nil
}

// FindRateByCurrency retrieves the stored rate for a currency code.
func (r *PgxExchangeRateRepository) FindRateByCurrency(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	query := `
		SELECT currency_code, rate_to_ils, created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE currency_code = $1;
	`
	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&modelRate.CurrencyCode,
		&modelRate.RateToILS,
		&modelRate.CreatedAt,
		&modelRate.CreatedBy,
		&modelRate.LastUpdatedAt,
		&modelRate.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate for %s: %w", currencyCode, err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListRates retrieves all stored rates ordered by currency code.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT currency_code, rate_to_ils, created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var rate models.ExchangeRate
		err := row.Scan(
			&rate.CurrencyCode,
			&rate.RateToILS,
			&rate.CreatedAt,
			&rate.CreatedBy,
			&rate.LastUpdatedAt,
			&rate.LastUpdatedBy,
		)
		return rate, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect exchange rate rows: %w", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}
