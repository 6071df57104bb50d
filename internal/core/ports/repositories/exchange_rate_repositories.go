package repositories

import (
	"context"

	"github.com/automationsflow/afbooks/internal/core/domain"
)

// ExchangeRateReader defines read operations for stored conversion rates.
type ExchangeRateReader interface {
	// FindRateByCurrency retrieves the stored rate for a currency code.
	FindRateByCurrency(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)

	// ListRates retrieves all stored rates ordered by currency code.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for stored conversion rates.
type ExchangeRateWriter interface {
	// UpsertRate inserts or replaces the rate for a currency code.
	UpsertRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines the exchange-rate interfaces.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
