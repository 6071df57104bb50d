package services

import (
	"context"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for stored conversion rates.
type ExchangeRateReaderSvc interface {
	// GetRate retrieves the stored rate for a currency code. The base
	// currency always resolves to a rate of 1.
	GetRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error)

	// ListRates retrieves all stored rates.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for stored conversion rates.
type ExchangeRateWriterSvc interface {
	// UpsertRate inserts or replaces the rate for a currency code.
	UpsertRate(ctx context.Context, req dto.UpsertExchangeRateRequest, updaterID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines the exchange-rate service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
