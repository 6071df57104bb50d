package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for stored conversion rates.
type ExchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade) *ExchangeRateService {
	return &ExchangeRateService{rateRepo: rateRepo}
}

// UpsertRate inserts or replaces the rate for a currency code. The base
// currency is implicit and cannot be overridden.
func (s *ExchangeRateService) UpsertRate(ctx context.Context, req dto.UpsertExchangeRateRequest, updaterID string) (*domain.ExchangeRate, error) {
	code := strings.ToUpper(req.CurrencyCode)
	if code == domain.BaseCurrency {
		return nil, fmt.Errorf("%w: the base currency rate is fixed at 1", apperrors.ErrValidation)
	}
	if req.RateToILS.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		CurrencyCode: code,
		RateToILS:    req.RateToILS,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterID,
		},
	}

	if err := s.rateRepo.UpsertRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "failed to upsert exchange rate")
		return nil, fmt.Errorf("failed to upsert exchange rate: %w", err)
	}
	return &rate, nil
}

// GetRate retrieves the stored rate for a currency code.
func (s *ExchangeRateService) GetRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	code := strings.ToUpper(currencyCode)
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	if code == domain.BaseCurrency {
		return &domain.ExchangeRate{CurrencyCode: code, RateToILS: decimal.NewFromInt(1)}, nil
	}

	rate, err := s.rateRepo.FindRateByCurrency(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}
	return rate, nil
}

// ListRates retrieves all stored rates.
func (s *ExchangeRateService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}
