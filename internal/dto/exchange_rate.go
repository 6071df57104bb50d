package dto

import (
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertExchangeRateRequest defines the data needed to set a conversion rate.
type UpsertExchangeRateRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
	RateToILS    decimal.Decimal `json:"rateToILS" binding:"required"`
}

// ExchangeRateResponse defines the data returned for a stored rate.
type ExchangeRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	RateToILS    decimal.Decimal `json:"rateToILS"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response form.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		CurrencyCode: r.CurrencyCode,
		RateToILS:    r.RateToILS,
		UpdatedAt:    r.LastUpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of rates to responses.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	res := make([]ExchangeRateResponse, len(rates))
	for i, r := range rates {
		res[i] = ToExchangeRateResponse(&r)
	}
	return res
}
