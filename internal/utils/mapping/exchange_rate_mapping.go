package mapping

import (
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate.
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		CurrencyCode: d.CurrencyCode,
		RateToILS:    d.RateToILS,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate.
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		CurrencyCode: m.CurrencyCode,
		RateToILS:    m.RateToILS,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExchangeRateSlice converts model rates to domain rates.
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	ds := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRate(m)
	}
	return ds
}
