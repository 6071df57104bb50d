package models

import "github.com/shopspring/decimal"

// ExchangeRate is a stored conversion rate to ILS.
type ExchangeRate struct {
	CurrencyCode string          `db:"currency_code"`
	RateToILS    decimal.Decimal `db:"rate_to_ils"`
	AuditFields
}
