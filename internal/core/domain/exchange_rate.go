package domain

import "github.com/shopspring/decimal"

// BaseCurrency is the currency every monetary report field is expressed in.
const BaseCurrency = "ILS"

// ExchangeRate is the stored conversion rate from a foreign currency to ILS.
// Rates are reference data maintained by hand; records capture the rate in
// force at creation time and never re-convert.
type ExchangeRate struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key, ISO code
	RateToILS    decimal.Decimal `json:"rateToILS"`
	AuditFields
}
