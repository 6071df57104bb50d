package domain

import "github.com/shopspring/decimal"

// ParentCategory is the P&L bucket an expense category rolls up into.
type ParentCategory string

const (
	COGS      ParentCategory = "COGS"
	OPEX      ParentCategory = "OPEX"
	Financial ParentCategory = "FINANCIAL"
	Mixed     ParentCategory = "MIXED"
)

// Category classifies expenses for both P&L bucketing and tax-deduction
// display. TaxRecognitionPercent is a fraction in [0,1] (e.g. 0.45 means 45%
// of the amount is recognized for tax purposes).
type Category struct {
	CategoryID            string          `json:"categoryID"` // Primary Key (UUID)
	Name                  string          `json:"name"`
	ParentCategory        ParentCategory  `json:"parentCategory"`
	TaxRecognitionPercent decimal.Decimal `json:"taxRecognitionPercent"`
	Description           string          `json:"description"`
	AuditFields
}
