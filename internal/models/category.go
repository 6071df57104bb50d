package models

import "github.com/shopspring/decimal"

// Category classifies expenses into P&L buckets.
type Category struct {
	CategoryID            string          `db:"category_id"`
	Name                  string          `db:"name"`
	ParentCategory        string          `db:"parent_category"`
	TaxRecognitionPercent decimal.Decimal `db:"tax_recognition_percent"`
	Description           string          `db:"description"`
	AuditFields
}
