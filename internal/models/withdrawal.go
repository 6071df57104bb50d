package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Withdrawal records cash a partner took out of the business.
type Withdrawal struct {
	WithdrawalID string          `db:"withdrawal_id"`
	PartnerID    string          `db:"partner_id"`
	Amount       decimal.Decimal `db:"amount"`
	Date         time.Time       `db:"date"`
	Method       string          `db:"method"`
	Notes        string          `db:"notes"`
	DeletedAt    *time.Time      `db:"deleted_at"`
	AuditFields
}
