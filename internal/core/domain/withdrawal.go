package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalMethod is how a partner took money out.
type WithdrawalMethod string

const (
	WithdrawalBankTransfer WithdrawalMethod = "BANK_TRANSFER"
	WithdrawalCash         WithdrawalMethod = "CASH"
	WithdrawalCheck        WithdrawalMethod = "CHECK"
)

// Withdrawal records cash actually removed by a partner. It always reduces
// that partner's net-available balance.
type Withdrawal struct {
	WithdrawalID string           `json:"withdrawalID"` // Primary Key (UUID)
	PartnerID    string           `json:"partnerID"`    // FK -> partners
	Amount       decimal.Decimal  `json:"amount"`       // ILS
	Date         time.Time        `json:"date"`
	Method       WithdrawalMethod `json:"method"`
	Notes        string           `json:"notes"`
	DeletedAt    *time.Time       `json:"deletedAt,omitempty"`
	AuditFields
}
