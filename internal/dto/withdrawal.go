package dto

import (
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWithdrawalRequest defines the data needed to record a partner
// withdrawal.
type CreateWithdrawalRequest struct {
	PartnerID string          `json:"partnerID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	Method    string          `json:"method" binding:"required,oneof=BANK_TRANSFER CASH CHECK"`
	Notes     string          `json:"notes"`
}

// UpdateWithdrawalRequest defines the partial-update surface for a withdrawal.
type UpdateWithdrawalRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Date   *time.Time       `json:"date" time_format:"2006-01-02"`
	Method *string          `json:"method" binding:"omitempty,oneof=BANK_TRANSFER CASH CHECK"`
	Notes  *string          `json:"notes"`
}

// ListWithdrawalsParams defines query parameters for listing withdrawals.
type ListWithdrawalsParams struct {
	Year      int    `form:"year"`
	PartnerID string `form:"partnerID"`
}

// WithdrawalResponse defines the data returned for a withdrawal.
type WithdrawalResponse struct {
	WithdrawalID string          `json:"withdrawalID"`
	PartnerID    string          `json:"partnerID"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Method       string          `json:"method"`
	Notes        string          `json:"notes"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToWithdrawalResponse converts a domain.Withdrawal to WithdrawalResponse.
func ToWithdrawalResponse(w *domain.Withdrawal) WithdrawalResponse {
	return WithdrawalResponse{
		WithdrawalID: w.WithdrawalID,
		PartnerID:    w.PartnerID,
		Amount:       w.Amount,
		Date:         w.Date,
		Method:       string(w.Method),
		Notes:        w.Notes,
		CreatedAt:    w.CreatedAt,
	}
}

// ToListWithdrawalResponse converts a slice of domain.Withdrawal to responses.
func ToListWithdrawalResponse(withdrawals []domain.Withdrawal) []WithdrawalResponse {
	res := make([]WithdrawalResponse, len(withdrawals))
	for i, w := range withdrawals {
		res[i] = ToWithdrawalResponse(&w)
	}
	return res
}
