package dto

import (
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a payment account.
// PartnerID is required for PRIVATE_CREDIT accounts and forbidden otherwise;
// the service enforces that pairing.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=BUSINESS_CREDIT PRIVATE_CREDIT BANK_TRANSFER"`
	PartnerID   *string            `json:"partnerID"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	PartnerID   string             `json:"partnerID"` // Empty for business-owned accounts
	IsActive    bool               `json:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Name:        a.Name,
		AccountType: a.AccountType,
		PartnerID:   a.PartnerID,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to responses.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		res[i] = ToAccountResponse(&a)
	}
	return res
}
