package domain

// AccountType identifies how money leaves an account.
type AccountType string

const (
	BusinessCredit AccountType = "BUSINESS_CREDIT"
	PrivateCredit  AccountType = "PRIVATE_CREDIT"
	BankTransfer   AccountType = "BANK_TRANSFER"
)

// Account represents a payment source expenses are drawn from.
// PartnerID is set only for PRIVATE_CREDIT accounts and identifies whose
// private funds are used; an empty PartnerID means a business-owned account.
type Account struct {
	AccountID   string      `json:"accountID"` // Primary Key (UUID)
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	PartnerID   string      `json:"partnerID"` // Nullable FK -> partners.partner_id
	IsActive    bool        `json:"isActive"`
	AuditFields
}

// IsPrivate reports whether the account draws a partner's private funds.
func (a Account) IsPrivate() bool {
	return a.PartnerID != ""
}
