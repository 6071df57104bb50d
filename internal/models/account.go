package models

// AccountType identifies how money leaves an account.
type AccountType string

const (
	BusinessCredit AccountType = "BUSINESS_CREDIT"
	PrivateCredit  AccountType = "PRIVATE_CREDIT"
	BankTransfer   AccountType = "BANK_TRANSFER"
)

// Account represents a payment source row.
// PartnerID is nullable; only PRIVATE_CREDIT accounts carry an owner.
type Account struct {
	AccountID   string      `db:"account_id"`
	Name        string      `db:"name"`
	AccountType AccountType `db:"account_type"`
	PartnerID   string      `db:"partner_id"` // Nullable
	IsActive    bool        `db:"is_active"`
	AuditFields
}
