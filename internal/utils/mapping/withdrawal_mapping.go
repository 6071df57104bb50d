package mapping

import (
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/models"
)

// ToModelWithdrawal converts a domain Withdrawal to a model Withdrawal.
func ToModelWithdrawal(d domain.Withdrawal) models.Withdrawal {
	return models.Withdrawal{
		WithdrawalID: d.WithdrawalID,
		PartnerID:    d.PartnerID,
		Amount:       d.Amount,
		Date:         d.Date,
		Method:       string(d.Method),
		Notes:        d.Notes,
		DeletedAt:    d.DeletedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWithdrawal converts a model Withdrawal to a domain Withdrawal.
func ToDomainWithdrawal(m models.Withdrawal) domain.Withdrawal {
	return domain.Withdrawal{
		WithdrawalID: m.WithdrawalID,
		PartnerID:    m.PartnerID,
		Amount:       m.Amount,
		Date:         m.Date,
		Method:       domain.WithdrawalMethod(m.Method),
		Notes:        m.Notes,
		DeletedAt:    m.DeletedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWithdrawalSlice converts a slice of model Withdrawals to domain
// Withdrawals.
func ToDomainWithdrawalSlice(ms []models.Withdrawal) []domain.Withdrawal {
	ds := make([]domain.Withdrawal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWithdrawal(m)
	}
	return ds
}
