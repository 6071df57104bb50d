package repositories

import (
	"context"
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
)

// WithdrawalReader defines read operations for withdrawal data.
type WithdrawalReader interface {
	// FindWithdrawalByID retrieves a specific withdrawal by its identifier.
	FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)

	// ListWithdrawals retrieves withdrawals for a year, newest first,
	// optionally narrowed to a single partner.
	ListWithdrawals(ctx context.Context, year int, partnerID string) ([]domain.Withdrawal, error)
}

// WithdrawalWriter defines write operations for withdrawal data.
type WithdrawalWriter interface {
	// SaveWithdrawal persists a new withdrawal.
	SaveWithdrawal(ctx context.Context, withdrawal domain.Withdrawal) error

	// SoftDeleteWithdrawal marks a withdrawal as deleted.
	SoftDeleteWithdrawal(ctx context.Context, withdrawalID string, userID string, now time.Time) error
}

// WithdrawalRepositoryFacade combines all withdrawal-related repository
// interfaces.
type WithdrawalRepositoryFacade interface {
	WithdrawalReader
	WithdrawalWriter
}
