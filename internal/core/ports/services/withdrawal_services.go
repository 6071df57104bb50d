package services

import (
	"context"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/dto"
)

// WithdrawalReaderSvc defines read operations for withdrawal data.
type WithdrawalReaderSvc interface {
	// GetWithdrawalByID retrieves a specific withdrawal by its identifier.
	GetWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)

	// ListWithdrawals retrieves withdrawals for a year, optionally narrowed
	// to a single partner.
	ListWithdrawals(ctx context.Context, year int, partnerID string) ([]domain.Withdrawal, error)
}

// WithdrawalWriterSvc defines write operations for withdrawal data.
type WithdrawalWriterSvc interface {
	// CreateWithdrawal records a partner withdrawal.
	CreateWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest, creatorID string) (*domain.Withdrawal, error)

	// DeleteWithdrawal soft-deletes a withdrawal.
	DeleteWithdrawal(ctx context.Context, withdrawalID string, updaterID string) error
}

// WithdrawalSvcFacade combines all withdrawal-related service interfaces.
type WithdrawalSvcFacade interface {
	WithdrawalReaderSvc
	WithdrawalWriterSvc
}
