package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type withdrawalService struct {
	BaseService
	withdrawalRepo portsrepo.WithdrawalRepositoryFacade
	partnerRepo    portsrepo.PartnerReader
}

// NewWithdrawalService creates a new withdrawal service.
func NewWithdrawalService(withdrawalRepo portsrepo.WithdrawalRepositoryFacade, partnerRepo portsrepo.PartnerReader) *withdrawalService {
	return &withdrawalService{withdrawalRepo: withdrawalRepo, partnerRepo: partnerRepo}
}

func (s *withdrawalService) CreateWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest, creatorID string) (*domain.Withdrawal, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.partnerRepo.FindPartnerByID(ctx, req.PartnerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: partner %s not found", apperrors.ErrValidation, req.PartnerID)
		}
		return nil, fmt.Errorf("failed to validate partner: %w", err)
	}

	now := time.Now()
	withdrawal := domain.Withdrawal{
		WithdrawalID: uuid.NewString(),
		PartnerID:    req.PartnerID,
		Amount:       req.Amount,
		Date:         req.Date,
		Method:       domain.WithdrawalMethod(req.Method),
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.withdrawalRepo.SaveWithdrawal(ctx, withdrawal); err != nil {
		s.LogError(ctx, err, "failed to save withdrawal")
		return nil, fmt.Errorf("failed to create withdrawal: %w", err)
	}
	return &withdrawal, nil
}

func (s *withdrawalService) DeleteWithdrawal(ctx context.Context, withdrawalID string, updaterID string) error {
	if err := s.withdrawalRepo.SoftDeleteWithdrawal(ctx, withdrawalID, updaterID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete withdrawal %s: %w", withdrawalID, err)
	}
	return nil
}

func (s *withdrawalService) GetWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.FindWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal by id: %w", err)
	}
	return withdrawal, nil
}

func (s *withdrawalService) ListWithdrawals(ctx context.Context, year int, partnerID string) ([]domain.Withdrawal, error) {
	if year == 0 {
		year = time.Now().Year()
	}
	withdrawals, err := s.withdrawalRepo.ListWithdrawals(ctx, year, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	if withdrawals == nil {
		return []domain.Withdrawal{}, nil
	}
	return withdrawals, nil
}
