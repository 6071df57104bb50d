package services

import (
	"context"
	"fmt"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/google/uuid"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	partnerRepo portsrepo.PartnerRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, partnerRepo portsrepo.PartnerRepositoryFacade) *accountService {
	return &accountService{accountRepo: accountRepo, partnerRepo: partnerRepo}
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorID string) (*domain.Account, error) {
	partnerID := ""
	if req.PartnerID != nil {
		partnerID = *req.PartnerID
	}

	// PRIVATE_CREDIT accounts belong to a partner; every other type belongs
	// to the business.
	if req.AccountType == domain.PrivateCredit {
		if partnerID == "" {
			return nil, fmt.Errorf("%w: private credit accounts require a partnerID", apperrors.ErrValidation)
		}
		if _, err := s.partnerRepo.FindPartnerByID(ctx, partnerID); err != nil {
			return nil, fmt.Errorf("%w: partner %s not found", apperrors.ErrValidation, partnerID)
		}
	} else if partnerID != "" {
		return nil, fmt.Errorf("%w: only private credit accounts may carry a partnerID", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		AccountType: req.AccountType,
		PartnerID:   partnerID,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to save account")
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = updaterID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "failed to update account")
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, updaterID string) error {
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, updaterID, time.Now()); err != nil {
		return fmt.Errorf("failed to deactivate account %s: %w", accountID, err)
	}
	return nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}
