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

// maxPartners is the number of co-owners the settlement model supports.
const maxPartners = 2

type partnerService struct {
	BaseService
	partnerRepo portsrepo.PartnerRepositoryFacade
}

// NewPartnerService creates a new partner service.
func NewPartnerService(partnerRepo portsrepo.PartnerRepositoryFacade) *partnerService {
	return &partnerService{partnerRepo: partnerRepo}
}

func (s *partnerService) CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, creatorID string) (*domain.Partner, error) {
	existing, err := s.partnerRepo.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners before create: %w", err)
	}
	if len(existing) >= maxPartners {
		return nil, fmt.Errorf("%w: the partnership already has %d partners", apperrors.ErrValidation, maxPartners)
	}

	now := time.Now()
	partner := domain.Partner{
		PartnerID: uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		IconColor: req.IconColor,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.partnerRepo.SavePartner(ctx, partner); err != nil {
		s.LogError(ctx, err, "failed to save partner")
		return nil, fmt.Errorf("failed to create partner: %w", err)
	}
	return &partner, nil
}

func (s *partnerService) UpdatePartner(ctx context.Context, partnerID string, req dto.CreatePartnerRequest, updaterID string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find partner %s: %w", partnerID, err)
	}

	partner.Name = req.Name
	partner.Email = req.Email
	if req.IconColor != "" {
		partner.IconColor = req.IconColor
	}
	partner.LastUpdatedAt = time.Now()
	partner.LastUpdatedBy = updaterID

	if err := s.partnerRepo.UpdatePartner(ctx, *partner); err != nil {
		s.LogError(ctx, err, "failed to update partner")
		return nil, fmt.Errorf("failed to update partner: %w", err)
	}
	return partner, nil
}

func (s *partnerService) GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error) {
	partner, err := s.partnerRepo.FindPartnerByID(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get partner by id: %w", err)
	}
	return partner, nil
}

func (s *partnerService) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	partners, err := s.partnerRepo.ListPartners(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list partners: %w", err)
	}
	if partners == nil {
		return []domain.Partner{}, nil
	}
	return partners, nil
}
