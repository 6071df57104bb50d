package services

import (
	"context"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/dto"
)

// PartnerReaderSvc defines read operations for partner data.
type PartnerReaderSvc interface {
	// GetPartnerByID retrieves a specific partner by its identifier.
	GetPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)

	// ListPartners retrieves all partners ordered by creation time.
	ListPartners(ctx context.Context) ([]domain.Partner, error)
}

// PartnerWriterSvc defines write operations for partner data.
type PartnerWriterSvc interface {
	// CreatePartner registers a new partner. Fails once two partners exist.
	CreatePartner(ctx context.Context, req dto.CreatePartnerRequest, creatorID string) (*domain.Partner, error)

	// UpdatePartner updates a partner's details.
	UpdatePartner(ctx context.Context, partnerID string, req dto.CreatePartnerRequest, updaterID string) (*domain.Partner, error)
}

// PartnerSvcFacade combines all partner-related service interfaces.
type PartnerSvcFacade interface {
	PartnerReaderSvc
	PartnerWriterSvc
}
