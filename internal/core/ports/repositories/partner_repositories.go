package repositories

import (
	"context"

	"github.com/automationsflow/afbooks/internal/core/domain"
)

// PartnerReader defines read operations for partner data.
type PartnerReader interface {
	// FindPartnerByID retrieves a specific partner by its unique identifier.
	FindPartnerByID(ctx context.Context, partnerID string) (*domain.Partner, error)

	// ListPartners retrieves all partners ordered by creation time.
	ListPartners(ctx context.Context) ([]domain.Partner, error)
}

// PartnerWriter defines write operations for partner data.
type PartnerWriter interface {
	// SavePartner persists a new partner.
	SavePartner(ctx context.Context, partner domain.Partner) error

	// UpdatePartner updates an existing partner's details.
	UpdatePartner(ctx context.Context, partner domain.Partner) error
}

// PartnerRepositoryFacade combines all partner-related repository interfaces.
type PartnerRepositoryFacade interface {
	PartnerReader
	PartnerWriter
}
