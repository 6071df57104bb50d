package dto

import (
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
)

// CreatePartnerRequest defines the data needed to register a partner.
// The business holds exactly two partners; creation beyond that is rejected
// by the service.
type CreatePartnerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	IconColor string `json:"iconColor"`
}

// PartnerResponse defines the data returned for a partner.
type PartnerResponse struct {
	PartnerID string    `json:"partnerID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IconColor string    `json:"iconColor"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToPartnerResponse converts a domain.Partner to PartnerResponse.
func ToPartnerResponse(p *domain.Partner) PartnerResponse {
	return PartnerResponse{
		PartnerID: p.PartnerID,
		Name:      p.Name,
		Email:     p.Email,
		IconColor: p.IconColor,
		CreatedAt: p.CreatedAt,
	}
}

// ToListPartnerResponse converts a slice of domain.Partner to responses.
func ToListPartnerResponse(partners []domain.Partner) []PartnerResponse {
	res := make([]PartnerResponse, len(partners))
	for i, p := range partners {
		res[i] = ToPartnerResponse(&p)
	}
	return res
}
