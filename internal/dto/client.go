package dto

import (
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientRequest defines the data needed to register a client.
type CreateClientRequest struct {
	Name           string `json:"name" binding:"required"`
	ContactInfo    string `json:"contactInfo"`
	LineOfBusiness string `json:"lineOfBusiness"`
}

// UpdateClientRequest defines the data allowed for updating a client.
type UpdateClientRequest struct {
	Name           *string              `json:"name"`
	ContactInfo    *string              `json:"contactInfo"`
	LineOfBusiness *string              `json:"lineOfBusiness"`
	Status         *domain.ClientStatus `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID       string              `json:"clientID"`
	Name           string              `json:"name"`
	ContactInfo    string              `json:"contactInfo"`
	LineOfBusiness string              `json:"lineOfBusiness"`
	Status         domain.ClientStatus `json:"status"`
}

// ClientStatsResponse mirrors domain.ClientStats for the list view.
type ClientStatsResponse struct {
	TotalInvoiced    decimal.Decimal `json:"totalInvoiced"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	TotalOutstanding decimal.Decimal `json:"totalOutstanding"`
	InvoiceCount     int             `json:"invoiceCount"`
}

// ClientWithStatsResponse is a client plus its invoice totals.
type ClientWithStatsResponse struct {
	ClientResponse
	Stats ClientStatsResponse `json:"stats"`
}

// ToClientResponse converts a domain.Client to ClientResponse.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:       c.ClientID,
		Name:           c.Name,
		ContactInfo:    c.ContactInfo,
		LineOfBusiness: c.LineOfBusiness,
		Status:         c.Status,
	}
}

// ToClientWithStatsResponse pairs a client with its aggregated stats.
func ToClientWithStatsResponse(c *domain.Client, stats domain.ClientStats) ClientWithStatsResponse {
	return ClientWithStatsResponse{
		ClientResponse: ToClientResponse(c),
		Stats: ClientStatsResponse{
			TotalInvoiced:    stats.TotalInvoiced,
			TotalPaid:        stats.TotalPaid,
			TotalOutstanding: stats.TotalOutstanding,
			InvoiceCount:     stats.InvoiceCount,
		},
	}
}
