package services

import (
	"context"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/dto"
)

// ClientWithStats pairs a client with its aggregated invoice totals.
type ClientWithStats struct {
	Client domain.Client
	Stats  domain.ClientStats
}

// ClientReaderSvc defines read operations for client data.
type ClientReaderSvc interface {
	// GetClientByID retrieves a specific client by its identifier.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves all clients ordered by name.
	ListClients(ctx context.Context) ([]domain.Client, error)

	// ListClientsWithStats retrieves all clients with invoice totals
	// aggregated per client.
	ListClientsWithStats(ctx context.Context) ([]ClientWithStats, error)
}

// ClientWriterSvc defines write operations for client data.
type ClientWriterSvc interface {
	// CreateClient registers a new client.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorID string) (*domain.Client, error)

	// UpdateClient updates a client's details.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterID string) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces.
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
