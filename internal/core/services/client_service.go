package services

import (
	"context"
	"fmt"
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	portssvc "github.com/automationsflow/afbooks/internal/core/ports/services"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type clientService struct {
	BaseService
	clientRepo  portsrepo.ClientRepositoryFacade
	invoiceRepo portsrepo.InvoiceReader
}

// NewClientService creates a new client service. The invoice reader feeds
// the per-client stats aggregation.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, invoiceRepo portsrepo.InvoiceReader) *clientService {
	return &clientService{clientRepo: clientRepo, invoiceRepo: invoiceRepo}
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorID string) (*domain.Client, error) {
	now := time.Now()
	client := domain.Client{
		ClientID:       uuid.NewString(),
		Name:           req.Name,
		ContactInfo:    req.ContactInfo,
		LineOfBusiness: req.LineOfBusiness,
		Status:         domain.ClientActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "failed to save client")
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.ContactInfo != nil {
		client.ContactInfo = *req.ContactInfo
	}
	if req.LineOfBusiness != nil {
		client.LineOfBusiness = *req.LineOfBusiness
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = updaterID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "failed to update client")
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client by id: %w", err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *clientService) ListClientsWithStats(ctx context.Context) ([]portssvc.ClientWithStats, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	now := time.Now()
	result := make([]portssvc.ClientWithStats, 0, len(clients))
	for _, client := range clients {
		invoices, err := s.invoiceRepo.ListInvoicesByClient(ctx, client.ClientID)
		if err != nil {
			return nil, fmt.Errorf("failed to list invoices for client %s: %w", client.ClientID, err)
		}
		result = append(result, portssvc.ClientWithStats{
			Client: client,
			Stats:  aggregateClientStats(invoices, now),
		})
	}
	return result, nil
}

// aggregateClientStats totals a client's invoices. Drafts count toward the
// invoiced total but not toward outstanding.
func aggregateClientStats(invoices []domain.Invoice, now time.Time) domain.ClientStats {
	stats := domain.ClientStats{
		TotalInvoiced:    decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}
	for _, inv := range invoices {
		stats.InvoiceCount++
		stats.TotalInvoiced = stats.TotalInvoiced.Add(inv.AmountILS)
		switch {
		case inv.Status == domain.InvoicePaid:
			stats.TotalPaid = stats.TotalPaid.Add(inv.AmountILS)
		case inv.IsOpen(now):
			stats.TotalOutstanding = stats.TotalOutstanding.Add(inv.AmountILS)
		}
	}
	return stats
}
