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

// statusRank orders the stored invoice workflow. OVERDUE never appears here
// because it is derived at read time, not stored.
var statusRank = map[domain.InvoiceStatus]int{
	domain.InvoiceDraft: 0,
	domain.InvoiceSent:  1,
	domain.InvoicePaid:  2,
}

// InvoiceService provides business logic for invoices: split validation, ILS
// conversion and the forward-only status workflow.
type InvoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientRepo  portsrepo.ClientReader
	partnerRepo portsrepo.PartnerReader
	rateRepo    portsrepo.ExchangeRateReader
	defaultVAT  decimal.Decimal
}

// NewInvoiceService creates a new InvoiceService. defaultVAT is the fraction
// applied when a request omits the rate.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	clientRepo portsrepo.ClientReader,
	partnerRepo portsrepo.PartnerReader,
	rateRepo portsrepo.ExchangeRateReader,
	defaultVAT decimal.Decimal,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		partnerRepo: partnerRepo,
		rateRepo:    rateRepo,
		defaultVAT:  defaultVAT,
	}
}

// validateSplits checks that the splits name two distinct known partners and
// sum to exactly 100.
func (s *InvoiceService) validateSplits(ctx context.Context, splits []dto.InvoiceSplitRequest) ([]domain.InvoiceSplit, error) {
	total := decimal.Zero
	seen := make(map[string]bool, len(splits))
	result := make([]domain.InvoiceSplit, 0, len(splits))
	for _, split := range splits {
		if seen[split.PartnerID] {
			return nil, fmt.Errorf("%w: duplicate split for partner %s", apperrors.ErrValidation, split.PartnerID)
		}
		seen[split.PartnerID] = true
		if split.Percent.IsNegative() {
			return nil, fmt.Errorf("%w: split percent cannot be negative", apperrors.ErrValidation)
		}
		if _, err := s.partnerRepo.FindPartnerByID(ctx, split.PartnerID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: partner %s not found", apperrors.ErrValidation, split.PartnerID)
			}
			return nil, fmt.Errorf("failed to validate split partner: %w", err)
		}
		total = total.Add(split.Percent)
		result = append(result, domain.InvoiceSplit{PartnerID: split.PartnerID, Percent: split.Percent})
	}
	if !total.Equal(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: split percents must sum to 100, got %s", apperrors.ErrValidation, total)
	}
	return result, nil
}

func (s *InvoiceService) rateToILS(ctx context.Context, currency string) (decimal.Decimal, error) {
	if currency == domain.BaseCurrency {
		return decimal.NewFromInt(1), nil
	}
	rate, err := s.rateRepo.FindRateByCurrency(ctx, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no exchange rate stored for currency '%s'", apperrors.ErrValidation, currency)
		}
		return decimal.Zero, fmt.Errorf("failed to resolve exchange rate for '%s': %w", currency, err)
	}
	return rate.RateToILS, nil
}

// CreateInvoice records a new invoice in DRAFT.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorID string) (*domain.Invoice, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: invoice amount must be positive", apperrors.ErrValidation)
	}
	if req.DueDate.Before(req.DateIssued) {
		return nil, fmt.Errorf("%w: due date cannot precede issue date", apperrors.ErrValidation)
	}
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %s not found", apperrors.ErrValidation, req.ClientID)
		}
		return nil, fmt.Errorf("failed to validate client: %w", err)
	}

	splits, err := s.validateSplits(ctx, req.Splits)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.BaseCurrency
	}
	rate, err := s.rateToILS(ctx, currency)
	if err != nil {
		return nil, err
	}

	vatRate := s.defaultVAT
	if req.VATRate != nil {
		vatRate = *req.VATRate
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      req.ClientID,
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      currency,
		AmountILS:     req.Amount.Mul(rate),
		IncludesVAT:   req.IncludesVAT,
		VATRate:       vatRate,
		DateIssued:    req.DateIssued,
		DueDate:       req.DueDate,
		Status:        domain.InvoiceDraft,
		Splits:        splits,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "failed to save invoice")
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &invoice, nil
}

// UpdateInvoice applies a partial update. Status may only move forward
// through DRAFT -> SENT -> PAID; moving to PAID stamps the paid date when the
// request carries none.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	if req.Status != nil && *req.Status != invoice.Status {
		newRank, known := statusRank[*req.Status]
		if !known {
			return nil, fmt.Errorf("%w: '%s' is not a storable status", apperrors.ErrStatusTransition, *req.Status)
		}
		if newRank < statusRank[invoice.Status] {
			return nil, fmt.Errorf("%w: cannot move invoice from %s back to %s", apperrors.ErrStatusTransition, invoice.Status, *req.Status)
		}
		invoice.Status = *req.Status
		if invoice.Status == domain.InvoicePaid && invoice.DatePaid == nil && req.DatePaid == nil {
			today := time.Now()
			invoice.DatePaid = &today
		}
	}
	if req.DatePaid != nil {
		invoice.DatePaid = req.DatePaid
	}

	if req.InvoiceNumber != nil {
		invoice.InvoiceNumber = *req.InvoiceNumber
	}
	if req.ClientID != nil {
		if _, err := s.clientRepo.FindClientByID(ctx, *req.ClientID); err != nil {
			return nil, fmt.Errorf("%w: client %s not found", apperrors.ErrValidation, *req.ClientID)
		}
		invoice.ClientID = *req.ClientID
	}
	if req.Description != nil {
		invoice.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: invoice amount must be positive", apperrors.ErrValidation)
		}
		rate, err := s.rateToILS(ctx, invoice.Currency)
		if err != nil {
			return nil, err
		}
		invoice.Amount = *req.Amount
		invoice.AmountILS = req.Amount.Mul(rate)
	}
	if req.IncludesVAT != nil {
		invoice.IncludesVAT = *req.IncludesVAT
	}
	if req.VATRate != nil {
		invoice.VATRate = *req.VATRate
	}
	if req.DateIssued != nil {
		invoice.DateIssued = *req.DateIssued
	}
	if req.DueDate != nil {
		invoice.DueDate = *req.DueDate
	}
	if req.Splits != nil {
		splits, err := s.validateSplits(ctx, req.Splits)
		if err != nil {
			return nil, err
		}
		invoice.Splits = splits
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = updaterID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "failed to update invoice")
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}
	return invoice, nil
}

// DeleteInvoice soft-deletes an invoice.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, invoiceID string, updaterID string) error {
	if err := s.invoiceRepo.SoftDeleteInvoice(ctx, invoiceID, updaterID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	return nil
}

// GetInvoiceByID retrieves a single invoice with its splits.
func (s *InvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice by id: %w", err)
	}
	return invoice, nil
}

// ListInvoices retrieves invoices matching the filter. Filtering by OVERDUE
// queries stored SENT invoices and keeps those past their due date, since
// OVERDUE is never stored.
func (s *InvoiceService) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, error) {
	if filter.Year == 0 {
		filter.Year = time.Now().Year()
	}

	wantOverdue := filter.Status == domain.InvoiceOverdue
	if wantOverdue {
		filter.Status = domain.InvoiceSent
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if wantOverdue {
		now := time.Now()
		overdue := make([]domain.Invoice, 0, len(invoices))
		for _, inv := range invoices {
			if inv.EffectiveStatus(now) == domain.InvoiceOverdue {
				overdue = append(overdue, inv)
			}
		}
		return overdue, nil
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}
