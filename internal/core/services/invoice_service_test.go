package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/core/services"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockClientRepo  *MockClientRepository
	mockPartnerRepo *MockPartnerRepository
	mockRateRepo    *MockExchangeRateRepository
	service         *services.InvoiceService

	clientID  string
	partnerA  string
	partnerB  string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockPartnerRepo = new(MockPartnerRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewInvoiceService(
		suite.mockInvoiceRepo,
		suite.mockClientRepo,
		suite.mockPartnerRepo,
		suite.mockRateRepo,
		decimal.NewFromFloat(0.18),
	)

	suite.clientID = uuid.NewString()
	suite.partnerA = uuid.NewString()
	suite.partnerB = uuid.NewString()

	suite.mockClientRepo.On("FindClientByID", mock.Anything, suite.clientID).Return(&domain.Client{ClientID: suite.clientID}, nil).Maybe()
	suite.mockPartnerRepo.On("FindPartnerByID", mock.Anything, suite.partnerA).Return(&domain.Partner{PartnerID: suite.partnerA}, nil).Maybe()
	suite.mockPartnerRepo.On("FindPartnerByID", mock.Anything, suite.partnerB).Return(&domain.Partner{PartnerID: suite.partnerB}, nil).Maybe()
}

func (suite *InvoiceServiceTestSuite) validCreateRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2024-001",
		ClientID:      suite.clientID,
		Amount:        decimal.NewFromInt(11800),
		IncludesVAT:   true,
		DateIssued:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Splits: []dto.InvoiceSplitRequest{
			{PartnerID: suite.partnerA, Percent: decimal.NewFromInt(60)},
			{PartnerID: suite.partnerB, Percent: decimal.NewFromInt(40)},
		},
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_StartsAsDraftWithDefaultVAT() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, suite.validCreateRequest(), "creator-1")

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceDraft, invoice.Status)
	suite.True(invoice.VATRate.Equal(decimal.NewFromFloat(0.18)))
	suite.True(invoice.AmountILS.Equal(decimal.NewFromInt(11800)))
	suite.Len(invoice.Splits, 2)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RejectsSplitsNotSummingTo100() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Splits[1].Percent = decimal.NewFromInt(50)

	invoice, err := suite.service.CreateInvoice(ctx, req, "creator-1")

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RejectsDuplicateSplitPartner() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.Splits[1].PartnerID = suite.partnerA
	req.Splits[0].Percent = decimal.NewFromInt(50)
	req.Splits[1].Percent = decimal.NewFromInt(50)

	_, err := suite.service.CreateInvoice(ctx, req, "creator-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_ForwardTransitionSucceeds() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		ClientID:  suite.clientID,
		Status:    domain.InvoiceDraft,
		Amount:    decimal.NewFromInt(1000),
		AmountILS: decimal.NewFromInt(1000),
		Currency:  domain.BaseCurrency,
	}
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	sent := domain.InvoiceSent
	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{Status: &sent}, "updater-1")

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceSent, invoice.Status)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_BackwardTransitionRejected() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		Status:    domain.InvoicePaid,
		Currency:  domain.BaseCurrency,
	}
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()

	draft := domain.InvoiceDraft
	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{Status: &draft}, "updater-1")

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrStatusTransition)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_MarkingPaidStampsDatePaid() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		Status:    domain.InvoiceSent,
		Currency:  domain.BaseCurrency,
	}
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	paid := domain.InvoicePaid
	invoice, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{Status: &paid}, "updater-1")

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, invoice.Status)
	suite.Require().NotNil(invoice.DatePaid)
	suite.WithinDuration(time.Now(), *invoice.DatePaid, time.Minute)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_OverdueIsNotStorable() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{
		InvoiceID: invoiceID,
		Status:    domain.InvoiceSent,
		Currency:  domain.BaseCurrency,
	}
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()

	overdue := domain.InvoiceOverdue
	_, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{Status: &overdue}, "updater-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrStatusTransition)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_OverdueFilterDerivesFromSent() {
	ctx := context.Background()
	now := time.Now()
	pastDue := now.AddDate(0, -1, 0)
	futureDue := now.AddDate(0, 1, 0)

	stored := []domain.Invoice{
		{InvoiceID: "late", Status: domain.InvoiceSent, DueDate: pastDue},
		{InvoiceID: "on-time", Status: domain.InvoiceSent, DueDate: futureDue},
	}
	suite.mockInvoiceRepo.On("ListInvoices", ctx, mock.MatchedBy(func(f portsrepo.InvoiceListFilter) bool {
		return f.Status == domain.InvoiceSent
	})).Return(stored, nil).Once()

	invoices, err := suite.service.ListInvoices(ctx, portsrepo.InvoiceListFilter{Year: now.Year(), Status: domain.InvoiceOverdue})

	suite.Require().NoError(err)
	suite.Require().Len(invoices, 1)
	suite.Equal("late", invoices[0].InvoiceID)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
