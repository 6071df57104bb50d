package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	portssvc "github.com/automationsflow/afbooks/internal/core/ports/services"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorID string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, invoiceID string, updaterID string) error {
	args := m.Called(ctx, invoiceID, updaterID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Test Suite ---
type InvoiceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceService
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockInvoiceService = new(MockInvoiceService)

	v1 := suite.router.Group("/api/v1")
	registerInvoiceRoutes(v1, suite.mockInvoiceService)
}

func (suite *InvoiceHandlerTestSuite) postJSON(path string, body any, actor string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		req.Header.Set("X-Actor-ID", actor)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *InvoiceHandlerTestSuite) fiftyFiftySplits() []dto.InvoiceSplitRequest {
	return []dto.InvoiceSplitRequest{
		{PartnerID: uuid.NewString(), Percent: decimal.NewFromInt(50)},
		{PartnerID: uuid.NewString(), Percent: decimal.NewFromInt(50)},
	}
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	actor := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2026-001",
		ClientID:      uuid.NewString(),
		Amount:        decimal.NewFromInt(15000),
		DateIssued:    time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		Splits:        suite.fiftyFiftySplits(),
	}

	created := &domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      req.ClientID,
		Amount:        req.Amount,
		Currency:      "ILS",
		AmountILS:     req.Amount,
		VATRate:       decimal.NewFromFloat(0.18),
		DateIssued:    req.DateIssued,
		DueDate:       req.DueDate,
		Status:        domain.InvoiceDraft,
	}
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, mock.AnythingOfType("dto.CreateInvoiceRequest"), actor).
		Return(created, nil).Once()

	w := suite.postJSON("/api/v1/invoices", req, actor)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.InvoiceID, resp.InvoiceID)
	suite.Equal(domain.InvoiceDraft, resp.Status)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_ValidationErrorReturns400() {
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2026-002",
		ClientID:      uuid.NewString(),
		Amount:        decimal.NewFromInt(1000),
		DateIssued:    time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		Splits: []dto.InvoiceSplitRequest{
			{PartnerID: uuid.NewString(), Percent: decimal.NewFromInt(60)},
			{PartnerID: uuid.NewString(), Percent: decimal.NewFromInt(60)},
		},
	}
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: split percents must sum to 100", apperrors.ErrValidation)).Once()

	w := suite.postJSON("/api/v1/invoices", req, "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_MissingSplitsFailsBinding() {
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2026-003",
		ClientID:      uuid.NewString(),
		Amount:        decimal.NewFromInt(1000),
		DateIssued:    time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
	}

	w := suite.postJSON("/api/v1/invoices", req, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_DuplicateNumberReturns409() {
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2026-001",
		ClientID:      uuid.NewString(),
		Amount:        decimal.NewFromInt(1000),
		DateIssued:    time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC),
		Splits:        suite.fiftyFiftySplits(),
	}
	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: invoice number INV-2026-001 already exists", apperrors.ErrDuplicate)).Once()

	w := suite.postJSON("/api/v1/invoices", req, "")

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NotFoundReturns404() {
	invoiceID := uuid.NewString()
	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, invoiceID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_SentPastDueReportsOverdue() {
	invoiceID := uuid.NewString()
	inv := &domain.Invoice{
		InvoiceID:  invoiceID,
		ClientID:   uuid.NewString(),
		Amount:     decimal.NewFromInt(5000),
		AmountILS:  decimal.NewFromInt(5000),
		DateIssued: time.Now().AddDate(0, -2, 0),
		DueDate:    time.Now().AddDate(0, -1, 0),
		Status:     domain.InvoiceSent,
	}
	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, invoiceID).
		Return(inv, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.InvoiceOverdue, resp.Status)
}

func (suite *InvoiceHandlerTestSuite) TestUpdateInvoice_IllegalTransitionReturns422() {
	invoiceID := uuid.NewString()
	draft := domain.InvoiceDraft
	body := dto.UpdateInvoiceRequest{Status: &draft}

	suite.mockInvoiceService.On("UpdateInvoice", mock.Anything, invoiceID, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: cannot move from PAID to DRAFT", apperrors.ErrStatusTransition)).Once()

	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPut, "/api/v1/invoices/"+invoiceID, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_PassesFilterThrough() {
	year := 2026
	clientID := uuid.NewString()
	suite.mockInvoiceService.On("ListInvoices", mock.Anything, portsrepo.InvoiceListFilter{
		Year:     year,
		Status:   domain.InvoiceSent,
		ClientID: clientID,
	}).Return([]domain.Invoice{}, nil).Once()

	url := fmt.Sprintf("/api/v1/invoices?year=%d&status=SENT&clientID=%s", year, clientID)
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestDeleteInvoice_Returns204() {
	invoiceID := uuid.NewString()
	actor := uuid.NewString()
	suite.mockInvoiceService.On("DeleteInvoice", mock.Anything, invoiceID, actor).
		Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/invoices/"+invoiceID, nil)
	req.Header.Set("X-Actor-ID", actor)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func TestInvoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
