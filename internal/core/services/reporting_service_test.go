package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	portssvc "github.com/automationsflow/afbooks/internal/core/ports/services"
	"github.com/automationsflow/afbooks/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockPartnerRepo    *MockPartnerRepository
	mockAccountRepo    *MockAccountRepository
	mockCategoryRepo   *MockCategoryRepository
	mockClientRepo     *MockClientRepository
	mockExpenseRepo    *MockExpenseRepository
	mockInvoiceRepo    *MockInvoiceRepository
	mockWithdrawalRepo *MockWithdrawalRepository
	service            portssvc.ReportingSvc

	partnerA domain.Partner
	partnerB domain.Partner
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockPartnerRepo = new(MockPartnerRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockWithdrawalRepo = new(MockWithdrawalRepository)

	repos := portsrepo.RepositoryProvider{
		PartnerRepo:    suite.mockPartnerRepo,
		AccountRepo:    suite.mockAccountRepo,
		CategoryRepo:   suite.mockCategoryRepo,
		ClientRepo:     suite.mockClientRepo,
		ExpenseRepo:    suite.mockExpenseRepo,
		InvoiceRepo:    suite.mockInvoiceRepo,
		WithdrawalRepo: suite.mockWithdrawalRepo,
	}
	suite.service = services.NewReportingService(repos)

	suite.partnerA = domain.Partner{PartnerID: uuid.NewString(), Name: "Heli"}
	suite.partnerB = domain.Partner{PartnerID: uuid.NewString(), Name: "Shahar"}
}

func (suite *ReportingServiceTestSuite) expectEmptyYear(year int) {
	suite.mockInvoiceRepo.On("ListInvoicesForYear", mock.Anything, year).Return([]domain.Invoice{}, nil)
	suite.mockExpenseRepo.On("ListExpensesForYear", mock.Anything, year).Return([]domain.Expense{}, nil)
	suite.mockWithdrawalRepo.On("ListWithdrawals", mock.Anything, year, "").Return([]domain.Withdrawal{}, nil)
	suite.mockPartnerRepo.On("ListPartners", mock.Anything).Return([]domain.Partner{suite.partnerA, suite.partnerB}, nil)
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, true).Return([]domain.Account{}, nil)
	suite.mockCategoryRepo.On("ListCategories", mock.Anything).Return([]domain.Category{}, nil)
}

func (suite *ReportingServiceTestSuite) TestGetSettlementReport_EmptyYearYieldsZeroReport() {
	ctx := context.Background()
	suite.expectEmptyYear(2024)

	report, err := suite.service.GetSettlementReport(ctx, 2024)

	suite.Require().NoError(err)
	suite.Equal(2024, report.Year)
	suite.True(report.TotalIncome.IsZero())
	suite.True(report.NetProfit.IsZero())
	suite.Require().Len(report.Partners, 2)
	suite.True(report.Partners[suite.partnerA.PartnerID].NetAvailable.IsZero())
}

func (suite *ReportingServiceTestSuite) TestGetSettlementReport_FailsClosedOnFetchError() {
	ctx := context.Background()
	year := 2024
	fetchErr := assert.AnError

	suite.mockInvoiceRepo.On("ListInvoicesForYear", mock.Anything, year).Return(nil, fetchErr)
	suite.mockExpenseRepo.On("ListExpensesForYear", mock.Anything, year).Return([]domain.Expense{}, nil)
	suite.mockWithdrawalRepo.On("ListWithdrawals", mock.Anything, year, "").Return([]domain.Withdrawal{}, nil)
	suite.mockPartnerRepo.On("ListPartners", mock.Anything).Return([]domain.Partner{suite.partnerA, suite.partnerB}, nil)
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, true).Return([]domain.Account{}, nil)
	suite.mockCategoryRepo.On("ListCategories", mock.Anything).Return([]domain.Category{}, nil)

	report, err := suite.service.GetSettlementReport(ctx, year)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, fetchErr)
}

func (suite *ReportingServiceTestSuite) TestGetSettlementReport_RejectsWrongPartnerCount() {
	ctx := context.Background()
	year := 2024

	suite.mockInvoiceRepo.On("ListInvoicesForYear", mock.Anything, year).Return([]domain.Invoice{}, nil)
	suite.mockExpenseRepo.On("ListExpensesForYear", mock.Anything, year).Return([]domain.Expense{}, nil)
	suite.mockWithdrawalRepo.On("ListWithdrawals", mock.Anything, year, "").Return([]domain.Withdrawal{}, nil)
	suite.mockPartnerRepo.On("ListPartners", mock.Anything).Return([]domain.Partner{suite.partnerA}, nil)
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, true).Return([]domain.Account{}, nil)
	suite.mockCategoryRepo.On("ListCategories", mock.Anything).Return([]domain.Category{}, nil)

	report, err := suite.service.GetSettlementReport(ctx, year)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrPartnerCardinality)
}

func (suite *ReportingServiceTestSuite) TestGetSettlementReport_PaidInvoiceFlowsThrough() {
	ctx := context.Background()
	year := 2024
	paid := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	invoices := []domain.Invoice{{
		InvoiceID:   uuid.NewString(),
		Status:      domain.InvoicePaid,
		AmountILS:   decimal.NewFromInt(11800),
		IncludesVAT: true,
		VATRate:     decimal.NewFromFloat(0.18),
		DatePaid:    &paid,
		Splits: []domain.InvoiceSplit{
			{PartnerID: suite.partnerA.PartnerID, Percent: decimal.NewFromInt(50)},
			{PartnerID: suite.partnerB.PartnerID, Percent: decimal.NewFromInt(50)},
		},
	}}

	suite.mockInvoiceRepo.On("ListInvoicesForYear", mock.Anything, year).Return(invoices, nil)
	suite.mockExpenseRepo.On("ListExpensesForYear", mock.Anything, year).Return([]domain.Expense{}, nil)
	suite.mockWithdrawalRepo.On("ListWithdrawals", mock.Anything, year, "").Return([]domain.Withdrawal{}, nil)
	suite.mockPartnerRepo.On("ListPartners", mock.Anything).Return([]domain.Partner{suite.partnerA, suite.partnerB}, nil)
	suite.mockAccountRepo.On("ListAccounts", mock.Anything, true).Return([]domain.Account{}, nil)
	suite.mockCategoryRepo.On("ListCategories", mock.Anything).Return([]domain.Category{}, nil)

	report, err := suite.service.GetSettlementReport(ctx, year)

	suite.Require().NoError(err)
	suite.True(report.TotalIncome.Equal(decimal.NewFromInt(11800)))
	// 11800 / 1.18 = 10000 net, halved per split
	suite.True(report.Partners[suite.partnerA.PartnerID].Revenue.Equal(decimal.NewFromInt(5000)))
}

func (suite *ReportingServiceTestSuite) TestGetAnalyticsReport_FailsClosedOnClientFetchError() {
	ctx := context.Background()
	suite.expectEmptyYear(2024)
	suite.mockClientRepo.On("ListClients", mock.Anything).Return(nil, assert.AnError)

	report, err := suite.service.GetAnalyticsReport(ctx, 2024)

	suite.Require().Error(err)
	suite.Nil(report)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
