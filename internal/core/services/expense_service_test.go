package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/core/services"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo  *MockExpenseRepository
	mockCategoryRepo *MockCategoryRepository
	mockAccountRepo  *MockAccountRepository
	mockRateRepo     *MockExchangeRateRepository
	service          *services.ExpenseService

	categoryID string
	accountID  string
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockCategoryRepo, suite.mockAccountRepo, suite.mockRateRepo)

	suite.categoryID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *ExpenseServiceTestSuite) expectRefLookups() {
	category := &domain.Category{
		CategoryID:            suite.categoryID,
		Name:                  "Software",
		ParentCategory:        domain.OPEX,
		TaxRecognitionPercent: decimal.NewFromFloat(0.66),
	}
	suite.mockCategoryRepo.On("FindCategoryByID", mock.Anything, suite.categoryID).Return(category, nil)
	suite.mockAccountRepo.On("FindAccountByID", mock.Anything, suite.accountID).Return(&domain.Account{AccountID: suite.accountID}, nil)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_ForeignCurrencyDerivesILSAmount() {
	ctx := context.Background()
	suite.expectRefLookups()
	suite.mockRateRepo.On("FindRateByCurrency", ctx, "USD").Return(&domain.ExchangeRate{
		CurrencyCode: "USD",
		RateToILS:    decimal.NewFromFloat(3.65),
	}, nil).Once()

	var saved domain.Expense
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Expense)
	}).Return(nil).Once()

	req := dto.CreateExpenseRequest{
		Date:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		SupplierName: "AWS",
		Amount:       decimal.NewFromInt(100),
		Currency:     "USD",
		CategoryID:   suite.categoryID,
		AccountID:    suite.accountID,
	}
	expense, err := suite.service.CreateExpense(ctx, req, "creator-1")

	suite.Require().NoError(err)
	suite.True(expense.AmountILS.Equal(decimal.NewFromInt(365)), "expected 365, got %s", expense.AmountILS)
	suite.True(expense.ExchangeRateToILS.Equal(decimal.NewFromFloat(3.65)))
	suite.True(saved.AmountILS.Equal(decimal.NewFromInt(365)))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_BaseCurrencySkipsRateLookup() {
	ctx := context.Background()
	suite.expectRefLookups()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	req := dto.CreateExpenseRequest{
		Date:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		SupplierName: "Office Depot",
		Amount:       decimal.NewFromInt(250),
		CategoryID:   suite.categoryID,
		AccountID:    suite.accountID,
	}
	expense, err := suite.service.CreateExpense(ctx, req, "creator-1")

	suite.Require().NoError(err)
	suite.Equal(domain.BaseCurrency, expense.Currency)
	suite.True(expense.AmountILS.Equal(decimal.NewFromInt(250)))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRateByCurrency", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_DefaultsTaxPercentFromCategory() {
	ctx := context.Background()
	suite.expectRefLookups()

	var saved domain.Expense
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Expense)
	}).Return(nil).Once()

	req := dto.CreateExpenseRequest{
		Date:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		SupplierName: "Zoom",
		Amount:       decimal.NewFromInt(50),
		CategoryID:   suite.categoryID,
		AccountID:    suite.accountID,
	}
	_, err := suite.service.CreateExpense(ctx, req, "creator-1")

	suite.Require().NoError(err)
	suite.True(saved.AppliedTaxPercent.Equal(decimal.NewFromFloat(0.66)))
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_MissingRateFailsValidation() {
	ctx := context.Background()
	suite.expectRefLookups()
	suite.mockRateRepo.On("FindRateByCurrency", ctx, "CHF").Return(nil, apperrors.ErrNotFound).Once()

	req := dto.CreateExpenseRequest{
		Date:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		SupplierName: "Proton",
		Amount:       decimal.NewFromInt(10),
		Currency:     "CHF",
		CategoryID:   suite.categoryID,
		AccountID:    suite.accountID,
	}
	expense, err := suite.service.CreateExpense(ctx, req, "creator-1")

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_AmountChangeUsesStoredRate() {
	ctx := context.Background()
	expenseID := uuid.NewString()
	existing := &domain.Expense{
		ExpenseID:         expenseID,
		Amount:            decimal.NewFromInt(100),
		Currency:          "USD",
		ExchangeRateToILS: decimal.NewFromFloat(3.65),
		AmountILS:         decimal.NewFromInt(365),
		CategoryID:        suite.categoryID,
		AccountID:         suite.accountID,
	}
	suite.mockExpenseRepo.On("FindExpenseByID", ctx, expenseID).Return(existing, nil).Once()

	var updated domain.Expense
	suite.mockExpenseRepo.On("UpdateExpense", ctx, mock.AnythingOfType("domain.Expense")).Run(func(args mock.Arguments) {
		updated = args.Get(1).(domain.Expense)
	}).Return(nil).Once()

	newAmount := decimal.NewFromInt(200)
	_, err := suite.service.UpdateExpense(ctx, expenseID, dto.UpdateExpenseRequest{Amount: &newAmount}, "updater-1")

	suite.Require().NoError(err)
	suite.True(updated.AmountILS.Equal(decimal.NewFromInt(730)), "stored rate must drive the new ILS amount, got %s", updated.AmountILS)
	// No fresh rate lookup: the record's rate stays authoritative.
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRateByCurrency", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsNonPositiveAmount() {
	ctx := context.Background()

	req := dto.CreateExpenseRequest{
		Date:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		SupplierName: "Nobody",
		Amount:       decimal.Zero,
		CategoryID:   suite.categoryID,
		AccountID:    suite.accountID,
	}
	_, err := suite.service.CreateExpense(ctx, req, "creator-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
