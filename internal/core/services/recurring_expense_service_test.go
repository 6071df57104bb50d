package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/automationsflow/afbooks/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecurringExpenseServiceTestSuite struct {
	suite.Suite
	mockRecurringRepo *MockRecurringExpenseRepository
	mockExpenseRepo   *MockExpenseRepository
	mockCategoryRepo  *MockCategoryRepository
	mockAccountRepo   *MockAccountRepository
	mockRateRepo      *MockExchangeRateRepository
	service           *services.RecurringExpenseService
}

func (suite *RecurringExpenseServiceTestSuite) SetupTest() {
	suite.mockRecurringRepo = new(MockRecurringExpenseRepository)
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewRecurringExpenseService(
		suite.mockRecurringRepo,
		suite.mockExpenseRepo,
		suite.mockCategoryRepo,
		suite.mockAccountRepo,
		suite.mockRateRepo,
	)
}

func monthlyTemplate(day int, start time.Time) domain.RecurringExpense {
	return domain.RecurringExpense{
		RecurringExpenseID: uuid.NewString(),
		SupplierName:       "Landlord",
		Amount:             decimal.NewFromInt(4000),
		Currency:           domain.BaseCurrency,
		CategoryID:         uuid.NewString(),
		AccountID:          uuid.NewString(),
		AppliedTaxPercent:  decimal.NewFromInt(1),
		RecurrenceDay:      day,
		StartDate:          start,
		IsActive:           true,
	}
}

func (suite *RecurringExpenseServiceTestSuite) TestMaterializeDue_GeneratesEveryDueMonth() {
	ctx := context.Background()
	template := monthlyTemplate(5, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	suite.mockRecurringRepo.On("ListActiveRecurringExpenses", ctx).Return([]domain.RecurringExpense{template}, nil).Once()
	suite.mockExpenseRepo.On("ExistsMaterializedExpense", ctx, template.RecurringExpenseID, 2024, mock.AnythingOfType("time.Month")).Return(false, nil).Times(3)

	var saved []domain.Expense
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Run(func(args mock.Arguments) {
		saved = append(saved, args.Get(1).(domain.Expense))
	}).Return(nil).Times(3)
	suite.mockRecurringRepo.On("MarkGenerated", ctx, template.RecurringExpenseID, mock.AnythingOfType("time.Time"), now).Return(nil).Times(3)

	generated, err := suite.service.MaterializeDue(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(3, generated)
	suite.Require().Len(saved, 3)
	suite.Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), saved[0].Date)
	suite.Equal(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), saved[1].Date)
	suite.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), saved[2].Date)
	for _, e := range saved {
		suite.Equal(template.RecurringExpenseID, e.RecurringExpenseID)
		suite.Empty(e.CreatedBy, "materialized rows are system-generated")
	}
	suite.mockExpenseRepo.AssertExpectations(suite.T())
	suite.mockRecurringRepo.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestMaterializeDue_SkipsAlreadyMaterializedMonths() {
	ctx := context.Background()
	template := monthlyTemplate(5, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	suite.mockRecurringRepo.On("ListActiveRecurringExpenses", ctx).Return([]domain.RecurringExpense{template}, nil).Once()
	suite.mockExpenseRepo.On("ExistsMaterializedExpense", ctx, template.RecurringExpenseID, 2024, time.January).Return(true, nil).Once()
	suite.mockExpenseRepo.On("ExistsMaterializedExpense", ctx, template.RecurringExpenseID, 2024, time.February).Return(true, nil).Once()
	suite.mockRecurringRepo.On("MarkGenerated", ctx, template.RecurringExpenseID, mock.AnythingOfType("time.Time"), now).Return(nil).Twice()

	generated, err := suite.service.MaterializeDue(ctx, now)

	suite.Require().NoError(err)
	suite.Zero(generated)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *RecurringExpenseServiceTestSuite) TestMaterializeDue_ResumesAfterLastGeneratedDate() {
	ctx := context.Background()
	template := monthlyTemplate(5, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	last := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	template.LastGeneratedDate = &last
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	suite.mockRecurringRepo.On("ListActiveRecurringExpenses", ctx).Return([]domain.RecurringExpense{template}, nil).Once()
	suite.mockExpenseRepo.On("ExistsMaterializedExpense", ctx, template.RecurringExpenseID, 2024, time.March).Return(false, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Date.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()
	suite.mockRecurringRepo.On("MarkGenerated", ctx, template.RecurringExpenseID, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), now).Return(nil).Once()

	generated, err := suite.service.MaterializeDue(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, generated)
}

func (suite *RecurringExpenseServiceTestSuite) TestMaterializeDue_StopsAtEndDate() {
	ctx := context.Background()
	template := monthlyTemplate(5, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	template.EndDate = &end
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRecurringRepo.On("ListActiveRecurringExpenses", ctx).Return([]domain.RecurringExpense{template}, nil).Once()
	suite.mockExpenseRepo.On("ExistsMaterializedExpense", ctx, template.RecurringExpenseID, 2024, time.January).Return(false, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockRecurringRepo.On("MarkGenerated", ctx, template.RecurringExpenseID, mock.AnythingOfType("time.Time"), now).Return(nil).Once()

	generated, err := suite.service.MaterializeDue(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, generated)
}

func TestRecurringExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringExpenseServiceTestSuite))
}
