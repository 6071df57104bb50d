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

// ExpenseService provides business logic for expenses, including ILS
// conversion at recording time.
type ExpenseService struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	categoryRepo portsrepo.CategoryReader
	accountRepo  portsrepo.AccountReader
	rateRepo     portsrepo.ExchangeRateReader
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	categoryRepo portsrepo.CategoryReader,
	accountRepo portsrepo.AccountReader,
	rateRepo portsrepo.ExchangeRateReader,
) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		accountRepo:  accountRepo,
		rateRepo:     rateRepo,
	}
}

// rateToILS resolves the conversion rate for a currency. The base currency
// is always 1.
func (s *ExpenseService) rateToILS(ctx context.Context, currency string) (decimal.Decimal, error) {
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

// CreateExpense records a new expense. The ILS amount is derived once here
// from the stored rate; later rate changes never touch existing records.
func (s *ExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorID string) (*domain.Expense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s not found", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, fmt.Errorf("failed to validate category: %w", err)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, req.AccountID)
		}
		return nil, fmt.Errorf("failed to validate account: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.BaseCurrency
	}
	rate, err := s.rateToILS(ctx, currency)
	if err != nil {
		return nil, err
	}

	appliedTax := category.TaxRecognitionPercent
	if req.AppliedTaxPercent != nil {
		appliedTax = *req.AppliedTaxPercent
	}

	beneficiary := ""
	if req.BeneficiaryPartnerID != nil {
		beneficiary = *req.BeneficiaryPartnerID
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:            uuid.NewString(),
		Date:                 req.Date,
		SupplierName:         req.SupplierName,
		Amount:               req.Amount,
		Currency:             currency,
		ExchangeRateToILS:    rate,
		AmountILS:            req.Amount.Mul(rate),
		CategoryID:           req.CategoryID,
		AccountID:            req.AccountID,
		BeneficiaryPartnerID: beneficiary,
		AppliedTaxPercent:    appliedTax,
		ClientID:             req.ClientID,
		Notes:                req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "failed to save expense")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return &expense, nil
}

// UpdateExpense applies a partial update. Amount changes re-derive the ILS
// amount with the rate already stored on the record.
func (s *ExpenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, updaterID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.SupplierName != nil {
		expense.SupplierName = *req.SupplierName
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
		expense.AmountILS = req.Amount.Mul(expense.ExchangeRateToILS)
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: category %s not found", apperrors.ErrValidation, *req.CategoryID)
		}
		expense.CategoryID = *req.CategoryID
	}
	if req.AccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.AccountID); err != nil {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, *req.AccountID)
		}
		expense.AccountID = *req.AccountID
	}
	if req.BeneficiaryPartnerID != nil {
		expense.BeneficiaryPartnerID = *req.BeneficiaryPartnerID
	}
	if req.AppliedTaxPercent != nil {
		expense.AppliedTaxPercent = *req.AppliedTaxPercent
	}
	if req.ClientID != nil {
		expense.ClientID = *req.ClientID
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = updaterID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "failed to update expense")
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

// DeleteExpense soft-deletes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string, updaterID string) error {
	if err := s.expenseRepo.SoftDeleteExpense(ctx, expenseID, updaterID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	return nil
}

// GetExpenseByID retrieves a single expense.
func (s *ExpenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense by id: %w", err)
	}
	return expense, nil
}

// ListExpenses retrieves expenses matching the filter.
func (s *ExpenseService) ListExpenses(ctx context.Context, filter portsrepo.ExpenseListFilter) ([]domain.Expense, error) {
	if filter.Year == 0 {
		filter.Year = time.Now().Year()
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}
