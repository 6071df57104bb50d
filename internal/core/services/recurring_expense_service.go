package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringExpenseService manages templates and materializes them into
// concrete expenses on schedule.
type RecurringExpenseService struct {
	BaseService
	recurringRepo portsrepo.RecurringExpenseRepositoryFacade
	expenseRepo   portsrepo.ExpenseRepositoryFacade
	categoryRepo  portsrepo.CategoryReader
	accountRepo   portsrepo.AccountReader
	rateRepo      portsrepo.ExchangeRateReader
}

// NewRecurringExpenseService creates a new RecurringExpenseService.
func NewRecurringExpenseService(
	recurringRepo portsrepo.RecurringExpenseRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	categoryRepo portsrepo.CategoryReader,
	accountRepo portsrepo.AccountReader,
	rateRepo portsrepo.ExchangeRateReader,
) *RecurringExpenseService {
	return &RecurringExpenseService{
		recurringRepo: recurringRepo,
		expenseRepo:   expenseRepo,
		categoryRepo:  categoryRepo,
		accountRepo:   accountRepo,
		rateRepo:      rateRepo,
	}
}

// CreateRecurringExpense persists a new template.
func (s *RecurringExpenseService) CreateRecurringExpense(ctx context.Context, req dto.CreateRecurringExpenseRequest, creatorID string) (*domain.RecurringExpense, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: recurring expense amount must be positive", apperrors.ErrValidation)
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: end date cannot precede start date", apperrors.ErrValidation)
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

	appliedTax := category.TaxRecognitionPercent
	if req.AppliedTaxPercent != nil {
		appliedTax = *req.AppliedTaxPercent
	}

	now := time.Now()
	template := domain.RecurringExpense{
		RecurringExpenseID:   uuid.NewString(),
		SupplierName:         req.SupplierName,
		Amount:               req.Amount,
		Currency:             currency,
		CategoryID:           req.CategoryID,
		AccountID:            req.AccountID,
		BeneficiaryPartnerID: req.BeneficiaryPartnerID,
		AppliedTaxPercent:    appliedTax,
		Notes:                req.Notes,
		RecurrenceDay:        req.RecurrenceDay,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		IsActive:             true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.recurringRepo.SaveRecurringExpense(ctx, template); err != nil {
		s.LogError(ctx, err, "failed to save recurring expense")
		return nil, fmt.Errorf("failed to create recurring expense: %w", err)
	}
	return &template, nil
}

// UpdateRecurringExpense applies a partial update to a template.
func (s *RecurringExpenseService) UpdateRecurringExpense(ctx context.Context, recurringExpenseID string, req dto.UpdateRecurringExpenseRequest, updaterID string) (*domain.RecurringExpense, error) {
	template, err := s.recurringRepo.FindRecurringExpenseByID(ctx, recurringExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find recurring expense %s: %w", recurringExpenseID, err)
	}

	if req.SupplierName != nil {
		template.SupplierName = *req.SupplierName
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: recurring expense amount must be positive", apperrors.ErrValidation)
		}
		template.Amount = *req.Amount
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: category %s not found", apperrors.ErrValidation, *req.CategoryID)
		}
		template.CategoryID = *req.CategoryID
	}
	if req.AccountID != nil {
		if _, err := s.accountRepo.FindAccountByID(ctx, *req.AccountID); err != nil {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, *req.AccountID)
		}
		template.AccountID = *req.AccountID
	}
	if req.BeneficiaryPartnerID != nil {
		template.BeneficiaryPartnerID = *req.BeneficiaryPartnerID
	}
	if req.AppliedTaxPercent != nil {
		template.AppliedTaxPercent = *req.AppliedTaxPercent
	}
	if req.Notes != nil {
		template.Notes = *req.Notes
	}
	if req.RecurrenceDay != nil {
		template.RecurrenceDay = *req.RecurrenceDay
	}
	if req.EndDate != nil {
		template.EndDate = req.EndDate
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	template.LastUpdatedAt = time.Now()
	template.LastUpdatedBy = updaterID

	if err := s.recurringRepo.UpdateRecurringExpense(ctx, *template); err != nil {
		s.LogError(ctx, err, "failed to update recurring expense")
		return nil, fmt.Errorf("failed to update recurring expense: %w", err)
	}
	return template, nil
}

// DeleteRecurringExpense soft-deletes a template. Expenses it already
// generated stay untouched.
func (s *RecurringExpenseService) DeleteRecurringExpense(ctx context.Context, recurringExpenseID string, updaterID string) error {
	if err := s.recurringRepo.SoftDeleteRecurringExpense(ctx, recurringExpenseID, updaterID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete recurring expense %s: %w", recurringExpenseID, err)
	}
	return nil
}

// GetRecurringExpenseByID retrieves a single template.
func (s *RecurringExpenseService) GetRecurringExpenseByID(ctx context.Context, recurringExpenseID string) (*domain.RecurringExpense, error) {
	template, err := s.recurringRepo.FindRecurringExpenseByID(ctx, recurringExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recurring expense by id: %w", err)
	}
	return template, nil
}

// ListRecurringExpenses retrieves all active templates.
func (s *RecurringExpenseService) ListRecurringExpenses(ctx context.Context) ([]domain.RecurringExpense, error) {
	templates, err := s.recurringRepo.ListActiveRecurringExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	if templates == nil {
		return []domain.RecurringExpense{}, nil
	}
	return templates, nil
}

// MaterializeDue walks every active template and generates the expenses due
// on or before now. A month already holding a materialized expense for the
// template is skipped and marked, so the run is idempotent. One failing
// template does not stop the others.
func (s *RecurringExpenseService) MaterializeDue(ctx context.Context, now time.Time) (int, error) {
	templates, err := s.recurringRepo.ListActiveRecurringExpenses(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list recurring expenses for materialization: %w", err)
	}

	generated := 0
	var firstErr error
	for i := range templates {
		n, err := s.materializeTemplate(ctx, &templates[i], now)
		generated += n
		if err != nil {
			s.LogError(ctx, err, "failed to materialize recurring expense",
				slog.String("recurring_expense_id", templates[i].RecurringExpenseID))
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if generated > 0 {
		s.LogInfo(ctx, "materialized recurring expenses", slog.Int("generated", generated))
	}
	return generated, firstErr
}

func (s *RecurringExpenseService) materializeTemplate(ctx context.Context, template *domain.RecurringExpense, now time.Time) (int, error) {
	rate := decimal.NewFromInt(1)
	if template.Currency != domain.BaseCurrency {
		stored, err := s.rateRepo.FindRateByCurrency(ctx, template.Currency)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve rate for template currency '%s': %w", template.Currency, err)
		}
		rate = stored.RateToILS
	}

	generated := 0
	for {
		due, ok := template.NextDueDate()
		if !ok || due.After(now) {
			break
		}

		exists, err := s.expenseRepo.ExistsMaterializedExpense(ctx, template.RecurringExpenseID, due.Year(), due.Month())
		if err != nil {
			return generated, fmt.Errorf("failed to check materialized month: %w", err)
		}
		if !exists {
			expense := domain.Expense{
				ExpenseID:            uuid.NewString(),
				Date:                 due,
				SupplierName:         template.SupplierName,
				Amount:               template.Amount,
				Currency:             template.Currency,
				ExchangeRateToILS:    rate,
				AmountILS:            template.Amount.Mul(rate),
				CategoryID:           template.CategoryID,
				AccountID:            template.AccountID,
				BeneficiaryPartnerID: template.BeneficiaryPartnerID,
				AppliedTaxPercent:    template.AppliedTaxPercent,
				Notes:                template.Notes,
				RecurringExpenseID:   template.RecurringExpenseID,
				AuditFields: domain.AuditFields{
					// CreatedBy stays empty: the row is system-generated.
					CreatedAt:     now,
					LastUpdatedAt: now,
				},
			}
			if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
				return generated, fmt.Errorf("failed to save materialized expense: %w", err)
			}
			generated++
		}

		if err := s.recurringRepo.MarkGenerated(ctx, template.RecurringExpenseID, due, now); err != nil {
			return generated, fmt.Errorf("failed to mark template generated: %w", err)
		}
		template.LastGeneratedDate = &due
	}
	return generated, nil
}
