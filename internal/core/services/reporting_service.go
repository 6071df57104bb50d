package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	portssvc "github.com/automationsflow/afbooks/internal/core/ports/services"
	"github.com/automationsflow/afbooks/internal/utils/settlement"
)

// reportingService assembles yearly snapshots and runs the settlement engine
// over them. All arithmetic lives in the settlement package; this service
// only fetches and delegates.
type reportingService struct {
	BaseService
	repos portsrepo.RepositoryProvider
	now   func() time.Time
}

// NewReportingService creates a new reporting service.
func NewReportingService(repos portsrepo.RepositoryProvider) portssvc.ReportingSvc {
	return &reportingService{repos: repos, now: time.Now}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// buildSnapshot fetches the six collections for a year concurrently. Any
// fetch failure fails the whole snapshot: the engine must never run over a
// partial record set.
func (s *reportingService) buildSnapshot(ctx context.Context, year int) (settlement.Snapshot, error) {
	snap := settlement.Snapshot{Year: year, AsOf: s.now()}

	var wg sync.WaitGroup
	errs := make([]error, 6)

	wg.Add(6)
	go func() {
		defer wg.Done()
		snap.Invoices, errs[0] = s.repos.InvoiceRepo.ListInvoicesForYear(ctx, year)
	}()
	go func() {
		defer wg.Done()
		snap.Expenses, errs[1] = s.repos.ExpenseRepo.ListExpensesForYear(ctx, year)
	}()
	go func() {
		defer wg.Done()
		snap.Withdrawals, errs[2] = s.repos.WithdrawalRepo.ListWithdrawals(ctx, year, "")
	}()
	go func() {
		defer wg.Done()
		snap.Partners, errs[3] = s.repos.PartnerRepo.ListPartners(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Accounts, errs[4] = s.repos.AccountRepo.ListAccounts(ctx, true)
	}()
	go func() {
		defer wg.Done()
		snap.Categories, errs[5] = s.repos.CategoryRepo.ListCategories(ctx)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return settlement.Snapshot{}, fmt.Errorf("failed to assemble snapshot for %d: %w", year, err)
		}
	}
	return snap, nil
}

// GetSettlementReport computes the full partnership settlement for a year.
func (s *reportingService) GetSettlementReport(ctx context.Context, year int) (*domain.SettlementReport, error) {
	if year == 0 {
		year = s.now().Year()
	}

	snap, err := s.buildSnapshot(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "failed to build settlement snapshot", slog.Int("year", year))
		return nil, err
	}

	report, err := settlement.Compute(snap)
	if err != nil {
		s.LogError(ctx, err, "settlement computation rejected snapshot", slog.Int("year", year))
		return nil, err
	}

	s.LogDebug(ctx, "settlement report generated",
		slog.Int("year", year),
		slog.Int("invoice_count", report.InvoiceCount),
		slog.Int("expense_count", report.ExpenseCount))
	return report, nil
}

// GetAnalyticsReport computes the dashboard chart aggregations for a year.
func (s *reportingService) GetAnalyticsReport(ctx context.Context, year int) (*domain.AnalyticsReport, error) {
	if year == 0 {
		year = s.now().Year()
	}

	snap, err := s.buildSnapshot(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "failed to build analytics snapshot", slog.Int("year", year))
		return nil, err
	}

	clients, err := s.repos.ClientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to list clients for analytics", slog.Int("year", year))
		return nil, fmt.Errorf("failed to assemble snapshot for %d: %w", year, err)
	}

	report, err := settlement.ComputeAnalytics(snap, clients)
	if err != nil {
		s.LogError(ctx, err, "analytics computation rejected snapshot", slog.Int("year", year))
		return nil, err
	}
	return report, nil
}
