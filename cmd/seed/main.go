package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/automationsflow/afbooks/internal/core/domain"
	portsrepo "github.com/automationsflow/afbooks/internal/core/ports/repositories"
	"github.com/automationsflow/afbooks/internal/platform/config"
	"github.com/automationsflow/afbooks/internal/repositories/database/pgsql"
	"github.com/automationsflow/afbooks/pkg/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const seederID = "seed"

// Seeds the reference data the application expects: the two partners, the
// category tree with tax-recognition percentages, the standard accounts,
// sample clients and the hand-maintained exchange rates. The run is
// idempotent; a database that already has partners is left untouched.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		logger.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)

	existing, err := repos.PartnerRepo.ListPartners(ctx)
	if err != nil {
		logger.Error("Failed to check existing partners", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(existing) > 0 {
		logger.Info("Database already seeded, nothing to do")
		return
	}

	if err := seed(ctx, repos, logger); err != nil {
		logger.Error("Seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database seeded successfully")
}

func seed(ctx context.Context, repos portsrepo.RepositoryProvider, logger *slog.Logger) error {
	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     seederID,
		LastUpdatedAt: now,
		LastUpdatedBy: seederID,
	}

	heliID := uuid.NewString()
	shaharID := uuid.NewString()
	partners := []domain.Partner{
		{PartnerID: heliID, Name: "Heli", Email: "heli@automationsflow.com", IconColor: "pink", AuditFields: audit},
		{PartnerID: shaharID, Name: "Shahar", Email: "shahar@automationsflow.com", IconColor: "blue", AuditFields: audit},
	}
	for _, p := range partners {
		if err := repos.PartnerRepo.SavePartner(ctx, p); err != nil {
			return err
		}
	}
	logger.Info("Seeded partners", slog.Int("count", len(partners)))

	full := decimal.NewFromInt(1)
	categories := []domain.Category{
		{Name: "Software Licenses (Production)", ParentCategory: domain.COGS, TaxRecognitionPercent: full, Description: "SaaS tools for client work"},
		{Name: "Subcontractors", ParentCategory: domain.COGS, TaxRecognitionPercent: full, Description: "Freelancers for projects"},
		{Name: "Cloud Infrastructure", ParentCategory: domain.COGS, TaxRecognitionPercent: full, Description: "AWS, GCP, Vercel"},
		{Name: "Marketing & Advertising", ParentCategory: domain.OPEX, TaxRecognitionPercent: full, Description: "Ads and marketing"},
		{Name: "Professional Services", ParentCategory: domain.OPEX, TaxRecognitionPercent: full, Description: "Accountant, lawyer"},
		{Name: "Office Supplies", ParentCategory: domain.OPEX, TaxRecognitionPercent: full, Description: "Equipment"},
		{Name: "Software Licenses (Internal)", ParentCategory: domain.OPEX, TaxRecognitionPercent: full, Description: "Notion, Slack"},
		{Name: "Travel & Transportation", ParentCategory: domain.OPEX, TaxRecognitionPercent: decimal.NewFromFloat(0.45), Description: "45% recognized"},
		{Name: "Car & Fuel", ParentCategory: domain.OPEX, TaxRecognitionPercent: decimal.NewFromFloat(0.45), Description: "45% recognized"},
		{Name: "Home Office - Utilities", ParentCategory: domain.OPEX, TaxRecognitionPercent: decimal.NewFromFloat(0.25), Description: "25% recognized"},
		{Name: "Home Office - Arnona", ParentCategory: domain.OPEX, TaxRecognitionPercent: decimal.NewFromFloat(0.25), Description: "25% recognized"},
		{Name: "Refreshments", ParentCategory: domain.OPEX, TaxRecognitionPercent: decimal.NewFromFloat(0.8), Description: "80% recognized"},
		{Name: "Bank Fees", ParentCategory: domain.Financial, TaxRecognitionPercent: full, Description: "Account fees"},
		{Name: "Credit Card Fees", ParentCategory: domain.Financial, TaxRecognitionPercent: full, Description: "Card fees"},
	}
	for _, c := range categories {
		c.CategoryID = uuid.NewString()
		c.AuditFields = audit
		if err := repos.CategoryRepo.SaveCategory(ctx, c); err != nil {
			return err
		}
	}
	logger.Info("Seeded categories", slog.Int("count", len(categories)))

	accounts := []domain.Account{
		{Name: "Business Bank Account", AccountType: domain.BankTransfer},
		{Name: "Heli Business Card", AccountType: domain.BusinessCredit},
		{Name: "Shahar Business Card", AccountType: domain.BusinessCredit},
		{Name: "Heli Private Card", AccountType: domain.PrivateCredit, PartnerID: heliID},
		{Name: "Shahar Private Card", AccountType: domain.PrivateCredit, PartnerID: shaharID},
	}
	for _, a := range accounts {
		a.AccountID = uuid.NewString()
		a.IsActive = true
		a.AuditFields = audit
		if err := repos.AccountRepo.SaveAccount(ctx, a); err != nil {
			return err
		}
	}
	logger.Info("Seeded accounts", slog.Int("count", len(accounts)))

	clients := []domain.Client{
		{Name: "Acme Corp", ContactInfo: "john@acme.com", LineOfBusiness: "High-Tech", Status: domain.ClientActive},
		{Name: "TechStart Ltd", ContactInfo: "sarah@techstart.io", LineOfBusiness: "High-Tech", Status: domain.ClientActive},
		{Name: "LegalEase", ContactInfo: "info@legalease.co.il", LineOfBusiness: "Legal", Status: domain.ClientActive},
		{Name: "RetailMax", ContactInfo: "+972-50-1234567", LineOfBusiness: "Retail", Status: domain.ClientActive},
		{Name: "DataFlow Systems", ContactInfo: "contact@dataflow.tech", LineOfBusiness: "High-Tech", Status: domain.ClientActive},
	}
	for _, c := range clients {
		c.ClientID = uuid.NewString()
		c.AuditFields = audit
		if err := repos.ClientRepo.SaveClient(ctx, c); err != nil {
			return err
		}
	}
	logger.Info("Seeded clients", slog.Int("count", len(clients)))

	rates := []domain.ExchangeRate{
		{CurrencyCode: "USD", RateToILS: decimal.NewFromFloat(3.65)},
		{CurrencyCode: "EUR", RateToILS: decimal.NewFromFloat(3.95)},
		{CurrencyCode: "GBP", RateToILS: decimal.NewFromFloat(4.55)},
	}
	for _, r := range rates {
		r.AuditFields = audit
		if err := repos.ExchangeRateRepo.UpsertRate(ctx, r); err != nil {
			return err
		}
	}
	logger.Info("Seeded exchange rates", slog.Int("count", len(rates)))

	return nil
}
