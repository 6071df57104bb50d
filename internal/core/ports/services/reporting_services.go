package services

import (
	"context"

	"github.com/automationsflow/afbooks/internal/core/domain"
)

// ReportingSvc assembles the settlement and analytics reports for a fiscal
// year. Implementations fetch the year's data, run the settlement engine and
// return its output untouched.
type ReportingSvc interface {
	// GetSettlementReport computes the full partnership settlement for the
	// given year.
	GetSettlementReport(ctx context.Context, year int) (*domain.SettlementReport, error)

	// GetAnalyticsReport computes the dashboard chart aggregations for the
	// given year.
	GetAnalyticsReport(ctx context.Context, year int) (*domain.AnalyticsReport, error)
}
