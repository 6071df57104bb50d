package domain

import (
	"github.com/shopspring/decimal"
)

// PartnerLedger is the per-partner slice of the settlement report.
type PartnerLedger struct {
	PartnerID string `json:"id"`
	Name      string `json:"name"`

	// Profit sharing
	Revenue decimal.Decimal `json:"revenue"`
	Costs   decimal.Decimal `json:"costs"`
	Profits decimal.Decimal `json:"profits"`

	// Current account (who-owes-whom)
	OutOfPocket      decimal.Decimal `json:"outOfPocket"`
	BenefitsReceived decimal.Decimal `json:"benefitsReceived"`
	CurrentAccount   decimal.Decimal `json:"currentAccount"`

	// Fairness vs the other partner; the two values are always negatives of
	// each other.
	BenefitsVsOther decimal.Decimal `json:"benefitsVsOther"`

	// Final rollup
	Withdrawals  decimal.Decimal `json:"withdrawals"`
	NetAvailable decimal.Decimal `json:"netAvailable"`
}

// OpenInvoiceSummary counts invoices still awaiting payment.
type OpenInvoiceSummary struct {
	Count        int             `json:"count"`
	Total        decimal.Decimal `json:"total"`
	OverdueCount int             `json:"overdueCount"`
	OverdueTotal decimal.Decimal `json:"overdueTotal"`
}

// SettlementReport is the full partnership settlement for one fiscal year.
// All monetary fields are ILS; GrossMargin is in percent units (23.4 means
// 23.4%).
type SettlementReport struct {
	Year int `json:"year"`

	TotalIncome   decimal.Decimal `json:"totalIncome"`
	COGS          decimal.Decimal `json:"cogs"`
	OPEX          decimal.Decimal `json:"opex"`
	Financial     decimal.Decimal `json:"financial"`
	Mixed         decimal.Decimal `json:"mixed"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	GrossMargin   decimal.Decimal `json:"grossMargin"`
	NetProfit     decimal.Decimal `json:"netProfit"`

	// Keyed by partner ID.
	Partners map[string]PartnerLedger `json:"partners"`

	// Positive means the first-configured partner drew more personal benefit.
	BenefitsImbalance decimal.Decimal `json:"benefitsImbalance"`

	OpenInvoices OpenInvoiceSummary `json:"openInvoices"`
	InvoiceCount int                `json:"invoiceCount"`
	ExpenseCount int                `json:"expenseCount"`
}

// MonthlyFlow is one month of the income-vs-expenses series.
type MonthlyFlow struct {
	Month    string          `json:"month"` // "Jan".."Dec"
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// NamedAmount is a generic label/value pair for category and client rollups.
type NamedAmount struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// AnalyticsReport holds the dashboard chart aggregations for one fiscal year.
type AnalyticsReport struct {
	Year               int              `json:"year"`
	MonthlyData        []MonthlyFlow    `json:"monthlyData"`
	CategoryData       []NamedAmount    `json:"categoryData"`       // Top categories by spend
	ParentCategoryData []NamedAmount    `json:"parentCategoryData"` // COGS / OPEX / Financial
	ClientData         []NamedAmount    `json:"clientData"`         // Paid income per client
	Summary            AnalyticsSummary `json:"summary"`
}

// AnalyticsSummary is the headline figures beneath the charts.
type AnalyticsSummary struct {
	TotalIncome        decimal.Decimal `json:"totalIncome"`
	TotalExpenses      decimal.Decimal `json:"totalExpenses"`
	NetProfit          decimal.Decimal `json:"netProfit"`
	AvgMonthlyIncome   decimal.Decimal `json:"avgMonthlyIncome"`
	AvgMonthlyExpenses decimal.Decimal `json:"avgMonthlyExpenses"`
}
