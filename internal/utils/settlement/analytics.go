package settlement

import (
	"fmt"
	"sort"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

var monthNames = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

const topCategoryCount = 10

// ComputeAnalytics derives the dashboard chart aggregations for one fiscal
// year. Expenses run through the same tax-only filter as the settlement
// report; income counts paid invoices bucketed by payment date (falling back
// to issue date).
func ComputeAnalytics(snap Snapshot, clients []domain.Client) (*domain.AnalyticsReport, error) {
	if err := snap.validate(); err != nil {
		return nil, err
	}
	if clients == nil {
		return nil, fmt.Errorf("%w: clients", apperrors.ErrIncompleteSnapshot)
	}

	owners := accountOwners(snap.Accounts)
	parents := parentCategories(snap.Categories)
	businessExpenses := BusinessExpenses(snap.Expenses, owners)

	categoryNames := make(map[string]string, len(snap.Categories))
	for _, c := range snap.Categories {
		categoryNames[c.CategoryID] = c.Name
	}
	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ClientID] = c.Name
	}

	var monthlyIncome, monthlyExpenses [12]decimal.Decimal
	totalIncome := decimal.Zero
	clientIncome := map[string]decimal.Decimal{}
	for _, inv := range snap.Invoices {
		if inv.Status != domain.InvoicePaid {
			continue
		}
		when := inv.DateIssued
		if inv.DatePaid != nil {
			when = *inv.DatePaid
		}
		m := int(when.Month()) - 1
		monthlyIncome[m] = monthlyIncome[m].Add(inv.AmountILS)
		totalIncome = totalIncome.Add(inv.AmountILS)
		clientIncome[inv.ClientID] = clientIncome[inv.ClientID].Add(inv.AmountILS)
	}

	totalExpenses := decimal.Zero
	categorySpend := map[string]decimal.Decimal{}
	parentSpend := map[domain.ParentCategory]decimal.Decimal{
		domain.COGS: decimal.Zero, domain.OPEX: decimal.Zero, domain.Financial: decimal.Zero,
	}
	for _, e := range businessExpenses {
		m := int(e.Date.Month()) - 1
		monthlyExpenses[m] = monthlyExpenses[m].Add(e.AmountILS)
		totalExpenses = totalExpenses.Add(e.AmountILS)

		name, ok := categoryNames[e.CategoryID]
		if !ok {
			name = "Unknown"
		}
		categorySpend[name] = categorySpend[name].Add(e.AmountILS)

		parent, ok := parents[e.CategoryID]
		if !ok {
			parent = domain.OPEX
		}
		if _, tracked := parentSpend[parent]; tracked {
			parentSpend[parent] = parentSpend[parent].Add(e.AmountILS)
		}
	}

	monthly := make([]domain.MonthlyFlow, 12)
	for i, name := range monthNames {
		monthly[i] = domain.MonthlyFlow{
			Month:    name,
			Income:   monthlyIncome[i],
			Expenses: monthlyExpenses[i],
			Profit:   monthlyIncome[i].Sub(monthlyExpenses[i]),
		}
	}

	categoryData := sortedAmounts(categorySpend)
	if len(categoryData) > topCategoryCount {
		categoryData = categoryData[:topCategoryCount]
	}

	clientData := make(map[string]decimal.Decimal, len(clientIncome))
	for id, v := range clientIncome {
		name, ok := clientNames[id]
		if !ok {
			name = "Unknown"
		}
		clientData[name] = clientData[name].Add(v)
	}

	twelve := decimal.NewFromInt(12)
	return &domain.AnalyticsReport{
		Year:        snap.Year,
		MonthlyData: monthly,
		CategoryData: categoryData,
		ParentCategoryData: []domain.NamedAmount{
			{Name: "COGS", Value: parentSpend[domain.COGS]},
			{Name: "OPEX", Value: parentSpend[domain.OPEX]},
			{Name: "Financial", Value: parentSpend[domain.Financial]},
		},
		ClientData: sortedAmounts(clientData),
		Summary: domain.AnalyticsSummary{
			TotalIncome:        totalIncome,
			TotalExpenses:      totalExpenses,
			NetProfit:          totalIncome.Sub(totalExpenses),
			AvgMonthlyIncome:   totalIncome.Div(twelve),
			AvgMonthlyExpenses: totalExpenses.Div(twelve),
		},
	}, nil
}

// sortedAmounts flattens a name->value map into a slice ordered by value
// descending, breaking ties by name so output stays deterministic.
func sortedAmounts(amounts map[string]decimal.Decimal) []domain.NamedAmount {
	out := make([]domain.NamedAmount, 0, len(amounts))
	for name, value := range amounts {
		out = append(out, domain.NamedAmount{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
