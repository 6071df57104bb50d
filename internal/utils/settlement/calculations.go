package settlement

import (
	"fmt"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// Snapshot is the complete, pre-filtered record set for one fiscal year.
// Every collection must be non-nil (empty is fine): a nil collection means the
// caller's fetch failed and the engine refuses to compute rather than report
// misleading zeros. AsOf is the reference date for deriving OVERDUE status.
type Snapshot struct {
	Year        int
	AsOf        time.Time
	Invoices    []domain.Invoice
	Expenses    []domain.Expense
	Withdrawals []domain.Withdrawal
	Partners    []domain.Partner
	Accounts    []domain.Account
	Categories  []domain.Category
}

func (s Snapshot) validate() error {
	switch {
	case s.Invoices == nil:
		return fmt.Errorf("%w: invoices", apperrors.ErrIncompleteSnapshot)
	case s.Expenses == nil:
		return fmt.Errorf("%w: expenses", apperrors.ErrIncompleteSnapshot)
	case s.Withdrawals == nil:
		return fmt.Errorf("%w: withdrawals", apperrors.ErrIncompleteSnapshot)
	case s.Partners == nil:
		return fmt.Errorf("%w: partners", apperrors.ErrIncompleteSnapshot)
	case s.Accounts == nil:
		return fmt.Errorf("%w: accounts", apperrors.ErrIncompleteSnapshot)
	case s.Categories == nil:
		return fmt.Errorf("%w: categories", apperrors.ErrIncompleteSnapshot)
	}
	if len(s.Partners) != 2 {
		return fmt.Errorf("%w: got %d", apperrors.ErrPartnerCardinality, len(s.Partners))
	}
	return nil
}

// accountOwners maps account ID to the owning partner ID; business accounts
// are absent from the map.
func accountOwners(accounts []domain.Account) map[string]string {
	owners := make(map[string]string, len(accounts))
	for _, a := range accounts {
		if a.PartnerID != "" {
			owners[a.AccountID] = a.PartnerID
		}
	}
	return owners
}

// parentCategories maps category ID to its P&L bucket.
func parentCategories(categories []domain.Category) map[string]domain.ParentCategory {
	parents := make(map[string]domain.ParentCategory, len(categories))
	for _, c := range categories {
		parents[c.CategoryID] = c.ParentCategory
	}
	return parents
}

// IsTaxOnly reports whether an expense is a tax-only transaction: a partner
// paying from their own private account for their own personal benefit.
// Such rows are recorded for tax completeness but are not business costs.
func IsTaxOnly(e domain.Expense, owners map[string]string) bool {
	owner, private := owners[e.AccountID]
	return private && owner == e.BeneficiaryPartnerID
}

// BusinessExpenses returns the expense set with tax-only transactions removed.
// Every business-level aggregate (category totals, profit figures, the 50/50
// cost split) runs over this filtered set; the current-account flows do not.
func BusinessExpenses(expenses []domain.Expense, owners map[string]string) []domain.Expense {
	filtered := make([]domain.Expense, 0, len(expenses))
	for _, e := range expenses {
		if !IsTaxOnly(e, owners) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Compute derives the full partnership settlement report from a snapshot.
// It is a pure single pass: the same snapshot always yields the same report.
func Compute(snap Snapshot) (*domain.SettlementReport, error) {
	if err := snap.validate(); err != nil {
		return nil, err
	}

	owners := accountOwners(snap.Accounts)
	parents := parentCategories(snap.Categories)
	businessExpenses := BusinessExpenses(snap.Expenses, owners)

	// P&L buckets over the filtered set. An expense whose category is unknown
	// falls into OPEX so the bucket sums always reconcile with the total.
	buckets := map[domain.ParentCategory]decimal.Decimal{
		domain.COGS:      decimal.Zero,
		domain.OPEX:      decimal.Zero,
		domain.Financial: decimal.Zero,
		domain.Mixed:     decimal.Zero,
	}
	for _, e := range businessExpenses {
		parent, ok := parents[e.CategoryID]
		if !ok {
			parent = domain.OPEX
		}
		buckets[parent] = buckets[parent].Add(e.AmountILS)
	}
	totalExpenses := buckets[domain.COGS].Add(buckets[domain.OPEX]).Add(buckets[domain.Financial]).Add(buckets[domain.Mixed])

	// Income counts paid invoices only; open invoices contribute nothing
	// until they transition to PAID.
	totalIncome := decimal.Zero
	paidInvoices := make([]domain.Invoice, 0, len(snap.Invoices))
	for _, inv := range snap.Invoices {
		if inv.Status == domain.InvoicePaid {
			paidInvoices = append(paidInvoices, inv)
			totalIncome = totalIncome.Add(inv.AmountILS)
		}
	}

	grossProfit := totalIncome.Sub(buckets[domain.COGS])
	grossMargin := decimal.Zero
	if totalIncome.IsPositive() {
		grossMargin = grossProfit.Div(totalIncome).Mul(hundred)
	}
	netProfit := totalIncome.Sub(totalExpenses)

	first, second := snap.Partners[0], snap.Partners[1]

	// Part A: revenue per partner from invoice splits, VAT excluded.
	revenue := map[string]decimal.Decimal{first.PartnerID: decimal.Zero, second.PartnerID: decimal.Zero}
	for _, inv := range paidInvoices {
		net := inv.NetAmountILS()
		for _, split := range inv.Splits {
			if _, ok := revenue[split.PartnerID]; !ok {
				continue
			}
			revenue[split.PartnerID] = revenue[split.PartnerID].Add(net.Mul(split.Percent).Div(hundred))
		}
	}

	// Costs are a flat 50/50 split of the filtered total, decoupled from
	// revenue shares.
	partnerCosts := totalExpenses.Div(two)

	// Part B: current account over the raw, unfiltered expense set.
	outOfPocket := map[string]decimal.Decimal{first.PartnerID: decimal.Zero, second.PartnerID: decimal.Zero}
	benefits := map[string]decimal.Decimal{first.PartnerID: decimal.Zero, second.PartnerID: decimal.Zero}
	for _, e := range snap.Expenses {
		owner := owners[e.AccountID]
		if owner != "" && e.BenefitsBusiness() {
			if _, ok := outOfPocket[owner]; ok {
				outOfPocket[owner] = outOfPocket[owner].Add(e.AmountILS)
			}
		}
		if b := e.BeneficiaryPartnerID; b != "" && owner != b {
			if _, ok := benefits[b]; ok {
				benefits[b] = benefits[b].Add(e.AmountILS)
			}
		}
	}

	// Part C: fairness. Positive means the first-configured partner drew more.
	imbalance := benefits[first.PartnerID].Sub(benefits[second.PartnerID])

	// Part D: withdrawals and the final net-available rollup.
	withdrawals := map[string]decimal.Decimal{first.PartnerID: decimal.Zero, second.PartnerID: decimal.Zero}
	for _, w := range snap.Withdrawals {
		if _, ok := withdrawals[w.PartnerID]; ok {
			withdrawals[w.PartnerID] = withdrawals[w.PartnerID].Add(w.Amount)
		}
	}

	ledgers := make(map[string]domain.PartnerLedger, 2)
	for i, p := range snap.Partners {
		vsOther := imbalance.Neg()
		if i == 1 {
			vsOther = imbalance
		}
		currentAccount := outOfPocket[p.PartnerID].Sub(benefits[p.PartnerID])
		profits := revenue[p.PartnerID].Sub(partnerCosts)
		ledgers[p.PartnerID] = domain.PartnerLedger{
			PartnerID:        p.PartnerID,
			Name:             p.Name,
			Revenue:          revenue[p.PartnerID],
			Costs:            partnerCosts,
			Profits:          profits,
			OutOfPocket:      outOfPocket[p.PartnerID],
			BenefitsReceived: benefits[p.PartnerID],
			CurrentAccount:   currentAccount,
			BenefitsVsOther:  vsOther,
			Withdrawals:      withdrawals[p.PartnerID],
			NetAvailable:     profits.Add(currentAccount).Sub(withdrawals[p.PartnerID]),
		}
	}

	open := domain.OpenInvoiceSummary{Total: decimal.Zero, OverdueTotal: decimal.Zero}
	for _, inv := range snap.Invoices {
		status := inv.EffectiveStatus(snap.AsOf)
		if status == domain.InvoiceSent || status == domain.InvoiceOverdue {
			open.Count++
			open.Total = open.Total.Add(inv.AmountILS)
		}
		if status == domain.InvoiceOverdue {
			open.OverdueCount++
			open.OverdueTotal = open.OverdueTotal.Add(inv.AmountILS)
		}
	}

	return &domain.SettlementReport{
		Year:              snap.Year,
		TotalIncome:       totalIncome,
		COGS:              buckets[domain.COGS],
		OPEX:              buckets[domain.OPEX],
		Financial:         buckets[domain.Financial],
		Mixed:             buckets[domain.Mixed],
		TotalExpenses:     totalExpenses,
		GrossProfit:       grossProfit,
		GrossMargin:       grossMargin,
		NetProfit:         netProfit,
		Partners:          ledgers,
		BenefitsImbalance: imbalance,
		OpenInvoices:      open,
		InvoiceCount:      len(snap.Invoices),
		ExpenseCount:      len(businessExpenses),
	}, nil
}
