package settlement

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	heliID          = "partner-heli"
	shaharID        = "partner-shahar"
	bizBankID       = "acct-biz-bank"
	heliPrivateID   = "acct-heli-private"
	shaharPrivateID = "acct-shahar-private"
	cogsCatID       = "cat-subcontractors"
	opexCatID       = "cat-marketing"
	finCatID        = "cat-bank-fees"
	mixedCatID      = "cat-home-office"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testPartners() []domain.Partner {
	return []domain.Partner{
		{PartnerID: heliID, Name: "Heli"},
		{PartnerID: shaharID, Name: "Shahar"},
	}
}

func testAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: bizBankID, Name: "Business Bank Account", AccountType: domain.BankTransfer},
		{AccountID: heliPrivateID, Name: "Heli Private Card", AccountType: domain.PrivateCredit, PartnerID: heliID},
		{AccountID: shaharPrivateID, Name: "Shahar Private Card", AccountType: domain.PrivateCredit, PartnerID: shaharID},
	}
}

func testCategories() []domain.Category {
	return []domain.Category{
		{CategoryID: cogsCatID, Name: "Subcontractors", ParentCategory: domain.COGS},
		{CategoryID: opexCatID, Name: "Marketing & Advertising", ParentCategory: domain.OPEX},
		{CategoryID: finCatID, Name: "Bank Fees", ParentCategory: domain.Financial},
		{CategoryID: mixedCatID, Name: "Home Office", ParentCategory: domain.Mixed},
	}
}

func emptySnapshot(year int) Snapshot {
	return Snapshot{
		Year:        year,
		AsOf:        time.Date(year, 7, 1, 0, 0, 0, 0, time.UTC),
		Invoices:    []domain.Invoice{},
		Expenses:    []domain.Expense{},
		Withdrawals: []domain.Withdrawal{},
		Partners:    testPartners(),
		Accounts:    testAccounts(),
		Categories:  testCategories(),
	}
}

func expense(id, accountID, categoryID, beneficiary, amountILS string, month time.Month) domain.Expense {
	return domain.Expense{
		ExpenseID:            id,
		Date:                 time.Date(2026, month, 10, 0, 0, 0, 0, time.UTC),
		Amount:               d(amountILS),
		Currency:             domain.BaseCurrency,
		ExchangeRateToILS:    decimal.NewFromInt(1),
		AmountILS:            d(amountILS),
		CategoryID:           categoryID,
		AccountID:            accountID,
		BeneficiaryPartnerID: beneficiary,
	}
}

func paidInvoice(id, amountILS string, includesVAT bool, vatRate string, heliPct, shaharPct int64) domain.Invoice {
	paid := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	return domain.Invoice{
		InvoiceID:   id,
		ClientID:    "client-acme",
		AmountILS:   d(amountILS),
		Amount:      d(amountILS),
		Currency:    domain.BaseCurrency,
		IncludesVAT: includesVAT,
		VATRate:     d(vatRate),
		DateIssued:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		DatePaid:    &paid,
		Status:      domain.InvoicePaid,
		Splits: []domain.InvoiceSplit{
			{PartnerID: heliID, Percent: decimal.NewFromInt(heliPct)},
			{PartnerID: shaharID, Percent: decimal.NewFromInt(shaharPct)},
		},
	}
}

func TestCompute_RevenueSplitExcludesVAT(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Invoices = []domain.Invoice{paidInvoice("inv-1", "11800", true, "0.18", 60, 40)}

	report, err := Compute(snap)
	require.NoError(t, err)

	assert.True(t, report.TotalIncome.Equal(d("11800")), "gross income keeps VAT")
	assert.True(t, report.Partners[heliID].Revenue.Equal(d("6000")), "got %s", report.Partners[heliID].Revenue)
	assert.True(t, report.Partners[shaharID].Revenue.Equal(d("4000")), "got %s", report.Partners[shaharID].Revenue)
}

func TestCompute_VATExclusiveInvoiceSplitsGrossAmount(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Invoices = []domain.Invoice{paidInvoice("inv-1", "10000", false, "0.18", 50, 50)}

	report, err := Compute(snap)
	require.NoError(t, err)

	assert.True(t, report.Partners[heliID].Revenue.Equal(d("5000")))
	assert.True(t, report.Partners[shaharID].Revenue.Equal(d("5000")))
}

func TestCompute_UnpaidInvoicesContributeNoRevenue(t *testing.T) {
	snap := emptySnapshot(2026)
	draft := paidInvoice("inv-1", "5000", false, "0.18", 50, 50)
	draft.Status = domain.InvoiceDraft
	draft.DatePaid = nil
	sent := paidInvoice("inv-2", "7000", false, "0.18", 50, 50)
	sent.Status = domain.InvoiceSent
	sent.DatePaid = nil
	snap.Invoices = []domain.Invoice{draft, sent}

	report, err := Compute(snap)
	require.NoError(t, err)

	assert.True(t, report.TotalIncome.IsZero())
	assert.True(t, report.Partners[heliID].Revenue.IsZero())
	assert.Equal(t, 2, report.InvoiceCount)
}

func TestCompute_TaxOnlyExpenseIsFullyNeutral(t *testing.T) {
	snap := emptySnapshot(2026)
	// Heli pays from her private card for her own benefit: recorded for tax
	// purposes only. Must vanish from business totals AND contribute to
	// neither current-account flow.
	snap.Expenses = []domain.Expense{expense("e-1", heliPrivateID, opexCatID, heliID, "800", time.February)}

	report, err := Compute(snap)
	require.NoError(t, err)

	assert.True(t, report.TotalExpenses.IsZero())
	assert.True(t, report.OPEX.IsZero())
	assert.Equal(t, 0, report.ExpenseCount)

	heli := report.Partners[heliID]
	assert.True(t, heli.OutOfPocket.IsZero())
	assert.True(t, heli.BenefitsReceived.IsZero())
	assert.True(t, heli.CurrentAccount.IsZero())
}

func TestCompute_OutOfPocketExpenseStaysInBusinessTotals(t *testing.T) {
	snap := emptySnapshot(2026)
	// Heli fronts company money from her private card: the business owes her
	// the full amount and the expense remains a real business cost.
	snap.Expenses = []domain.Expense{expense("e-1", heliPrivateID, opexCatID, "", "500", time.February)}

	report, err := Compute(snap)
	require.NoError(t, err)

	assert.True(t, report.TotalExpenses.Equal(d("500")))
	assert.True(t, report.OPEX.Equal(d("500")))
	assert.True(t, report.Partners[heliID].OutOfPocket.Equal(d("500")))
	assert.True(t, report.Partners[heliID].CurrentAccount.Equal(d("500")))
	assert.True(t, report.Partners[shaharID].OutOfPocket.IsZero())
}

func TestCompute_BenefitsReceivedFromBusinessAccount(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Expenses = []domain.Expense{expense("e-1", bizBankID, opexCatID, shaharID, "300", time.March)}

	report, err := Compute(snap)
	require.NoError(t, err)

	shahar := report.Partners[shaharID]
	heli := report.Partners[heliID]
	assert.True(t, shahar.BenefitsReceived.Equal(d("300")))
	assert.True(t, shahar.CurrentAccount.Equal(d("-300")))
	assert.True(t, heli.BenefitsReceived.IsZero())
	assert.True(t, report.BenefitsImbalance.Equal(d("-300")), "Shahar drew more, imbalance negative")
}

func TestCompute_CrossPartnerPaymentCountsAsBenefit(t *testing.T) {
	snap := emptySnapshot(2026)
	// Heli's private card pays for Shahar's personal benefit: a real business
	// expense, Heli's out-of-pocket is untouched (beneficiary is not the
	// business), Shahar received a benefit.
	snap.Expenses = []domain.Expense{expense("e-1", heliPrivateID, opexCatID, shaharID, "200", time.April)}

	report, err := Compute(snap)
	require.NoError(t, err)

	assert.True(t, report.TotalExpenses.Equal(d("200")))
	assert.True(t, report.Partners[heliID].OutOfPocket.IsZero())
	assert.True(t, report.Partners[shaharID].BenefitsReceived.Equal(d("200")))
}

func TestCompute_BenefitsVsOtherIsAntisymmetric(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Expenses = []domain.Expense{
		expense("e-1", bizBankID, opexCatID, heliID, "450", time.May),
		expense("e-2", bizBankID, opexCatID, shaharID, "150", time.May),
	}

	report, err := Compute(snap)
	require.NoError(t, err)

	assert.True(t, report.BenefitsImbalance.Equal(d("300")))
	assert.True(t, report.Partners[heliID].BenefitsVsOther.Equal(d("-300")))
	assert.True(t, report.Partners[shaharID].BenefitsVsOther.Equal(d("300")))
	sum := report.Partners[heliID].BenefitsVsOther.Add(report.Partners[shaharID].BenefitsVsOther)
	assert.True(t, sum.IsZero())
}

func TestCompute_BucketSumsMatchTotalExactly(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Expenses = []domain.Expense{
		expense("e-1", bizBankID, cogsCatID, "", "1000", time.January),
		expense("e-2", bizBankID, opexCatID, "", "750.25", time.February),
		expense("e-3", bizBankID, finCatID, "", "49.90", time.March),
		expense("e-4", bizBankID, mixedCatID, "", "333.33", time.April),
		// Unknown category defaults to OPEX so nothing is dropped.
		expense("e-5", bizBankID, "cat-missing", "", "100", time.May),
	}

	report, err := Compute(snap)
	require.NoError(t, err)

	sum := report.COGS.Add(report.OPEX).Add(report.Financial).Add(report.Mixed)
	assert.True(t, sum.Equal(report.TotalExpenses))
	assert.True(t, report.TotalExpenses.Equal(d("2233.48")))
	assert.True(t, report.OPEX.Equal(d("850.25")))
}

func TestCompute_PartnerProfitsSumToWholeProfit(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Invoices = []domain.Invoice{
		paidInvoice("inv-1", "11800", true, "0.18", 60, 40),
		paidInvoice("inv-2", "5900", true, "0.18", 30, 70),
	}
	snap.Expenses = []domain.Expense{
		expense("e-1", bizBankID, cogsCatID, "", "4000", time.January),
		expense("e-2", bizBankID, opexCatID, "", "1500", time.February),
	}

	report, err := Compute(snap)
	require.NoError(t, err)

	totalAllocated := report.Partners[heliID].Revenue.Add(report.Partners[shaharID].Revenue)
	profitSum := report.Partners[heliID].Profits.Add(report.Partners[shaharID].Profits)
	assert.True(t, profitSum.Equal(totalAllocated.Sub(report.TotalExpenses)),
		"profit halves must sum back to allocated revenue minus filtered expenses")

	// Costs are a flat 50/50 regardless of the 60/40 and 30/70 revenue splits.
	assert.True(t, report.Partners[heliID].Costs.Equal(d("2750")))
	assert.True(t, report.Partners[shaharID].Costs.Equal(d("2750")))
}

func TestCompute_NetAvailableRollup(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Invoices = []domain.Invoice{paidInvoice("inv-1", "11800", true, "0.18", 50, 50)}
	snap.Expenses = []domain.Expense{
		expense("e-1", heliPrivateID, opexCatID, "", "1000", time.February), // Heli fronted
		expense("e-2", bizBankID, opexCatID, shaharID, "400", time.March),   // Shahar drew
	}
	snap.Withdrawals = []domain.Withdrawal{
		{WithdrawalID: "w-1", PartnerID: heliID, Amount: d("2000"), Method: domain.WithdrawalBankTransfer},
		{WithdrawalID: "w-2", PartnerID: shaharID, Amount: d("9000"), Method: domain.WithdrawalCash},
	}

	report, err := Compute(snap)
	require.NoError(t, err)

	// Filtered expenses: 1400, so each partner carries 700 of cost.
	heli := report.Partners[heliID]
	require.True(t, heli.Revenue.Equal(d("5000")))
	require.True(t, heli.Profits.Equal(d("4300")))
	require.True(t, heli.CurrentAccount.Equal(d("1000")))
	assert.True(t, heli.NetAvailable.Equal(d("3300")), "profit + current account - withdrawals")

	// Over-withdrawal goes negative, no floor at zero.
	shahar := report.Partners[shaharID]
	require.True(t, shahar.Profits.Equal(d("4300")))
	require.True(t, shahar.CurrentAccount.Equal(d("-400")))
	assert.True(t, shahar.NetAvailable.Equal(d("-5100")))
}

func TestCompute_ZeroIncomeGuardsGrossMargin(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Expenses = []domain.Expense{expense("e-1", bizBankID, opexCatID, "", "1200", time.June)}

	report, err := Compute(snap)
	require.NoError(t, err)

	assert.True(t, report.TotalIncome.IsZero())
	assert.True(t, report.GrossMargin.IsZero(), "margin degrades to zero, never NaN")
	assert.True(t, report.NetProfit.Equal(d("-1200")))
}

func TestCompute_OpenInvoiceSummaryDerivesOverdue(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.AsOf = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	sent := paidInvoice("inv-1", "3000", false, "0.18", 50, 50)
	sent.Status = domain.InvoiceSent
	sent.DatePaid = nil
	sent.DueDate = time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	overdue := paidInvoice("inv-2", "4500", false, "0.18", 50, 50)
	overdue.Status = domain.InvoiceSent
	overdue.DatePaid = nil
	overdue.DueDate = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	snap.Invoices = []domain.Invoice{sent, overdue}

	report, err := Compute(snap)
	require.NoError(t, err)

	assert.Equal(t, 2, report.OpenInvoices.Count)
	assert.True(t, report.OpenInvoices.Total.Equal(d("7500")))
	assert.Equal(t, 1, report.OpenInvoices.OverdueCount)
	assert.True(t, report.OpenInvoices.OverdueTotal.Equal(d("4500")))
}

func TestCompute_IdempotentOnUnchangedSnapshot(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Invoices = []domain.Invoice{paidInvoice("inv-1", "11800", true, "0.18", 60, 40)}
	snap.Expenses = []domain.Expense{
		expense("e-1", heliPrivateID, opexCatID, "", "500", time.February),
		expense("e-2", bizBankID, cogsCatID, "", "900", time.March),
	}
	snap.Withdrawals = []domain.Withdrawal{
		{WithdrawalID: "w-1", PartnerID: heliID, Amount: d("1000"), Method: domain.WithdrawalCheck},
	}

	first, err := Compute(snap)
	require.NoError(t, err)
	second, err := Compute(snap)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON, "same snapshot must yield byte-identical output")
}

func TestCompute_FailsClosedOnMissingCollections(t *testing.T) {
	base := emptySnapshot(2026)

	cases := []struct {
		name   string
		mutate func(*Snapshot)
	}{
		{"nil invoices", func(s *Snapshot) { s.Invoices = nil }},
		{"nil expenses", func(s *Snapshot) { s.Expenses = nil }},
		{"nil withdrawals", func(s *Snapshot) { s.Withdrawals = nil }},
		{"nil partners", func(s *Snapshot) { s.Partners = nil }},
		{"nil accounts", func(s *Snapshot) { s.Accounts = nil }},
		{"nil categories", func(s *Snapshot) { s.Categories = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := base
			tc.mutate(&snap)
			_, err := Compute(snap)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrIncompleteSnapshot)
		})
	}
}

func TestCompute_RejectsWrongPartnerCount(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Partners = snap.Partners[:1]
	_, err := Compute(snap)
	assert.ErrorIs(t, err, apperrors.ErrPartnerCardinality)

	snap.Partners = append(testPartners(), domain.Partner{PartnerID: "partner-third", Name: "Dana"})
	_, err = Compute(snap)
	assert.ErrorIs(t, err, apperrors.ErrPartnerCardinality)
}

func TestIsTaxOnly(t *testing.T) {
	owners := map[string]string{heliPrivateID: heliID, shaharPrivateID: shaharID}

	cases := []struct {
		name        string
		accountID   string
		beneficiary string
		want        bool
	}{
		{"heli private for heli", heliPrivateID, heliID, true},
		{"heli private for business", heliPrivateID, "", false},
		{"heli private for shahar", heliPrivateID, shaharID, false},
		{"business account for heli", bizBankID, heliID, false},
		{"business account for business", bizBankID, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := expense("e", tc.accountID, opexCatID, tc.beneficiary, "100", time.January)
			assert.Equal(t, tc.want, IsTaxOnly(e, owners))
		})
	}
}
