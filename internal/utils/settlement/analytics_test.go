package settlement

import (
	"testing"
	"time"

	"github.com/automationsflow/afbooks/internal/apperrors"
	"github.com/automationsflow/afbooks/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClients() []domain.Client {
	return []domain.Client{
		{ClientID: "client-acme", Name: "Acme Corp"},
		{ClientID: "client-techstart", Name: "TechStart Ltd"},
	}
}

func TestComputeAnalytics_MonthlyBucketing(t *testing.T) {
	snap := emptySnapshot(2026)

	// Paid in March although issued in February: income lands on the payment
	// month.
	inv := paidInvoice("inv-1", "10000", false, "0.18", 50, 50)
	inv.DateIssued = time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	paid := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	inv.DatePaid = &paid

	// Paid invoice without a payment date falls back to the issue month.
	inv2 := paidInvoice("inv-2", "4000", false, "0.18", 50, 50)
	inv2.DateIssued = time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	inv2.DatePaid = nil
	inv2.ClientID = "client-techstart"

	snap.Invoices = []domain.Invoice{inv, inv2}
	snap.Expenses = []domain.Expense{
		expense("e-1", bizBankID, opexCatID, "", "1500", time.March),
		expense("e-2", bizBankID, cogsCatID, "", "500", time.March),
	}

	report, err := ComputeAnalytics(snap, testClients())
	require.NoError(t, err)
	require.Len(t, report.MonthlyData, 12)

	march := report.MonthlyData[2]
	assert.Equal(t, "Mar", march.Month)
	assert.True(t, march.Income.Equal(d("10000")))
	assert.True(t, march.Expenses.Equal(d("2000")))
	assert.True(t, march.Profit.Equal(d("8000")))

	may := report.MonthlyData[4]
	assert.True(t, may.Income.Equal(d("4000")))

	feb := report.MonthlyData[1]
	assert.True(t, feb.Income.IsZero(), "issue month not used when payment date exists")
}

func TestComputeAnalytics_ExcludesTaxOnlyExpenses(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Expenses = []domain.Expense{
		expense("e-1", heliPrivateID, opexCatID, heliID, "999", time.April), // tax-only
		expense("e-2", bizBankID, opexCatID, "", "100", time.April),
	}

	report, err := ComputeAnalytics(snap, testClients())
	require.NoError(t, err)

	assert.True(t, report.Summary.TotalExpenses.Equal(d("100")))
	assert.True(t, report.MonthlyData[3].Expenses.Equal(d("100")))
}

func TestComputeAnalytics_CategoryAndClientRollups(t *testing.T) {
	snap := emptySnapshot(2026)
	snap.Invoices = []domain.Invoice{
		paidInvoice("inv-1", "8000", false, "0.18", 50, 50), // client-acme
	}
	other := paidInvoice("inv-2", "2000", false, "0.18", 50, 50)
	other.ClientID = "client-unseen"
	snap.Invoices = append(snap.Invoices, other)

	snap.Expenses = []domain.Expense{
		expense("e-1", bizBankID, opexCatID, "", "300", time.January),
		expense("e-2", bizBankID, opexCatID, "", "200", time.February),
		expense("e-3", bizBankID, cogsCatID, "", "400", time.March),
		expense("e-4", bizBankID, "cat-missing", "", "50", time.March),
	}

	report, err := ComputeAnalytics(snap, testClients())
	require.NoError(t, err)

	require.NotEmpty(t, report.CategoryData)
	assert.Equal(t, "Marketing & Advertising", report.CategoryData[0].Name)
	assert.True(t, report.CategoryData[0].Value.Equal(d("500")))

	// Unknown category name surfaces as "Unknown" and its parent defaults to
	// OPEX.
	var parentOpex domain.NamedAmount
	for _, p := range report.ParentCategoryData {
		if p.Name == "OPEX" {
			parentOpex = p
		}
	}
	assert.True(t, parentOpex.Value.Equal(d("550")))

	require.Len(t, report.ClientData, 2)
	assert.Equal(t, "Acme Corp", report.ClientData[0].Name)
	assert.True(t, report.ClientData[0].Value.Equal(d("8000")))
	assert.Equal(t, "Unknown", report.ClientData[1].Name)

	assert.True(t, report.Summary.AvgMonthlyIncome.Equal(d("10000").Div(d("12"))))
}

func TestComputeAnalytics_FailsClosedOnNilClients(t *testing.T) {
	snap := emptySnapshot(2026)
	_, err := ComputeAnalytics(snap, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrIncompleteSnapshot)
}
