package reconcile_test

import (
	"testing"

	"github.com/openbooks/reconcile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const glExport = `Date,Name,Memo/Description,Split,Amount
01/05/2024,Staples,Office chairs,Office Supplies,($450.00)
01/08/2024,Globex Inc,January retainer,Consulting Revenue,"$5,000.00"
`

func TestImport(t *testing.T) {
	resources := reconcile.Import(glExport, reconcile.PlatformQBO)

	require.Len(t, resources.Transactions, 2)
	assert.Equal(t, "2024-01-05", resources.Transactions[0].Date)
	assert.Equal(t, "USD", resources.Currency)
}

func TestImportFallsBackToDemoData(t *testing.T) {
	resources := reconcile.Import("not a ledger export", reconcile.PlatformQBO)

	assert.NotEmpty(t, resources.Transactions)
	assert.Equal(t, "USD", resources.Currency)
}

// TestMatchDemoWorkspace runs the matching engine over a generated
// demo workspace. The generators pair entry i of the bank feed with
// entry i of the ledger export, and the greedy pass recovers exactly
// that pairing.
func TestMatchDemoWorkspace(t *testing.T) {
	bank := reconcile.DemoBankFeed("workspace-1", 7)
	ledger := reconcile.DemoLedgerExport("workspace-1", 7)

	suggestions := reconcile.Match(bank, ledger)
	require.Len(t, suggestions, 7)

	paired := make(map[string]string)
	for _, s := range suggestions {
		paired[s.LedgerTransactionID.String()] = s.BankTransactionID.String()
		assert.GreaterOrEqual(t, s.Confidence, 0.5)
	}

	for i := range bank {
		assert.Equal(t, bank[i].ID.String(), paired[ledger[i].ID.String()], "entry %d paired with the wrong bank transaction", i)
	}
}

func TestSuggestCategory(t *testing.T) {
	s := reconcile.SuggestCategory("Gusto", "payroll run", decimal.RequireFromString("-6200.00"), nil)

	assert.Equal(t, "Payroll Expenses", s.CategoryName)
	assert.Equal(t, 0.98, s.Confidence)
}

func TestApplyRules(t *testing.T) {
	rules := []reconcile.MatchRule{{Priority: 1, Match: "staples*", CategoryName: "Office Supplies"}}

	category, matched := reconcile.ApplyRules(rules, "Staples Inc")

	assert.True(t, matched)
	assert.Equal(t, "Office Supplies", category)
}

func TestAlerts(t *testing.T) {
	resources := reconcile.Import(glExport, reconcile.PlatformQBO)
	resources.Transactions[1].CategoryName = "Uncategorized"

	alerts := reconcile.Alerts(resources)

	require.Len(t, alerts, 1)
	assert.Contains(t, alerts[0].Message, "uncategorized")
}
