package demo

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/reconcile/internal/models"
	"github.com/shopspring/decimal"
)

// idNamespace scopes the deterministic UUIDs generated for fixtures.
var idNamespace = uuid.MustParse("9aa12695-6c24-4b9e-a7e7-1db9702db45b")

// fixtureStart is the first transaction date of every generated
// workspace. A fixed epoch keeps fixtures reproducible.
var fixtureStart = time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)

// vendorFixture pairs the vendor name as the ledger records it with
// the descriptor the bank feed shows for the same counterparty.
type vendorFixture struct {
	ledgerName     string
	bankDescriptor string
	// feePercent is the processing fee the bank side deducts, in
	// tenths of a percent. Zero means the amounts match exactly.
	feePercent int
}

var vendorFixtures = []vendorFixture{
	{"Amazon Web Services", "AWS BILLING EMEA", 0},
	{"Gusto", "GUSTO PAYROLL 8822", 0},
	{"Staples", "STAPLES INC #4410", 0},
	{"Stripe", "STRIPE TRANSFER", 29},
	{"Globex Inc", "GLOBEX INC PAYMENT", 0},
	{"United Airlines", "UNITED 0162347790551", 0},
	{"WeWork", "WEWORK COMMONS", 0},
}

// BankFeed generates a deterministic mock bank feed for a workspace.
// The feed overlaps the ledger of LedgerExport for the same workspace,
// with realistic discrepancies: clearing delays of up to three days
// and percentage fees on some vendors.
func BankFeed(workspaceID string, n int) []models.BankTransaction {
	r := newRNG(workspaceID + "-bank")

	transactions := make([]models.BankTransaction, 0, n)
	for i := 0; i < n; i++ {
		fixture := vendorFixtures[i%len(vendorFixtures)]
		amount := baseAmount(workspaceID, i)

		if fixture.feePercent > 0 {
			fee := amount.Mul(decimal.New(int64(fixture.feePercent), -3)).Round(2)
			amount = amount.Sub(fee)
		}

		delay := r.Intn(4)
		transactions = append(transactions, models.BankTransaction{
			ID:          fixtureID(workspaceID, "bank", i),
			Date:        fixtureStart.AddDate(0, 0, i*2+delay),
			Description: fixture.bankDescriptor,
			Amount:      amount,
		})
	}

	return transactions
}

// LedgerExport generates the ledger side of the demo workspace. Entry
// i pairs with entry i of BankFeed for the same workspace.
func LedgerExport(workspaceID string, n int) []models.LedgerTransaction {
	transactions := make([]models.LedgerTransaction, 0, n)
	for i := 0; i < n; i++ {
		fixture := vendorFixtures[i%len(vendorFixtures)]

		transactions = append(transactions, models.LedgerTransaction{
			ID:         fixtureID(workspaceID, "ledger", i),
			Date:       fixtureStart.AddDate(0, 0, i*2),
			VendorName: fixture.ledgerName,
			Amount:     baseAmount(workspaceID, i),
		})
	}

	return transactions
}

// baseAmount is the ledger-side amount for entry i. It is derived from
// its own generator so that BankFeed and LedgerExport agree on it
// without sharing state.
func baseAmount(workspaceID string, i int) decimal.Decimal {
	r := newRNG(fmt.Sprintf("%s-amount-%d", workspaceID, i))

	amount := r.Amount(20, 2000)
	if i%len(vendorFixtures) != 4 { // Globex is the only income fixture
		amount = amount.Neg()
	}

	return amount
}

func fixtureID(workspaceID, side string, i int) uuid.UUID {
	return uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("%s/%s/%d", workspaceID, side, i)))
}
