// Package reconcile turns raw accounting exports into reconciled
// books: it normalizes QuickBooks Online and Xero general ledger CSV
// exports into canonical records, proposes pairings between a bank
// feed and the ledger, suggests categories for transactions and
// derives review alerts from an import.
//
// The package is a facade over the internal implementation. It holds
// no state and performs no I/O; persistence and presentation are the
// caller's concern.
package reconcile

import (
	"github.com/openbooks/reconcile/internal/categorizer"
	"github.com/openbooks/reconcile/internal/connectors"
	"github.com/openbooks/reconcile/internal/demo"
	"github.com/openbooks/reconcile/internal/importer"
	"github.com/openbooks/reconcile/internal/insights"
	"github.com/openbooks/reconcile/internal/matcher"
	"github.com/openbooks/reconcile/internal/models"
	"github.com/openbooks/reconcile/internal/types"
	"github.com/shopspring/decimal"
)

// Canonical record types.
type (
	Transaction       = models.Transaction
	Category          = models.Category
	Vendor            = models.Vendor
	BankTransaction   = models.BankTransaction
	LedgerTransaction = models.LedgerTransaction
	MatchSuggestion   = models.MatchSuggestion
	MatchRule         = models.MatchRule
	Alert             = models.Alert

	Platform        = types.Platform
	ParsedResources = importer.ParsedResources
	Suggestion      = categorizer.Suggestion
)

const (
	PlatformQBO  = types.PlatformQBO
	PlatformXero = types.PlatformXero
)

// ParsePlatform parses a platform discriminator string.
func ParsePlatform(s string) (Platform, error) {
	return types.ParsePlatform(s)
}

// Parse converts raw CSV export text from the given platform into
// canonical resources. It fails when the platform is unknown or the
// export's header row cannot be located.
func Parse(text string, platform Platform) (ParsedResources, error) {
	return connectors.Parse(text, platform)
}

// Import is Parse with the onboarding fallback applied: when parsing
// fails or yields no transactions, a fixed demo dataset is returned
// instead so the caller never renders an empty workspace.
func Import(text string, platform Platform) ParsedResources {
	return connectors.Load(text, platform)
}

// Match proposes a one-to-one pairing between bank and ledger
// transactions, sorted by descending confidence. See the matching
// engine for the semantics of greedy acceptance.
func Match(bank []BankTransaction, ledger []LedgerTransaction) []MatchSuggestion {
	return matcher.Suggest(bank, ledger)
}

// SuggestCategory proposes a category for a transaction from its
// vendor, description and amount, consulting the workspace's
// categories where relevant.
func SuggestCategory(vendor, description string, amount decimal.Decimal, categories []Category) Suggestion {
	return categorizer.Suggest(vendor, description, amount, categories)
}

// ApplyRules evaluates user-defined match rules against a vendor name
// in ascending priority order and returns the category of the first
// matching rule.
func ApplyRules(rules []MatchRule, vendor string) (string, bool) {
	return categorizer.ApplyRules(rules, vendor)
}

// Alerts derives review alerts from an import: unusually large
// expenses, likely duplicates and uncategorized backlogs.
func Alerts(resources ParsedResources) []Alert {
	return insights.Derive(resources)
}

// DemoBankFeed and DemoLedgerExport generate deterministic mock data
// for a workspace: the two sides describe the same activity with
// realistic clearing delays and fees, so matching demos produce
// exact, timing and fee-adjusted cases.
func DemoBankFeed(workspaceID string, n int) []BankTransaction {
	return demo.BankFeed(workspaceID, n)
}

func DemoLedgerExport(workspaceID string, n int) []LedgerTransaction {
	return demo.LedgerExport(workspaceID, n)
}
