package categorizer_test

import (
	"testing"

	"github.com/openbooks/reconcile/internal/categorizer"
	"github.com/openbooks/reconcile/internal/models"
	"github.com/openbooks/reconcile/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var workspaceCategories = []models.Category{
	{Name: "Consulting Revenue", Type: types.CategoryTypeIncome},
	{Name: "Office Supplies", Type: types.CategoryTypeExpense},
	{Name: "Travel", Type: types.CategoryTypeExpense},
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name       string
		vendor     string
		text       string
		amount     string
		category   string
		confidence float64
	}{
		{"Payroll processor", "Gusto", "payroll run", "-6200.00", "Payroll Expenses", 0.98},
		{"Vendor tier beats keyword tier", "ADP", "software invoice", "-300.00", "Payroll Expenses", 0.98},
		{"Cloud vendor", "Amazon Web Services", "monthly bill", "-118.40", "Software & Subscriptions", 0.95},
		{"Vendor in description", "", "AWS BILLING EMEA", "-118.40", "Software & Subscriptions", 0.95},
		{"Keyword hosting", "Initech", "website hosting", "-40.00", "Software & Subscriptions", 0.70},
		{"Keyword rent", "Shoreline Properties", "rent february", "-2100.00", "Rent & Lease", 0.70},
		{"Positive amount is income", "Unknown LLC", "wire received", "5000.00", "Consulting Revenue", 0.40},
		{"Large debit looks like payroll", "Unknown LLC", "transfer", "-9000.00", "Payroll Expenses", 0.30},
		{"Small debit looks like subscription", "Unknown LLC", "transfer", "-15.00", "Software & Subscriptions", 0.30},
		{"Fallback to first expense category", "Unknown LLC", "transfer", "-500.00", "Office Supplies", 0.30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := categorizer.Suggest(tt.vendor, tt.text, decimal.RequireFromString(tt.amount), workspaceCategories)
			assert.Equal(t, tt.category, s.CategoryName)
			assert.Equal(t, tt.confidence, s.Confidence)
			assert.NotEmpty(t, s.Reason)
		})
	}
}

// TestSuggestWithoutCategories exercises the tiers that depend on the
// workspace's category list when that list is empty.
func TestSuggestWithoutCategories(t *testing.T) {
	income := categorizer.Suggest("Unknown LLC", "wire received", decimal.RequireFromString("5000.00"), nil)
	assert.Equal(t, "Miscellaneous", income.CategoryName)
	assert.Equal(t, 0.10, income.Confidence)

	expense := categorizer.Suggest("Unknown LLC", "transfer", decimal.RequireFromString("-500.00"), nil)
	assert.Equal(t, "Miscellaneous", expense.CategoryName)
}

func TestSuggestDeterministic(t *testing.T) {
	amount := decimal.RequireFromString("-42.00")

	first := categorizer.Suggest("Initech", "website hosting", amount, workspaceCategories)
	second := categorizer.Suggest("Initech", "website hosting", amount, workspaceCategories)

	assert.Equal(t, first, second)
}

func TestApplyRules(t *testing.T) {
	rules := []models.MatchRule{
		{Priority: 2, Match: "amazon*", CategoryName: "Office Supplies"},
		{Priority: 1, Match: "amazon web services*", CategoryName: "Software & Subscriptions"},
		{Priority: 3, Match: "*", CategoryName: "Miscellaneous"},
	}

	tests := []struct {
		name     string
		vendor   string
		category string
		matched  bool
	}{
		{"Lower priority number wins", "Amazon Web Services LLC", "Software & Subscriptions", true},
		{"Less specific rule catches the rest", "Amazon Fresh", "Office Supplies", true},
		{"Catch-all", "Totally Different", "Miscellaneous", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, matched := categorizer.ApplyRules(rules, tt.vendor)
			assert.Equal(t, tt.matched, matched)
			assert.Equal(t, tt.category, category)
		})
	}
}

func TestApplyRulesNoMatch(t *testing.T) {
	rules := []models.MatchRule{{Priority: 1, Match: "acme*", CategoryName: "Office Supplies"}}

	category, matched := categorizer.ApplyRules(rules, "Globex")

	assert.False(t, matched)
	assert.Empty(t, category)
}
