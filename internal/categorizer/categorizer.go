// Package categorizer suggests a category for a transaction from its
// vendor, description and amount. Suggestions are deterministic: the
// tiers below are tried in a fixed order and the first matching rule
// of a tier wins.
package categorizer

import (
	"fmt"
	"strings"

	"github.com/openbooks/reconcile/internal/models"
	"github.com/openbooks/reconcile/internal/types"
	"github.com/shopspring/decimal"
)

// Suggestion is a proposed category with the confidence of the rule
// that produced it.
type Suggestion struct {
	CategoryName string  `json:"categoryName"`
	Confidence   float64 `json:"confidence"`
	Reason       string  `json:"reason"`
}

// vendorPattern maps known vendor substrings to a category. The list
// is ordered by specificity, most reliable matches first.
type vendorPattern struct {
	patterns   []string
	category   string
	confidence float64
}

var vendorPatterns = []vendorPattern{
	{[]string{"gusto", "adp", "paychex", "rippling"}, "Payroll Expenses", 0.98},
	{[]string{"amazon web services", "aws"}, "Software & Subscriptions", 0.95},
	{[]string{"wework", "regus"}, "Rent & Lease", 0.92},
	{[]string{"stripe", "paypal", "square"}, "Merchant Fees", 0.92},
	{[]string{"google", "microsoft", "slack", "zoom", "figma", "notion", "github"}, "Software & Subscriptions", 0.90},
	{[]string{"united", "delta", "southwest", "lyft", "uber", "marriott", "hilton"}, "Travel", 0.90},
	{[]string{"staples", "office depot"}, "Office Supplies", 0.90},
	{[]string{"geico", "state farm", "hiscox"}, "Insurance", 0.90},
}

// keywordPattern is the lower-confidence tier matched against the
// combined vendor and description text.
type keywordPattern struct {
	keywords   []string
	category   string
	confidence float64
}

var keywordPatterns = []keywordPattern{
	{[]string{"payroll", "salary", "wages"}, "Payroll Expenses", 0.75},
	{[]string{"hosting", "cloud", "saas", "subscription", "software", "license"}, "Software & Subscriptions", 0.70},
	{[]string{"rent", "lease"}, "Rent & Lease", 0.70},
	{[]string{"insurance", "premium"}, "Insurance", 0.70},
	{[]string{"flight", "hotel", "airfare", "travel"}, "Travel", 0.65},
	{[]string{"advertising", "marketing", "ads"}, "Advertising", 0.65},
	{[]string{"fee", "charge", "service charge"}, "Bank Fees", 0.60},
}

// Amount thresholds for the heuristics tier.
var (
	largeExpense = decimal.New(2000, 0)
	smallExpense = decimal.New(100, 0)
)

// Suggest proposes a category for a transaction.
//
// Tier order is vendor pattern, keyword, amount heuristic, fallback.
// The categories of the workspace are consulted for the income and
// fallback tiers so that suggestions reference categories that
// actually exist.
func Suggest(vendor, description string, amount decimal.Decimal, categories []models.Category) Suggestion {
	text := strings.ToLower(vendor + " " + description)

	for _, p := range vendorPatterns {
		for _, pattern := range p.patterns {
			if strings.Contains(text, pattern) {
				return Suggestion{
					CategoryName: p.category,
					Confidence:   p.confidence,
					Reason:       fmt.Sprintf("vendor matches %q", pattern),
				}
			}
		}
	}

	for _, p := range keywordPatterns {
		for _, keyword := range p.keywords {
			if strings.Contains(text, keyword) {
				return Suggestion{
					CategoryName: p.category,
					Confidence:   p.confidence,
					Reason:       fmt.Sprintf("description mentions %q", keyword),
				}
			}
		}
	}

	if s, ok := amountHeuristic(amount, categories); ok {
		return s
	}

	return fallback(categories)
}

// amountHeuristic guesses from the amount alone: large recurring
// debits look like payroll, small debits look like subscriptions,
// credits look like income.
func amountHeuristic(amount decimal.Decimal, categories []models.Category) (Suggestion, bool) {
	if amount.IsPositive() {
		if name, ok := firstOfType(categories, types.CategoryTypeIncome); ok {
			return Suggestion{
				CategoryName: name,
				Confidence:   0.40,
				Reason:       "positive amounts are usually income",
			}, true
		}

		return Suggestion{}, false
	}

	magnitude := amount.Abs()
	if magnitude.GreaterThanOrEqual(largeExpense) {
		return Suggestion{
			CategoryName: "Payroll Expenses",
			Confidence:   0.30,
			Reason:       "large debits are usually payroll",
		}, true
	}

	if magnitude.LessThanOrEqual(smallExpense) {
		return Suggestion{
			CategoryName: "Software & Subscriptions",
			Confidence:   0.30,
			Reason:       "small recurring debits are usually subscriptions",
		}, true
	}

	return Suggestion{}, false
}

// fallback is the last resort: the workspace's first expense category,
// or Miscellaneous when it has none.
func fallback(categories []models.Category) Suggestion {
	if name, ok := firstOfType(categories, types.CategoryTypeExpense); ok {
		return Suggestion{
			CategoryName: name,
			Confidence:   0.30,
			Reason:       "no rule matched, defaulting to the first expense category",
		}
	}

	return Suggestion{
		CategoryName: "Miscellaneous",
		Confidence:   0.10,
		Reason:       "no rule matched",
	}
}

func firstOfType(categories []models.Category, t types.CategoryType) (string, bool) {
	for _, category := range categories {
		if category.Type == t {
			return category.Name, true
		}
	}

	return "", false
}
