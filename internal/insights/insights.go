// Package insights derives review alerts from an import batch:
// uncategorized backlogs, unusually large expenses and likely
// duplicate entries. Derivation is deterministic so the same batch
// always produces the same alerts; notification and presentation are
// the caller's concern.
package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/openbooks/reconcile/internal/importer"
	"github.com/openbooks/reconcile/internal/models"
	"github.com/shopspring/decimal"
)

// Alert codes.
const (
	CodeUnusualAmount      = "unusual-amount"
	CodeDuplicateCandidate = "duplicate-candidate"
	CodeUncategorized      = "uncategorized"
)

// unusualFactor is how far above its category's median an expense must
// be to be flagged.
var unusualFactor = decimal.New(3, 0)

// duplicateWindowDays is the date distance within which two equal
// transactions of the same vendor count as duplicate candidates.
const duplicateWindowDays = 3

// minSamplesForMedian is the smallest category size for which a median
// is meaningful enough to flag outliers against.
const minSamplesForMedian = 3

// Derive produces the alerts for one import batch. Alerts appear in a
// fixed order: unusual amounts in transaction order, then duplicate
// candidates in transaction order, then the uncategorized summary.
func Derive(resources importer.ParsedResources) []models.Alert {
	var alerts []models.Alert

	alerts = append(alerts, unusualAmounts(resources.Transactions)...)
	alerts = append(alerts, duplicateCandidates(resources.Transactions)...)

	if alert, ok := uncategorizedSummary(resources.Transactions); ok {
		alerts = append(alerts, alert)
	}

	return alerts
}

// unusualAmounts flags expenses that exceed three times the median
// absolute amount of their category. Categories with fewer than three
// transactions are skipped, a median of one or two entries flags
// ordinary variance.
func unusualAmounts(transactions []models.Transaction) []models.Alert {
	byCategory := make(map[string][]decimal.Decimal)
	for _, t := range transactions {
		if t.Amount.IsNegative() {
			byCategory[t.CategoryName] = append(byCategory[t.CategoryName], t.Amount.Abs())
		}
	}

	medians := make(map[string]decimal.Decimal)
	for category, amounts := range byCategory {
		if len(amounts) >= minSamplesForMedian {
			medians[category] = median(amounts)
		}
	}

	var alerts []models.Alert
	for _, t := range transactions {
		m, ok := medians[t.CategoryName]
		if !ok || !t.Amount.IsNegative() {
			continue
		}

		if t.Amount.Abs().GreaterThan(m.Mul(unusualFactor)) {
			alerts = append(alerts, models.Alert{
				Severity: models.AlertSeverityWarning,
				Code:     CodeUnusualAmount,
				Message:  fmt.Sprintf("%s of %s on %s is well above the usual amount for %s", t.VendorName, t.Amount.Abs(), t.Date, t.CategoryName),
			})
		}
	}

	return alerts
}

// duplicateCandidates flags pairs with the same vendor and amount
// within a few days of each other. Each pair is reported once.
func duplicateCandidates(transactions []models.Transaction) []models.Alert {
	var alerts []models.Alert

	for i, a := range transactions {
		for _, b := range transactions[i+1:] {
			if models.NormalizeVendorName(a.VendorName) != models.NormalizeVendorName(b.VendorName) {
				continue
			}
			if !a.Amount.Equal(b.Amount) {
				continue
			}

			days, ok := dateDistance(a.Date, b.Date)
			if !ok || days > duplicateWindowDays {
				continue
			}

			alerts = append(alerts, models.Alert{
				Severity: models.AlertSeverityWarning,
				Code:     CodeDuplicateCandidate,
				Message:  fmt.Sprintf("%s was charged %s twice within %d days (%s and %s)", a.VendorName, a.Amount.Abs(), days, a.Date, b.Date),
			})
		}
	}

	return alerts
}

func uncategorizedSummary(transactions []models.Transaction) (models.Alert, bool) {
	count := 0
	for _, t := range transactions {
		if t.CategoryName == "" || t.CategoryName == "Uncategorized" {
			count++
		}
	}

	if count == 0 {
		return models.Alert{}, false
	}

	severity := models.AlertSeverityInfo
	if count*4 >= len(transactions) { // a quarter or more of the batch
		severity = models.AlertSeverityWarning
	}

	return models.Alert{
		Severity: severity,
		Code:     CodeUncategorized,
		Message:  fmt.Sprintf("%d of %d transactions are uncategorized", count, len(transactions)),
	}, true
}

func median(amounts []decimal.Decimal) decimal.Decimal {
	sorted := make([]decimal.Decimal, len(amounts))
	copy(sorted, amounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	middle := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[middle]
	}

	return sorted[middle-1].Add(sorted[middle]).Div(decimal.New(2, 0))
}

// dateDistance is the whole-day distance between two ISO dates. Dates
// that fail to parse (the normalizer passes unrecognized input
// through) are not comparable.
func dateDistance(a, b string) (int, bool) {
	ta, err := time.Parse("2006-01-02", a)
	if err != nil {
		return 0, false
	}

	tb, err := time.Parse("2006-01-02", b)
	if err != nil {
		return 0, false
	}

	days := int(ta.Sub(tb).Hours() / 24)
	if days < 0 {
		days = -days
	}

	return days, true
}
