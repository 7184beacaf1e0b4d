package categorizer

import (
	"sort"
	"strings"

	"github.com/openbooks/reconcile/internal/models"
	"github.com/ryanuber/go-glob"
)

// ApplyRules applies user-defined match rules to a vendor name.
// Rules are evaluated in ascending priority order; the first rule
// whose glob pattern matches wins. Matching is case-insensitive, the
// way users expect "amazon*" to behave.
func ApplyRules(rules []models.MatchRule, vendor string) (string, bool) {
	ordered := make([]models.MatchRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	name := strings.ToLower(vendor)
	for _, rule := range ordered {
		if glob.Glob(strings.ToLower(rule.Match), name) {
			return rule.CategoryName, true
		}
	}

	return "", false
}
