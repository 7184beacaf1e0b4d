package matcher

import (
	"strings"
)

// aliasGroups lists names for counterparties that appear under
// different descriptors in bank feeds and ledgers. Each group holds
// every spelling of one counterparty. The table is compiled-in
// knowledge, there is no extensibility contract.
var aliasGroups = [][]string{
	{"amazon web services", "aws", "amazon"},
	{"google cloud", "google", "gcp"},
	{"microsoft", "msft"},
	{"intuit", "quickbooks"},
	{"american express", "amex"},
	{"united airlines", "united"},
	{"delta air lines", "delta"},
	{"paypal", "pypl"},
	{"meta platforms", "facebook", "meta"},
}

// descriptionsMatch reports whether a bank description plausibly
// refers to the ledger vendor. It is true when the description
// contains the vendor name or its first word (if that word has at
// least four characters), when both texts name the same alias group,
// or when the texts share any word of at least four characters by
// substring containment in either direction.
func descriptionsMatch(description, vendor string) bool {
	d := strings.ToLower(description)
	v := strings.ToLower(strings.TrimSpace(vendor))
	if d == "" || v == "" {
		return false
	}

	if strings.Contains(d, v) {
		return true
	}

	if first := strings.Fields(v)[0]; len(first) >= 4 && strings.Contains(d, first) {
		return true
	}

	for _, group := range aliasGroups {
		if containsAny(v, group) && containsAny(d, group) {
			return true
		}
	}

	return shareWord(d, v)
}

func containsAny(text string, names []string) bool {
	for _, name := range names {
		if strings.Contains(text, name) {
			return true
		}
	}

	return false
}

// shareWord reports whether the two texts share a word of at least
// four characters, where "share" is substring containment in either
// direction ("staples" shares "staple").
func shareWord(a, b string) bool {
	for _, wa := range strings.Fields(a) {
		if len(wa) < 4 {
			continue
		}

		for _, wb := range strings.Fields(b) {
			if len(wb) < 4 {
				continue
			}

			if strings.Contains(wa, wb) || strings.Contains(wb, wa) {
				return true
			}
		}
	}

	return false
}
