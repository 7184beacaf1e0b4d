package parser

import (
	"strings"
	"time"

	"github.com/openbooks/reconcile/internal/types"
)

// ParseDate normalizes a raw date field to an ISO 8601 calendar date.
//
// Already-ISO dates and "DD Mon YYYY" dates are accepted for any
// platform. Slash-delimited dates are ambiguous and are interpreted
// according to the platform hint: Xero exports DD/MM/YYYY, QBO exports
// MM/DD/YYYY. Anything unrecognized passes through unchanged, the
// caller is responsible for downstream validation.
//
// The hint is trusted blindly: a file exported in the "wrong" regional
// format relative to its platform will misparse silently.
func ParseDate(raw string, platform types.Platform) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}

	if t, err := time.Parse("2 Jan 2006", s); err == nil {
		return t.Format("2006-01-02")
	}

	if strings.Contains(s, "/") {
		layout := "1/2/2006"
		if platform == types.PlatformXero {
			layout = "2/1/2006"
		}

		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return s
}
