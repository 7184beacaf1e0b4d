// Package types implements special types for the reconciliation core.
package types

import (
	"fmt"
	"strings"
)

// Platform identifies the accounting platform a general ledger
// export was produced by. The platform decides which CSV dialect
// is used for parsing and how ambiguous dates are interpreted.
type Platform string

const (
	PlatformQBO  Platform = "qbo"
	PlatformXero Platform = "xero"
)

// ParsePlatform parses a platform discriminator string.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformQBO:
		return PlatformQBO, nil
	case PlatformXero:
		return PlatformXero, nil
	}

	return "", fmt.Errorf("unknown platform: %q", s)
}

// String returns the platform tag as stored on canonical records.
func (p Platform) String() string {
	return string(p)
}
