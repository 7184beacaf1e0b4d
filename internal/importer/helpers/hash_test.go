package helpers_test

import (
	"testing"

	"github.com/openbooks/reconcile/internal/importer/helpers"
	"github.com/stretchr/testify/assert"
)

func TestSha256String(t *testing.T) {
	// Precomputed SHA256 of "ledger"
	assert.Equal(t, "fe14010b4fe83303852f0467c919ef9a7ca089b91e96e3aad7d426dd87079297", helpers.Sha256String("ledger"))
}

func TestRowHash(t *testing.T) {
	record := []string{"2024-01-05", "Acme Corp", "-100.00"}

	assert.Equal(t, helpers.Sha256String("2024-01-05,Acme Corp,-100.00"), helpers.RowHash(record))

	// Same record, same hash
	assert.Equal(t, helpers.RowHash(record), helpers.RowHash([]string{"2024-01-05", "Acme Corp", "-100.00"}))
}
