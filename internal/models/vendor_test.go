package models_test

import (
	"testing"

	"github.com/openbooks/reconcile/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeVendorName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		normalized string
	}{
		{"Lowercasing", "Acme Corp", "acme corp"},
		{"Whitespace collapse", "Acme   Corp", "acme corp"},
		{"Trim", "  Acme Corp  ", "acme corp"},
		{"Tabs and newlines", "Acme\tCorp\n", "acme corp"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.normalized, models.NormalizeVendorName(tt.input))
		})
	}
}

// TestNewVendorCollision verifies that raw names which normalize
// identically produce the same deduplication key.
func TestNewVendorCollision(t *testing.T) {
	a := models.NewVendor("Acme  Corp")
	b := models.NewVendor(" ACME CORP")

	assert.Equal(t, a.NormalizedName, b.NormalizedName)
	assert.Equal(t, "Acme  Corp", a.Name)
}
