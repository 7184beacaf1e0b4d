package models

import (
	"strings"
)

// Vendor is a counterparty derived from ledger data.
type Vendor struct {
	// Name is the display string as it appeared in the export.
	Name string `json:"name"`
	// NormalizedName is the deduplication key. Two raw vendor strings
	// that normalize identically collapse to one Vendor record.
	NormalizedName string `json:"normalizedName"`
}

// NewVendor returns a Vendor for a raw display name.
func NewVendor(name string) Vendor {
	return Vendor{
		Name:           strings.TrimSpace(name),
		NormalizedName: NormalizeVendorName(name),
	}
}

// NormalizeVendorName lowercases a vendor name, collapses all runs of
// whitespace to single spaces and trims the result.
func NormalizeVendorName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
