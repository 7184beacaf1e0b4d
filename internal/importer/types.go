// Package importer assembles the output of the dialect parsers into
// canonical import batches. Deduplication here is per batch only;
// cross-batch deduplication against already persisted categories and
// vendors is the job of the persistence layer, which upserts by name.
package importer

import (
	"github.com/openbooks/reconcile/internal/importer/parser"
	"github.com/openbooks/reconcile/internal/models"
	"github.com/openbooks/reconcile/internal/types"
)

// ParsedResources contains all resources parsed from one GL export.
// Slice order is the order of first appearance in the file, so parsing
// the same input always yields identical output.
type ParsedResources struct {
	// Currency is the ISO 4217 code detected from the first amount
	// carrying a currency symbol, empty when no symbol was seen.
	Currency     string               `json:"currency"`
	Transactions []models.Transaction `json:"transactions"`
	Categories   []models.Category    `json:"categories"`
	Vendors      []models.Vendor      `json:"vendors"`
}

// Batch collects canonical records during a parse run and deduplicates
// categories and vendors by their normalized names.
type Batch struct {
	platform  types.Platform
	resources ParsedResources

	seenCategories map[string]bool
	seenVendors    map[string]bool
}

// NewBatch returns an empty batch for the given platform.
func NewBatch(platform types.Platform) *Batch {
	return &Batch{
		platform:       platform,
		seenCategories: make(map[string]bool),
		seenVendors:    make(map[string]bool),
	}
}

// AddTransaction appends a canonical transaction to the batch. The
// transaction's category and vendor are registered first so that both
// exist before any transaction references them.
func (b *Batch) AddTransaction(t models.Transaction) {
	t.Source = b.platform

	b.addCategory(t.CategoryName)
	b.addVendor(t.VendorName)

	b.resources.Transactions = append(b.resources.Transactions, t)
}

// SetCurrency records the batch currency. The first detected code
// wins, exports do not mix currencies within one file.
func (b *Batch) SetCurrency(code string) {
	if code != "" && b.resources.Currency == "" {
		b.resources.Currency = code
	}
}

// Resources returns everything collected so far.
func (b *Batch) Resources() ParsedResources {
	return b.resources
}

// uncategorized is the placeholder name for transactions without a
// category. It never gets a Category record of its own.
const uncategorized = "Uncategorized"

func (b *Batch) addCategory(name string) {
	if name == "" || name == uncategorized {
		return
	}

	key := models.NormalizeVendorName(name)
	if b.seenCategories[key] {
		return
	}
	b.seenCategories[key] = true

	b.resources.Categories = append(b.resources.Categories, models.Category{
		Name: name,
		Type: parser.InferCategoryType(name),
	})
}

func (b *Batch) addVendor(name string) {
	vendor := models.NewVendor(name)
	if vendor.NormalizedName == "" || b.seenVendors[vendor.NormalizedName] {
		return
	}
	b.seenVendors[vendor.NormalizedName] = true

	b.resources.Vendors = append(b.resources.Vendors, vendor)
}
