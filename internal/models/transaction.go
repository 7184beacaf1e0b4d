// Package models defines the canonical records exchanged between the
// ingestion normalizer, the matching engine and their callers. The
// package holds plain data only; persistence is the caller's concern.
package models

import (
	"github.com/openbooks/reconcile/internal/types"
	"github.com/shopspring/decimal"
)

// Transaction is a single general-ledger transaction in canonical form.
// Positive amounts are credits/income, negative amounts are
// debits/expenses. The amount is never zero: zero-amount rows are
// dropped during parsing as non-transactions.
type Transaction struct {
	// Date is an ISO-8601 calendar date. Unrecognized input dates pass
	// through unchanged, so callers validating dates must not assume
	// this field always parses.
	Date         string          `json:"date"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CategoryName string          `json:"categoryName"`
	VendorName   string          `json:"vendorName"`
	Source       types.Platform  `json:"source"`

	// ImportHash is the SHA256 hash of the source CSV row. It allows
	// the persistence layer to detect transactions that were already
	// imported in an earlier batch.
	ImportHash string `json:"importHash"`
}
