package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerTransaction is a transaction as recorded in the accounting
// system of record, used as matching engine input.
type LedgerTransaction struct {
	ID         uuid.UUID       `json:"id"`
	Date       time.Time       `json:"date"`
	VendorName string          `json:"vendorName"`
	Amount     decimal.Decimal `json:"amount"`
}
