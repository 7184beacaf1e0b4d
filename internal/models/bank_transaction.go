package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankTransaction is a transaction from the bank's own feed. It has no
// relationship to a ledger transaction until the matching engine
// proposes one.
type BankTransaction struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}
