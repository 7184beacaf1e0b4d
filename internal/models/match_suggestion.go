package models

import (
	"github.com/google/uuid"
	"github.com/openbooks/reconcile/internal/types"
)

// MatchSuggestion is a proposed pairing between one bank transaction
// and one ledger transaction. Within a single matching run, every bank
// and every ledger transaction appears in at most one suggestion.
type MatchSuggestion struct {
	BankTransactionID   uuid.UUID       `json:"bankTransactionId"`
	LedgerTransactionID uuid.UUID       `json:"ledgerTransactionId"`
	Confidence          float64         `json:"confidence"`
	MatchType           types.MatchType `json:"matchType"`
	// Reasoning is a human readable explanation for review UIs.
	Reasoning string `json:"reasoning"`
}
