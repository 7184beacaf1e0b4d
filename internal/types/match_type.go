package types

// MatchType classifies how a bank transaction and a ledger
// transaction were paired.
type MatchType string

const (
	// MatchTypeExact is a same-day pairing with identical amounts.
	MatchTypeExact MatchType = "exact"
	// MatchTypeTiming is an identical-amount pairing where the dates
	// differ due to processing or clearing delay.
	MatchTypeTiming MatchType = "timing"
	// MatchTypeFeeAdjusted is a pairing where the amount difference is
	// explained by a payment-processing or banking fee.
	MatchTypeFeeAdjusted MatchType = "fee_adjusted"
	// MatchTypePartial is a low-confidence pairing that needs review.
	MatchTypePartial MatchType = "partial"
)
