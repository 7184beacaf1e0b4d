// Package matcher proposes pairings between a bank feed and the
// ledger recorded for the same account. Pairings account for the
// discrepancies real books show: clearing delays, percentage and fixed
// processing fees, and vendor names formatted differently by the two
// systems.
package matcher

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/openbooks/reconcile/internal/models"
	"github.com/openbooks/reconcile/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// acceptThreshold is the minimum confidence for a pair to be accepted.
// Pairs scoring below it are never suggested.
const acceptThreshold = 0.5

// centTolerance is the amount difference below which two amounts count
// as identical.
var centTolerance = decimal.New(1, -2)

// Suggest proposes a one-to-one pairing between ledger and bank
// transactions.
//
// Matching is greedy: ledger transactions are visited in input order
// and each takes the first not-yet-consumed bank transaction that
// scores at or above the acceptance threshold. This is first
// acceptable, not best: on ambiguous inputs the globally
// highest-confidence pairing may be missed.
//
// The returned suggestions are sorted by descending confidence.
// Transactions that match nothing are simply absent from the result.
func Suggest(bank []models.BankTransaction, ledger []models.LedgerTransaction) []models.MatchSuggestion {
	usedBank := make([]bool, len(bank))

	var suggestions []models.MatchSuggestion
	for _, ledgerTransaction := range ledger {
		for i, bankTransaction := range bank {
			if usedBank[i] {
				continue
			}

			confidence, matchType, reasoning := score(bankTransaction, ledgerTransaction)
			if confidence < acceptThreshold {
				continue
			}

			usedBank[i] = true
			suggestions = append(suggestions, models.MatchSuggestion{
				BankTransactionID:   bankTransaction.ID,
				LedgerTransactionID: ledgerTransaction.ID,
				Confidence:          confidence,
				MatchType:           matchType,
				Reasoning:           reasoning,
			})
			break
		}
	}

	log.Debug().
		Int("bank", len(bank)).
		Int("ledger", len(ledger)).
		Int("suggestions", len(suggestions)).
		Msg("matching run complete")

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})

	return suggestions
}

// score evaluates a single (bank, ledger) pair. The classification
// rules are ordered by confidence; the first rule that applies wins.
func score(bank models.BankTransaction, ledger models.LedgerTransaction) (float64, types.MatchType, string) {
	amountDiff := bank.Amount.Sub(ledger.Amount).Abs()
	sameAmount := amountDiff.LessThanOrEqual(centTolerance)

	// A zero ledger amount cannot anchor a relative comparison, treat
	// it as a full mismatch.
	percentDiff := 100.0
	if !ledger.Amount.IsZero() {
		percentDiff, _ = amountDiff.Div(ledger.Amount.Abs()).Mul(decimal.New(100, 0)).Float64()
	}

	days := dayDiff(bank.Date, ledger.Date)
	described := descriptionsMatch(bank.Description, ledger.VendorName)

	switch {
	case sameAmount && days == 0 && described:
		return 0.99, types.MatchTypeExact, "identical amount on the same day with a matching description"

	case sameAmount && days <= 5 && described:
		confidence := 0.85
		if days <= 2 {
			confidence = 0.95
		} else if days <= 3 {
			confidence = 0.90
		}
		return confidence, types.MatchTypeTiming, fmt.Sprintf("identical amount with a matching description, cleared %d days apart", days)

	case sameAmount && days <= 3:
		return 0.75, types.MatchTypeTiming, fmt.Sprintf("identical amount cleared %d days apart, descriptions do not obviously agree", days)

	case percentDiff > 0 && percentDiff <= 5 && days <= 5 && described:
		confidence := 0.78
		if percentDiff <= 3 {
			confidence = 0.88
		}
		return confidence, types.MatchTypeFeeAdjusted, fmt.Sprintf("amounts differ by %.1f%%, consistent with a processing fee", percentDiff)

	case amountDiff.GreaterThanOrEqual(decimal.New(10, 0)) && amountDiff.LessThanOrEqual(decimal.New(50, 0)) && days <= 5 && described:
		return 0.82, types.MatchTypeFeeAdjusted, fmt.Sprintf("amounts differ by %s, consistent with a fixed fee", amountDiff)

	case described && days <= 7 && percentDiff <= 20:
		return 0.60, types.MatchTypePartial, fmt.Sprintf("descriptions agree but amounts differ by %.1f%% and dates by %d days", percentDiff, days)

	case days <= 3 && percentDiff <= 10:
		return 0.55, types.MatchTypePartial, fmt.Sprintf("close amount and date without a description match (%.1f%%, %d days)", percentDiff, days)
	}

	return 0, types.MatchTypePartial, ""
}

// dayDiff is the difference between two dates in whole days,
// independent of the time of day.
func dayDiff(a, b time.Time) int {
	return int(math.Abs(truncateDay(a).Sub(truncateDay(b)).Hours()) / 24)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
