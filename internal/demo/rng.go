// Package demo produces deterministic fixture data: a fixed fallback
// dataset for empty imports and seeded mock bank-feed and ledger
// generators for demo workspaces.
//
// Determinism is a hard requirement: the same workspace identifier
// must always produce byte-identical fixtures, so test environments
// and demos are reproducible. That is why the package carries its own
// linear congruential generator seeded from a string hash instead of
// using a platform RNG.
package demo

import (
	"hash/fnv"

	"github.com/shopspring/decimal"
)

// rng is a linear congruential generator with the MMIX multiplier.
type rng struct {
	state uint64
}

// newRNG seeds a generator from an arbitrary string, typically the
// workspace identifier.
func newRNG(seed string) *rng {
	h := fnv.New64a()
	h.Write([]byte(seed))

	return &rng{state: h.Sum64()}
}

func (r *rng) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a value in [0, n).
func (r *rng) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	return int((r.next() >> 33) % uint64(n))
}

// Amount returns a two-decimal amount in [min, max].
func (r *rng) Amount(min, max int) decimal.Decimal {
	cents := min*100 + r.Intn((max-min)*100+1)
	return decimal.New(int64(cents), -2)
}

// Pick returns a deterministic choice from options.
func (r *rng) Pick(options []string) string {
	return options[r.Intn(len(options))]
}
