// Package dice wraps a seedable random source for question generators.
package dice

import "math/rand/v2"

// New returns a deterministic source for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Pick returns a uniformly selected element of items. It panics on an empty
// slice; every caller draws from a fixed, non-empty table.
func Pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// Shuffle returns a shuffled copy of items.
func Shuffle[T any](r *rand.Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Chance reports true with probability p.
func Chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}

// Between returns an integer in [lo, hi].
func Between(r *rand.Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
