// SPDX-License-Identifier: MIT

package rank

const (
	// MinDamping and MaxDamping bound the adaptive damping factor.
	MinDamping = 0.05
	MaxDamping = 0.99

	// HalfLife scales the number of unordered item pairs in the damping
	// denominator: with P = HalfLife·maxPairs preferences, d = 0.5.
	HalfLife = 0.5
)

// DampingFor returns the adaptive damping factor for p absorbed preferences
// over n items:
//
//	maxPairs = n(n-1)/2
//	d        = clamp(p / (p + HalfLife·maxPairs), MinDamping, MaxDamping)
//
// The result depends on p and n only and is reproducible bit-for-bit.
// p ≤ 0 yields MinDamping; n < 2 (no pairs) yields MaxDamping for p > 0.
func DampingFor(p, n int) float64 {
	if p <= 0 {
		return MinDamping
	}
	maxPairs := float64(n) * float64(n-1) / 2
	if maxPairs < 0 {
		maxPairs = 0
	}
	pf := float64(p)
	d := pf / (pf + HalfLife*maxPairs)

	return clamp(d, MinDamping, MaxDamping)
}

// Damping returns the adaptive damping factor for the engine's current
// preference count and item count.
func (e *Engine) Damping() float64 {
	return DampingFor(e.count, len(e.items))
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
