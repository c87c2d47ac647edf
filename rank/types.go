// SPDX-License-Identifier: MIT

// Package rank: domain types shared by the builder, the iteration engine and
// the variance estimator.
package rank

import "sort"

// Preference is one pairwise judgment: Value ∈ [0,1] is the strength of
// preference for Target over Source (0.5 = indifferent).
type Preference struct {
	Target string  `json:"target" yaml:"target"`
	Source string  `json:"source" yaml:"source"`
	Value  float64 `json:"value" yaml:"value"`
}

// Mirror returns the equivalent judgment seen from the other side:
// {Target: B, Source: A, Value: 1-v} for {Target: A, Source: B, Value: v}.
// Both forms produce the same matrix update.
func (p Preference) Mirror() Preference {
	return Preference{Target: p.Source, Source: p.Target, Value: 1 - p.Value}
}

// Scores maps each item to its share of importance. Values sum to 1.
type Scores map[string]float64

// ScoredItem is one entry of Scores in presentation order.
type ScoredItem struct {
	Item  string  `json:"item"`
	Score float64 `json:"score"`
}

// Sorted returns the scores in descending order; ties are broken by item id
// ascending so the order is deterministic.
func (s Scores) Sorted() []ScoredItem {
	out := make([]ScoredItem, 0, len(s))
	for item, score := range s {
		out = append(out, ScoredItem{Item: item, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Item < out[j].Item
	})

	return out
}

// Result is a ranking together with how it was obtained.
type Result struct {
	Scores     Scores  // stationary distribution labeled by item
	Damping    float64 // damping factor actually used
	Iterations int     // power-iteration steps performed
	Converged  bool    // false when MaxIterations was reached first
}

// PairVariance is the Beta-posterior variance of one unordered item pair.
// A precedes B in the engine's item order.
type PairVariance struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Variance float64 `json:"variance"`
}
