// SPDX-License-Identifier: MIT

// Package rank turns pairwise preference judgments into a relative
// importance score per item.
//
// 🚀 What does it compute?
//
//	Each judgment {Target, Source, Value} says how strongly Target is
//	preferred over Source (0.5 = indifferent, 1 = Target strongly,
//	0 = Source strongly). Judgments accumulate into an n×n preference
//	matrix M:
//
//	  M[source][target] += value
//	  M[target][source] += 1 - value
//
//	and after every batch each diagonal cell is refreshed to its column sum.
//
//	Ranking runs damped power iteration over the row-stochastic form of M,
//	the same way PageRank does over a link graph:
//
//	  T  = rows of M scaled to sum 1 (all-zero rows become uniform)
//	  T' = d·T + (1-d)/n·J
//	  v₀ = 1/n,  v_{k+1} = v_k·T'  until ‖v_{k+1}−v_k‖₂ < ε
//
//	The damping d adapts to the amount of data collected:
//
//	  d = clamp(P / (P + 0.5·n(n-1)/2), 0.05, 0.99)
//
//	so a sparse round stays close to uniform and a well-sampled round
//	follows the preferences.
//
// ✨ Key features:
//   - deterministic: items are indexed in lexicographic order
//   - scores always sum to 1
//   - all-or-nothing batches: an invalid judgment rejects its whole batch
//   - per-pair Beta(1,1)-prior variance as a confidence signal
//
// ⚙️ Usage:
//
//	eng, err := rank.New([]string{"A", "B", "C"})
//	if err != nil { ... }
//	err = eng.AddPreferences([]rank.Preference{
//	  {Target: "A", Source: "B", Value: 1},
//	  {Target: "C", Source: "B", Value: 0.7},
//	})
//	scores, err := eng.Rank()
//	variances := eng.Variances()
//
// Concurrency:
//
//	An Engine is single-round, single-goroutine state. Serialize
//	AddPreferences calls; Rank and Variances only read.
package rank
