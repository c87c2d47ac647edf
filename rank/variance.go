// SPDX-License-Identifier: MIT

package rank

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// BetaVariance returns the variance of Beta(a, b):
//
//	a·b / ((a+b+1)·(a+b)²)
func BetaVariance(a, b float64) float64 {
	return distuv.Beta{Alpha: a, Beta: b}.Variance()
}

// Variances returns one PairVariance per unordered item pair (i, j), i < j
// in item order, listed row-major.
//
// The accumulated mass of a pair is read as a Beta posterior with a
// symmetric (1,1) prior: a = M[i][j]+1, b = M[j][i]+1. More mass on either
// side lowers the variance; a pair without judgments has the prior's
// maximum 1/12.
//
// Independent of power iteration; reads the matrix only.
// Complexity: O(n²).
func (e *Engine) Variances() []PairVariance {
	n := len(e.items)
	rows := make([][]float64, n)
	for i := range rows {
		// Indices come from the item set, so Row cannot fail here.
		rows[i], _ = e.m.Row(i)
	}

	out := make([]PairVariance, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, PairVariance{
				A:        e.items[i],
				B:        e.items[j],
				Variance: BetaVariance(rows[i][j]+1, rows[j][i]+1),
			})
		}
	}

	return out
}

// Variance returns the Beta variance of the pair (a, b); argument order
// does not matter.
// Errors: ErrUnknownItem for ids outside the item set, ErrSelfPreference
// when a == b.
func (e *Engine) Variance(a, b string) (float64, error) {
	i, ok := e.index[a]
	if !ok {
		return 0, fmt.Errorf("Variance: item %q: %w", a, ErrUnknownItem)
	}
	j, ok := e.index[b]
	if !ok {
		return 0, fmt.Errorf("Variance: item %q: %w", b, ErrUnknownItem)
	}
	if i == j {
		return 0, fmt.Errorf("Variance: item %q: %w", a, ErrSelfPreference)
	}
	if i > j {
		i, j = j, i
	}
	mij, _ := e.m.At(i, j)
	mji, _ := e.m.At(j, i)

	return BetaVariance(mij+1, mji+1), nil
}
