// SPDX-License-Identifier: MIT

package rank

import (
	"fmt"

	"github.com/katalvlaran/prefrank/matrix"
)

// Rank runs damped power iteration and returns the score per item.
// See RankDetailed for the algorithm and options; the same option panics
// apply.
func (e *Engine) Rank(opts ...Option) (Scores, error) {
	res, err := e.RankDetailed(opts...)
	if err != nil {
		return nil, err
	}

	return res.Scores, nil
}

// RankDetailed runs damped power iteration over the accumulated preferences.
//
// Implementation:
//   - Stage 1: resolve options; damping comes from WithDamping when given,
//     otherwise from DampingFor(PreferenceCount(), Len()).
//   - Stage 2: T = RowStochastic(M); T' = d·T + (1-d)/n·J.
//   - Stage 3: v₀ = 1/n; v_{k+1} = v_k·T' until ‖v_{k+1} − v_k‖₂ < eps or
//     maxIterations steps were taken.
//   - Stage 4: label the final vector with item ids.
//
// Behavior highlights:
//   - Hitting maxIterations is not an error: the last iterate is returned
//     with Converged=false.
//   - Read-only: repeated calls without new preferences return identical
//     results.
//
// Panics:
//   - WithDamping panics for d outside [0, 1]; in-range values are used
//     as-is, without the [MinDamping, MaxDamping] clamp.
//   - WithEpsilon and WithMaxIterations panic for non-positive values.
//     Options are evaluated at the call site, before RankDetailed runs.
//
// Errors:
//   - ErrDimensionMismatch when the matrix shape disagrees with the item
//     count, e.g. on a zero-value Engine that was not built with New.
//
// Complexity:
//   - Time O(n² · iterations), Space O(n²).
func (e *Engine) RankDetailed(opts ...Option) (*Result, error) {
	o := gatherOptions(e.opts, opts...)
	n := len(e.items)
	if e.m == nil {
		return nil, fmt.Errorf("RankDetailed: %d items, no matrix: %w", n, ErrDimensionMismatch)
	}
	if r, c := e.m.Shape(); r != n || c != n {
		return nil, fmt.Errorf("RankDetailed: %d items, %dx%d matrix: %w", n, r, c, ErrDimensionMismatch)
	}

	d := e.Damping()
	if o.hasDamping {
		d = o.damping
	}

	t, err := matrix.RowStochastic(e.m)
	if err != nil {
		return nil, fmt.Errorf("RankDetailed: %w: %w", ErrDimensionMismatch, err)
	}
	td, err := matrix.Damp(t, d)
	if err != nil {
		return nil, fmt.Errorf("RankDetailed: %w: %w", ErrDimensionMismatch, err)
	}

	v, iters, converged, err := powerIterate(td, o.eps, o.maxIterations)
	if err != nil {
		return nil, fmt.Errorf("RankDetailed: %w: %w", ErrDimensionMismatch, err)
	}

	log := o.logger.With().
		Int("items", n).
		Int("preferences", e.count).
		Float64("damping", d).
		Int("iterations", iters).
		Logger()
	if converged {
		log.Debug().Msg("power iteration converged")
	} else {
		log.Warn().Float64("epsilon", o.eps).Msg("power iteration hit the iteration cap")
	}

	scores := make(Scores, n)
	for i, item := range e.items {
		scores[item] = v[i]
	}

	return &Result{
		Scores:     scores,
		Damping:    d,
		Iterations: iters,
		Converged:  converged,
	}, nil
}

// powerIterate runs v_{k+1} = v_k·t from the uniform vector.
// It returns the last iterate, the number of steps taken and whether the
// step size dropped below eps within maxIter steps.
func powerIterate(t matrix.Matrix, eps float64, maxIter int) ([]float64, int, bool, error) {
	if err := matrix.ValidateSquareNonNil(t); err != nil {
		return nil, 0, false, err
	}
	v := matrix.Uniform(t.Rows())

	var (
		next  []float64
		delta float64
		err   error
	)
	for k := 1; k <= maxIter; k++ {
		if next, err = matrix.VecMul(v, t); err != nil {
			return nil, k - 1, false, err
		}
		if delta, err = matrix.Distance(next, v); err != nil {
			return nil, k - 1, false, err
		}
		v = next
		if delta < eps {
			return v, k, true, nil
		}
	}

	return v, maxIter, false, nil
}
