// SPDX-License-Identifier: MIT
// Package matrix: Markov-chain helpers.
//
// RowStochastic turns a non-negative weight matrix into a transition matrix;
// Damp blends a transition matrix with the uniform "random jump" matrix.

package matrix

import "fmt"

const (
	opRowStochastic = "RowStochastic"
	opDamp          = "Damp"
)

// RowStochastic returns a copy of m where every row sums to 1.
//
// Implementation:
//   - Stage 1: validate m (non-nil).
//   - Stage 2: compute row sums via RowSums.
//   - Stage 3: divide each row by its sum; a row whose sum is exactly zero
//     becomes the uniform row 1/cols.
//
// Behavior highlights:
//   - The result never contains a dangling (all-zero) state.
//   - Entries are assumed non-negative; signs are not checked.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func RowStochastic(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowStochastic, err)
	}
	sums, err := RowSums(m)
	if err != nil {
		return nil, matrixErrorf(opRowStochastic, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opRowStochastic, err)
	}
	uniform := 1.0 / float64(cols)

	var v float64
	for i := 0; i < rows; i++ {
		base := i * cols
		if sums[i] == 0 {
			for j := 0; j < cols; j++ {
				out.data[base+j] = uniform
			}
			continue
		}
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowStochastic, err)
			}
			out.data[base+j] = v / sums[i]
		}
	}

	return out, nil
}

// Damp returns d·m + (1-d)/n·J where n = m.Cols() and J is all-ones.
//
// When m is row-stochastic and d ∈ [0,1] the result is row-stochastic with
// strictly positive entries (for d < 1), hence has a unique stationary
// distribution. d itself is not range-checked; callers own that policy.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (non-finite d).
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func Damp(m Matrix, d float64) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDamp, err)
	}
	if isNonFinite(d) {
		return nil, matrixErrorf(opDamp, fmt.Errorf("d=%v: %w", d, ErrNaNInf))
	}
	n := m.Cols()
	out, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opDamp, err)
	}
	jump := (1 - d) / float64(n)
	if err = out.Apply(func(_, _ int, v float64) float64 { return d*v + jump }); err != nil {
		return nil, matrixErrorf(opDamp, err)
	}

	return out, nil
}

// toDense returns a *Dense copy of m; *Dense inputs are cloned directly.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
