// SPDX-License-Identifier: MIT
// Package matrix: reductions and vector products.
//
// Determinism & Policy:
//   - Fixed i→j loop order everywhere; the *Dense fast-path walks the flat
//     buffer, the generic fallback goes through At.
//   - Results are fresh slices; inputs are never mutated.

package matrix

import "fmt"

const (
	opRowSums = "RowSums"
	opColSums = "ColSums"
	opVecMul  = "VecMul"
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RowSums returns vector r where r[i] = Σ_j m[i,j].
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				out[i] += d.data[base+j]
			}
		}

		return out, nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns vector c where c[j] = Σ_i m[i,j].
// Rows are accumulated top to bottom, so c[j] is bit-identical between the
// fast-path and the fallback.
// Complexity: O(rc).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				out[j] += d.data[base+j]
			}
		}

		return out, nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// VecMul computes the row-vector product y = x·m, i.e. y[j] = Σ_i x[i]·m[i,j].
//
// Contract: m non-nil; x non-nil; len(x) == m.Rows().
// Determinism: fixed i→j loop order (row-major friendly).
// Complexity: Time O(r*c), Space O(c) for y.
//
// This is the update step of power iteration on a row-stochastic matrix:
// if x sums to 1 and every row of m sums to 1, so does y.
func VecMul(x []float64, m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var xv float64
		for i = 0; i < rows; i++ {
			xv = x[i]
			if xv == 0 {
				continue // contributes nothing
			}
			base = i * cols
			for j = 0; j < cols; j++ {
				y[j] += xv * d.data[base+j]
			}
		}

		return y, nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opVecMul, err)
			}
			y[j] += x[i] * v
		}
	}

	return y, nil
}
