// SPDX-License-Identifier: MIT
// Package matrix: stateless vector helpers.
//
// Thin wrappers over gonum/floats with length validation in front, so
// callers get ErrDimensionMismatch instead of a gonum panic.

package matrix

import (
	"gonum.org/v1/gonum/floats"
)

const opDistance = "Distance"

// Uniform returns a length-n vector with every entry 1/n.
// n <= 0 yields an empty vector.
func Uniform(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	v := make([]float64, n)
	floats.AddConst(1.0/float64(n), v)

	return v
}

// Sum returns Σ x[i]. The empty vector sums to 0.
func Sum(x []float64) float64 { return floats.Sum(x) }

// Distance returns the Euclidean distance ‖a − b‖₂.
// Errors: ErrDimensionMismatch when len(a) != len(b).
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, matrixErrorf(opDistance, ErrDimensionMismatch)
	}

	return floats.Distance(a, b, 2), nil
}
