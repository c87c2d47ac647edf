// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric primitives behind preference
// ranking.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy.
//   - Row and column reductions (RowSums, ColSums) and the row-vector
//     product VecMul (y = x·A) used by power iteration.
//   - RowStochastic: row normalization where all-zero rows become uniform
//     rows, so every row of the result is a probability distribution.
//   - Damp: the PageRank-style blend d·A + (1-d)/n·J.
//   - Vector helpers (Sum, Distance, Uniform) as stateless functions.
//
// All loops run in fixed row-major order, so results are reproducible
// bit-for-bit for the same input.
//
//	m, _ := matrix.NewDense(3, 3)
//	_ = m.Add(0, 1, 0.75)
//	t, _ := matrix.RowStochastic(m)
//	v, _ := matrix.VecMul(matrix.Uniform(3), t)
package matrix
