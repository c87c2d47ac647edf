// SPDX-License-Identifier: MIT
// Package rank: sentinel error set.
// Every message is prefixed with "rank: ..."; callers match with errors.Is.

package rank

import "errors"

var (
	// ErrInvalidInput is returned by New when the item set has fewer than two
	// distinct members or contains an empty identifier.
	ErrInvalidInput = errors.New("rank: at least two distinct non-empty items are required")

	// ErrUnknownItem indicates that a preference references an item outside
	// the engine's item set.
	ErrUnknownItem = errors.New("rank: unknown item")

	// ErrInvalidValue indicates a preference value that is NaN, ±Inf or
	// outside [0, 1].
	ErrInvalidValue = errors.New("rank: preference value must be within [0, 1]")

	// ErrSelfPreference indicates a preference whose target equals its source.
	ErrSelfPreference = errors.New("rank: target and source must differ")

	// ErrDimensionMismatch signals an internal invariant violation between the
	// item count and the preference matrix shape.
	ErrDimensionMismatch = errors.New("rank: dimension mismatch")
)
