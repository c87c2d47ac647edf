// SPDX-License-Identifier: MIT

package rank

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/prefrank/matrix"
)

// Engine holds the state of one ranking round: a fixed item set, the
// accumulated preference matrix and the number of absorbed preferences.
//
// An Engine is not safe for concurrent mutation. Create one per round and
// discard it afterwards; there is no state shared between engines.
type Engine struct {
	items []string       // sorted item ids; index i ↔ matrix row/col i
	index map[string]int // item id → matrix index
	m     *matrix.Dense  // n×n accumulated preference mass
	count int            // preferences absorbed so far
	opts  Options        // engine-level defaults for Rank
}

// New builds an engine for the given items.
//
// Implementation:
//   - Stage 1: drop duplicates, reject empty ids, require ≥ 2 items.
//   - Stage 2: sort lexicographically and build the index map.
//   - Stage 3: allocate a zero n×n matrix.
//
// Errors:
//   - ErrInvalidInput when fewer than two distinct items remain or an id is "".
//
// Complexity:
//   - Time O(n log n + n²), Space O(n²).
func New(items []string, opts ...Option) (*Engine, error) {
	seen := make(map[string]struct{}, len(items))
	sorted := make([]string, 0, len(items))
	for _, it := range items {
		if it == "" {
			return nil, fmt.Errorf("New: empty item id: %w", ErrInvalidInput)
		}
		if _, dup := seen[it]; dup {
			continue
		}
		seen[it] = struct{}{}
		sorted = append(sorted, it)
	}
	if len(sorted) < 2 {
		return nil, fmt.Errorf("New: %d distinct item(s): %w", len(sorted), ErrInvalidInput)
	}
	sort.Strings(sorted)

	index := make(map[string]int, len(sorted))
	for i, it := range sorted {
		index[it] = i
	}

	m, err := matrix.NewSquare(len(sorted))
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Engine{
		items: sorted,
		index: index,
		m:     m,
		opts:  gatherOptions(defaultOptions(), opts...),
	}, nil
}

// Items returns the item ids in matrix-index order (lexicographic).
func (e *Engine) Items() []string {
	out := make([]string, len(e.items))
	copy(out, e.items)

	return out
}

// Len returns the number of items.
func (e *Engine) Len() int { return len(e.items) }

// PreferenceCount returns the number of preferences absorbed so far.
func (e *Engine) PreferenceCount() int { return e.count }

// Index returns the matrix index of item and whether it is known.
func (e *Engine) Index(item string) (int, bool) {
	i, ok := e.index[item]
	return i, ok
}

// Matrix returns a copy of the accumulated preference matrix.
func (e *Engine) Matrix() *matrix.Dense {
	return e.m.Clone().(*matrix.Dense)
}

// resolved is a validated preference expressed in matrix indices.
type resolved struct {
	target, source int
	value          float64
}

// AddPreferences absorbs a batch of judgments.
//
// Implementation:
//   - Stage 1: validate every entry (known items, target ≠ source,
//     finite value within [0, 1]).
//   - Stage 2: on a working copy, add value to M[source][target] and
//     1-value to M[target][source] for each entry.
//   - Stage 3: set every diagonal cell to the sum of its column (which
//     includes the diagonal carried over from earlier batches).
//   - Stage 4: swap the copy in and bump the preference count.
//
// Behavior highlights:
//   - All-or-nothing: the first invalid entry rejects the whole batch and
//     leaves the engine unchanged.
//   - An empty batch is a no-op.
//   - The diagonal refresh is O(n²) per call, so submit judgments in
//     batches rather than one at a time.
//
// Errors:
//   - ErrUnknownItem, ErrSelfPreference, ErrInvalidValue (wrapped with the
//     offending entry's position).
//
// Complexity:
//   - Time O(len(prefs) + n²), Space O(n²).
func (e *Engine) AddPreferences(prefs []Preference) error {
	if len(prefs) == 0 {
		return nil
	}

	batch := make([]resolved, len(prefs))
	for k, p := range prefs {
		r, err := e.resolve(p)
		if err != nil {
			return fmt.Errorf("AddPreferences: preference %d: %w", k, err)
		}
		batch[k] = r
	}

	work := e.m.Clone().(*matrix.Dense)
	for _, r := range batch {
		if err := work.Add(r.source, r.target, r.value); err != nil {
			return fmt.Errorf("AddPreferences: %w", err)
		}
		if err := work.Add(r.target, r.source, 1-r.value); err != nil {
			return fmt.Errorf("AddPreferences: %w", err)
		}
	}
	if err := refreshDiagonal(work); err != nil {
		return fmt.Errorf("AddPreferences: %w", err)
	}

	e.m = work
	e.count += len(batch)
	e.opts.logger.Debug().
		Int("batch", len(batch)).
		Int("total", e.count).
		Msg("preferences absorbed")

	return nil
}

// resolve validates p and maps its items to matrix indices.
func (e *Engine) resolve(p Preference) (resolved, error) {
	t, ok := e.index[p.Target]
	if !ok {
		return resolved{}, fmt.Errorf("target %q: %w", p.Target, ErrUnknownItem)
	}
	s, ok := e.index[p.Source]
	if !ok {
		return resolved{}, fmt.Errorf("source %q: %w", p.Source, ErrUnknownItem)
	}
	if t == s {
		return resolved{}, fmt.Errorf("item %q: %w", p.Target, ErrSelfPreference)
	}
	if math.IsNaN(p.Value) || p.Value < 0 || p.Value > 1 {
		return resolved{}, fmt.Errorf("value %v: %w", p.Value, ErrInvalidValue)
	}

	return resolved{target: t, source: s, value: p.Value}, nil
}

// refreshDiagonal sets m[i,i] to the sum of column i, diagonal included.
func refreshDiagonal(m *matrix.Dense) error {
	cols, err := matrix.ColSums(m)
	if err != nil {
		return err
	}
	for i, c := range cols {
		if err = m.Set(i, i, c); err != nil {
			return err
		}
	}

	return nil
}
