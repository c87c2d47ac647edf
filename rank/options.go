// SPDX-License-Identifier: MIT

// Package rank: functional configuration for ranking runs.
//
// Options given to New become the engine's defaults; options given to
// Rank/RankDetailed are applied on top of them for that call only
// (last-writer-wins). Constructors panic only on nonsensical values
// (programmer error), never on data.
package rank

import (
	"math"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the convergence threshold on ‖v_{k+1} − v_k‖₂.
	DefaultEpsilon = 0.001

	// DefaultMaxIterations caps the number of power-iteration steps.
	DefaultMaxIterations = 1000
)

// ---------- Panic messages (stable, grep-able) ----------

const (
	panicDampingInvalid       = "rank: WithDamping: d must be finite and within [0, 1]"
	panicEpsilonInvalid       = "rank: WithEpsilon: eps must be finite and > 0"
	panicMaxIterationsInvalid = "rank: WithMaxIterations: n must be > 0"
)

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective configuration of a ranking run.
// Fields are unexported; use the WithX constructors.
type Options struct {
	damping       float64 // explicit damping; used only when hasDamping
	hasDamping    bool    // false = adaptive damping from preference count
	eps           float64 // DefaultEpsilon
	maxIterations int     // DefaultMaxIterations
	logger        zerolog.Logger
}

// WithDamping overrides the adaptive damping factor with d.
// The value is used as-is (no clamping to [MinDamping, MaxDamping]).
// Panics when d is NaN/±Inf or outside [0, 1].
func WithDamping(d float64) Option {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 || d > 1 {
		panic(panicDampingInvalid)
	}

	return func(o *Options) {
		o.damping = d
		o.hasDamping = true
	}
}

// WithAdaptiveDamping clears a damping override set earlier (for example on
// the engine) so the run derives damping from the preference count again.
func WithAdaptiveDamping() Option {
	return func(o *Options) {
		o.damping = 0
		o.hasDamping = false
	}
}

// WithEpsilon sets the convergence threshold. Panics unless eps is finite and > 0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxIterations caps power iteration at n steps. Panics unless n > 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithLogger routes engine diagnostics to l. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:           DefaultEpsilon,
		maxIterations: DefaultMaxIterations,
		logger:        zerolog.Nop(),
	}
}

// gatherOptions applies setters on top of base in order.
func gatherOptions(base Options, user ...Option) Options {
	o := base
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
