// SPDX-License-Identifier: MIT

// Package sparsec: functional configuration for CSC construction and the
// capacity/numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package sparsec

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks
	// (IsHermitian). Override per matrix via WithEpsilon.
	DefaultEpsilon = 1e-9

	// DefaultCapacity is the initial nonzero capacity of an empty matrix.
	// Zero means "allocate nothing"; kernels grow the result as needed.
	DefaultCapacity = 0

	// DefaultAutoTrim controls whether structural mutations (Add, Mul,
	// Cleanup, Keep, DropZeros) shrink backing arrays to the logical nonzero
	// count afterwards. Disable for repeated in-place workloads that reuse
	// slack capacity.
	DefaultAutoTrim = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityInvalid = "sparsec: WithCapacity: capacity must be non-negative"
	panicEpsilonInvalid  = "sparsec: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	capacity int     // >= 0; DefaultCapacity
	autoTrim bool    // DefaultAutoTrim
	eps      float64 // >= 0, finite; DefaultEpsilon
}

// WithCapacity preallocates room for nzmax stored entries.
// Panics with a stable message when nzmax is negative.
// Complexity: O(1) here; the allocation itself happens in the constructor.
func WithCapacity(nzmax int) Option {
	if nzmax < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = nzmax }
}

// WithAutoTrim toggles the shrink-after-mutation capacity policy.
// Complexity: O(1).
func WithAutoTrim(enabled bool) Option {
	return func(o *Options) { o.autoTrim = enabled }
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// gatherOptions resolves defaults, applies setters in order, and returns the
// effective configuration. Later options win on conflict (idempotent sets).
func gatherOptions(opts ...Option) Options {
	// Start from the documented defaults.
	o := Options{
		capacity: DefaultCapacity,
		autoTrim: DefaultAutoTrim,
		eps:      DefaultEpsilon,
	}
	// Apply user setters in call order.
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
