// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// factorization kernels. This file defines:
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
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultPivotTolerance is the threshold below which a pivot magnitude is
// treated as singular during LU/Inverse. The default of exactly 0 preserves
// the strict deterministic guard: only a bit-exact zero pivot fails.
// Raise it via WithPivotTolerance to reject near-singular inputs.
const DefaultPivotTolerance = 0.0

// ---------- Internal panic messages (no magic strings) ----------

const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	// numeric policy
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithPivotTolerance sets the singularity threshold eps for LU/Inverse:
// a pivot p with |p| <= eps fails the factorization with ErrSingular.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Strict validation in constructor; panics on nonsensical values.
//   - eps = 0 (the default) rejects only exact zero pivots.
//
// Inputs:
//   - eps: non-negative finite tolerance.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - The kernels do not pivot; a small positive eps (e.g. 1e-12) is a
//     pragmatic guard against numerically meaningless results on
//     ill-conditioned inputs.
func WithPivotTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicPivotToleranceInvalid)
	}

	// Assign validated tolerance
	return func(o *Options) { o.pivotTol = eps }
}

// gatherOptions resolves defaults, then applies each Option in order.
// Internal single source of truth for the zero-value behavior.
func gatherOptions(opts ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
