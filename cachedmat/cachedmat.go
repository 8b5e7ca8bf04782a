// SPDX-License-Identifier: MIT

// Package cachedmat: the CachedMatrix container. The memoization policy
// lives in solve.go and goes through the accessors defined here, preserving
// the separation between container and policy.
package cachedmat

import (
	"sync"

	"github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
)

// Stats reports cumulative cache effectiveness counters for one container.
// Counters only ever grow; Set does not reset them.
type Stats struct {
	// Hits counts Solve calls served from the cached inverse.
	Hits uint64

	// Misses counts Solve calls that had to compute (successfully or not).
	Misses uint64
}

// CachedMatrix is a mutable container holding a matrix value and an optional
// memoized inverse.
//
// One mutex guards the matrix, the cached inverse and the counters: Set and
// the check-compute-store sequence of Solve are mutually exclusive, so a
// reader can never observe an inverse computed against a matrix value that
// was subsequently replaced.
//
// The zero value is not usable; construct via New.
type CachedMatrix struct {
	mu    sync.Mutex    // guards every field below
	mat   matrix.Matrix // current matrix; nil means unset (not invertible)
	inv   matrix.Matrix // memoized inverse; nil means absent
	stats Stats         // cumulative hit/miss counters
	log   log.Interface // hit/miss signal sink, never nil
}

// New creates a CachedMatrix holding the initial matrix m with an absent
// cached inverse. m may be nil: the container is then unset and Solve fails
// with matrix.ErrNilMatrix until Set provides a real matrix.
//
// No shape or invertibility validation is performed here; invertibility is
// the caller's precondition, surfaced by Solve.
// Complexity: O(1).
func New(m matrix.Matrix, opts ...Option) *CachedMatrix {
	cfg := gatherOptions(opts...)

	return &CachedMatrix{mat: m, log: cfg.logger}
}

// Set replaces the stored matrix and unconditionally clears the cached
// inverse in the same critical section. There is no error condition: any
// value, including nil (back to unset), is accepted.
//
// Side effect: invalidates the cache.
// Complexity: O(1).
func (c *CachedMatrix) Set(m matrix.Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Replace content and drop the memoized inverse atomically
	// (same lock scope), so no stale-inverse state is observable.
	c.mat = m
	c.inv = nil
}

// Get returns the currently stored matrix (nil when unset).
//
// Read-only contract: the matrix is returned by reference; callers MUST NOT
// mutate it in place, as that would desynchronize a present cached inverse
// without going through Set. Clone first when a private copy is needed.
// Complexity: O(1).
func (c *CachedMatrix) Get() matrix.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mat
}

// CachedInverse returns the memoized inverse and whether one is present.
// The comma-ok form is the explicit "absent" marker: (nil, false) means the
// inverse has not been computed since the last Set (or ever).
//
// Intended for the memoization driver and for observability; end users
// normally call Solve instead. The read-only contract of Get applies.
// Complexity: O(1).
func (c *CachedMatrix) CachedInverse() (matrix.Matrix, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.inv, c.inv != nil
}

// SetCachedInverse stores a precomputed inverse. It is the caller's
// responsibility to ensure inv corresponds to the currently stored matrix;
// no verification is performed. Internal-use operation: Solve is the normal
// writer of the cache.
// Complexity: O(1).
func (c *CachedMatrix) SetCachedInverse(inv matrix.Matrix) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inv = inv
}

// Stats returns a snapshot of the cumulative hit/miss counters.
// Complexity: O(1).
func (c *CachedMatrix) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}
