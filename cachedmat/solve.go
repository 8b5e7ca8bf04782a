// SPDX-License-Identifier: MIT

// Package cachedmat: the memoized inversion driver.
package cachedmat

import (
	"github.com/katalvlaran/matcache/matrix"
)

// opSolve tags wrapped errors originating from Solve.
const opSolve = "Solve"

// Signal messages emitted at debug level (side effect only).
const (
	msgCacheHit  = "cache hit: inverse served from cache"
	msgCacheMiss = "cache miss: computing inverse"
)

// Solve returns the inverse of the matrix held by c, computing it at most
// once per distinct matrix value.
//
// Algorithm:
//   - Stage 1 (Fetch): under the container lock, query the cached inverse.
//   - Stage 2 (Hit): if present, count a hit, emit the hit signal, return it.
//   - Stage 3 (Miss): count a miss, emit the miss signal, invoke
//     matrix.Inverse on the current matrix with opts passed through
//     verbatim. On failure, propagate and leave the cache absent: no
//     partial or incorrect value is ever stored.
//   - Stage 4 (Store): on success, store the inverse and return it.
//
// The entire check-compute-store sequence holds the container lock and is
// therefore mutually exclusive with Set (and with concurrent Solve calls).
//
// Inputs:
//   - c: the container; must be non-nil.
//   - opts: algorithm tuning for matrix.Inverse (e.g.
//     matrix.WithPivotTolerance). Options affect only the computing call:
//     a present cached value is returned regardless of opts.
//
// Returns:
//   - matrix.Matrix: the (possibly memoized) inverse.
//   - error: wrapped matrix sentinels; match with errors.Is.
//
// Errors:
//   - matrix.ErrNilMatrix         (container unset: New(nil) without Set).
//   - matrix.ErrDimensionMismatch (stored matrix is not square).
//   - matrix.ErrSingular          (zero or sub-tolerance pivot).
//
// Determinism:
//   - Inherited from matrix.Inverse; the cache adds no nondeterminism.
//
// Complexity:
//   - Hit: O(1). Miss: O(n³) time, O(n²) memory (the inversion itself).
//
// Notes:
//   - The read-only contract of CachedMatrix.Get applies to the returned
//     inverse as well: repeated hits return the same underlying value.
func Solve(c *CachedMatrix, opts ...matrix.Option) (matrix.Matrix, error) {
	// Stage 0: Guard the driver itself
	if c == nil {
		return nil, ErrNilContainer
	}

	// Single critical section: mutually exclusive with Set.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Stage 1+2: Serve from cache when present
	if c.inv != nil {
		c.stats.Hits++
		c.log.WithField("op", opSolve).Debug(msgCacheHit)

		return c.inv, nil
	}

	// Stage 3: Compute on miss
	c.stats.Misses++
	c.log.WithField("op", opSolve).Debug(msgCacheMiss)

	inv, err := matrix.Inverse(c.mat, opts...)
	if err != nil {
		// Cache stays absent; a later Solve (after Set fixes the input)
		// can still populate it normally.
		return nil, err
	}

	// Stage 4: Store and return
	c.inv = inv

	return inv, nil
}
