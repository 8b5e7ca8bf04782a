// Package cachedmat memoizes dense matrix inversion.
//
// The cachedmat package provides:
//
//   - CachedMatrix, a mutable container pairing a matrix with an optional
//     memoized inverse. Set replaces the matrix and unconditionally clears
//     the cached inverse in the same critical section, so a cached inverse
//     never reflects a stale matrix.
//   - Solve, the compute-or-fetch driver: it returns the cached inverse when
//     present, otherwise computes matrix.Inverse once, stores it, and
//     returns it. A failed inversion leaves the cache absent.
//
// Contract summary:
//
//	c := cachedmat.New(m)          // nil m means "unset": Solve fails until Set
//	inv, err := cachedmat.Solve(c) // miss → compute + store
//	inv, err = cachedmat.Solve(c)  // hit  → served from cache
//	c.Set(m2)                      // invalidates; next Solve recomputes
//
// Invariant: whenever a cached inverse is present, it equals
// matrix.Inverse of the matrix current at the time of the last successful
// computation. No validation of shape or invertibility happens in the
// container; Solve surfaces the matrix package sentinels (ErrNilMatrix,
// ErrDimensionMismatch, ErrSingular) via errors.Is.
//
// Concurrency: one mutex guards the matrix, the cached inverse and the
// hit/miss counters. Solve holds it across its whole check-compute-store
// sequence, mutually exclusive with Set, so concurrent callers never
// observe a stale inverse. Callers must treat matrices returned by Get,
// CachedInverse and Solve as read-only; in-place mutation bypasses
// invalidation.
//
// Observability: hits and misses are counted (Stats) and reported at debug
// level through an optional apex/log logger (WithLogger). The default
// logger discards everything.
package cachedmat
