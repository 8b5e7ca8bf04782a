// Package matcache is a small memoizing layer for dense matrix inversion:
// compute an inverse once, serve it from cache until the matrix changes.
//
// 🚀 What is matcache?
//
//	A compact, thread-safe library built from two pieces:
//		• matrix/    — dense float64 matrices with a deterministic LU-based Inverse
//		• cachedmat/ — CachedMatrix, a mutable container pairing a matrix with its
//		  memoized inverse, plus Solve, the compute-or-fetch driver
//
// ✨ Why matcache?
//
//   - Minimal API — four container operations plus one driver function
//   - Rock-solid invalidation — Set always clears the cached inverse in the
//     same critical section, so a stale inverse is never observable
//   - Pure Go numerics — no cgo, deterministic loop orders, sentinel errors
//     matched via errors.Is
//   - Observable — hit/miss counters and optional apex/log debug signals
//
// Quick sketch:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{1, 8}, {3, -2}})
//	c := cachedmat.New(m)
//	inv, err := cachedmat.Solve(c) // cache miss: computes and stores
//	inv, err = cachedmat.Solve(c)  // cache hit: served without recomputation
//	c.Set(other)                   // invalidates the stored inverse
//
// See the cachedmat package documentation for the full contract.
//
//	go get github.com/katalvlaran/matcache
package matcache
