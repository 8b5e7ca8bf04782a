// Package matrix provides dense linear-algebra primitives for matcache.
//
// The matrix package provides:
//
//   - The Matrix interface (Rows, Cols, At, Set, Clone), a uniform
//     abstraction over two-dimensional mutable arrays of float64 values.
//   - Dense, a row-major flat-slice implementation tuned for cache
//     friendliness, with bounds-checked accessors.
//   - Deterministic kernels: Mul, Doolittle LU factorization, and the
//     LU-based Inverse consumed by cachedmat as its inversion collaborator.
//
// All kernels validate fail-fast and report failures through the package
// sentinel errors (errors.go), wrapped with an operation tag; callers match
// them via errors.Is. Loop orders are fixed and no pivoting is performed,
// so identical inputs always produce identical outputs.
//
// Convention: matrices are row-major. NewDenseFromRows([][]float64{{1, 8},
// {3, -2}}) places 1 and 8 on the first row.
package matrix
