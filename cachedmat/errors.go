// SPDX-License-Identifier: MIT
// Package cachedmat: sentinel error set.
// Inversion failures are NOT redeclared here: Solve propagates the matrix
// package sentinels (ErrNilMatrix, ErrDimensionMismatch, ErrSingular)
// unchanged in errors.Is terms, so callers match against matrix.ErrX.

package cachedmat

import "errors"

// ErrNilContainer indicates that a nil *CachedMatrix was passed to Solve.
// Distinct from matrix.ErrNilMatrix, which Solve returns when the container
// exists but holds no matrix yet (unset).
var ErrNilContainer = errors.New("cachedmat: nil CachedMatrix")
