// SPDX-License-Identifier: MIT

// Package matrix: deterministic dense kernels (Mul, LU, Inverse).
// All functions perform strict fail-fast validation and return clear errors
// wrapped with the operation tag. Fast paths operate directly on *Dense flat
// storage; generic fallbacks go through the Matrix interface.
package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul     = "Mul"
	opLU      = "LU"
	opInverse = "Inverse"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a·b.
// Stage 1 (Validate): nil-checks and a.Cols == b.Rows.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense operands or fallback to interface.
// Stage 4 (Finalize): return result.
// Complexity: O(r·k·c) time, O(r·c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate inputs non-nil
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	// Validate multiplication compatibility
	if err := ValidateMulShape(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Allocate result Dense
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int // loop iterators
		sum     float64
	)
	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var baseI int
			for i = 0; i < rows; i++ {
				baseI = i * inner
				for j = 0; j < cols; j++ {
					sum = ZeroSum
					for k = 0; k < inner; k++ {
						sum += da.data[baseI+k] * db.data[k*cols+j]
					}
					res.data[i*cols+j] = sum
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				av, _ = a.At(i, k)   // safe: bounds ensured
				bv, _ = b.At(k, j)   // safe: bounds ensured
				sum += av * bv       // accumulate
			}
			_ = res.Set(i, j, sum) // safe: within bounds
		}
	}

	// Stage 4: Return result
	return res, nil
}

// LU computes the Doolittle factorization A = L·U with unit diagonal on L
// (no pivoting).
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate Dense L,U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U and column i of L in fixed order.
//
// Behavior highlights:
//   - Deterministic loops; fast path uses direct flat indexing.
//   - Singularity guard: |U[i,i]| <= pivot tolerance fails with ErrSingular.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: numeric policy (WithPivotTolerance).
//
// Returns:
//   - Matrix: L (unit lower triangular).
//   - Matrix: U (upper triangular).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Determinism:
//   - Fixed i→{j≥i} for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Numerical stability requires pivoting upstream; this kernel trades
//     stability for bit-for-bit reproducibility.
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	cfg := gatherOptions(opts...)

	// Allocate L and U
	n := m.Rows()
	Lraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	Uraw, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Initialize L diagonal to 1 (unit lower triangular)
	for i := 0; i < n; i++ {
		Lraw.data[i*n+i] = 1.0
	}

	// Detect fast-path on *Dense: mRaw holds the input data if m is *Dense
	mRaw, useFast := m.(*Dense)
	var i, j, k int // loop iterators
	var sum, pivot float64
	// Execute Doolittle decomposition
	if useFast {
		// Fast-path: operate directly on flat slices
		var baseI, baseJ int
		for i = 0; i < n; i++ {
			// Compute U[i][j] for j >= i
			baseI = i * n
			for j = i; j < n; j++ {
				sum = ZeroSum
				for k = 0; k < i; k++ {
					sum += Lraw.data[baseI+k] * Uraw.data[k*n+j]
				}
				Uraw.data[baseI+j] = mRaw.data[baseI+j] - sum
			}

			// Pivot guard (deterministic singularity detection)
			pivot = Uraw.data[baseI+i]
			if math.Abs(pivot) <= cfg.pivotTol {
				return nil, nil, matrixErrorf(opLU, ErrSingular)
			}

			// Compute L[j][i] for j > i
			for j = i + 1; j < n; j++ {
				sum = ZeroSum
				baseJ = j * n
				for k = 0; k < i; k++ {
					sum += Lraw.data[baseJ+k] * Uraw.data[k*n+i]
				}
				Lraw.data[baseJ+i] = (mRaw.data[baseJ+i] - sum) / pivot
			}
		}

		return Lraw, Uraw, nil
	}

	// Fallback: generic interface version
	var a, l, u float64
	for i = 0; i < n; i++ {
		// Compute U[i][j] for j >= i
		for j = i; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, _ = Lraw.At(i, k) // safe: freshly allocated Dense
				u, _ = Uraw.At(k, j) // safe: freshly allocated Dense
				sum += l * u
			}
			a, err = m.At(i, j)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			_ = Uraw.Set(i, j, a-sum)
		}

		// Pivot guard (deterministic singularity detection)
		pivot, _ = Uraw.At(i, i)
		if math.Abs(pivot) <= cfg.pivotTol {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Compute L[j][i] for j > i
		for j = i + 1; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				l, _ = Lraw.At(j, k)
				u, _ = Uraw.At(k, i)
				sum += l * u
			}
			a, err = m.At(j, i)
			if err != nil {
				return nil, nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", j, i, err))
			}
			_ = Lraw.Set(j, i, (a-sum)/pivot)
		}
	}

	return Lraw, Uraw, nil
}

// Inverse computes A^{-1} of the square matrix m via LU and triangular solves.
// Implementation:
//   - Stage 1: ValidateNotNil(m) and ValidateSquare(m). Factorize via LU(m)
//     → L (unit lower), U (upper). Allocate invDense(n×n) and workspace
//     vectors y, x of length n.
//   - Stage 2: For each canonical basis column e_col:
//   - Forward solve L*y = e_col (top-down).
//   - Backward solve U*x = y    (bottom-up; check pivots against tolerance).
//   - Write x into column `col` of invDense.
//     Dense fast-path uses flat indexing; generic fallback uses At/Set.
//
// Behavior highlights:
//   - Fully deterministic loop orders (col↑, forward i↑, backward i↓).
//   - No pivoting (stable determinism and reproducibility).
//   - Input m is read-only; factors L and U are freshly allocated by LU.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//   - opts: numeric policy, passed through verbatim to LU
//     (WithPivotTolerance).
//
// Returns:
//   - Matrix: Dense(n×n) containing A^{-1}.
//   - error : validation/factorization/solve failures wrapped with opInverse.
//
// Errors:
//   - ErrNilMatrix         (ValidateNotNil).
//   - ErrDimensionMismatch (ValidateSquare).
//   - ErrSingular          (zero or sub-tolerance pivot in LU or back-substitution).
//   - Allocation errors    (from NewDense).
//
// Determinism:
//   - Fixed traversal and no pivoting → identical results for identical inputs.
//
// Complexity:
//   - Time O(n³): Doolittle LU is O(n³); solving n RHS via triangular solves is O(n³).
//   - Space O(n²): L, U, and invDense are O(n²); y, x are O(n).
//
// Notes:
//   - Numerical stability: no partial/complete pivoting. Upstream callers
//     should avoid ill-conditioned matrices or apply scaling if stability
//     matters.
//   - If you only need A^{-1}*b, solve via LU once and apply triangular
//     solves (cheaper than forming A^{-1}).
//
// AI-Hints:
//   - Keep inputs as *Dense to hit the fast-path inside LU and the
//     triangular solves.
//   - Avoid near-singular inputs (tiny U[i,i]); detect upstream with
//     WithPivotTolerance when inputs may be ill-conditioned.
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	// Validate input non-nil and square
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	cfg := gatherOptions(opts...)

	// LU decomposition (Doolittle), same numeric policy
	Lmat, Umat, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Prepare result container and scratch arrays
	n := m.Rows()
	invDense, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k  int // loop iterators
		sum, pivot float64
		y          = make([]float64, n) // forward substitution workspace
		x          = make([]float64, n) // backward substitution workspace
	)
	// Fast-path: L and U come from LU as *Dense
	Ld, okL := Lmat.(*Dense)
	Ud, okU := Umat.(*Dense)
	if okL && okU {
		// row-major stride
		var baseUi, baseLi int
		for col = 0; col < n; col++ {
			// Forward substitution: L*y = e_col
			for i = 0; i < n; i++ {
				sum = ZeroSum
				baseLi = i * n
				for k = 0; k < i; k++ {
					sum += Ld.data[baseLi+k] * y[k]
				}
				if i == col {
					y[i] = 1.0 - sum
				} else {
					y[i] = -sum
				}
			}
			// Backward substitution: U*x = y
			for i = n - 1; i >= 0; i-- {
				sum = ZeroSum
				baseUi = i * n
				for k = i + 1; k < n; k++ {
					sum += Ud.data[baseUi+k] * x[k]
				}
				pivot = Ud.data[baseUi+i]
				if math.Abs(pivot) <= cfg.pivotTol {
					return nil, matrixErrorf(opInverse, ErrSingular)
				}
				x[i] = (y[i] - sum) / pivot
			}
			// Write x into column col of inv
			for i = 0; i < n; i++ {
				invDense.data[i*n+col] = x[i]
			}
		}

		return invDense, nil
	}

	// Fallback: generic interface version
	var v float64
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				v, err = Lmat.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				v, err = Umat.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				sum += v * x[k]
			}
			pivot, err = Umat.At(i, i)
			if err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("At(%d,%d): %w", i, i, err))
			}
			if math.Abs(pivot) <= cfg.pivotTol {
				return nil, matrixErrorf(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		// Write x into column col of inv
		for i = 0; i < n; i++ {
			if err = invDense.Set(i, col, x[i]); err != nil {
				return nil, matrixErrorf(opInverse, fmt.Errorf("Set(%d,%d): %w", i, col, err))
			}
		}
	}

	return invDense, nil
}
