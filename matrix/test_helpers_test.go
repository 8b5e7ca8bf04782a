// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths inside the
// kernels; prefer wrapping ONLY the operand you want to de-opt.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows BUILDS a *Dense from row slices or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows(%v): %v", rows, err)
	}

	return m
}

// MustAt READS element (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// AssertErrorIs FAILS the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want errors.Is(err, %v), got: %v", target, err)
	}
}

// AssertInDelta FAILS the test unless |got-want| <= eps.
func AssertInDelta(t *testing.T, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Fatalf("want |%.6g-%.6g| <= %.1e", got, want, eps)
	}
}

// AssertAllClose compares two matrices element-wise within eps.
func AssertAllClose(t *testing.T, got, want matrix.Matrix, eps float64) {
	t.Helper()
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d",
			got.Rows(), got.Cols(), want.Rows(), want.Cols())
	}
	var i, j int
	for i = 0; i < got.Rows(); i++ {
		for j = 0; j < got.Cols(); j++ {
			gv, wv := MustAt(t, got, i, j), MustAt(t, want, i, j)
			if math.Abs(gv-wv) > eps {
				t.Fatalf("[%d,%d]: want |%.6g-%.6g| <= %.1e", i, j, gv, wv, eps)
			}
		}
	}
}

// AssertIdentity checks that m ≈ I within eps.
func AssertIdentity(t *testing.T, m matrix.Matrix, eps float64) {
	t.Helper()
	var i, j, want int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			want = 0
			if i == j {
				want = 1
			}
			if v := MustAt(t, m, i, j); math.Abs(v-float64(want)) > eps {
				t.Fatalf("[%d,%d]: want |%.6g-%d| <= %.1e", i, j, v, want, eps)
			}
		}
	}
}
