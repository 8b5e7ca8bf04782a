// SPDX-License-Identifier: MIT
// Package cachedmat_test verifies the memoized inversion driver: cache
// correctness, invalidation, error propagation without premature caching,
// option passthrough and the hit/miss observability signal.
package cachedmat_test

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matcache/cachedmat"
	"github.com/katalvlaran/matcache/matrix"
)

// ------------------------------------------------------------------------
// 1. Cache correctness: compute once, serve identically afterwards.
// ------------------------------------------------------------------------

func TestSolve_CacheCorrectness(t *testing.T) {
	t.Parallel()

	// M = [[1,8],[3,-2]] (row-major), det = -26.
	M := mustFromRows(t, [][]float64{{1, 8}, {3, -2}})
	c := cachedmat.New(M)

	// First call computes and caches.
	inv1, err := cachedmat.Solve(c)
	require.NoError(t, err)

	// Second call returns the identical cached value.
	inv2, err := cachedmat.Solve(c)
	require.NoError(t, err)
	require.Same(t, inv1, inv2, "cache hit must return the stored value")

	// The result equals the inverse computed directly.
	direct, err := matrix.Inverse(M)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			require.InDelta(t, mustAt(t, direct, i, j), mustAt(t, inv1, i, j), 0)
		}
	}

	// Exact values: 1/det * [[d,-b],[-c,a]].
	require.InDelta(t, 1.0/13.0, mustAt(t, inv1, 0, 0), 1e-12)
	require.InDelta(t, 4.0/13.0, mustAt(t, inv1, 0, 1), 1e-12)
	require.InDelta(t, 3.0/26.0, mustAt(t, inv1, 1, 0), 1e-12)
	require.InDelta(t, -1.0/26.0, mustAt(t, inv1, 1, 1), 1e-12)

	stats := c.Stats()
	require.Equal(t, uint64(1), stats.Hits)
	require.Equal(t, uint64(1), stats.Misses)
}

// ------------------------------------------------------------------------
// 2. Invalidation: Set(M2) forces a fresh computation, never the stale M1.
// ------------------------------------------------------------------------

func TestSolve_InvalidationAfterSet(t *testing.T) {
	t.Parallel()

	M1 := mustFromRows(t, [][]float64{{2, 0}, {0, 2}})
	M2 := mustFromRows(t, [][]float64{{4, 0}, {0, 4}})
	c := cachedmat.New(M1)

	inv1, err := cachedmat.Solve(c)
	require.NoError(t, err)
	require.InDelta(t, 0.5, mustAt(t, inv1, 0, 0), 0)

	c.Set(M2)

	// Observable via the miss counter: a second computation happened.
	inv2, err := cachedmat.Solve(c)
	require.NoError(t, err)
	require.InDelta(t, 0.25, mustAt(t, inv2, 0, 0), 0, "must be inverse of M2, not stale M1")
	require.Equal(t, uint64(2), c.Stats().Misses)
}

// ------------------------------------------------------------------------
// 3. Error propagation: nothing is cached on failure.
// ------------------------------------------------------------------------

func TestSolve_UnsetContainer(t *testing.T) {
	t.Parallel()

	// Default-constructed container: not invertible until Set.
	c := cachedmat.New(nil)
	_, err := cachedmat.Solve(c)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, ok := c.CachedInverse()
	require.False(t, ok, "failed solve must not populate the cache")
}

func TestSolve_SingularNoPrematureCaching(t *testing.T) {
	t.Parallel()

	sing := mustFromRows(t, [][]float64{{1, 2}, {2, 4}})
	c := cachedmat.New(sing)

	_, err := cachedmat.Solve(c)
	require.ErrorIs(t, err, matrix.ErrSingular)
	_, ok := c.CachedInverse()
	require.False(t, ok, "failed solve must leave the cache absent")

	// Recovery path: fixing the input via Set lets the cache populate.
	c.Set(mustFromRows(t, [][]float64{{1, 0}, {0, 1}}))
	_, err = cachedmat.Solve(c)
	require.NoError(t, err)
	_, ok = c.CachedInverse()
	require.True(t, ok)
}

func TestSolve_NonSquare(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = cachedmat.Solve(cachedmat.New(m))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolve_NilContainer(t *testing.T) {
	t.Parallel()

	_, err := cachedmat.Solve(nil)
	require.ErrorIs(t, err, cachedmat.ErrNilContainer)
}

// ------------------------------------------------------------------------
// 4. Option passthrough and cache identity.
// ------------------------------------------------------------------------

func TestSolve_OptionsPassthrough(t *testing.T) {
	t.Parallel()

	near := mustFromRows(t, [][]float64{{1e-9, 0}, {0, 1}})
	c := cachedmat.New(near)

	// A raised pivot tolerance is forwarded verbatim and rejects the input.
	_, err := cachedmat.Solve(c, matrix.WithPivotTolerance(1e-6))
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Equal(t, uint64(1), c.Stats().Misses)

	// The default policy inverts it and populates the cache.
	inv, err := cachedmat.Solve(c)
	require.NoError(t, err)
	require.InDelta(t, 1e9, mustAt(t, inv, 0, 0), 1e-3)

	// Options affect only the computing call: once cached, a value is
	// served regardless of the options of the call that finds it.
	again, err := cachedmat.Solve(c, matrix.WithPivotTolerance(1e-6))
	require.NoError(t, err)
	require.Same(t, inv, again)
}

// ------------------------------------------------------------------------
// 5. Observability signal.
// ------------------------------------------------------------------------

func TestSolve_EmitsHitAndMissSignals(t *testing.T) {
	t.Parallel()

	h := memory.New()
	logger := &log.Logger{Handler: h, Level: log.DebugLevel}

	c := cachedmat.New(
		mustFromRows(t, [][]float64{{1, 8}, {3, -2}}),
		cachedmat.WithLogger(logger),
	)

	_, err := cachedmat.Solve(c)
	require.NoError(t, err)
	_, err = cachedmat.Solve(c)
	require.NoError(t, err)

	require.Len(t, h.Entries, 2)
	require.Equal(t, log.DebugLevel, h.Entries[0].Level)
	require.Contains(t, h.Entries[0].Message, "cache miss")
	require.Contains(t, h.Entries[1].Message, "cache hit")
	require.Equal(t, "Solve", h.Entries[0].Fields.Get("op"))
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { cachedmat.WithLogger(nil) })
}
