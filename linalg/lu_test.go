// SPDX-License-Identifier: MIT
// Package linalg_test contains unit tests for LUDoolittle and SolveLU.
package linalg_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lao/linalg"
)

type m33 = linalg.Matrix[float64, linalg.D3, linalg.D3]

func requireTriangular(t *testing.T, l, u *m33) {
	t.Helper()
	for i := 1; i <= 3; i++ {
		assert.Equal(t, 1.0, mustAt(t, l, i, i), "L(%d,%d)", i, i)
		for j := i + 1; j <= 3; j++ {
			assert.Zero(t, mustAt(t, l, i, j), "L(%d,%d) above diagonal", i, j)
			assert.Zero(t, mustAt(t, u, j, i), "U(%d,%d) below diagonal", j, i)
		}
	}
}

func TestLUDoolittle_Reconstructs(t *testing.T) {
	a := mustRows[float64, linalg.D3, linalg.D3](t, [][]float64{{1, 1, 2}, {2, 1, 3}, {3, 1, 1}})
	var l, u m33

	report, err := linalg.LUDoolittle(a, &l, &u)
	require.NoError(t, err)
	assert.False(t, report.Singular)
	assert.Zero(t, report.Pivot)

	requireTriangular(t, &l, &u)
	requireData(t, []float64{1, 0, 0, 2, 1, 0, 3, 2, 1}, &l)
	requireData(t, []float64{1, 1, 2, 0, -1, -1, 0, 0, -3}, &u)

	lu := mustMaterialize(t, linalg.Mul(&l, &u))
	assert.True(t, linalg.AllClose(lu, a, 1e-9))
}

func TestLUDoolittle_RandomDiagonallyDominant(t *testing.T) {
	a, err := linalg.NewFilled[float64, linalg.D3, linalg.D3](linalg.FillRand, linalg.WithSeed(7))
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		v := mustAt(t, a, i, i)
		require.NoError(t, a.Set(i, i, v+5))
	}
	l, u := linalg.New[float64, linalg.D3, linalg.D3](), linalg.New[float64, linalg.D3, linalg.D3]()

	report, err := linalg.LUDoolittle(a, l, u)
	require.NoError(t, err)
	require.False(t, report.Singular)
	requireTriangular(t, l, u)
	assert.True(t, linalg.AllClose(mustMaterialize(t, linalg.Mul(l, u)), a, 1e-9))
}

func TestLUDoolittle_ReportsZeroPivot(t *testing.T) {
	a := mustRows[float64, linalg.D2, linalg.D2](t, [][]float64{{0, 1}, {1, 1}})
	var l, u m22

	report, err := linalg.LUDoolittle(a, &l, &u)
	require.NoError(t, err, "a bad pivot is reported, not returned")
	assert.True(t, report.Singular)
	assert.Equal(t, 1, report.Pivot)

	// The division went ahead: 1/0 = +Inf lands in L.
	assert.True(t, math.IsInf(mustAt(t, &l, 2, 1), 1))
}

func TestLUDoolittle_InPlace(t *testing.T) {
	a := mustRows[float64, linalg.D3, linalg.D3](t, [][]float64{{1, 1, 2}, {2, 1, 3}, {3, 1, 1}})
	orig := a.Clone()
	u := linalg.New[float64, linalg.D3, linalg.D3]()

	_, err := linalg.LUDoolittle(a, a, u)
	require.NoError(t, err)
	assert.True(t, linalg.AllClose(mustMaterialize(t, linalg.Mul(a, u)), orig, 1e-9))
}

func TestLUDoolittle_Errors(t *testing.T) {
	var l, u m22
	_, err := linalg.LUDoolittle[float64, linalg.D2](nil, &l, &u)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)

	a := linalg.New[float64, linalg.D2, linalg.D2]()
	_, err = linalg.LUDoolittle(a, nil, &u)
	require.ErrorIs(t, err, linalg.ErrNilMatrix)

	a.Reset()
	_, err = linalg.LUDoolittle(a, &l, &u)
	require.ErrorIs(t, err, linalg.ErrEmptyMatrix)
}

func TestSolveLU(t *testing.T) {
	a := mustRows[float64, linalg.D3, linalg.D3](t, [][]float64{{1, 1, 2}, {2, 1, 3}, {3, 1, 1}})
	want, err := linalg.NewColVector[float64, linalg.D3](1, -2, 3)
	require.NoError(t, err)
	b := mustMaterialize(t, linalg.Mul(a, want))

	var l, u m33
	_, err = linalg.LUDoolittle(a, &l, &u)
	require.NoError(t, err)

	x, err := linalg.SolveLU(&l, &u, b)
	require.NoError(t, err)
	assert.True(t, linalg.AllClose(x, want, 1e-9))

	u.Zeros()
	_, err = linalg.SolveLU(&l, &u, b)
	require.ErrorIs(t, err, linalg.ErrSingular)
}
