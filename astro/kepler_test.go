// SPDX-License-Identifier: MIT
package astro_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lao/astro"
	"github.com/katalvlaran/lao/linalg"
)

func norm3(v []float64) float64 { return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]) }

// rotX, rotY, rotZ are the elementary right-handed rotations.
func rotX(a float64) [][]float64 {
	s, c := math.Sincos(a)
	return [][]float64{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

func rotY(a float64) [][]float64 {
	s, c := math.Sincos(a)
	return [][]float64{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
}

func rotZ(a float64) [][]float64 {
	s, c := math.Sincos(a)
	return [][]float64{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

func TestNewtonRaphson(t *testing.T) {
	res := astro.NewtonRaphson(1, func(x float64) float64 { return x*x - 2 }, func(x float64) float64 { return 2 * x }, 50, 1e-15)
	require.True(t, res.Converged)
	assert.InDelta(t, math.Sqrt2, res.Root, 1e-15)
	assert.Less(t, res.Iterations, 10)

	res = astro.NewtonRaphson(1, func(x float64) float64 { return x*x - 2 }, func(x float64) float64 { return 2 * x }, 1, 1e-15)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
}

func TestEccentricAnomaly(t *testing.T) {
	for _, e := range []float64{0, 0.0167, 0.2056, 0.9} {
		for _, m := range []float64{-math.Pi, -1, 0, 0.5, 2, math.Pi} {
			E, err := astro.EccentricAnomaly(m, e)
			require.NoError(t, err, "M=%v e=%v", m, e)
			assert.InDelta(t, m, E-e*math.Sin(E), 1e-12, "M=%v e=%v", m, e)
		}
	}

	_, err := astro.EccentricAnomaly(1, 1)
	require.ErrorIs(t, err, astro.ErrInvalidArgument)
	_, err = astro.EccentricAnomaly(math.NaN(), 0.1)
	require.ErrorIs(t, err, astro.ErrInvalidArgument)
}

func TestRotationFromEuler_MatchesElementaryProducts(t *testing.T) {
	elementary := map[byte]func(float64) [][]float64{'X': rotX, 'Y': rotY, 'Z': rotZ}
	phi, theta, psi := 0.3, 0.7, 1.1
	angles, err := linalg.NewRowVector[float64, linalg.D3](phi, theta, psi)
	require.NoError(t, err)

	for _, axis := range astro.Axes {
		t.Run(axis, func(t *testing.T) {
			got, err := astro.RotationFromEuler(axis, angles)
			require.NoError(t, err)

			a := mustMatrix3(t, elementary[axis[0]](phi))
			b := mustMatrix3(t, elementary[axis[1]](theta))
			c := mustMatrix3(t, elementary[axis[2]](psi))
			want, err := linalg.Materialize(linalg.Mul(linalg.Mul(a, b), c))
			require.NoError(t, err)
			assert.True(t, linalg.AllClose(got, want, 1e-12), "got\n%vwant\n%v", got, want)
		})
	}

	_, err = astro.RotationFromEuler("XYZ", angles)
	require.ErrorIs(t, err, astro.ErrInvalidArgument)
}

func TestRotationFromEuler_ZeroIsIdentity(t *testing.T) {
	id, err := linalg.NewFilled[float64, linalg.D3, linalg.D3](linalg.FillEye)
	require.NoError(t, err)
	for _, axis := range astro.Axes {
		r, err := astro.RotationFromEuler(axis, linalg.New[float64, linalg.D1, linalg.D3]())
		require.NoError(t, err)
		assert.True(t, linalg.AllClose(r, id, 1e-15), axis)
	}
}

func TestKeplerianToCartesian_Invariants(t *testing.T) {
	const a, e = 1.5e11, 0.3
	elements, err := linalg.NewRowVector[float64, linalg.D6](a, e, 0.4, 1.2, -0.7, 2.1)
	require.NoError(t, err)

	state, err := astro.KeplerianToCartesian(elements, astro.MuSun)
	require.NoError(t, err)
	v := state.Data()
	r, speed := norm3(v[:3]), norm3(v[3:])

	E := 2.1
	assert.InDelta(t, a*(1-e*math.Cos(E)), r, 1e-3, "radius")
	assert.InDelta(t, astro.MuSun*(2/r-1/a), speed*speed, 1e-3*speed*speed, "vis-viva")

	// Angular momentum magnitude is √(μa(1-e²)).
	hx := v[1]*v[5] - v[2]*v[4]
	hy := v[2]*v[3] - v[0]*v[5]
	hz := v[0]*v[4] - v[1]*v[3]
	h := math.Sqrt(hx*hx + hy*hy + hz*hz)
	assert.InEpsilon(t, math.Sqrt(astro.MuSun*a*(1-e*e)), h, 1e-9)
	// Inclination from h.
	assert.InDelta(t, 0.4, math.Acos(hz/h), 1e-9)
}

func TestKeplerianToCartesian_PlanarCircular(t *testing.T) {
	elements, err := linalg.NewRowVector[float64, linalg.D6](astro.AU, 0, 0, 0, 0, math.Pi/2)
	require.NoError(t, err)
	state, err := astro.KeplerianToCartesian(elements, astro.MuSun)
	require.NoError(t, err)
	v := state.Data()
	vc := math.Sqrt(astro.MuSun / astro.AU)
	assert.InDelta(t, 0, v[0], 1e-3)
	assert.InDelta(t, astro.AU, v[1], 1e-3)
	assert.InDelta(t, -vc, v[3], 1e-9)
	assert.InDelta(t, 0, v[4], 1e-9)
}

func TestKeplerianToCartesian_Invalid(t *testing.T) {
	hyperbolic, err := linalg.NewRowVector[float64, linalg.D6](astro.AU, 1.2, 0, 0, 0, 0)
	require.NoError(t, err)
	_, err = astro.KeplerianToCartesian(hyperbolic, astro.MuSun)
	require.ErrorIs(t, err, astro.ErrInvalidArgument)

	_, err = astro.KeplerianToCartesian(nil, astro.MuSun)
	require.ErrorIs(t, err, astro.ErrInvalidArgument)
}

func mustMatrix3(t *testing.T, rows [][]float64) *astro.Matrix3 {
	t.Helper()
	m, err := linalg.FromRows[float64, linalg.D3, linalg.D3](rows)
	require.NoError(t, err)

	return m
}
