// SPDX-License-Identifier: MIT

package astro

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lao/linalg"
)

// Indices (1-based) of the Keplerian element vector [a, e, i, Ω, ω, E].
const (
	ElemSemiMajorAxis = iota + 1 // a [m]
	ElemEccentricity             // e
	ElemInclination              // i [rad]
	ElemAscendingNode            // Ω [rad]
	ElemArgPeriapsis             // ω [rad]
	ElemEccentricAnom            // E [rad]
)

// KeplerianToCartesian converts elliptic Keplerian elements
// [a, e, i, Ω, ω, E] into the state [x, y, z, vx, vy, vz] (m, m/s) in the
// frame of the elements, for a central body with parameter mu.
//
// The perifocal position and velocity
//
//	r' = a·(cos E - e, √(1-e²)·sin E, 0)
//	v' = √(μa)/r · (-sin E, √(1-e²)·cos E, 0),  r = a·(1 - e·cos E)
//
// are rotated as row vectors by ZXZ(-ω, -i, -Ω).
// Errors: ErrInvalidArgument (nil/empty elements, a ≤ 0, e ∉ [0,1), mu ≤ 0).
func KeplerianToCartesian(elements *RowVector6, mu float64) (*RowVector6, error) {
	if elements.IsEmpty() {
		return nil, astroErrorf(opKeplerian, fmt.Errorf("elements: %w", ErrInvalidArgument))
	}
	el := elements.Data()
	a, e := el[ElemSemiMajorAxis-1], el[ElemEccentricity-1]
	inc, node, peri, ecc := el[ElemInclination-1], el[ElemAscendingNode-1], el[ElemArgPeriapsis-1], el[ElemEccentricAnom-1]
	if !(a > 0) || !(e >= 0 && e < 1) || !(mu > 0) {
		return nil, astroErrorf(opKeplerian, fmt.Errorf("a=%v e=%v mu=%v: %w", a, e, mu, ErrInvalidArgument))
	}

	angles, err := linalg.NewRowVector[float64, linalg.D3](-peri, -inc, -node)
	if err != nil {
		return nil, astroErrorf(opKeplerian, err)
	}
	rot, err := RotationFromEuler("ZXZ", angles)
	if err != nil {
		return nil, astroErrorf(opKeplerian, err)
	}

	sinE, cosE := math.Sincos(ecc)
	q := math.Sqrt(1 - e*e)
	r := a * (1 - e*cosE)
	k := math.Sqrt(mu*a) / r

	rp, err := linalg.NewRowVector[float64, linalg.D3](a*(cosE-e), a*q*sinE, 0)
	if err != nil {
		return nil, astroErrorf(opKeplerian, err)
	}
	vp, err := linalg.NewRowVector[float64, linalg.D3](-k*sinE, k*q*cosE, 0)
	if err != nil {
		return nil, astroErrorf(opKeplerian, err)
	}

	pos, err := linalg.Materialize(linalg.Mul(rp, rot))
	if err != nil {
		return nil, astroErrorf(opKeplerian, err)
	}
	vel, err := linalg.Materialize(linalg.Mul(vp, rot))
	if err != nil {
		return nil, astroErrorf(opKeplerian, err)
	}

	return Concat(pos, vel)
}

// Concat joins a position and a velocity row vector into one state vector.
func Concat(pos, vel *RowVector3) (*RowVector6, error) {
	return linalg.NewRowVector[float64, linalg.D6](append(pos.Data(), vel.Data()...)...)
}
