// SPDX-License-Identifier: MIT

package astro

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lao/linalg"
)

// Shorthands for the fixed shapes used by the ephemeris code.
type (
	Matrix3    = linalg.Matrix[float64, linalg.D3, linalg.D3]
	RowVector3 = linalg.RowVector[float64, linalg.D3]
	RowVector6 = linalg.RowVector[float64, linalg.D6]
)

// Axes lists the proper Euler sequences understood by RotationFromEuler.
var Axes = []string{"XZX", "XYX", "YXY", "YZY", "ZYZ", "ZXZ"}

// RotationFromEuler builds the intrinsic rotation A1(φ)·A2(θ)·A3(ψ) for a
// proper Euler sequence "A1A2A3" ∈ Axes, with angles = [φ, θ, ψ] in radians.
// Errors: ErrInvalidArgument (unknown axis, nil or empty angles).
func RotationFromEuler(axis string, angles *RowVector3) (*Matrix3, error) {
	if angles.IsEmpty() {
		return nil, astroErrorf(opRotation, fmt.Errorf("angles: %w", ErrInvalidArgument))
	}
	v := angles.Data()
	c1, c2, c3 := math.Cos(v[0]), math.Cos(v[1]), math.Cos(v[2])
	s1, s2, s3 := math.Sin(v[0]), math.Sin(v[1]), math.Sin(v[2])

	var rows [][]float64
	switch axis {
	case "XZX":
		rows = [][]float64{
			{c2, -c3 * s2, s2 * s3},
			{c1 * s2, c1*c2*c3 - s1*s3, -c3*s1 - c1*c2*s3},
			{s1 * s2, c1*s3 + c2*c3*s1, c1*c3 - c2*s1*s3},
		}
	case "XYX":
		rows = [][]float64{
			{c2, s2 * s3, c3 * s2},
			{s1 * s2, c1*c3 - c2*s1*s3, -c1*s3 - c2*c3*s1},
			{-c1 * s2, c3*s1 + c1*c2*s3, c1*c2*c3 - s1*s3},
		}
	case "YXY":
		rows = [][]float64{
			{c1*c3 - c2*s1*s3, s1 * s2, c1*s3 + c2*c3*s1},
			{s2 * s3, c2, -c3 * s2},
			{-c3*s1 - c1*c2*s3, c1 * s2, c1*c2*c3 - s1*s3},
		}
	case "YZY":
		rows = [][]float64{
			{c1*c2*c3 - s1*s3, -c1 * s2, c3*s1 + c1*c2*s3},
			{c3 * s2, c2, s2 * s3},
			{-c1*s3 - c2*c3*s1, s1 * s2, c1*c3 - c2*s1*s3},
		}
	case "ZYZ":
		rows = [][]float64{
			{c1*c2*c3 - s1*s3, -c3*s1 - c1*c2*s3, c1 * s2},
			{c1*s3 + c2*c3*s1, c1*c3 - c2*s1*s3, s1 * s2},
			{-c3 * s2, s2 * s3, c2},
		}
	case "ZXZ":
		rows = [][]float64{
			{c1*c3 - c2*s1*s3, -c1*s3 - c2*c3*s1, s1 * s2},
			{c3*s1 + c1*c2*s3, c1*c2*c3 - s1*s3, -c1 * s2},
			{s2 * s3, c3 * s2, c2},
		}
	default:
		return nil, astroErrorf(opRotation, fmt.Errorf("axis %q: %w", axis, ErrInvalidArgument))
	}

	return linalg.FromRows[float64, linalg.D3, linalg.D3](rows)
}
