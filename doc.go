// SPDX-License-Identifier: MIT

// Package lao is the module root of a small shape-checked linear algebra
// toolkit with a low-precision ephemeris layer on top.
//
// What is in the box?
//
//	linalg/  dense Matrix[S, R, C] with compile-time shapes, lazy expressions
//	         (Add, Sub, Mul, Scale, Hadamard, Transpose, comparison masks),
//	         row/column iteration, Doolittle LU and Jacobi iteration
//	sparse/  CSR matrix usable as an expression leaf, CSV loading
//	astro/   epochs, Euler rotations, Kepler's equation, Keplerian to
//	         Cartesian conversion and the JPL approximate planetary positions
//	cmd/lao  command-line driver for all of the above
//
// Dimensions are types (linalg.D1 .. linalg.D9), so adding a 2×3 matrix to a
// 3×2 one, or multiplying operands whose inner dimensions differ, does not
// compile. Runtime failures (bad indices, emptied operands, parse errors) are
// reported through sentinel errors wrapped with %w; match them with errors.Is.
//
// Quick start:
//
//	a, _ := linalg.FromRows[float64, linalg.D2, linalg.D3]([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b, _ := linalg.FromRows[float64, linalg.D3, linalg.D2]([][]float64{{7, 8}, {9, 10}, {11, 12}})
//	c, _ := linalg.Materialize(linalg.Mul(a, b)) // 2×2: [58 64; 139 154]
//
// Diagnostics go through klog; raise verbosity with -v=1 (summaries) or -v=2
// (per-iteration detail).
package lao
