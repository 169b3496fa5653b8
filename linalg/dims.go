// SPDX-License-Identifier: MIT

// Package linalg - dimension types.
//
// Purpose:
//   - Carry matrix dimensions in the type system. Go generics have no integer
//     type parameters, so every size is a zero-size struct type with an N method.
//   - Matrix[float64, D2, D3] and Matrix[float64, D3, D2] are distinct types;
//     shape rules for Add/Mul/solvers are checked by the compiler.
//
// AI-Hints:
//   - Need a size beyond D9? Declare it next to the call site:
//     type D12 struct{}; func (D12) N() int { return 12 }
//   - N must be a constant > 0; a Dim returning N() <= 0 panics at construction.
package linalg

import "github.com/gomlx/exceptions"

// Dim is a compile-time matrix dimension.
type Dim interface {
	// N returns the size of the dimension. Must be > 0 and constant.
	N() int
}

// D1 through D9 are the built-in dimensions.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
	D9 struct{}
)

func (D1) N() int { return 1 }
func (D2) N() int { return 2 }
func (D3) N() int { return 3 }
func (D4) N() int { return 4 }
func (D5) N() int { return 5 }
func (D6) N() int { return 6 }
func (D7) N() int { return 7 }
func (D8) N() int { return 8 }
func (D9) N() int { return 9 }

// dimOf returns the size carried by D.
// Complexity: O(1).
func dimOf[D Dim]() int {
	var d D

	return d.N()
}

// shapeOf returns (R.N(), C.N()) and panics when either is non-positive.
// A non-positive Dim is a programmer error detectable only at run time.
func shapeOf[R, C Dim]() (int, int) {
	r, c := dimOf[R](), dimOf[C]()
	if r <= 0 || c <= 0 {
		var rd R
		var cd C
		exceptions.Panicf("linalg: dimension types %T=%d, %T=%d must be > 0", rd, r, cd, c)
	}

	return r, c
}
