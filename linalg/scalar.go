// SPDX-License-Identifier: MIT

package linalg

import "golang.org/x/exp/constraints"

// Scalar is the element type of a Matrix: any built-in integer or float.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float restricts solvers to element types where division is exact enough
// to be meaningful (LU, Jacobi).
type Float interface {
	constraints.Float
}
