// SPDX-License-Identifier: MIT

package linalg

import "math"

// CompareOp is the element-wise predicate of a Comparison node.
type CompareOp int

const (
	OpEq CompareOp = iota // ==
	OpNe                  // !=
	OpGe                  // >=
	OpLe                  // <=
	OpGt                  // >
	OpLt                  // <
)

var compareSymbols = [...]string{OpEq: "==", OpNe: "!=", OpGe: ">=", OpLe: "<=", OpGt: ">", OpLt: "<"}

// String returns the operator symbol.
func (op CompareOp) String() string {
	if op < 0 || int(op) >= len(compareSymbols) {
		return "?"
	}

	return compareSymbols[op]
}

// Comparison is a lazy element-wise predicate. Each element is 1 when the
// predicate holds and 0 otherwise, in the operands' element type.
type Comparison[S Scalar, R, C Dim] struct {
	shape[R, C]
	op       CompareOp
	lhs, rhs Expression[S, R, C]
}

// Eval implements Expression.
func (e Comparison[S, R, C]) Eval(row, col int) S {
	a, b := e.lhs.Eval(row, col), e.rhs.Eval(row, col)
	var ok bool
	switch e.op {
	case OpEq:
		ok = a == b
	case OpNe:
		ok = a != b
	case OpGe:
		ok = a >= b
	case OpLe:
		ok = a <= b
	case OpGt:
		ok = a > b
	case OpLt:
		ok = a < b
	}
	if ok {
		return 1
	}

	return 0
}

// Op returns the predicate of the node.
func (e Comparison[S, R, C]) Op() CompareOp { return e.op }

// Eq returns the element-wise lhs == rhs mask.
func Eq[S Scalar, R, C Dim](lhs, rhs Expression[S, R, C]) Comparison[S, R, C] {
	return Comparison[S, R, C]{op: OpEq, lhs: lhs, rhs: rhs}
}

// Ne returns the element-wise lhs != rhs mask.
func Ne[S Scalar, R, C Dim](lhs, rhs Expression[S, R, C]) Comparison[S, R, C] {
	return Comparison[S, R, C]{op: OpNe, lhs: lhs, rhs: rhs}
}

// Ge returns the element-wise lhs >= rhs mask.
func Ge[S Scalar, R, C Dim](lhs, rhs Expression[S, R, C]) Comparison[S, R, C] {
	return Comparison[S, R, C]{op: OpGe, lhs: lhs, rhs: rhs}
}

// Le returns the element-wise lhs <= rhs mask.
func Le[S Scalar, R, C Dim](lhs, rhs Expression[S, R, C]) Comparison[S, R, C] {
	return Comparison[S, R, C]{op: OpLe, lhs: lhs, rhs: rhs}
}

// Gt returns the element-wise lhs > rhs mask.
func Gt[S Scalar, R, C Dim](lhs, rhs Expression[S, R, C]) Comparison[S, R, C] {
	return Comparison[S, R, C]{op: OpGt, lhs: lhs, rhs: rhs}
}

// Lt returns the element-wise lhs < rhs mask.
func Lt[S Scalar, R, C Dim](lhs, rhs Expression[S, R, C]) Comparison[S, R, C] {
	return Comparison[S, R, C]{op: OpLt, lhs: lhs, rhs: rhs}
}

// Equal reports whether a and b are exactly equal element-wise.
// Evaluation stops at the first difference.
// Complexity: O(r*c) evaluations at worst.
func Equal[S Scalar, R, C Dim](a, b Expression[S, R, C]) bool {
	r, c := shapeOf[R, C]()
	for i := 1; i <= r; i++ {
		for j := 1; j <= c; j++ {
			if a.Eval(i, j) != b.Eval(i, j) {
				return false
			}
		}
	}

	return true
}

// AllClose reports whether |a-b| <= tol holds for every element.
// NaN is never close to anything; equal infinities are close.
// Policy: tol is treated as |tol|.
// Complexity: O(r*c) evaluations at worst.
func AllClose[S Scalar, R, C Dim](a, b Expression[S, R, C], tol float64) bool {
	tol = math.Abs(tol)
	r, c := shapeOf[R, C]()
	var x, y float64
	for i := 1; i <= r; i++ {
		for j := 1; j <= c; j++ {
			x, y = float64(a.Eval(i, j)), float64(b.Eval(i, j))
			if x == y {
				continue // covers ±Inf == ±Inf
			}
			if !(math.Abs(x-y) <= tol) {
				return false
			}
		}
	}

	return true
}
