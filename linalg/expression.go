// SPDX-License-Identifier: MIT

// Package linalg - lazy expression graph.
//
// Purpose:
//   - Compose matrices with Add/Sub/Mul/Scale/Hadamard/Transpose and the
//     comparison builders without allocating intermediates.
//   - Enforce shape compatibility with type parameters: operands of Add must
//     share (S, R, C); Mul requires the inner dimensions to be the same type.
//
// Determinism & Policy:
//   - Nodes are immutable values holding their operands by reference
//     (a *Matrix leaf is never copied). Mutating a leaf between two
//     evaluations is visible in the second one; doing so concurrently with
//     an evaluation is a data race and the caller's responsibility.
//   - Eval(row, col) is 1-based and pure given unchanged leaves.
//
// AI-Hints:
//   - Any type with Rows/Cols/Shape/Eval is a valid leaf (see package sparse).
//   - Mul's Eval is a dot product over K; materialize before repeated reads.

package linalg

// Expression is anything that can be read element-wise with a static shape.
// Shape carries no data; it exists so the compiler can tell an
// Expression[S, D2, D3] from an Expression[S, D3, D2].
type Expression[S Scalar, R, C Dim] interface {
	// Rows returns R.N().
	Rows() int
	// Cols returns C.N().
	Cols() int
	// Shape returns zero values of the dimension types.
	Shape() (R, C)
	// Eval returns the element at 1-based (row, col). Implementations may
	// panic with an error value on invalid coordinates.
	Eval(row, col int) S
}

// shape is embedded by every node to provide Rows/Cols/Shape.
type shape[R, C Dim] struct{}

func (shape[R, C]) Rows() int { return dimOf[R]() }
func (shape[R, C]) Cols() int { return dimOf[C]() }

func (shape[R, C]) Shape() (R, C) {
	var r R
	var c C

	return r, c
}

// Addition is the lazy element-wise sum lhs + rhs.
type Addition[S Scalar, R, C Dim] struct {
	shape[R, C]
	lhs, rhs Expression[S, R, C]
}

// Add returns lhs + rhs. Shapes are checked at compile time.
func Add[S Scalar, R, C Dim](lhs, rhs Expression[S, R, C]) Addition[S, R, C] {
	return Addition[S, R, C]{lhs: lhs, rhs: rhs}
}

// Eval implements Expression.
func (e Addition[S, R, C]) Eval(row, col int) S {
	return e.lhs.Eval(row, col) + e.rhs.Eval(row, col)
}

// Subtraction is the lazy element-wise difference lhs - rhs.
type Subtraction[S Scalar, R, C Dim] struct {
	shape[R, C]
	lhs, rhs Expression[S, R, C]
}

// Sub returns lhs - rhs.
func Sub[S Scalar, R, C Dim](lhs, rhs Expression[S, R, C]) Subtraction[S, R, C] {
	return Subtraction[S, R, C]{lhs: lhs, rhs: rhs}
}

// Eval implements Expression.
func (e Subtraction[S, R, C]) Eval(row, col int) S {
	return e.lhs.Eval(row, col) - e.rhs.Eval(row, col)
}

// Multiplication is the lazy matrix product of an R×K and a K×C operand.
type Multiplication[S Scalar, R, K, C Dim] struct {
	shape[R, C]
	lhs Expression[S, R, K]
	rhs Expression[S, K, C]
}

// Mul returns the matrix product lhs·rhs. The inner dimension K must be the
// same type on both sides, so (R×K)·(J×C) with K != J does not compile.
func Mul[S Scalar, R, K, C Dim](lhs Expression[S, R, K], rhs Expression[S, K, C]) Multiplication[S, R, K, C] {
	return Multiplication[S, R, K, C]{lhs: lhs, rhs: rhs}
}

// Eval computes Σ_k lhs(row,k)·rhs(k,col) for k = 1..K.
// Complexity: O(K) per call.
func (e Multiplication[S, R, K, C]) Eval(row, col int) S {
	var sum S
	inner := dimOf[K]()
	for k := 1; k <= inner; k++ {
		sum += e.lhs.Eval(row, k) * e.rhs.Eval(k, col)
	}

	return sum
}

// ScalarMultiplication is the lazy product alpha·operand.
type ScalarMultiplication[S Scalar, R, C Dim] struct {
	shape[R, C]
	alpha S
	rhs   Expression[S, R, C]
}

// Scale returns alpha·e. alpha must have the element type of e.
func Scale[S Scalar, R, C Dim](alpha S, e Expression[S, R, C]) ScalarMultiplication[S, R, C] {
	return ScalarMultiplication[S, R, C]{alpha: alpha, rhs: e}
}

// Eval implements Expression.
func (e ScalarMultiplication[S, R, C]) Eval(row, col int) S {
	return e.alpha * e.rhs.Eval(row, col)
}

// ElementWiseMultiplication is the lazy Hadamard product lhs ⊙ rhs.
type ElementWiseMultiplication[S Scalar, R, C Dim] struct {
	shape[R, C]
	lhs, rhs Expression[S, R, C]
}

// Hadamard returns the element-wise product lhs ⊙ rhs.
func Hadamard[S Scalar, R, C Dim](lhs, rhs Expression[S, R, C]) ElementWiseMultiplication[S, R, C] {
	return ElementWiseMultiplication[S, R, C]{lhs: lhs, rhs: rhs}
}

// Eval implements Expression.
func (e ElementWiseMultiplication[S, R, C]) Eval(row, col int) S {
	return e.lhs.Eval(row, col) * e.rhs.Eval(row, col)
}

// Transposition is the lazy transpose of an R×C operand (so it is C×R).
type Transposition[S Scalar, R, C Dim] struct {
	shape[C, R]
	src Expression[S, R, C]
}

// Transpose returns eᵀ.
func Transpose[S Scalar, R, C Dim](e Expression[S, R, C]) Transposition[S, R, C] {
	return Transposition[S, R, C]{src: e}
}

// Eval implements Expression.
func (e Transposition[S, R, C]) Eval(row, col int) S {
	return e.src.Eval(col, row)
}
