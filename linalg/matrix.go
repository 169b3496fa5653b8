// SPDX-License-Identifier: MIT

// Package linalg - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula
//     (row-1)*cols + (col-1). The public surface is 1-based.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed row-major loop orders everywhere).
//   - Distinguish "zero-filled" from "empty" (after Reset, or the zero value).
//
// AI-Hints:
//   - Solvers and Materialize operate on the flat data slice directly.
//   - Use Eval only inside expression nodes; it panics on bad indices.
//   - A Reset matrix can be refilled with any Fill* mutator; indexed access errors until then.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set/Eval: O(1); Clone: O(r*c); String: O(r*c).

package linalg

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxEval = "Eval"
)

// ---------- Formatting literals ----------

const (
	_fmtSep     = " "
	_fmtRowDone = "\n"
)

// Matrix is a dense R×C matrix of S stored in row-major order.
//   - data holds R.N()*C.N() elements, or none after Reset.
//   - The zero value is an empty matrix; use New or a Fill* mutator before indexing.
//
// Copies of a *Matrix share storage; use Clone for a deep copy.
type Matrix[S Scalar, R, C Dim] struct {
	data []S // flat backing storage, len == R*C or 0 when empty
}

// New returns a zero-filled R×C matrix.
// Complexity: O(r*c).
func New[S Scalar, R, C Dim]() *Matrix[S, R, C] {
	r, c := shapeOf[R, C]()

	return &Matrix[S, R, C]{data: make([]S, r*c)}
}

// Rows returns R.N().
func (m *Matrix[S, R, C]) Rows() int { return dimOf[R]() }

// Cols returns C.N().
func (m *Matrix[S, R, C]) Cols() int { return dimOf[C]() }

// Shape returns the dimension type values; it binds *Matrix to Expression[S, R, C].
func (m *Matrix[S, R, C]) Shape() (R, C) {
	var r R
	var c C

	return r, c
}

// IsEmpty reports whether the buffer has been released by Reset
// (or was never allocated). A nil receiver is empty.
func (m *Matrix[S, R, C]) IsEmpty() bool {
	return m == nil || len(m.data) == 0
}

// indexOf computes the flat offset for 1-based (row, col).
// Stage 1 (Validate): buffer allocated, 1 ≤ row ≤ R, 1 ≤ col ≤ C.
// Stage 2 (Execute): compute the linear index.
// Complexity: O(1).
func (m *Matrix[S, R, C]) indexOf(method string, row, col int) (int, error) {
	if m.IsEmpty() {
		return 0, indexErrorf(method, row, col, ErrEmptyMatrix)
	}
	rows, cols := m.Rows(), m.Cols()
	if row < 1 || row > rows {
		return 0, indexErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 1 || col > cols {
		return 0, indexErrorf(method, row, col, ErrOutOfRange)
	}

	return (row-1)*cols + (col - 1), nil
}

// At returns the element at 1-based (row, col).
// Errors: ErrEmptyMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[S, R, C]) At(row, col int) (S, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at 1-based (row, col).
// Errors: ErrEmptyMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[S, R, C]) Set(row, col int, v S) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Eval implements Expression. It panics with a wrapped ErrOutOfRange or
// ErrEmptyMatrix error value on invalid access; Materialize and Assign
// recover such panics into errors.
// Complexity: O(1).
func (m *Matrix[S, R, C]) Eval(row, col int) S {
	idx, err := m.indexOf(ctxEval, row, col)
	if err != nil {
		panic(err)
	}

	return m.data[idx]
}

// ensure (re)allocates the buffer after Reset so fill mutators are usable.
func (m *Matrix[S, R, C]) ensure() {
	if len(m.data) != 0 {
		return
	}
	r, c := shapeOf[R, C]()
	m.data = make([]S, r*c)
}

// Fill broadcasts v to every element.
// Complexity: O(r*c).
func (m *Matrix[S, R, C]) Fill(v S) {
	m.ensure()
	for i := range m.data {
		m.data[i] = v
	}
}

// Zeros sets every element to 0.
func (m *Matrix[S, R, C]) Zeros() { m.Fill(0) }

// Ones sets every element to 1.
func (m *Matrix[S, R, C]) Ones() { m.Fill(1) }

// Eye sets m to the identity. Defined only for square shapes.
// Errors: ErrLogic when Rows != Cols (m is left untouched).
// Complexity: O(r*c).
func (m *Matrix[S, R, C]) Eye() error {
	n := m.Rows()
	if n != m.Cols() {
		return linalgErrorf(opEye, fmt.Errorf("%dx%d: %w", n, m.Cols(), ErrLogic))
	}
	m.Fill(0)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return nil
}

// Rand fills m with values drawn uniformly from [0, 1) using rng, in row-major
// order. Integer element types truncate, so they come out all zero.
// A nil rng uses a fresh source seeded from the clock (not reproducible).
// Complexity: O(r*c).
func (m *Matrix[S, R, C]) Rand(rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m.ensure()
	for i := range m.data {
		m.data[i] = S(rng.Float64())
	}
}

// FillFunc assigns gen() to every element. gen is called exactly once per
// element, in row-major order, so a stateful generator yields a predictable layout.
// Complexity: O(r*c) calls to gen.
func (m *Matrix[S, R, C]) FillFunc(gen func() S) {
	m.ensure()
	for i := range m.data {
		m.data[i] = gen()
	}
}

// Reset releases the buffer. IsEmpty reports true until the next Fill*.
func (m *Matrix[S, R, C]) Reset() {
	m.data = nil
}

// Clone returns a deep copy (an empty matrix clones to an empty matrix).
// Complexity: O(r*c).
func (m *Matrix[S, R, C]) Clone() *Matrix[S, R, C] {
	out := &Matrix[S, R, C]{}
	if len(m.data) != 0 {
		out.data = make([]S, len(m.data))
		copy(out.data, m.data)
	}

	return out
}

// Data returns a copy of the row-major buffer.
func (m *Matrix[S, R, C]) Data() []S {
	out := make([]S, len(m.data))
	copy(out, m.data)

	return out
}

// String renders rows top to bottom, values separated by a single space,
// one line per row. Diagnostic only, not a wire format.
// Complexity: O(r*c).
func (m *Matrix[S, R, C]) String() string {
	if m.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	rows, cols := m.Rows(), m.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprint(&sb, m.data[i*cols+j])
		}
		sb.WriteString(_fmtRowDone)
	}

	return sb.String()
}
