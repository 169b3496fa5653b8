// SPDX-License-Identifier: MIT

// Package linalg - constructors and the materialization boundary.
//
// Purpose:
//   - Build matrices from flat slices, nested rows, or a Fill policy.
//   - Materialize/Assign are the ONLY places where lazy expressions are evaluated.
//
// Determinism & Policy:
//   - Evaluation walks (row, col) in row-major order, 1-based, once per coordinate.
//   - Assign evaluates into a scratch buffer and swaps it in afterwards, so
//     m.Assign(Mul(m, m)) reads the old m throughout (alias-safe).
//
// AI-Hints:
//   - Build an expression and hand it to Materialize/Assign in the same statement.
//   - Materialize a Multiplication before reading it repeatedly: each Eval is O(K).

package linalg

import (
	"fmt"

	"github.com/gomlx/exceptions"
)

// FromSlice builds a matrix from R*C values in row-major order. vals is copied.
// Errors: ErrShapeMismatch when len(vals) != R*C.
// Complexity: O(r*c).
func FromSlice[S Scalar, R, C Dim](vals []S) (*Matrix[S, R, C], error) {
	r, c := shapeOf[R, C]()
	if len(vals) != r*c {
		return nil, linalgErrorf(opFromSlice, fmt.Errorf("got %d values for %dx%d: %w", len(vals), r, c, ErrShapeMismatch))
	}
	m := &Matrix[S, R, C]{data: make([]S, r*c)}
	copy(m.data, vals)

	return m, nil
}

// FromRows builds a matrix from nested row literals.
// Errors: ErrShapeMismatch when len(rows) != R or any len(rows[i]) != C.
// Complexity: O(r*c).
func FromRows[S Scalar, R, C Dim](rows [][]S) (*Matrix[S, R, C], error) {
	r, c := shapeOf[R, C]()
	if len(rows) != r {
		return nil, linalgErrorf(opFromRows, fmt.Errorf("got %d rows, want %d: %w", len(rows), r, ErrShapeMismatch))
	}
	m := &Matrix[S, R, C]{data: make([]S, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, linalgErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(row), c, ErrShapeMismatch))
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// NewFilled allocates a matrix and applies the fill policy f.
// Errors: ErrLogic (FillEye on non-square), ErrInvalidArgument (unknown Fill).
// Complexity: O(r*c).
func NewFilled[S Scalar, R, C Dim](f Fill, opts ...Option) (*Matrix[S, R, C], error) {
	o := gatherOptions(opts...)
	m := New[S, R, C]()
	if err := f.apply(m, o); err != nil {
		return nil, linalgErrorf(opNewFilled, err)
	}

	return m, nil
}

// Materialize evaluates e once per coordinate into a freshly owned matrix.
// Errors raised by leaves during evaluation (e.g. an emptied operand) are
// returned instead of propagating as panics.
// Complexity: O(r*c * cost(e.Eval)).
func Materialize[S Scalar, R, C Dim](e Expression[S, R, C]) (*Matrix[S, R, C], error) {
	if e == nil {
		return nil, linalgErrorf(opMaterialize, ErrNilMatrix)
	}
	buf, err := evaluate(e)
	if err != nil {
		return nil, linalgErrorf(opMaterialize, err)
	}

	return &Matrix[S, R, C]{data: buf}, nil
}

// Assign evaluates e and replaces m's contents with the result. On error m
// is left unchanged. Works on an empty (Reset) receiver.
// Complexity: O(r*c * cost(e.Eval)).
func (m *Matrix[S, R, C]) Assign(e Expression[S, R, C]) error {
	if m == nil || e == nil {
		return linalgErrorf(opAssign, ErrNilMatrix)
	}
	buf, err := evaluate(e)
	if err != nil {
		return linalgErrorf(opAssign, err)
	}
	m.data = buf

	return nil
}

// evaluate walks e in row-major order into a new buffer, converting any
// error-typed panic raised by a leaf into a returned error.
func evaluate[S Scalar, R, C Dim](e Expression[S, R, C]) ([]S, error) {
	r, c := shapeOf[R, C]()
	buf := make([]S, r*c)
	err := exceptions.TryCatch[error](func() {
		for i := 1; i <= r; i++ {
			base := (i - 1) * c
			for j := 1; j <= c; j++ {
				buf[base+j-1] = e.Eval(i, j)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	return buf, nil
}
