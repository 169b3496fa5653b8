// SPDX-License-Identifier: MIT

// Package linalg - row and column vectors.
//
// RowVector and ColVector are aliases of Matrix with one dimension fixed to D1,
// so they share every Matrix operation and every expression builder. A 1×1
// matrix is simply Matrix[S, D1, D1]; there is no separate type to disambiguate.
// The helpers below add single-index access along the non-degenerate axis.

package linalg

import "fmt"

// RowVector is a 1×C matrix.
type RowVector[S Scalar, C Dim] = Matrix[S, D1, C]

// ColVector is an R×1 matrix.
type ColVector[S Scalar, R Dim] = Matrix[S, R, D1]

// NewRowVector builds a 1×C vector from exactly C values.
// Errors: ErrShapeMismatch.
func NewRowVector[S Scalar, C Dim](vals ...S) (*RowVector[S, C], error) {
	return FromSlice[S, D1, C](vals)
}

// NewColVector builds an R×1 vector from exactly R values.
// Errors: ErrShapeMismatch.
func NewColVector[S Scalar, R Dim](vals ...S) (*ColVector[S, R], error) {
	return FromSlice[S, R, D1](vals)
}

// IsVector reports whether one of the dimensions is 1.
func (m *Matrix[S, R, C]) IsVector() bool {
	return m.Rows() == 1 || m.Cols() == 1
}

// Len returns the number of elements R*C (independent of Reset).
func (m *Matrix[S, R, C]) Len() int {
	return m.Rows() * m.Cols()
}

// vecIndex maps a 1-based vector index onto the flat buffer.
// For row and column vectors the flat offset is i-1 in both cases.
func (m *Matrix[S, R, C]) vecIndex(i int) (int, error) {
	if !m.IsVector() {
		return 0, linalgErrorf(opVec, fmt.Errorf("%dx%d is not a vector: %w", m.Rows(), m.Cols(), ErrLogic))
	}
	if m.IsEmpty() {
		return 0, linalgErrorf(opVec, ErrEmptyMatrix)
	}
	if i < 1 || i > m.Len() {
		return 0, linalgErrorf(opVec, fmt.Errorf("index %d of %d: %w", i, m.Len(), ErrOutOfRange))
	}

	return i - 1, nil
}

// AtVec returns element i (1-based) of a row or column vector.
// Errors: ErrLogic (not a vector), ErrEmptyMatrix, ErrOutOfRange.
func (m *Matrix[S, R, C]) AtVec(i int) (S, error) {
	idx, err := m.vecIndex(i)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// SetVec assigns element i (1-based) of a row or column vector.
// Errors: ErrLogic (not a vector), ErrEmptyMatrix, ErrOutOfRange.
func (m *Matrix[S, R, C]) SetVec(i int, v S) error {
	idx, err := m.vecIndex(i)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}
