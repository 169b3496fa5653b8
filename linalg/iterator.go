// SPDX-License-Identifier: MIT

// Package linalg - row/column traversal.
//
// Two styles are offered:
//   - Row(r)/Col(c) return restartable iter.Seq2 sequences of (1-based index, value),
//     for use with range-over-func. They read the live matrix on every step.
//   - RowBegin/RowEnd/ColBegin/ColEnd return Cursors for explicit loops.
//     End is ONE PAST the last element (half-open): it compares equal to a
//     cursor that has been advanced past the last element, and Value on it
//     returns ErrOutOfRange.

package linalg

import (
	"fmt"
	"iter"
)

// axis selects the direction a Cursor walks.
type axis uint8

const (
	alongRow axis = iota // col varies
	alongCol             // row varies
)

// Cursor points at one element of a row or column of a Matrix.
type Cursor[S Scalar, R, C Dim] struct {
	m        *Matrix[S, R, C]
	row, col int
	dir      axis
}

// Row returns a sequence over row r, yielding (col, value) for col = 1..Cols.
// Errors: ErrOutOfRange when r is outside [1, Rows]; ErrEmptyMatrix after Reset.
func (m *Matrix[S, R, C]) Row(r int) (iter.Seq2[int, S], error) {
	if err := m.checkLine(opRow, r, m.Rows()); err != nil {
		return nil, err
	}

	return func(yield func(int, S) bool) {
		cols := m.Cols()
		for j := 1; j <= cols; j++ {
			if len(m.data) == 0 || !yield(j, m.data[(r-1)*cols+j-1]) {
				return
			}
		}
	}, nil
}

// Col returns a sequence over column c, yielding (row, value) for row = 1..Rows.
// Errors: ErrOutOfRange when c is outside [1, Cols]; ErrEmptyMatrix after Reset.
func (m *Matrix[S, R, C]) Col(c int) (iter.Seq2[int, S], error) {
	if err := m.checkLine(opCol, c, m.Cols()); err != nil {
		return nil, err
	}

	return func(yield func(int, S) bool) {
		rows, cols := m.Rows(), m.Cols()
		for i := 1; i <= rows; i++ {
			if len(m.data) == 0 || !yield(i, m.data[(i-1)*cols+c-1]) {
				return
			}
		}
	}, nil
}

// RowBegin returns a cursor at (r, 1).
func (m *Matrix[S, R, C]) RowBegin(r int) (Cursor[S, R, C], error) {
	if err := m.checkLine(opRow, r, m.Rows()); err != nil {
		return Cursor[S, R, C]{}, err
	}

	return Cursor[S, R, C]{m: m, row: r, col: 1, dir: alongRow}, nil
}

// RowEnd returns the past-the-end cursor (r, Cols+1).
func (m *Matrix[S, R, C]) RowEnd(r int) (Cursor[S, R, C], error) {
	if err := m.checkLine(opRow, r, m.Rows()); err != nil {
		return Cursor[S, R, C]{}, err
	}

	return Cursor[S, R, C]{m: m, row: r, col: m.Cols() + 1, dir: alongRow}, nil
}

// ColBegin returns a cursor at (1, c).
func (m *Matrix[S, R, C]) ColBegin(c int) (Cursor[S, R, C], error) {
	if err := m.checkLine(opCol, c, m.Cols()); err != nil {
		return Cursor[S, R, C]{}, err
	}

	return Cursor[S, R, C]{m: m, row: 1, col: c, dir: alongCol}, nil
}

// ColEnd returns the past-the-end cursor (Rows+1, c).
func (m *Matrix[S, R, C]) ColEnd(c int) (Cursor[S, R, C], error) {
	if err := m.checkLine(opCol, c, m.Cols()); err != nil {
		return Cursor[S, R, C]{}, err
	}

	return Cursor[S, R, C]{m: m, row: m.Rows() + 1, col: c, dir: alongCol}, nil
}

// checkLine validates a 1-based row or column selector.
func (m *Matrix[S, R, C]) checkLine(tag string, k, limit int) error {
	if m.IsEmpty() {
		return linalgErrorf(tag, ErrEmptyMatrix)
	}
	if k < 1 || k > limit {
		return linalgErrorf(tag, fmt.Errorf("%d not in [1,%d]: %w", k, limit, ErrOutOfRange))
	}

	return nil
}

// Next advances the cursor by one element along its line.
func (c *Cursor[S, R, C]) Next() {
	if c.dir == alongRow {
		c.col++
	} else {
		c.row++
	}
}

// Equal reports whether both cursors point at the same position of the same matrix.
func (c Cursor[S, R, C]) Equal(other Cursor[S, R, C]) bool {
	return c.m == other.m && c.row == other.row && c.col == other.col && c.dir == other.dir
}

// Valid reports whether the cursor points at an element (not at End).
func (c Cursor[S, R, C]) Valid() bool {
	return c.m != nil && !c.m.IsEmpty() &&
		c.row >= 1 && c.row <= c.m.Rows() && c.col >= 1 && c.col <= c.m.Cols()
}

// Position returns the 1-based (row, col) the cursor points at.
func (c Cursor[S, R, C]) Position() (int, int) { return c.row, c.col }

// Value reads the element under the cursor.
// Errors: ErrOutOfRange at End, ErrEmptyMatrix/ErrNilMatrix for a dead matrix.
func (c Cursor[S, R, C]) Value() (S, error) {
	if c.m == nil {
		return 0, ErrNilMatrix
	}

	return c.m.At(c.row, c.col)
}

// Set writes v through to the matrix under the cursor.
func (c Cursor[S, R, C]) Set(v S) error {
	if c.m == nil {
		return ErrNilMatrix
	}

	return c.m.Set(c.row, c.col, v)
}
