// SPDX-License-Identifier: MIT

// Package sparse - compressed sparse row storage.
//
// Purpose:
//   - Store only the non-zero elements of an R×C matrix.
//   - Act as a leaf of the linalg expression graph: *CSR implements
//     linalg.Expression[S, R, C], so linalg.Add(dense, csr) compiles and
//     linalg.Materialize densifies.
//
// Layout:
//   - rowPtr has R+1 entries; row i (1-based) occupies values[rowPtr[i-1]:rowPtr[i]].
//   - colIdx holds 0-based columns, strictly increasing inside each row.
//   - A stored value is never 0: Set(..., 0) deletes the entry.
//
// Complexity quicksheet:
//   - At/Eval: O(log nnz(row)); Set: O(nnz) worst case (shift); Entries: O(nnz).

package sparse

import (
	"fmt"
	"iter"
	"sort"

	"github.com/gomlx/exceptions"

	"github.com/katalvlaran/lao/linalg"
)

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxEval = "Eval"
)

// Coord is a 1-based (Row, Col) position.
type Coord struct {
	Row, Col int
}

// CSR is an R×C sparse matrix of S in compressed sparse row format.
// The zero value is not usable; call New.
type CSR[S linalg.Scalar, R, C linalg.Dim] struct {
	values []S
	colIdx []int
	rowPtr []int
}

// New returns an all-zero R×C sparse matrix (nothing stored).
func New[S linalg.Scalar, R, C linalg.Dim]() *CSR[S, R, C] {
	var r R

	return &CSR[S, R, C]{rowPtr: make([]int, r.N()+1)}
}

// FromExpression evaluates e once per coordinate (row-major) and keeps the
// non-zero results.
// Errors: ErrNilMatrix, or whatever error a leaf panicked with.
// Complexity: O(r*c * cost(e.Eval)).
func FromExpression[S linalg.Scalar, R, C linalg.Dim](e linalg.Expression[S, R, C]) (*CSR[S, R, C], error) {
	if e == nil {
		return nil, sparseErrorf(opFromExpression, ErrNilMatrix)
	}
	m := New[S, R, C]()
	rows, cols := e.Rows(), e.Cols()
	err := exceptions.TryCatch[error](func() {
		var v S
		for i := 1; i <= rows; i++ {
			for j := 1; j <= cols; j++ {
				if v = e.Eval(i, j); v != 0 {
					m.values = append(m.values, v)
					m.colIdx = append(m.colIdx, j-1)
				}
			}
			m.rowPtr[i] = len(m.values)
		}
	})
	if err != nil {
		return nil, sparseErrorf(opFromExpression, err)
	}

	return m, nil
}

// Rows returns R.N().
func (m *CSR[S, R, C]) Rows() int {
	var r R

	return r.N()
}

// Cols returns C.N().
func (m *CSR[S, R, C]) Cols() int {
	var c C

	return c.N()
}

// Shape binds *CSR to linalg.Expression[S, R, C].
func (m *CSR[S, R, C]) Shape() (R, C) {
	var r R
	var c C

	return r, c
}

// NNZ returns the number of stored (non-zero) elements.
func (m *CSR[S, R, C]) NNZ() int { return len(m.values) }

// IsEmpty reports whether no element is stored.
func (m *CSR[S, R, C]) IsEmpty() bool { return len(m.values) == 0 }

// locate validates (row, col) and returns the storage slot where col lives
// or would be inserted, plus whether it is present.
func (m *CSR[S, R, C]) locate(method string, row, col int) (int, bool, error) {
	if row < 1 || row > m.Rows() || col < 1 || col > m.Cols() {
		return 0, false, indexErrorf(method, row, col, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[row-1], m.rowPtr[row]
	k := lo + sort.SearchInts(m.colIdx[lo:hi], col-1)

	return k, k < hi && m.colIdx[k] == col-1, nil
}

// At returns the element at 1-based (row, col); 0 when nothing is stored.
// Errors: ErrOutOfRange.
func (m *CSR[S, R, C]) At(row, col int) (S, error) {
	k, ok, err := m.locate(ctxAt, row, col)
	if err != nil || !ok {
		return 0, err
	}

	return m.values[k], nil
}

// Set stores v at 1-based (row, col). v == 0 deletes any stored entry.
// Errors: ErrOutOfRange.
func (m *CSR[S, R, C]) Set(row, col int, v S) error {
	k, ok, err := m.locate(ctxSet, row, col)
	if err != nil {
		return err
	}
	switch {
	case ok && v != 0:
		m.values[k] = v
	case ok:
		m.values = append(m.values[:k], m.values[k+1:]...)
		m.colIdx = append(m.colIdx[:k], m.colIdx[k+1:]...)
		m.shiftRows(row, -1)
	case v != 0:
		m.values = append(m.values, 0)
		copy(m.values[k+1:], m.values[k:])
		m.values[k] = v
		m.colIdx = append(m.colIdx, 0)
		copy(m.colIdx[k+1:], m.colIdx[k:])
		m.colIdx[k] = col - 1
		m.shiftRows(row, +1)
	}

	return nil
}

// shiftRows moves the end offsets of rows row..R by delta.
func (m *CSR[S, R, C]) shiftRows(row, delta int) {
	for i := row; i < len(m.rowPtr); i++ {
		m.rowPtr[i] += delta
	}
}

// Eval implements linalg.Expression. It panics with a wrapped
// ErrOutOfRange error value on invalid coordinates.
func (m *CSR[S, R, C]) Eval(row, col int) S {
	k, ok, err := m.locate(ctxEval, row, col)
	if err != nil {
		panic(err)
	}
	if !ok {
		return 0
	}

	return m.values[k]
}

// Zeros drops every stored element.
func (m *CSR[S, R, C]) Zeros() {
	m.values = m.values[:0]
	m.colIdx = m.colIdx[:0]
	for i := range m.rowPtr {
		m.rowPtr[i] = 0
	}
}

// Reset releases storage. For a sparse matrix this is the same state as Zeros.
func (m *CSR[S, R, C]) Reset() {
	m.values, m.colIdx = nil, nil
	m.rowPtr = make([]int, m.Rows()+1)
}

// Eye sets m to the identity.
// Errors: ErrLogic when Rows != Cols (m is left untouched).
func (m *CSR[S, R, C]) Eye() error {
	n := m.Rows()
	if n != m.Cols() {
		return sparseErrorf(opEye, fmt.Errorf("%dx%d: %w", n, m.Cols(), ErrLogic))
	}
	m.values = make([]S, n)
	m.colIdx = make([]int, n)
	for i := 0; i < n; i++ {
		m.values[i] = 1
		m.colIdx[i] = i
		m.rowPtr[i+1] = i + 1
	}

	return nil
}

// FillNonZero replaces every stored element with gen(), in row-major order.
// Zeros returned by gen delete the entry, keeping the no-stored-zero rule.
func (m *CSR[S, R, C]) FillNonZero(gen func() S) {
	var kept, begin, end int
	for i := 1; i < len(m.rowPtr); i++ {
		end = m.rowPtr[i]
		for k := begin; k < end; k++ {
			if v := gen(); v != 0 {
				m.values[kept], m.colIdx[kept] = v, m.colIdx[k]
				kept++
			}
		}
		begin = end
		m.rowPtr[i] = kept
	}
	m.values, m.colIdx = m.values[:kept], m.colIdx[:kept]
}

// Entries yields the stored elements as (Coord, value) in row-major order.
// The matrix must not be modified while iterating.
func (m *CSR[S, R, C]) Entries() iter.Seq2[Coord, S] {
	return func(yield func(Coord, S) bool) {
		for i := 1; i < len(m.rowPtr); i++ {
			for k := m.rowPtr[i-1]; k < m.rowPtr[i]; k++ {
				if !yield(Coord{Row: i, Col: m.colIdx[k] + 1}, m.values[k]) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy.
func (m *CSR[S, R, C]) Clone() *CSR[S, R, C] {
	return &CSR[S, R, C]{
		values: append([]S(nil), m.values...),
		colIdx: append([]int(nil), m.colIdx...),
		rowPtr: append([]int(nil), m.rowPtr...),
	}
}

// Dense materializes m into a linalg.Matrix.
func (m *CSR[S, R, C]) Dense() *linalg.Matrix[S, R, C] {
	d := linalg.New[S, R, C]()
	for at, v := range m.Entries() {
		_ = d.Set(at.Row, at.Col, v)
	}

	return d
}
