// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Shape and index sentinels are shared with linalg so callers can match
// either package's errors with a single errors.Is.

package sparse

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lao/linalg"
)

var (
	// ErrOutOfRange indicates a 1-based index outside [1,Rows] or [1,Cols].
	ErrOutOfRange = linalg.ErrOutOfRange

	// ErrLogic signals an operation undefined for the shape (Eye off-square).
	ErrLogic = linalg.ErrLogic

	// ErrShapeMismatch is returned when loaded data disagrees with (R, C).
	ErrShapeMismatch = linalg.ErrShapeMismatch

	// ErrNilMatrix indicates a nil *CSR or a nil source expression.
	ErrNilMatrix = linalg.ErrNilMatrix

	// ErrParse indicates a malformed CSV cell or record.
	ErrParse = errors.New("sparse: malformed input")
)

const (
	opFromExpression = "FromExpression"
	opEye            = "Eye"
	opParseCSV       = "ParseCSV"
	opReadCSV        = "ReadCSV"
	opLoadCSV        = "LoadCSV"
)

// sparseErrorf wraps err with an operation tag, preserving the sentinel via %w.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("sparse.%s: %w", tag, err)
}

// indexErrorf attaches the CSR method and 1-based coordinates to err.
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSR.%s(%d,%d): %w", method, row, col, err)
}
