// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across linalg and
// the small wrappers that attach operation context to them. Callers match
// with errors.Is; no public entry point panics on user-triggered conditions.
// Panics are reserved for programmer errors (nonsensical Dim types, invalid
// options) and for Expression.Eval, whose contract has no error channel.

package linalg

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ..." for grep-ability. Kernels wrap
// sentinels once at the detection site with linalgErrorf/indexErrorf; outer
// layers may wrap again, errors.Is still matches.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> empty -> shape -> index -> argument.

var (
	// ErrShapeMismatch is returned when supplied data disagrees with the
	// statically declared (Rows, Cols), e.g. FromSlice with len != R*C.
	ErrShapeMismatch = errors.New("linalg: shape mismatch")

	// ErrOutOfRange indicates that a 1-based row or column index is outside
	// [1,Rows] or [1,Cols]. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrLogic signals an operation undefined for the matrix's shape,
	// e.g. Eye on a non-square matrix or AtVec on a non-vector.
	ErrLogic = errors.New("linalg: operation undefined for shape")

	// ErrInvalidArgument signals an unrecognised enumeration value or a
	// nonsensical numeric parameter (negative iteration cap, NaN tolerance).
	ErrInvalidArgument = errors.New("linalg: invalid argument")

	// ErrEmptyMatrix indicates indexed access to a matrix after Reset.
	ErrEmptyMatrix = errors.New("linalg: matrix is empty")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrSingular is returned by SolveLU when a zero pivot is met during
	// back substitution (no pivoting by design).
	ErrSingular = errors.New("linalg: singular matrix")
)

// Operation name constants for unified error wrapping.
const (
	opFromSlice   = "FromSlice"
	opFromRows    = "FromRows"
	opNewFilled   = "NewFilled"
	opMaterialize = "Materialize"
	opAssign      = "Assign"
	opEye         = "Eye"
	opRow         = "Row"
	opCol         = "Col"
	opVec         = "Vec"
	opLU          = "LUDoolittle"
	opSolveLU     = "SolveLU"
	opJacobi      = "SolveJacobi"
	opParseFill   = "ParseFill"
)

// linalgErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
//
// Complexity: O(1).
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf wraps an error with a uniform Matrix context and the 1-based
// coordinates that triggered it.
//
// Inputs:
//   - method: context tag ("At", "Set", "Eval", ...).
//   - row, col: 1-based coordinates as supplied by the caller.
//   - err: sentinel (ErrOutOfRange, ErrEmptyMatrix).
//
// Complexity: O(1).
func indexErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
