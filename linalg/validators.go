// SPDX-License-Identifier: MIT

// Package linalg - shared argument validation for the solvers.
//
// Purpose:
//   - Keep kernel bodies minimal by delegating nil/empty checks here.
//   - Return sentinels wrapped with the validator tag so call sites can wrap
//     once more with their own operation name.
//
// Note:
//   - Shapes need no validation here: squareness and vector length are
//     already fixed by the type parameters.

package linalg

import (
	"fmt"
	"math"
)

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateOperand checks one solver argument: nil first, then empty.
// name identifies the argument in the message ("a", "b", "x", ...).
// Complexity: O(1).
func validateOperand[S Scalar, R, C Dim](name string, m *Matrix[S, R, C]) error {
	if m == nil {
		return validatorErrorf("validateOperand", fmt.Errorf("%s: %w", name, ErrNilMatrix))
	}
	if len(m.data) == 0 {
		return validatorErrorf("validateOperand", fmt.Errorf("%s: %w", name, ErrEmptyMatrix))
	}

	return nil
}

// validateNotNil checks an output argument that will be (re)filled and may
// therefore be empty.
// Complexity: O(1).
func validateNotNil[S Scalar, R, C Dim](name string, m *Matrix[S, R, C]) error {
	if m == nil {
		return validatorErrorf("validateNotNil", fmt.Errorf("%s: %w", name, ErrNilMatrix))
	}

	return nil
}

// validateTolerance rejects NaN and negative tolerances. +Inf is accepted
// and makes any finite update converge.
func validateTolerance(tol float64) error {
	if math.IsNaN(tol) || tol < 0 {
		return validatorErrorf("validateTolerance", fmt.Errorf("tol=%v: %w", tol, ErrInvalidArgument))
	}

	return nil
}

// isBadPivot reports whether p cannot be divided by meaningfully.
func isBadPivot(p float64) bool {
	return p == 0 || math.IsNaN(p) || math.IsInf(p, 0)
}
