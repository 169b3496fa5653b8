// SPDX-License-Identifier: MIT

// Package linalg - LU factorization (Doolittle) and triangular solves.
//
// Purpose:
//   - Factor a square A into unit-lower L and upper U with A = L·U.
//   - Solve A·x = b from such a pair by forward then back substitution.
//
// Determinism & Policy:
//   - No pivoting. A zero, NaN or infinite pivot does NOT stop the
//     factorization: the division proceeds (Inf/NaN propagate into L) and
//     the first offending pivot is reported in LUReport.
//   - Fixed loop order j → i → k, so results are bit-for-bit reproducible.
//   - A, L and U may alias: A is read into a scratch copy first.
//
// AI-Hints:
//   - Check LUReport.Singular before trusting L; SolveLU refuses zero pivots.
//   - Run with -v=2 to trace pivots.
//
// Complexity: O(n³) time, O(n²) scratch space.

package linalg

import (
	"fmt"

	"k8s.io/klog/v2"
)

// LUReport describes numeric trouble met during LUDoolittle.
type LUReport struct {
	// Singular is true when some pivot U(j,j) was zero or non-finite.
	Singular bool
	// Pivot is the 1-based index of the first bad pivot, 0 when none.
	Pivot int
}

// LUDoolittle computes A = L·U without pivoting, overwriting l and u.
// L gets a unit diagonal; every entry of U below the diagonal is 0.
//
//	U(j,i) = A(j,i) - Σ_{k<j} L(j,k)·U(k,i)            for i ≥ j
//	L(i,j) = (A(i,j) - Σ_{k<j} L(i,k)·U(k,j)) / U(j,j)  for i > j
//
// Errors: ErrNilMatrix (any argument nil), ErrEmptyMatrix (a was Reset).
// l and u may be empty; they are reallocated. On error nothing is written.
func LUDoolittle[S Float, N Dim](a, l, u *Matrix[S, N, N]) (LUReport, error) {
	var report LUReport
	if err := validateOperand("a", a); err != nil {
		return report, linalgErrorf(opLU, err)
	}
	if err := validateNotNil("l", l); err != nil {
		return report, linalgErrorf(opLU, err)
	}
	if err := validateNotNil("u", u); err != nil {
		return report, linalgErrorf(opLU, err)
	}

	n := dimOf[N]()
	src := make([]S, n*n)
	copy(src, a.data)
	lo := make([]S, n*n) // L := I
	up := make([]S, n*n) // U := 0
	for i := 0; i < n; i++ {
		lo[i*n+i] = 1
	}

	var (
		i, j, k int
		sum     S
		pivot   S
	)
	for j = 0; j < n; j++ {
		// Row j of U.
		for i = j; i < n; i++ {
			sum = 0
			for k = 0; k < j; k++ {
				sum += lo[j*n+k] * up[k*n+i]
			}
			up[j*n+i] = src[j*n+i] - sum
		}

		pivot = up[j*n+j]
		if isBadPivot(float64(pivot)) {
			if !report.Singular {
				report.Singular, report.Pivot = true, j+1
			}
			klog.V(2).Infof("%s: bad pivot U(%d,%d)=%v", opLU, j+1, j+1, pivot)
		}

		// Column j of L.
		for i = j + 1; i < n; i++ {
			sum = 0
			for k = 0; k < j; k++ {
				sum += lo[i*n+k] * up[k*n+j]
			}
			lo[i*n+j] = (src[i*n+j] - sum) / pivot
		}
	}

	l.data, u.data = lo, up
	if report.Singular {
		klog.V(1).Infof("%s: %dx%d factorized with first bad pivot at %d", opLU, n, n, report.Pivot)
	}

	return report, nil
}

// SolveLU solves L·U·x = b for x, with L unit-lower and U upper triangular
// (as produced by LUDoolittle). Only the relevant triangles are read.
// Errors: ErrNilMatrix, ErrEmptyMatrix, ErrSingular (U(j,j) == 0).
// Complexity: O(n²).
func SolveLU[S Float, N Dim](l, u *Matrix[S, N, N], b *ColVector[S, N]) (*ColVector[S, N], error) {
	if err := validateOperand("l", l); err != nil {
		return nil, linalgErrorf(opSolveLU, err)
	}
	if err := validateOperand("u", u); err != nil {
		return nil, linalgErrorf(opSolveLU, err)
	}
	if err := validateOperand("b", b); err != nil {
		return nil, linalgErrorf(opSolveLU, err)
	}

	n := dimOf[N]()
	y := make([]S, n)
	var (
		i, k int
		sum  S
	)
	// Forward: L·y = b (unit diagonal).
	for i = 0; i < n; i++ {
		sum = b.data[i]
		for k = 0; k < i; k++ {
			sum -= l.data[i*n+k] * y[k]
		}
		y[i] = sum
	}
	// Backward: U·x = y.
	x := make([]S, n)
	for i = n - 1; i >= 0; i-- {
		if u.data[i*n+i] == 0 {
			return nil, linalgErrorf(opSolveLU, fmt.Errorf("U(%d,%d)=0: %w", i+1, i+1, ErrSingular))
		}
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= u.data[i*n+k] * x[k]
		}
		x[i] = sum / u.data[i*n+i]
	}

	return &ColVector[S, N]{data: x}, nil
}
