// SPDX-License-Identifier: MIT

// Package linalg - Jacobi iteration for A·x = b.
//
// Purpose:
//   - Approximate x with the element-wise Jacobi update
//     x'(i) = (b(i) - Σ_{j≠i} A(i,j)·x(j)) / A(i,i).
//
// Determinism & Policy:
//   - x always starts at all ones, whatever it held before.
//   - Each sweep writes a scratch iterate, measures the L1 size of the update
//     Σ|x'(i) - x(i)|, then replaces x unconditionally. The loop stops as
//     soon as that update is strictly below tol.
//   - A zero diagonal entry is not guarded; Inf/NaN will appear in x and the
//     run ends unconverged (NaN never compares below tol).
//   - Outcome is returned in JacobiResult; nothing is printed. klog -v=1
//     logs the termination, -v=2 every sweep.
//
// Complexity: O(n²) per sweep, O(n) scratch.

package linalg

import (
	"fmt"
	"math"

	"k8s.io/klog/v2"
)

// JacobiResult reports how SolveJacobi terminated.
type JacobiResult[S Float] struct {
	// Converged is true when an update smaller than tol was reached.
	Converged bool
	// Iterations is the number of sweeps performed.
	Iterations int
	// Residual is the L1 norm of the last update (0 when no sweep ran).
	Residual S
}

// SolveJacobi runs at most maxIterations Jacobi sweeps, writing the
// approximation into x. maxIterations == 0 leaves x at all ones.
// Errors: ErrNilMatrix, ErrEmptyMatrix (a or b Reset), ErrInvalidArgument
// (maxIterations < 0, tol < 0 or NaN). x may be empty; it is reallocated.
func SolveJacobi[S Float, N Dim](x *ColVector[S, N], a *Matrix[S, N, N], b *ColVector[S, N], maxIterations int, tol S) (JacobiResult[S], error) {
	var res JacobiResult[S]
	if err := validateNotNil("x", x); err != nil {
		return res, linalgErrorf(opJacobi, err)
	}
	if err := validateOperand("a", a); err != nil {
		return res, linalgErrorf(opJacobi, err)
	}
	if err := validateOperand("b", b); err != nil {
		return res, linalgErrorf(opJacobi, err)
	}
	if maxIterations < 0 {
		return res, linalgErrorf(opJacobi, fmt.Errorf("maxIterations=%d: %w", maxIterations, ErrInvalidArgument))
	}
	if err := validateTolerance(float64(tol)); err != nil {
		return res, linalgErrorf(opJacobi, err)
	}

	n := dimOf[N]()
	// x may alias a or b; snapshot both before x is reinitialised.
	av := append([]S(nil), a.data...)
	bv := append([]S(nil), b.data...)
	x.Ones()
	cur := x.data
	next := make([]S, n)

	var (
		i, j int
		sum  S
		diff S
	)
	for res.Iterations < maxIterations {
		for i = 0; i < n; i++ {
			sum = 0
			for j = 0; j < n; j++ {
				if j != i {
					sum += av[i*n+j] * cur[j]
				}
			}
			next[i] = (bv[i] - sum) / av[i*n+i]
		}

		diff = 0
		for i = 0; i < n; i++ {
			diff += S(math.Abs(float64(next[i] - cur[i])))
		}
		copy(cur, next)
		res.Iterations++
		res.Residual = diff
		klog.V(2).Infof("%s: iteration %d update=%v", opJacobi, res.Iterations, diff)

		if diff < tol {
			res.Converged = true

			break
		}
	}

	if res.Converged {
		klog.V(1).Infof("%s: converged after %d iterations (update %v < tol %v)", opJacobi, res.Iterations, res.Residual, tol)
	} else {
		klog.V(1).Infof("%s: not converged after %d iterations (update %v, tol %v)", opJacobi, res.Iterations, res.Residual, tol)
	}

	return res, nil
}
