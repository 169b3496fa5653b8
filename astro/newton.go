// SPDX-License-Identifier: MIT

package astro

import (
	"fmt"
	"math"

	"k8s.io/klog/v2"
)

// NewtonResult is the outcome of NewtonRaphson.
type NewtonResult struct {
	Root       float64
	Iterations int
	Converged  bool
}

// NewtonRaphson refines x0 towards a root of f using its derivative df.
// Each step is x -= f(x)/df(x). It stops when the relative step
// |step| / max(|x|, 1) drops to tol or below, or after maxIter steps.
// At least one step is taken when maxIter > 0.
func NewtonRaphson(x0 float64, f, df func(float64) float64, maxIter int, tol float64) NewtonResult {
	res := NewtonResult{Root: x0}
	var step float64
	for res.Iterations < maxIter {
		step = f(res.Root) / df(res.Root)
		res.Root -= step
		res.Iterations++
		if math.Abs(step)/math.Max(math.Abs(res.Root), 1) <= tol {
			res.Converged = true

			break
		}
	}

	return res
}

// keplerMaxIterations bounds EccentricAnomaly.
const keplerMaxIterations = 100

// EccentricAnomaly solves Kepler's equation M = E - e·sin(E) for E [rad],
// starting from E0 = M + e·sin(M). Valid for elliptic orbits, 0 ≤ e < 1.
// Errors: ErrInvalidArgument (e outside [0,1) or non-finite M),
// ErrNoConvergence.
func EccentricAnomaly(meanAnomaly, e float64) (float64, error) {
	if !(e >= 0 && e < 1) || math.IsNaN(meanAnomaly) || math.IsInf(meanAnomaly, 0) {
		return 0, astroErrorf(opEccentric, fmt.Errorf("M=%v e=%v: %w", meanAnomaly, e, ErrInvalidArgument))
	}
	res := NewtonRaphson(
		meanAnomaly+e*math.Sin(meanAnomaly),
		func(E float64) float64 { return E - e*math.Sin(E) - meanAnomaly },
		func(E float64) float64 { return 1 - e*math.Cos(E) },
		keplerMaxIterations, SolverTolerance,
	)
	if !res.Converged {
		return res.Root, astroErrorf(opEccentric, fmt.Errorf("M=%v e=%v after %d steps: %w", meanAnomaly, e, res.Iterations, ErrNoConvergence))
	}
	klog.V(2).Infof("%s: M=%v e=%v -> E=%v in %d steps", opEccentric, meanAnomaly, e, res.Root, res.Iterations)

	return res.Root, nil
}
