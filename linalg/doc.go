// SPDX-License-Identifier: MIT

// Package linalg provides small dense matrices whose dimensions are part of
// their type, a lazy expression graph over them, and two direct/iterative
// solvers.
//
// Shapes live in the type system:
//
//	a := linalg.New[float64, linalg.D2, linalg.D3]() // 2×3
//	b := linalg.New[float64, linalg.D3, linalg.D2]() // 3×2
//	p, err := linalg.Materialize(linalg.Mul(a, b))  // 2×2
//
// linalg.Add(a, b) above does not compile. The same holds for a solver
// handed a non-square matrix or a vector of the wrong length.
//
// Building blocks:
//   - Matrix[S, R, C]: row-major storage, 1-based At/Set, Fill* mutators,
//     Reset (empty state), Row/Col sequences and Cursors.
//   - RowVector / ColVector: aliases with AtVec/SetVec.
//   - Expression nodes: Add, Sub, Mul, Scale, Hadamard, Transpose and the
//     comparison masks Eq/Ne/Ge/Le/Gt/Lt. Nothing is computed until
//     Materialize or Assign.
//   - LUDoolittle / SolveLU and SolveJacobi.
//
// Errors are sentinels (ErrShapeMismatch, ErrOutOfRange, ErrLogic, ...)
// matched with errors.Is. Expression.Eval has no error channel and panics
// with an error value; Materialize and Assign turn that back into an error.
package linalg
