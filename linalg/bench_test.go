// SPDX-License-Identifier: MIT
// Package linalg_test provides benchmarks for expression evaluation and the solvers,
// using a deterministic random fill.
package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lao/linalg"
)

type m9 = linalg.Matrix[float64, linalg.D9, linalg.D9]

// sinks to defeat dead-code elimination
var (
	sinkM *m9
	sinkR linalg.LUReport
	sinkJ linalg.JacobiResult[float64]
)

func benchOperand(b *testing.B, seed int64) *m9 {
	b.Helper()
	m, err := linalg.NewFilled[float64, linalg.D9, linalg.D9](linalg.FillRand, linalg.WithSeed(seed))
	if err != nil {
		b.Fatal(err)
	}
	for i := 1; i <= 9; i++ {
		v, _ := m.At(i, i)
		_ = m.Set(i, i, v+10)
	}

	return m
}

func BenchmarkMaterializeAddMul(b *testing.B) {
	x, y := benchOperand(b, 1337), benchOperand(b, 4242)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := linalg.Materialize(linalg.Add(linalg.Mul(x, y), x))
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}

func BenchmarkAssignInPlace(b *testing.B) {
	x := benchOperand(b, 11)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := x.Assign(linalg.Scale(1.0, x)); err != nil {
			b.Fatal(err)
		}
	}
	sinkM = x
}

func BenchmarkLUDoolittle(b *testing.B) {
	a := benchOperand(b, 22)
	l, u := linalg.New[float64, linalg.D9, linalg.D9](), linalg.New[float64, linalg.D9, linalg.D9]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := linalg.LUDoolittle(a, l, u)
		if err != nil {
			b.Fatal(err)
		}
		sinkR = r
	}
}

func BenchmarkSolveJacobi(b *testing.B) {
	a := benchOperand(b, 33)
	rhs, err := linalg.NewFilled[float64, linalg.D9, linalg.D1](linalg.FillOnes)
	if err != nil {
		b.Fatal(err)
	}
	x := linalg.New[float64, linalg.D9, linalg.D1]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := linalg.SolveJacobi(x, a, rhs, 100, 1e-12)
		if err != nil {
			b.Fatal(err)
		}
		sinkJ = r
	}
}
