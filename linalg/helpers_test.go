// SPDX-License-Identifier: MIT
// Package linalg_test contains shared fixtures for the linalg tests.
//
// Purpose:
//   - Keep fixture construction one line per matrix (fatal on error).
//   - Keep all data small, finite and hand-checkable.

package linalg_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lao/linalg"
)

// approx compares float slices up to an absolute margin.
var approx = cmpopts.EquateApprox(0, 1e-9)

// mustRows builds an R×C matrix from row literals or fails the test.
func mustRows[S linalg.Scalar, R, C linalg.Dim](t testing.TB, rows [][]S) *linalg.Matrix[S, R, C] {
	t.Helper()
	m, err := linalg.FromRows[S, R, C](rows)
	require.NoError(t, err)

	return m
}

// mustMaterialize evaluates e or fails the test.
func mustMaterialize[S linalg.Scalar, R, C linalg.Dim](t testing.TB, e linalg.Expression[S, R, C]) *linalg.Matrix[S, R, C] {
	t.Helper()
	m, err := linalg.Materialize(e)
	require.NoError(t, err)

	return m
}

// mustAt reads one element or fails the test.
func mustAt[S linalg.Scalar, R, C linalg.Dim](t testing.TB, m *linalg.Matrix[S, R, C], row, col int) S {
	t.Helper()
	v, err := m.At(row, col)
	require.NoError(t, err)

	return v
}

// requireData compares the row-major contents of m with want.
func requireData[S linalg.Scalar, R, C linalg.Dim](t testing.TB, want []S, m *linalg.Matrix[S, R, C]) {
	t.Helper()
	if diff := cmp.Diff(want, m.Data(), approx); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
}
