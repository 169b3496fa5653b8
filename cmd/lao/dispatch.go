// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/lao/linalg"
	"github.com/katalvlaran/lao/sparse"
)

// maxDim is the largest size with a built-in dimension type.
const maxDim = 9

var errSize = errors.New("unsupported matrix size")

// bySize holds one instantiation of a generic kernel per dimension D1..D9.
// Index 0 is D1.
type bySize[F any] [maxDim]F

// pick returns the kernel for the runtime size n.
func (t *bySize[F]) pick(n int) (F, error) {
	if n < 1 || n > maxDim {
		var zero F
		return zero, fmt.Errorf("n=%d not in [1,%d]: %w", n, maxDim, errSize)
	}

	return t[n-1], nil
}

// readSquare loads an n×n CSV file and reports n.
func readSquare(path string) ([][]float64, int, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, 0, err
	}
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, 0, fmt.Errorf("%s: row %d has %d values, want %d: %w", path, i+1, len(row), n, linalg.ErrShapeMismatch)
		}
	}

	return rows, n, nil
}

// readVector loads a CSV holding either one column or one row of values.
func readVector(path string) ([]float64, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 1 {
		return rows[0], nil
	}
	out := make([]float64, 0, len(rows))
	for i, row := range rows {
		if len(row) != 1 {
			return nil, fmt.Errorf("%s: row %d has %d values, want 1: %w", path, i+1, len(row), linalg.ErrShapeMismatch)
		}
		out = append(out, row[0])
	}

	return out, nil
}

func readRows(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := sparse.ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return rows, nil
}
