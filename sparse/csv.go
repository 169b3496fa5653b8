// SPDX-License-Identifier: MIT

// Package sparse - CSV loading.
//
// Format: one matrix row per record, comma-separated numbers, no header.
// Cells may carry surrounding blanks. Zero cells are not stored.

package sparse

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"k8s.io/klog/v2"
)

// ParseCSV reads every record of r as a row of float64 values. Rows may
// have different lengths; shape checking is left to the caller.
// Errors: ErrParse (wrapped with 1-based line and column) on a malformed cell.
func ParseCSV(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var out [][]float64
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, sparseErrorf(opParseCSV, fmt.Errorf("%v: %w", err, ErrParse))
		}
		line, _ := cr.FieldPos(0)
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if perr != nil {
				return nil, sparseErrorf(opParseCSV, fmt.Errorf("line %d, column %d: %q: %w", line, j+1, cell, ErrParse))
			}
			row[j] = v
		}
		out = append(out, row)
	}

	return out, nil
}

// ReadCSV parses r into an R×C sparse matrix.
// Errors: ErrParse, ErrShapeMismatch (record count != R or field count != C).
func ReadCSV[R, C Dim](r io.Reader) (*CSR[float64, R, C], error) {
	rows, err := ParseCSV(r)
	if err != nil {
		return nil, sparseErrorf(opReadCSV, err)
	}
	m := New[float64, R, C]()
	nr, nc := m.Rows(), m.Cols()
	if len(rows) != nr {
		return nil, sparseErrorf(opReadCSV, fmt.Errorf("got %d rows, want %d: %w", len(rows), nr, ErrShapeMismatch))
	}
	for i, row := range rows {
		if len(row) != nc {
			return nil, sparseErrorf(opReadCSV, fmt.Errorf("row %d has %d values, want %d: %w", i+1, len(row), nc, ErrShapeMismatch))
		}
		for j, v := range row {
			if v != 0 {
				m.values = append(m.values, v)
				m.colIdx = append(m.colIdx, j)
			}
		}
		m.rowPtr[i+1] = len(m.values)
	}

	return m, nil
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV[R, C Dim](path string) (*CSR[float64, R, C], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sparseErrorf(opLoadCSV, err)
	}
	defer f.Close()

	m, err := ReadCSV[R, C](f)
	if err != nil {
		return nil, sparseErrorf(opLoadCSV, fmt.Errorf("%s: %w", path, err))
	}
	klog.V(1).Infof("sparse: loaded %s: %dx%d, %d non-zeros", path, m.Rows(), m.Cols(), m.NNZ())

	return m, nil
}
