// SPDX-License-Identifier: MIT

// Package sparse stores matrices in compressed sparse row (CSR) form and
// plugs them into the linalg expression graph.
//
//	s, err := sparse.LoadCSV[linalg.D3, linalg.D3]("a.csv")
//	d, err := linalg.Materialize(linalg.Add(s, linalg.New[float64, linalg.D3, linalg.D3]()))
//
// Indexing is 1-based, as in linalg.
package sparse

import "github.com/katalvlaran/lao/linalg"

// Dim re-exports linalg.Dim for the CSV loaders' type parameters.
type Dim = linalg.Dim
