// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lao/linalg"
)

type luInput struct {
	rows [][]float64
	rhs  []float64 // optional
}

type luKernel func(w io.Writer, in luInput) error

var luKernels = bySize[luKernel]{
	runLU[linalg.D1], runLU[linalg.D2], runLU[linalg.D3],
	runLU[linalg.D4], runLU[linalg.D5], runLU[linalg.D6],
	runLU[linalg.D7], runLU[linalg.D8], runLU[linalg.D9],
}

func newLUCmd() *cobra.Command {
	var file, rhs string
	cmd := &cobra.Command{
		Use:   "lu",
		Short: "Doolittle LU factorization of a square CSV matrix",
		Example: `  lao lu --file a.csv
  lao lu --file a.csv --rhs b.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				return errors.New("--file is required")
			}
			rows, n, err := readSquare(file)
			if err != nil {
				return err
			}
			in := luInput{rows: rows}
			if rhs != "" {
				if in.rhs, err = readVector(rhs); err != nil {
					return err
				}
				if len(in.rhs) != n {
					return fmt.Errorf("%s: %d values for n=%d: %w", rhs, len(in.rhs), n, linalg.ErrShapeMismatch)
				}
			}
			kernel, err := luKernels.pick(n)
			if err != nil {
				return err
			}

			return kernel(cmd.OutOrStdout(), in)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file holding the n×n matrix A")
	cmd.Flags().StringVar(&rhs, "rhs", "", "optional CSV file holding b; solves A·x = b from the factors")

	return cmd
}

func runLU[N linalg.Dim](w io.Writer, in luInput) error {
	a, err := linalg.FromRows[float64, N, N](in.rows)
	if err != nil {
		return err
	}
	l, u := linalg.New[float64, N, N](), linalg.New[float64, N, N]()
	rep, err := linalg.LUDoolittle(a, l, u)
	if err != nil {
		return err
	}

	header(w, "L")
	fmt.Fprint(w, l)
	header(w, "U")
	fmt.Fprint(w, u)
	if rep.Singular {
		note(w, "singular: zero pivot at %d", rep.Pivot)
	} else {
		note(w, "singular: false")
	}
	if in.rhs == nil {
		return nil
	}

	b, err := linalg.NewColVector[float64, N](in.rhs...)
	if err != nil {
		return err
	}
	x, err := linalg.SolveLU(l, u, b)
	if err != nil {
		return err
	}
	header(w, "x")
	fmt.Fprint(w, x)

	return nil
}
