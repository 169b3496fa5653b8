// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lao/linalg"
)

type jacobiInput struct {
	rows    [][]float64
	rhs     []float64
	maxIter int
	tol     float64
}

type jacobiKernel func(w io.Writer, in jacobiInput) error

var jacobiKernels = bySize[jacobiKernel]{
	runJacobi[linalg.D1], runJacobi[linalg.D2], runJacobi[linalg.D3],
	runJacobi[linalg.D4], runJacobi[linalg.D5], runJacobi[linalg.D6],
	runJacobi[linalg.D7], runJacobi[linalg.D8], runJacobi[linalg.D9],
}

func newJacobiCmd() *cobra.Command {
	in := jacobiInput{}
	var aPath, bPath string
	cmd := &cobra.Command{
		Use:     "jacobi",
		Short:   "Solve A·x = b with Jacobi iteration",
		Example: `  lao jacobi --a a.csv --b b.csv --max-iter 200 --tol 1e-12`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if aPath == "" || bPath == "" {
				return errors.New("--a and --b are required")
			}
			rows, n, err := readSquare(aPath)
			if err != nil {
				return err
			}
			rhs, err := readVector(bPath)
			if err != nil {
				return err
			}
			if len(rhs) != n {
				return fmt.Errorf("%s: %d values for n=%d: %w", bPath, len(rhs), n, linalg.ErrShapeMismatch)
			}
			in.rows, in.rhs = rows, rhs
			kernel, err := jacobiKernels.pick(n)
			if err != nil {
				return err
			}

			return kernel(cmd.OutOrStdout(), in)
		},
	}
	cmd.Flags().StringVar(&aPath, "a", "", "CSV file holding the n×n matrix A")
	cmd.Flags().StringVar(&bPath, "b", "", "CSV file holding b as one column or one row")
	cmd.Flags().IntVar(&in.maxIter, "max-iter", 100, "maximum number of sweeps")
	cmd.Flags().Float64Var(&in.tol, "tol", 1e-10, "stop once the L1 change between sweeps drops below this")

	return cmd
}

func runJacobi[N linalg.Dim](w io.Writer, in jacobiInput) error {
	a, err := linalg.FromRows[float64, N, N](in.rows)
	if err != nil {
		return err
	}
	b, err := linalg.NewColVector[float64, N](in.rhs...)
	if err != nil {
		return err
	}
	x := linalg.New[float64, N, linalg.D1]()
	res, err := linalg.SolveJacobi(x, a, b, in.maxIter, in.tol)
	if err != nil {
		return err
	}

	header(w, "x")
	fmt.Fprint(w, x)
	note(w, "converged=%t iterations=%d residual=%g", res.Converged, res.Iterations, res.Residual)

	return nil
}
