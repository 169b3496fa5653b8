// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/janpfeifer/must"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lao/linalg"
)

func newDemoCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through vectors, products, masks, fills and LU on small literals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), seed)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for the random fill section")

	return cmd
}

func runDemo(w io.Writer, seed int64) error {
	a, err := linalg.NewRowVector[float64, linalg.D2](5, 6)
	if err != nil {
		return err
	}
	b, _ := linalg.NewRowVector[float64, linalg.D2](2, 3)
	c, _ := linalg.NewRowVector[float64, linalg.D2](3, 1)

	header(w, "D = A + B + C - B")
	d, err := linalg.Materialize(linalg.Sub(linalg.Add(linalg.Add(a, b), c), b))
	if err != nil {
		return err
	}
	fmt.Fprint(w, d)

	header(w, "E = A - B")
	e, err := linalg.Materialize(linalg.Sub(a, b))
	if err != nil {
		return err
	}
	fmt.Fprint(w, e)

	header(w, "H = F · G")
	f, err := linalg.FromRows[float64, linalg.D2, linalg.D3]([][]float64{{1, 2, 1}, {2, 2, 1}})
	if err != nil {
		return err
	}
	g, err := linalg.FromRows[float64, linalg.D3, linalg.D2]([][]float64{{5, 6}, {1, 5}, {2, 1}})
	if err != nil {
		return err
	}
	h, err := linalg.Materialize(linalg.Mul(f, g))
	if err != nil {
		return err
	}
	fmt.Fprint(w, h)

	header(w, "I = A != B")
	mask, err := linalg.Materialize(linalg.Ne(a, b))
	if err != nil {
		return err
	}
	fmt.Fprint(w, mask)

	header(w, "J = rand 6×6, then a counter fill")
	j, err := linalg.NewFilled[float64, linalg.D6, linalg.D6](linalg.FillRand, linalg.WithSeed(seed))
	if err != nil {
		return err
	}
	note(w, "rand J(1,1) = %.6f", must.M1(j.At(1, 1)))
	counter := 0.0
	j.FillFunc(func() float64 {
		counter++
		return counter
	})
	fmt.Fprint(w, j)
	note(w, "J(1,2) = %g", must.M1(j.At(1, 2)))

	header(w, "K = 5 · clone(A)")
	k := a.Clone()
	if err = k.Assign(linalg.Scale(5.0, k)); err != nil {
		return err
	}
	fmt.Fprint(w, k)
	note(w, "A unchanged: %v", linalg.Equal(a, must.M1(linalg.NewRowVector[float64, linalg.D2](5, 6))))

	header(w, "LU of [[1 1 2] [2 1 3] [3 1 1]]")
	lu, err := linalg.FromRows[float64, linalg.D3, linalg.D3]([][]float64{{1, 1, 2}, {2, 1, 3}, {3, 1, 1}})
	if err != nil {
		return err
	}
	l, u := linalg.New[float64, linalg.D3, linalg.D3](), linalg.New[float64, linalg.D3, linalg.D3]()
	rep, err := linalg.LUDoolittle(lu, l, u)
	if err != nil {
		return err
	}
	fmt.Fprint(w, l)
	fmt.Fprintln(w)
	fmt.Fprint(w, u)
	note(w, "singular: %t", rep.Singular)

	return nil
}
