// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lao/astro"
)

const dateLayout = "2006-01-02"

func newEphCmd() *cobra.Command {
	var (
		body, date, format string
		mjd2000            float64
		describe, list     bool
	)
	cmd := &cobra.Command{
		Use:   "eph",
		Short: "Low-precision JPL ephemeris of a planet or the Earth-Moon barycentre",
		Example: `  lao eph --body Mars --date 2024-01-15
  lao eph --body Jupiter --mjd2000 8780.5 --format yaml
  lao eph --body 'EM bary' --describe
  lao eph --list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if list {
				fmt.Fprintln(w, strings.Join(astro.JPLBodies(), "\n"))
				return nil
			}
			f, err := astro.ParseFormat(format)
			if err != nil {
				return err
			}
			b, err := astro.NewJPLLowPrecision(body)
			if err != nil {
				return err
			}
			if describe {
				return astro.Encode(w, f, b.Describe())
			}

			at := astro.EpochFromMJD2000(mjd2000)
			if !cmd.Flags().Changed("mjd2000") {
				t, perr := time.Parse(dateLayout, date)
				if perr != nil {
					return fmt.Errorf("--date %q: want YYYY-MM-DD: %w", date, astro.ErrInvalidArgument)
				}
				if at, err = astro.EpochFromGregorian(t.Day(), int(t.Month()), t.Year()); err != nil {
					return err
				}
			}
			st, err := astro.NewState(b, at)
			if err != nil {
				return err
			}

			return astro.Encode(w, f, st)
		},
	}
	cmd.Flags().StringVar(&body, "body", "EM bary", "body name, see --list")
	cmd.Flags().StringVar(&date, "date", "2000-01-01", "calendar date (UTC midnight), YYYY-MM-DD")
	cmd.Flags().Float64Var(&mjd2000, "mjd2000", 0, "epoch in days since 2000-01-01 00:00; overrides --date")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&describe, "describe", false, "print the body's parameters instead of its state")
	cmd.Flags().BoolVar(&list, "list", false, "list known bodies")

	return cmd
}
