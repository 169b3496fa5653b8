// SPDX-License-Identifier: MIT

package main

import (
	goflag "flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// newRootCmd assembles the command tree. klog's flags (-v, -logtostderr, ...)
// are mounted as persistent flags so every subcommand accepts them.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lao",
		Short: "Shape-checked linear algebra and low-precision ephemerides",
		Long: `lao exercises the linalg, sparse and astro packages.

Matrices read from CSV files must be n×n with 1 ≤ n ≤ 9.`,
		SilenceUsage: true,
	}

	fs := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(fs)
	root.PersistentFlags().AddGoFlagSet(fs)

	root.AddCommand(
		newDemoCmd(),
		newLUCmd(),
		newJacobiCmd(),
		newEphCmd(),
	)

	return root
}
