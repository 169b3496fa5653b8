// SPDX-License-Identifier: MIT

// Command lao is a small driver for the lao packages: it walks through the
// expression API, factors and solves systems read from CSV files, and
// prints planetary ephemerides.
package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}
