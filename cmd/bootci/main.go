// SPDX-License-Identifier: MIT

// Command bootci bootstraps statistics over numeric data read from a file
// or stdin and prints estimates with confidence intervals.
package main

import (
	"os"

	"github.com/katalvlaran/bootci/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
