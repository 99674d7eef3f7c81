// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bootci/bootstrap"
)

var methodNotes = map[bootstrap.Type]string{
	bootstrap.Basic:       "reflection of the percentile limits about the estimate (default)",
	bootstrap.Percentile:  "quantiles of the replicate distribution",
	bootstrap.Normal:      "estimate minus bias, plus or minus z times the standard error",
	bootstrap.Studentized: "bootstrap-t; needs per-replicate variances, library only",
	bootstrap.BCA:         "bias-corrected and accelerated percentile (jackknife acceleration)",
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the confidence interval methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range bootstrap.Types() {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", t, methodNotes[t]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
