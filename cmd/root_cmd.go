// SPDX-License-Identifier: MIT

// Package cmd implements the bootci command line.
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bootci/cmd/config"
	"github.com/katalvlaran/bootci/log"
	"github.com/katalvlaran/bootci/log/zerolog"
)

// Version is the bootci version
var (
	Version = "development"
	Env     string
)

func Prepare() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "bootci",
		Short:        "Nonparametric bootstrap estimates and confidence intervals",
		SilenceUsage: true,
		Version:      version(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			return nil
		},
	}

	viper.SetEnvPrefix("BOOTCI")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.PersistentFlags().StringP("config", "c", "", ".yaml config file to use with bootci if any")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level for the application. One of trace, debug, info, warn, error")

	rootFlagBinding(rootCmd)

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newMethodsCmd())
	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	cmd := Prepare()
	return cmd.Execute()
}

func rootFlagBinding(cmd *cobra.Command) {
	viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", cmd.PersistentFlags().Lookup("log-level"))
}

// newLogger builds the command's logger on w (stderr in production).
func newLogger(w io.Writer) log.Logger {
	return zerolog.New(zerolog.Options{
		Level: viper.GetString("log-level"),
		Out:   w,
	})
}

func version() string {
	if Env != "" {
		return Env + " (" + Version + ")"
	}
	return Version
}
