// SPDX-License-Identifier: MIT
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "csstree",
		Short:        "Build CSS primitive trees",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "log debug messages to stderr")
	rootCmd.PersistentFlags().Bool("transform-function-whitespace", false, "read `name (` as a function")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())

	return rootCmd
}
