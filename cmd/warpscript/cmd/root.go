// Package cmd implements the warpscript CLI.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "warpscript",
	Short:        "warpscript",
	SilenceUsage: true,
	Long:         `CLI for the WarpScript-style postfix stack engine: run scripts and inspect the final stack.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(runCmd)
}
