// Package main provides the gradereach CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

type globalOpts struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	var g globalOpts

	rootCmd := &cobra.Command{
		Use:   "gradereach",
		Short: "Work out what you still need to reach a grade",
		Long: `gradereach takes the weighted assignment scores you have so far and works
out the result you need on the remaining coursework to reach a target
percentage or letter grade.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Path to config file (default: find .gradereach/config.yaml)")

	rootCmd.AddCommand(
		newResolveCmd(&g),
		newShareCmd(&g),
		newTablesCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
