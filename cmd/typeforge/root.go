package main

import (
	"fmt"
	"os"

	"github.com/outpostdev/typeforge/cmd/typeforge/logger"
	"github.com/spf13/cobra"
)

var (
	verboseCount int
	quiet        bool
	jsonOut      bool
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "typeforge",
	Short: "Generate, mutate, and evaluate minimal values from a type registry",
	Long: `typeforge extracts a content-addressed Distribution Model from a
type registry, generates minimal values for a given type, enumerates
single-point mutations of one, and re-evaluates persisted values against
a host library.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(logger.Options{Verbosity: verboseCount, JSON: jsonOut, Quiet: quiet})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verboseCount, "verbose", "v", "Increase verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format where applicable")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printInfo prints an info message unless -q was given.
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a message only at -v 1 and above.
func printVerbose(format string, args ...any) {
	if verboseCount >= 1 && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
