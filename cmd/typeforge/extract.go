package main

import (
	"fmt"

	"github.com/outpostdev/typeforge/cmd/typeforge/logger"
	"github.com/outpostdev/typeforge/model/extract"
	"github.com/outpostdev/typeforge/model/registry"
	"github.com/spf13/cobra"
)

var extractOutput string

var extractCmd = &cobra.Command{
	Use:   "extract <registry-dump..>",
	Short: "Extract a Distribution Model from one or more type-registry dumps",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if extractOutput == "" {
			return fmt.Errorf("typeforge: extract requires -o <file>")
		}

		in, err := loadExtractRegistry(args)
		if err != nil {
			return err
		}
		printVerbose("loaded %d classes, %d structs, %d enums\n", len(in.Classes), len(in.Structs), len(in.Enums))

		model, diags, err := extract.Run(in, extract.Options{})
		if err != nil {
			return fmt.Errorf("typeforge: extract: %w", err)
		}
		for _, d := range diags {
			logger.L.Warn("extract diagnostic", "severity", d.Severity, "fqn", d.FQN, "member", d.Member, "message", d.Message)
			if verboseCount >= 1 {
				printVerbose("  %s.%s: %s\n", d.FQN, d.Member, d.Message)
			}
		}

		if err := saveModel(extractOutput, registry.Wrap(model)); err != nil {
			return err
		}
		printInfo("wrote model to %s (%d fqn sources, %d distributions)\n",
			extractOutput, len(model.FqnSources), len(model.Distributions))
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Path to write the extracted Distribution Model")
	rootCmd.AddCommand(extractCmd)
}
