package main

import (
	"fmt"

	"github.com/outpostdev/typeforge/explore/discretize"
	"github.com/outpostdev/typeforge/explore/evaluate"
	"github.com/outpostdev/typeforge/internal/evalhost"
	"github.com/spf13/cobra"
)

var synthCmd = &cobra.Command{
	Use:   "synth <value.json..>",
	Short: "Discretize and evaluate one or more persisted values against the host",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		host := evalhost.NewDefaultHost()
		ev := evaluate.New(host)

		failures := 0
		for _, path := range args {
			v, err := readValue(path)
			if err != nil {
				return err
			}
			stmts := discretize.Discretize(v)
			printVerbose("%s:\n%s", path, discretize.Print(stmts))

			result, err := ev.Run(stmts)
			if err != nil {
				failures++
				printInfo("%s: FAIL: %v\n", path, err)
				continue
			}
			printInfo("%s: OK: %v\n", path, result)
		}
		if failures > 0 {
			return fmt.Errorf("typeforge: synth: %d of %d values failed to evaluate", failures, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(synthCmd)
}
