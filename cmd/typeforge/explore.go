package main

import (
	"fmt"
	"path/filepath"

	"github.com/outpostdev/typeforge/explore/discretize"
	"github.com/outpostdev/typeforge/explore/evaluate"
	"github.com/outpostdev/typeforge/explore/generate"
	"github.com/outpostdev/typeforge/explore/mutate"
	"github.com/outpostdev/typeforge/internal/evalhost"
	"github.com/outpostdev/typeforge/internal/prng"
	"github.com/outpostdev/typeforge/pkg/value"
	"github.com/spf13/cobra"
)

var (
	exploreModelPath string
	exploreSeed       uint64
	exploreVariants   int
	exploreOutDir     string
	exploreSynthesize bool
)

var exploreCmd = &cobra.Command{
	Use:   "explore <fqn>",
	Short: "Generate a minimal value for a FQN and enumerate mutations of it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fqn := args[0]
		if exploreModelPath == "" {
			return fmt.Errorf("typeforge: explore requires -m <model>")
		}

		reg, err := loadModel(exploreModelPath)
		if err != nil {
			return err
		}

		rnd := prng.New(exploreSeed)
		gen := generate.New(reg, rnd, generate.DefaultOptions())

		minimal, err := gen.Minimal(fqn)
		if err != nil {
			return fmt.Errorf("typeforge: generating minimal value for %s: %w", fqn, err)
		}
		printInfo("minimal %s:\n%s", fqn, discretize.Print(discretize.Discretize(minimal)))

		mutOpts := mutate.DefaultOptions()
		mutOpts.K = exploreVariants
		obs := &countingObserver{}
		mutOpts.Observer = obs
		mut := mutate.New(reg, rnd, mutOpts)

		variants, err := mut.Mutate(minimal)
		if err != nil {
			return fmt.Errorf("typeforge: mutating %s: %w", fqn, err)
		}
		printVerbose("enumerated %d candidate mutations, kept %d\n", obs.count, len(variants))

		host := evalhost.NewDefaultHost()
		for i, v := range variants {
			stmts := discretize.Discretize(v)
			printInfo("--- variant %d ---\n%s", i, discretize.Print(stmts))

			if exploreSynthesize {
				ev := evaluate.New(host)
				if _, err := ev.Run(stmts); err != nil {
					printVerbose("  synth failed: %v\n", err)
					continue
				}
				printVerbose("  synth ok\n")
			}

			if exploreOutDir != "" {
				path := filepath.Join(exploreOutDir, v.Hash()+".json")
				if err := writeValue(path, v); err != nil {
					return err
				}
				printVerbose("  wrote %s\n", path)
			}
		}
		return nil
	},
}

type countingObserver struct{ count int }

func (o *countingObserver) Propose(_ value.Value) { o.count++ }

func init() {
	exploreCmd.Flags().StringVarP(&exploreModelPath, "model", "m", "", "Path to a Distribution Model")
	exploreCmd.Flags().Uint64VarP(&exploreSeed, "seed", "S", 1, "PRNG seed")
	exploreCmd.Flags().IntVarP(&exploreVariants, "variants", "V", 1, "Number of mutation variants to keep")
	exploreCmd.Flags().StringVarP(&exploreOutDir, "output", "o", "", "Directory to persist surviving variants into, one <hash>.json per value")
	exploreCmd.Flags().BoolVarP(&exploreSynthesize, "synthesize", "s", false, "Discretize and evaluate each variant, dropping ones that fail to evaluate")
	rootCmd.AddCommand(exploreCmd)
}
