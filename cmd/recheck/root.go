package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lucaskalb/recheck/prop"
)

var (
	flagIterations  int
	flagSeed        uint64
	flagMaxShrink   int
	flagShrinkStrat string
	flagLogLevel    string
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "recheck",
	Short: "Run built-in demo properties through the recheck engine",
	Long: `recheck is a demo harness for the recheck property-based testing
engine. It runs named properties from a built-in registry, reporting
the original and shrunk counterexamples the same way the test-harness
integration does.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		zerolog.SetGlobalLevel(level)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
// Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing recheck: %v\n", err)
		os.Exit(1)
	}
}

// bindConfigFlags registers the prop.Config knobs on fs.
func bindConfigFlags(fs *pflag.FlagSet) {
	fs.IntVar(&flagIterations, "iterations", 100, "number of test rounds before declaring success")
	fs.Uint64Var(&flagSeed, "seed", 0, "fixed PRNG entropy seed (0 draws fresh entropy)")
	fs.IntVar(&flagMaxShrink, "max-shrink", 10_000, "maximum number of accepted shrink candidates per failure")
	fs.StringVar(&flagShrinkStrat, "shrink-strategy", "bfs", "shrink strategy hint (bfs or dfs)")
}

func configFromFlags() prop.Config {
	return prop.Config{
		Iterations:  flagIterations,
		Seed:        flagSeed,
		MaxShrink:   flagMaxShrink,
		ShrinkStrat: flagShrinkStrat,
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "zerolog level (trace, debug, info, warn, error)")
	bindConfigFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newListCommand())
}
