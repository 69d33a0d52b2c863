package prop

import "flag"

// Config holds the configuration for property-based testing.
type Config struct {
	// Iterations is the number of test rounds run in Testing mode
	// before declaring success.
	Iterations int

	// Seed fixes the PRNG's entropy seed. Zero means "draw fresh
	// entropy", matching the core contract's "seed from entropy"
	// requirement; a non-zero value is an extension for reproducing a
	// specific run.
	Seed uint64

	// MaxShrink bounds the number of accepted shrink candidates across
	// the whole fixpoint, as a safety net against a misbehaving
	// reducer that is not strictly monotone.
	MaxShrink int

	// ShrinkStrat is a strategy hint. The shrink fixpoint always walks
	// entries in declaration order and doesn't branch on it today; it's
	// threaded through so a future reducer family can read it.
	ShrinkStrat string
}

var (
	flagIterations  = flag.Int("recheck.iterations", 100, "number of test rounds to run before declaring success")
	flagSeed        = flag.Uint64("recheck.seed", 0, "fixed PRNG entropy seed (0 draws fresh entropy)")
	flagMaxShrink   = flag.Int("recheck.maxshrink", 10_000, "maximum number of accepted shrink candidates per failure")
	flagShrinkStrat = flag.String("recheck.shrink.strategy", "bfs", "shrink strategy hint (bfs or dfs)")
)

// Default returns a Config built from the recheck.* command-line flags,
// falling back to their defaults when unset.
func Default() Config {
	return Config{
		Iterations:  *flagIterations,
		Seed:        *flagSeed,
		MaxShrink:   *flagMaxShrink,
		ShrinkStrat: *flagShrinkStrat,
	}
}
