package prop

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucaskalb/recheck/gen"
)

func testConfig(iterations int) Config {
	return Config{Iterations: iterations, Seed: 1, MaxShrink: 10_000, ShrinkStrat: "bfs"}
}

func TestRunSucceedsForAlwaysTruePredicate(t *testing.T) {
	cfg := testConfig(50)
	report := Run(cfg, func(ctx *Context) bool {
		x := Generate(ctx, "x", gen.UniformInt(0, 100))
		return x >= 0
	})

	assert.True(t, report.Success)
	assert.Equal(t, 50, report.Iterations)
	assert.Nil(t, report.UsageErr)
}

func TestRunShrinksToMinimalCounterexample(t *testing.T) {
	cfg := testConfig(200)
	report := Run(cfg, func(ctx *Context) bool {
		x := Generate(ctx, "x", gen.UniformInt(0, 1_000))
		return x < 7
	})

	require.False(t, report.Success)
	require.Nil(t, report.UsageErr)
	require.Len(t, report.ShrunkRecording, 1)
	assert.Equal(t, "x: int = 7", report.ShrunkRecording[0])
}

func TestRunDetectsNonDeterministicPredicate(t *testing.T) {
	cfg := testConfig(50)
	calls := 0
	report := Run(cfg, func(ctx *Context) bool {
		_ = Generate(ctx, "x", gen.UniformInt(0, 10))
		calls++
		// fails only on the very first call (Testing mode) and passes on
		// every later call, including the Recording-mode replay.
		return calls > 1
	})

	require.False(t, report.Success)
	require.NotNil(t, report.UsageErr)
	assert.Equal(t, NonDeterministicPredicate, report.UsageErr.Kind)
}

func TestRunPlaceholderEntrySurvivesShrinkingUnchanged(t *testing.T) {
	cfg := testConfig(10)
	report := Run(cfg, func(ctx *Context) bool {
		_ = Generate(ctx, "b", gen.Placeholder[bool]())
		x := Generate(ctx, "x", gen.UniformInt(0, 100))
		return x < 0
	})

	require.False(t, report.Success)
	require.Nil(t, report.UsageErr)
	require.Len(t, report.ShrunkRecording, 2)
	assert.Equal(t, "b: bool = false", report.ShrunkRecording[0])
	assert.Equal(t, report.OriginalRecording[0], report.ShrunkRecording[0])
}

func TestRunShrinksTwoEntryRecordingInDeclarationOrder(t *testing.T) {
	cfg := testConfig(500)
	report := Run(cfg, func(ctx *Context) bool {
		x := Generate(ctx, "x", gen.UniformInt(0, 100))
		y := Generate(ctx, "y", gen.UniformInt(0, 100))
		return x+y == x+x || x < 10
	})

	require.False(t, report.Success)
	require.Nil(t, report.UsageErr)
	require.Len(t, report.ShrunkRecording, 2)
	assert.True(t, strings.HasPrefix(report.ShrunkRecording[0], "x: int = "))
	assert.True(t, strings.HasPrefix(report.ShrunkRecording[1], "y: int = "))

	// entry 0 ("x") is declared before entry 1 ("y"), so shrinking keeps
	// rendering them in declaration order regardless of which one moved.
	require.Len(t, report.OriginalRecording, 2)
	assert.True(t, strings.HasPrefix(report.OriginalRecording[0], "x: int = "))
}
