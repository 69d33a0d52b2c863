//go:build demo
// +build demo

// Package framework contains tests that intentionally drive the engine's
// failure paths end to end: recording, shrinking, and report rendering.
// Run them with -tags demo to see the failure output.
package framework

import (
	"testing"

	"github.com/lucaskalb/recheck/gen"
	"github.com/lucaskalb/recheck/prop"
)

// TestProperty_FailureCodePath drives the failure path: a predicate that
// is false for every draw falsifies on iteration 1, gets recorded, and
// shrinks to the domain minimum.
func TestProperty_FailureCodePath(t *testing.T) {
	cfg := prop.Config{Iterations: 1, Seed: 12345, MaxShrink: 100}
	prop.PropertyWith(t, cfg, func(ctx *prop.Context) bool {
		_ = prop.Generate(ctx, "x", gen.UniformInt(0, 100))
		return false
	})
}

// TestProperty_FailureWithShrinking fails for any x >= 5 so the shrink
// fixpoint has real work: the shrunk report must show x = 5.
func TestProperty_FailureWithShrinking(t *testing.T) {
	cfg := prop.Config{Iterations: 200, Seed: 12345, MaxShrink: 1_000}
	prop.PropertyWith(t, cfg, func(ctx *prop.Context) bool {
		x := prop.Generate(ctx, "x", gen.UniformInt(0, 1_000))
		return x < 5
	})
}

// TestProperty_FailureWithMaxShrinkCap caps MaxShrink at two accepted
// shrink candidates, the safety net against runaway reducers. A draw of
// 100000 or more reaches the minimum x = 5 in a single logarithmic step,
// within the cap; a smaller draw keeps only its first two accepted
// candidates. With this seed the first draw is in the first range.
func TestProperty_FailureWithMaxShrinkCap(t *testing.T) {
	cfg := prop.Config{Iterations: 200, Seed: 12345, MaxShrink: 2}
	prop.PropertyWith(t, cfg, func(ctx *prop.Context) bool {
		x := prop.Generate(ctx, "x", gen.UniformInt(0, 1_000_000))
		return x < 5
	})
}
