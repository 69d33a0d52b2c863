package main

import (
	"github.com/lucaskalb/recheck/gen"
	"github.com/lucaskalb/recheck/prop"
)

// demo pairs a registry name with the predicate it runs.
type demo struct {
	Name        string
	Description string
	Predicate   func(*prop.Context) bool
}

// demos is the built-in registry, in listing order. The first entry
// passes; the others are falsifiable so the shrink report has work to
// show.
var demos = []demo{
	{
		Name:        "commutativity",
		Description: "x + y == y + x over [0, 10000); passes every iteration",
		Predicate: func(ctx *prop.Context) bool {
			x := prop.Generate(ctx, "x", gen.UniformInt64(0, 10_000))
			y := prop.Generate(ctx, "y", gen.UniformInt64(0, 10_000))
			return x+y == y+x
		},
	},
	{
		Name:        "reverse",
		Description: "a derived vector equals its reverse; fails and shrinks elementwise",
		Predicate: func(ctx *prop.Context) bool {
			vec := prop.Derive(func(inner *prop.Context) []int {
				n := prop.Generate(inner, "len", gen.UniformInt(0, 10))
				out := make([]int, n)
				for i := range out {
					out[i] = prop.Generate(inner, "elem", gen.UniformInt(0, 100))
				}
				return out
			})
			xs := prop.Generate(ctx, "xs", vec)
			for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
				if xs[i] != xs[j] {
					return false
				}
			}
			return true
		},
	},
	{
		Name:        "disjunct",
		Description: "x + y == x + x || x < 10; fails, shrinking to x = 10, y = 0",
		Predicate: func(ctx *prop.Context) bool {
			x := prop.Generate(ctx, "x", gen.UniformInt64(0, 100))
			y := prop.Generate(ctx, "y", gen.UniformInt64(0, 100))
			return x+y == x+x || x < 10
		},
	},
}

func findDemo(name string) (demo, bool) {
	for _, d := range demos {
		if d.Name == name {
			return d, true
		}
	}
	return demo{}, false
}
