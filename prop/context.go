package prop

import (
	"fmt"

	"github.com/lucaskalb/recheck/gen"
	"github.com/lucaskalb/recheck/record"
	"github.com/lucaskalb/recheck/rng"
)

// Mode identifies which of the three execution modes a Context is
// running under.
type Mode int

const (
	// Testing draws values from the PRNG with no bookkeeping.
	Testing Mode = iota
	// Recording draws values and appends a new entry to a Recording.
	Recording
	// Shrinking replays a fixed Recording, one entry per call.
	Shrinking
)

// Context is the object handed to a user predicate. It routes every
// Generate call to the mode it was constructed in.
type Context struct {
	mode Mode

	prng *rng.State // Testing, Recording

	out *record.Recording // Recording: where new entries are appended

	rec    *record.Recording // Shrinking: the fixed recording being replayed
	cursor *int              // Shrinking: index of the next entry to consume
}

// Mode reports which mode this Context is running under.
func (c *Context) Mode() Mode { return c.mode }

// newTestingContext builds a Context that draws directly from prng.
func newTestingContext(prng *rng.State) *Context {
	return &Context{mode: Testing, prng: prng}
}

// newRecordingContext builds a Context that draws from prng and appends
// every entry to out.
func newRecordingContext(prng *rng.State, out *record.Recording) *Context {
	return &Context{mode: Recording, prng: prng, out: out}
}

// newShrinkingContext builds a Context that replays rec from index 0.
func newShrinkingContext(rec *record.Recording) *Context {
	cursor := 0
	return &Context{mode: Shrinking, rec: rec, cursor: &cursor}
}

// Generate is the only operation available inside a predicate. Go has
// no generic methods, so this is a free function taking *Context rather
// than Context.generate(...) as in the language-neutral contract.
func Generate[T any](c *Context, name string, g gen.Generator[T]) T {
	switch c.mode {
	case Testing:
		return g.Draw(c.prng)

	case Recording:
		sh := g.DrawShrinkable(c.prng)
		c.out.Append(record.NewEntry(name, sh))
		return sh.Value

	case Shrinking:
		if *c.cursor >= c.rec.Len() {
			panic(&UsageError{
				Kind:    ReplayMismatch,
				Index:   *c.cursor,
				Message: fmt.Sprintf("generate(%q) called past the end of the recording (len=%d)", name, c.rec.Len()),
			})
		}
		e := c.rec.At(*c.cursor)
		var zero T
		wantType := fmt.Sprintf("%T", zero)
		if e.Name() != name || e.TypeName() != wantType {
			panic(&UsageError{
				Kind:         ReplayMismatch,
				Index:        *c.cursor,
				ExpectedName: e.Name(),
				ExpectedType: e.TypeName(),
				ActualName:   name,
				ActualType:   wantType,
				Message: fmt.Sprintf(
					"recording replay mismatch at index %d: expected %s:%s, got %s:%s",
					*c.cursor, e.Name(), e.TypeName(), name, wantType,
				),
			})
		}
		v, ok := e.Value().(T)
		if !ok {
			panic(&UsageError{
				Kind:  ReplayMismatch,
				Index: *c.cursor,
				Message: fmt.Sprintf(
					"recording replay mismatch at index %d: stored value for %q is not of the expected type",
					*c.cursor, name,
				),
			})
		}
		*c.cursor++
		return v
	}

	panic("prop: Context in unknown mode")
}
