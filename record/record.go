// Package record implements the heterogeneous, ordered log of named
// Shrinkable values produced while a property runs in Recording mode,
// and replayed entry-by-entry while it runs in Shrinking mode.
package record

import (
	"fmt"

	"github.com/lucaskalb/recheck/gen"
)

// Entry is a type-erased, named handle over one gen.Shrinkable[T]. The
// Recording holds a slice of Entry so it can carry many different T's
// in one ordered log.
type Entry interface {
	// Name is the identifier the generating call site used.
	Name() string

	// TypeName identifies the erased T, used to detect a call-site
	// mismatch when replaying a Recording during Shrinking mode.
	TypeName() string

	// Render formats the entry's current value for failure reports.
	Render() string

	// Value returns the entry's current value as any.
	Value() any

	// Shrink runs this entry's Reducer to a single invocation. isValid
	// is supplied by the driver and returns true iff the predicate
	// still fails with the candidate installed - i.e. the candidate is
	// an accepted, smaller counterexample. Shrink reports whether the
	// entry's value ultimately changed.
	Shrink(isValid func() bool) bool
}

// TypedEntry is the concrete Entry implementation for a single T.
type TypedEntry[T any] struct {
	name  string
	value T
	sh    gen.Shrinkable[T]
}

// NewEntry wraps a drawn Shrinkable under name.
func NewEntry[T any](name string, sh gen.Shrinkable[T]) Entry {
	return &TypedEntry[T]{name: name, value: sh.Value, sh: sh}
}

func (e *TypedEntry[T]) Name() string { return e.name }

func (e *TypedEntry[T]) TypeName() string {
	return fmt.Sprintf("%T", e.value)
}

func (e *TypedEntry[T]) Render() string {
	return fmt.Sprintf("%#v", e.value)
}

func (e *TypedEntry[T]) Value() any { return e.value }

func (e *TypedEntry[T]) Shrink(isValid func() bool) bool {
	if e.sh.Reduce == nil {
		return false
	}
	return e.sh.Reduce(&e.value, func(candidate T) bool {
		prev := e.value
		e.value = candidate
		if isValid() {
			return true
		}
		e.value = prev
		return false
	})
}

// Recording is the ordered, append-only (during Recording mode) log of
// every named draw a property call made.
type Recording struct {
	entries []Entry
}

// New returns an empty Recording.
func New() *Recording {
	return &Recording{}
}

// Append adds entry to the end of the log. Only valid while the
// Recording is being built (Recording mode); once a Shrinking replay
// begins the Recording's length and entry order are fixed.
func (rec *Recording) Append(e Entry) {
	rec.entries = append(rec.entries, e)
}

// Len returns the number of entries recorded.
func (rec *Recording) Len() int {
	return len(rec.entries)
}

// At returns the entry at index i.
func (rec *Recording) At(i int) Entry {
	return rec.entries[i]
}

// Entries returns the full ordered slice of entries.
func (rec *Recording) Entries() []Entry {
	return rec.entries
}

// Render renders every entry as a "name: type = value" line, in
// declaration order - used to build failure reports.
func (rec *Recording) Render() []string {
	lines := make([]string, 0, len(rec.entries))
	for _, e := range rec.entries {
		lines = append(lines, fmt.Sprintf("%s: %s = %s", e.Name(), e.TypeName(), e.Render()))
	}
	return lines
}
