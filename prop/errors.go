package prop

import "fmt"

// UsageErrorKind distinguishes the two fatal usage-error kinds from an
// ordinary falsified predicate.
type UsageErrorKind int

const (
	// NonDeterministicPredicate is reported when Recording-mode replay
	// of a failing seed does not reproduce the failure.
	NonDeterministicPredicate UsageErrorKind = iota
	// ReplayMismatch is reported when a Generate call during Shrinking
	// mode doesn't match the next recording entry by name or type.
	ReplayMismatch
)

// UsageError signals that the user predicate violates the contract
// Generate depends on: being a deterministic function of the values it
// requests, requested in the same name/type order on every call.
type UsageError struct {
	Kind UsageErrorKind

	// Index is the recording index involved, valid for ReplayMismatch.
	Index int

	ExpectedName string
	ExpectedType string
	ActualName   string
	ActualType   string

	Message string
}

func (e *UsageError) Error() string {
	if e.Message != "" {
		return "recheck: " + e.Message
	}
	switch e.Kind {
	case NonDeterministicPredicate:
		return "recheck: predicate is non-deterministic: it passed on replay after failing during the original run"
	default:
		return fmt.Sprintf("recheck: recording replay mismatch at index %d", e.Index)
	}
}
