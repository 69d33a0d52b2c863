package prop

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lucaskalb/recheck/record"
	"github.com/lucaskalb/recheck/rng"
)

// log is the package's structured logger. Events carry a run_id so a
// failure report can be correlated with the log lines of the run that
// produced it.
var log = zerolog.New(os.Stderr).With().Timestamp().Str("component", "recheck").Logger()

// Report is the outcome of a Run.
type Report struct {
	// RunID uniquely identifies this invocation, for correlating log
	// lines with a specific report.
	RunID string

	// Success is true iff every iteration's predicate returned true.
	Success bool

	// Iterations is the number of Testing-mode rounds executed before
	// either exhausting cfg.Iterations or hitting a failure.
	Iterations int

	// Elapsed is the wall-clock time Run spent in Testing mode. It is
	// set only when Success is true.
	Elapsed time.Duration

	// FailedAt is the 1-based iteration index a failure was found at.
	// Zero when Success is true.
	FailedAt int

	// OriginalRecording renders the Recording as captured, before
	// shrinking.
	OriginalRecording []string

	// ShrunkRecording renders the Recording after the shrink fixpoint.
	ShrunkRecording []string

	// ShrinkSteps counts the total number of accepted shrink candidates
	// across every entry.
	ShrinkSteps int

	// UsageErr is set instead of a recording/shrink report when the
	// predicate violated the Generate contract.
	UsageErr *UsageError
}

// Summary renders Report as a one-line success summary, or a two-block
// failure message (shrunk recording first, then the original).
func (r Report) Summary() string {
	if r.UsageErr != nil {
		return r.UsageErr.Error()
	}
	if r.Success {
		rate := float64(r.Iterations) / r.Elapsed.Seconds()
		return fmt.Sprintf("OK, passed %d tests (%.0f iterations/sec)", r.Iterations, rate)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "FAIL, falsified after %d tests (%d shrink steps)\n", r.FailedAt, r.ShrinkSteps)
	b.WriteString("shrunk:\n")
	for _, line := range r.ShrunkRecording {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	b.WriteString("original:\n")
	for _, line := range r.OriginalRecording {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String()
}

// Run executes the driver algorithm: iterate the predicate in Testing
// mode, and on the first failure clone the failing iteration's PRNG
// state, replay it in Recording mode, detect non-determinism, run the
// shrink fixpoint, and return a Report describing the outcome.
func Run(cfg Config, predicate func(*Context) bool) Report {
	runID := uuid.New().String()
	sublog := log.With().Str("run_id", runID).Logger()

	prng := seedFor(cfg)
	sublog.Debug().Int("iterations", cfg.Iterations).Msg("starting run")

	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		iterSeed := prng.Clone()

		ctx := newTestingContext(prng)
		if predicate(ctx) {
			continue
		}

		sublog.Info().Int("iteration", i+1).Msg("predicate falsified, entering failure handling")
		return handleFailure(sublog, runID, cfg, predicate, iterSeed, i+1)
	}

	elapsed := time.Since(start)
	sublog.Info().Int("iterations", cfg.Iterations).Dur("elapsed", elapsed).Msg("run passed")
	return Report{RunID: runID, Success: true, Iterations: cfg.Iterations, Elapsed: elapsed}
}

func seedFor(cfg Config) *rng.State {
	if cfg.Seed != 0 {
		return rng.FromSeed(cfg.Seed)
	}
	return rng.New()
}

func handleFailure(sublog zerolog.Logger, runID string, cfg Config, predicate func(*Context) bool, iterSeed *rng.State, failedAt int) Report {
	// Record: re-run the exact failing draw sequence, capturing every
	// generated value into a Recording.
	recordingPRNG := iterSeed.Clone()
	rec := record.New()
	recCtx := newRecordingContext(recordingPRNG, rec)

	if predicate(recCtx) {
		usageErr := &UsageError{Kind: NonDeterministicPredicate}
		sublog.Error().Msg(usageErr.Error())
		return Report{RunID: runID, Success: false, Iterations: failedAt, FailedAt: failedAt, UsageErr: usageErr}
	}

	originalRendering := rec.Render()

	steps := shrinkFixpoint(rec, predicate, cfg.MaxShrink)

	return Report{
		RunID:             runID,
		Success:           false,
		Iterations:        failedAt,
		FailedAt:          failedAt,
		OriginalRecording: originalRendering,
		ShrunkRecording:   rec.Render(),
		ShrinkSteps:       steps,
	}
}

// shrinkFixpoint repeats over every entry in declaration order until a
// full pass makes no progress. Each entry's Shrink call is driven until
// it stops accepting candidates, since entry i shrinking can unlock
// further shrinks in entries before it.
func shrinkFixpoint(rec *record.Recording, predicate func(*Context) bool, maxShrink int) int {
	steps := 0
	isValid := func() bool {
		if steps >= maxShrink {
			return false
		}
		if predicate(newShrinkingContext(rec)) {
			return false
		}
		steps++
		return true
	}

	for {
		progress := false
		for i := 0; i < rec.Len(); i++ {
			e := rec.At(i)
			for steps < maxShrink {
				if !e.Shrink(isValid) {
					break
				}
				progress = true
			}
		}
		if !progress {
			break
		}
	}
	return steps
}
