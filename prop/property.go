package prop

import "testing"

// Property runs predicate under the default Config, failing t if the
// predicate is ever falsified. Usage errors (non-deterministic
// predicate, recording replay mismatch) also fail t, with their own
// message.
func Property(t *testing.T, predicate func(*Context) bool) {
	t.Helper()
	PropertyWith(t, Default(), predicate)
}

// PropertyWith runs predicate under cfg, failing t with the rendered
// report on the first falsified case.
func PropertyWith(t *testing.T, cfg Config, predicate func(*Context) bool) {
	t.Helper()

	report := runCaught(cfg, predicate)

	if report.UsageErr != nil {
		t.Fatalf("[recheck] %s", report.UsageErr.Error())
		return
	}
	if !report.Success {
		t.Fatalf("[recheck] property failed; run_id=%s\n%s", report.RunID, report.Summary())
	}
}

// runCaught calls Run and recovers a *UsageError panic raised from deep
// inside Generate during Shrinking-mode replay, folding it into the
// Report the same way a detected non-deterministic predicate is.
func runCaught(cfg Config, predicate func(*Context) bool) (report Report) {
	defer func() {
		if r := recover(); r != nil {
			if usageErr, ok := r.(*UsageError); ok {
				report.UsageErr = usageErr
				report.Success = false
				return
			}
			panic(r)
		}
	}()
	report = Run(cfg, predicate)
	return report
}
