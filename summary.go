package bracketfix

import "fmt"

// Summary accumulates per-file outcomes across a run. It is a value: Fold
// returns a new Summary rather than mutating shared state, so callers can
// thread it through a loop without any global counters.
type Summary struct {
	Files           int
	Fixed           int
	Skipped         int
	WithViolations  int
	VerifiedMatches int
	Violations      int
	Warnings        int
}

// Fold incorporates one file's result and returns the updated summary.
func (s Summary) Fold(r *Result) Summary {
	s.Files++
	s.VerifiedMatches += len(r.Report.Verified)
	s.Violations += len(r.Report.Violations)
	s.Warnings += len(r.Warnings)
	if r.OK() && len(r.Report.Verified) > 0 {
		s.Fixed++
	}
	if !r.OK() {
		s.WithViolations++
	}
	return s
}

// FoldSkipped records a file that could not be processed at all.
func (s Summary) FoldSkipped() Summary {
	s.Files++
	s.Skipped++
	return s
}

// OK reports whether every processed file validated cleanly.
func (s Summary) OK() bool {
	return s.Violations == 0 && s.Skipped == 0
}

// String returns a human-readable run summary.
func (s Summary) String() string {
	return fmt.Sprintf("%d files (%d fixed, %d skipped), %d verified matches, %d violations, %d warnings",
		s.Files, s.Fixed, s.Skipped, s.VerifiedMatches, s.Violations, s.Warnings)
}
