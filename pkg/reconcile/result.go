package reconcile

import (
	"fmt"

	"github.com/bodtour/bracketfix/pkg/tournament"
)

// Result is the outcome of reconciling one tournament's matchups.
type Result struct {
	// Records holds both sides of every matchup, mutated in place to be
	// mutually consistent and sorted by final placement, then seed.
	Records []*tournament.TeamRecord

	// Warnings lists every place the policy had to decide on bad data:
	// default score substitutions and winner-attribution disagreements.
	// These are diagnostics, not failures.
	Warnings []string

	// Stats summarizes the run.
	Stats Statistics
}

// Statistics counts what the reconciler did.
type Statistics struct {
	MatchupsReconciled       int
	DefaultsSubstituted      int
	AttributionDisagreements int
}

// Entries returns the corrected raw entries in output order.
func (r *Result) Entries() []tournament.Entry {
	entries := make([]tournament.Entry, 0, len(r.Records))
	for _, rec := range r.Records {
		entries = append(entries, rec.Entry)
	}
	return entries
}

// HasWarnings reports whether any policy decisions were made on bad data.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a one-line human-readable summary.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d matchups reconciled, %d defaults substituted, %d attribution disagreements",
		r.Stats.MatchupsReconciled, r.Stats.DefaultsSubstituted, r.Stats.AttributionDisagreements)
}
