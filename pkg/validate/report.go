package validate

import (
	"fmt"
	"sort"
)

// Report holds the findings for one tournament. Produced fresh per run and
// never mutated afterward.
type Report struct {
	// TotalTeams is the number of entries checked.
	TotalTeams int

	// UniqueMatchups is the set of distinct bracket slots observed.
	UniqueMatchups map[int]struct{}

	// Verified lists every matchup side whose scores mirror exactly.
	Verified []string

	// Violations lists every failed check, each naming the mismatch kind and
	// both teams involved.
	Violations []string
}

// NewReport creates an empty report for the given team count.
func NewReport(totalTeams int) *Report {
	return &Report{
		TotalTeams:     totalTeams,
		UniqueMatchups: make(map[int]struct{}),
		Verified:       []string{},
		Violations:     []string{},
	}
}

// OK reports whether no violations were found.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

// ExpectedMatchups returns the matchup cardinality implied by the team count.
func (r *Report) ExpectedMatchups() int {
	return r.TotalTeams / 2
}

// MatchupIDs returns the observed matchup identifiers in ascending order.
func (r *Report) MatchupIDs() []int {
	ids := make([]int, 0, len(r.UniqueMatchups))
	for id := range r.UniqueMatchups {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Summary returns a one-line human-readable summary.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d teams, %d matchups observed, %d verified, %d violations",
		r.TotalTeams, len(r.UniqueMatchups), len(r.Verified), len(r.Violations))
}
