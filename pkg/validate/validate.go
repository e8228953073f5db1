// Package validate re-reads reconciled tournament entries independently of
// the builder and reconciler and proves that every matchup satisfies the
// mirror invariant. It never mutates data; it is the verification oracle for
// the whole pipeline.
package validate

import (
	"fmt"

	"github.com/bodtour/bracketfix/pkg/tournament"
)

// Validator checks reconciled entries for one bracket round.
type Validator struct {
	round tournament.Round
}

// Option configures a Validator.
type Option func(*Validator)

// WithRound sets the bracket round whose fields are checked.
func WithRound(round tournament.Round) Option {
	return func(v *Validator) { v.round = round }
}

// New creates a Validator for the round of 16 by default.
func New(opts ...Option) *Validator {
	v := &Validator{round: tournament.RoundOf16}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Check verifies every entry with a resolvable opponent against that
// opponent's record. Three conditions are checked independently per pair —
// matchup slot equality, back-reference, and score mirroring — so a pair can
// fail zero to three checks. Every matchup is deliberately examined twice,
// once from each side: a one-sided silent failure is itself a bug signal, so
// the redundancy is never deduplicated away.
func (v *Validator) Check(entries []tournament.Entry) *Report {
	report := NewReport(len(entries))

	lookup := make(map[string]tournament.Entry, len(entries))
	for _, e := range entries {
		if name := e.TeamName(); name != "" {
			lookup[name] = e
		}
	}

	for _, e := range entries {
		name := e.TeamName()
		opponentName := e.String(tournament.KeyTeamsBracket)
		if name == "" || opponentName == "" {
			continue
		}

		if matchup, ok := e.Int(v.round.MatchupKey()); ok {
			report.UniqueMatchups[matchup] = struct{}{}
		}

		opponent, ok := lookup[opponentName]
		if !ok {
			report.Violations = append(report.Violations, fmt.Sprintf(
				"unknown opponent: %s claims to have played %s, who has no record",
				name, opponentName))
			continue
		}

		v.checkMatchupID(report, name, opponentName, e, opponent)
		v.checkBackReference(report, name, opponentName, opponent)
		v.checkScoreMirror(report, name, opponentName, e, opponent)
	}

	return report
}

// checkMatchupID asserts both sides claim the same bracket slot.
func (v *Validator) checkMatchupID(report *Report, name, opponentName string, e, opponent tournament.Entry) {
	matchup, _ := e.Int(v.round.MatchupKey())
	opponentMatchup, _ := opponent.Int(v.round.MatchupKey())
	if matchup != opponentMatchup {
		report.Violations = append(report.Violations, fmt.Sprintf(
			"matchup ID mismatch: %s=%d vs %s=%d",
			name, matchup, opponentName, opponentMatchup))
	}
}

// checkBackReference asserts the opponent's opponent points home.
func (v *Validator) checkBackReference(report *Report, name, opponentName string, opponent tournament.Entry) {
	back := opponent.String(tournament.KeyTeamsBracket)
	if back != name {
		report.Violations = append(report.Violations, fmt.Sprintf(
			"opponent mismatch: %s vs %s, but %s vs %s",
			name, opponentName, opponentName, back))
	}
}

// checkScoreMirror asserts won/lost are exact reflections. The check only
// runs when all four score fields are present, matching the source data's
// treatment of incomplete legacy rows.
func (v *Validator) checkScoreMirror(report *Report, name, opponentName string, e, opponent tournament.Entry) {
	teamWon, okW := e.Int(v.round.WonKey())
	teamLost, okL := e.Int(v.round.LostKey())
	oppWon, okOW := opponent.Int(v.round.WonKey())
	oppLost, okOL := opponent.Int(v.round.LostKey())
	if !okW || !okL || !okOW || !okOL {
		return
	}

	if teamWon != oppLost || teamLost != oppWon {
		report.Violations = append(report.Violations, fmt.Sprintf(
			"score mismatch: %s %d-%d vs %s %d-%d",
			name, teamWon, teamLost, opponentName, oppWon, oppLost))
		return
	}

	report.Verified = append(report.Verified, fmt.Sprintf(
		"VERIFIED: %s %d-%d vs %s %d-%d",
		name, teamWon, teamLost, opponentName, oppWon, oppLost))
}
