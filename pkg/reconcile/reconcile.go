// Package reconcile derives one authoritative result per matchup from two
// possibly contradictory per-team score claims, writes mirrored fields back
// onto both records, and recomputes every statistic derived from match
// outcomes.
package reconcile

import (
	"fmt"
	"sort"

	"github.com/bodtour/bracketfix/pkg/bracket"
	"github.com/bodtour/bracketfix/pkg/tournament"
)

// Default scoring policy values observed in the source data (pickleball
// games to 11).
const (
	// DefaultWinningThreshold is the minimum score that marks a claimed
	// winning score as credible.
	DefaultWinningThreshold = 11

	// DefaultLoserCap bounds the substituted losing score when no claim is
	// internally sane.
	DefaultLoserCap = 10

	// DefaultLoserHint seeds the substituted losing score when neither side
	// offers any usable losing-score hint.
	DefaultLoserHint = 8
)

// Reconciler resolves matchup results and rewrites both sides' records to be
// mutually consistent.
type Reconciler struct {
	threshold int
	loserCap  int
	loserHint int
	round     tournament.Round
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithWinningThreshold sets the minimum credible winning score.
func WithWinningThreshold(n int) Option {
	return func(r *Reconciler) { r.threshold = n }
}

// WithLoserCap sets the ceiling for substituted losing scores.
func WithLoserCap(n int) Option {
	return func(r *Reconciler) { r.loserCap = n }
}

// WithRound sets the bracket round whose fields are reconciled.
func WithRound(round tournament.Round) Option {
	return func(r *Reconciler) { r.round = round }
}

// New creates a Reconciler with the default scoring policy.
func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		threshold: DefaultWinningThreshold,
		loserCap:  DefaultLoserCap,
		loserHint: DefaultLoserHint,
		round:     tournament.RoundOf16,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile fixes every matchup in place and returns the reconciled records
// in stable output order, along with warnings for every place the policy had
// to paper over bad data. The records are the same ones the matchups borrow;
// they are mutated via their underlying entries.
func (r *Reconciler) Reconcile(matchups []bracket.Matchup) *Result {
	result := &Result{}

	for _, m := range matchups {
		r.reconcileMatchup(m, result)
		result.Records = append(result.Records, m.TeamA, m.TeamB)
	}

	// Emit in final-placement order when known, else seed order, so output
	// stays stable and human-reviewable.
	sort.SliceStable(result.Records, func(i, j int) bool {
		a, b := result.Records[i], result.Records[j]
		if a.Finish != b.Finish {
			return a.Finish < b.Finish
		}
		return a.Seed < b.Seed
	})

	result.Stats.MatchupsReconciled = len(matchups)
	return result
}

// reconcileMatchup applies the scoring policy to one pairing.
func (r *Reconciler) reconcileMatchup(m bracket.Matchup, result *Result) {
	a, b := m.TeamA, m.TeamB
	aWon, aLost, _ := a.Claim(r.round)
	bWon, bLost, _ := b.Claim(r.round)

	// Step 1: pick the authoritative score pair from the two claims.
	winScore, loseScore, source := r.resolveScore(aWon, aLost, bWon, bLost)
	if source == sourceDefault {
		result.Stats.DefaultsSubstituted++
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"matchup %d (%s vs %s): no sane score claim, substituted default %d-%d",
			m.ID, a.TeamID, b.TeamID, winScore, loseScore))
	}

	// Step 2: attribute the win from each side's own claimed won-count. This
	// check is deliberately separate from step 1's score selection and the
	// two can disagree on ambiguous data; the disagreement is surfaced, not
	// silently unified.
	aWins := aWon >= bWon
	if (source == sourceA && !aWins) || (source == sourceB && aWins) {
		result.Stats.AttributionDisagreements++
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"matchup %d (%s vs %s): score policy took %s's numbers but attribution favors %s",
			m.ID, a.TeamID, b.TeamID,
			sourceTeam(source, a, b), attributionTeam(aWins, a, b)))
	}

	// Step 3: mirror writes. Both sides share the matchup slot, reference
	// each other, and carry exact score reflections.
	a.SetMatchup(r.round, m.ID)
	b.SetMatchup(r.round, m.ID)
	a.SetOpponent(b.TeamID)
	b.SetOpponent(a.TeamID)

	if aWins {
		a.SetResult(r.round, winScore, loseScore)
		b.SetResult(r.round, loseScore, winScore)
	} else {
		a.SetResult(r.round, loseScore, winScore)
		b.SetResult(r.round, winScore, loseScore)
	}

	// Steps 4-5: recompute every derived aggregate.
	updateBracketTotals(a)
	updateBracketTotals(b)
	updateTotals(a)
	updateTotals(b)
}

// scoreSource identifies which claim supplied the authoritative score pair.
type scoreSource int

const (
	sourceA scoreSource = iota
	sourceB
	sourceDefault
)

// resolveScore applies the score-selection policy in order: a credible
// winning claim (meets the threshold and beats its own losing score), then
// any internally sane claim (won > lost), then the default substitution so
// reconciliation always terminates with a legal score.
func (r *Reconciler) resolveScore(aWon, aLost, bWon, bLost int) (winScore, loseScore int, source scoreSource) {
	switch {
	case aWon >= r.threshold && aWon > aLost:
		return aWon, aLost, sourceA
	case bWon >= r.threshold && bWon > bLost:
		return bWon, bLost, sourceB
	case aWon > aLost:
		return aWon, aLost, sourceA
	case bWon > bLost:
		return bWon, bLost, sourceB
	}

	hint := firstPositive(aLost, bLost, r.loserHint)
	loseScore = min(r.loserCap, hint)
	if loseScore < 0 {
		loseScore = 0
	}
	return r.threshold, loseScore, sourceDefault
}

// updateBracketTotals recomputes bracket totals from every round's fields.
// Absent rounds contribute zero.
func updateBracketTotals(rec *tournament.TeamRecord) {
	won, lost := 0, 0
	for _, round := range tournament.BracketRounds {
		won += rec.Entry.IntOr(round.WonKey(), 0)
		lost += rec.Entry.IntOr(round.LostKey(), 0)
	}
	rec.Entry.SetInt(tournament.KeyBracketWon, won)
	rec.Entry.SetInt(tournament.KeyBracketLost, lost)
	rec.Entry.SetInt(tournament.KeyBracketPlayed, won+lost)
}

// updateTotals recomputes round-robin-plus-bracket totals and the win
// percentage. The percentage is only written when games were played; there
// is no divide by zero and no stale value is invented.
func updateTotals(rec *tournament.TeamRecord) {
	won := rec.Entry.IntOr(tournament.KeyRRWon, 0) + rec.Entry.IntOr(tournament.KeyBracketWon, 0)
	lost := rec.Entry.IntOr(tournament.KeyRRLost, 0) + rec.Entry.IntOr(tournament.KeyBracketLost, 0)
	played := won + lost

	rec.Entry.SetInt(tournament.KeyTotalWon, won)
	rec.Entry.SetInt(tournament.KeyTotalLost, lost)
	rec.Entry.SetInt(tournament.KeyTotalPlayed, played)

	if played > 0 {
		rec.Entry.SetFloat(tournament.KeyWinPercentage, float64(won)/float64(played))
	}
}

// firstPositive returns the first strictly positive value.
func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func sourceTeam(s scoreSource, a, b *tournament.TeamRecord) string {
	if s == sourceA {
		return a.TeamID
	}
	return b.TeamID
}

func attributionTeam(aWins bool, a, b *tournament.TeamRecord) string {
	if aWins {
		return a.TeamID
	}
	return b.TeamID
}
