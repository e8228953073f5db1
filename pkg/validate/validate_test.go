package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodtour/bracketfix/pkg/tournament"
	"github.com/bodtour/bracketfix/pkg/validate"
)

// consistentPair returns two entries that satisfy the mirror invariant.
func consistentPair(a, b string, matchup, aWon, aLost int) []tournament.Entry {
	return []tournament.Entry{
		{
			"Teams (Summary)": a,
			"Teams (Bracket)": b,
			"R16 Matchup":     float64(matchup),
			"R16 Won":         float64(aWon),
			"R16 Lost":        float64(aLost),
		},
		{
			"Teams (Summary)": b,
			"Teams (Bracket)": a,
			"R16 Matchup":     float64(matchup),
			"R16 Won":         float64(aLost),
			"R16 Lost":        float64(aWon),
		},
	}
}

func TestCheckConsistentPair(t *testing.T) {
	entries := consistentPair("Ash & Bill", "Pat & Quinn", 1, 11, 3)

	report := validate.New().Check(entries)

	assert.True(t, report.OK())
	assert.Empty(t, report.Violations)
	// Each matchup is verified once from each side, on purpose.
	assert.Len(t, report.Verified, 2)
	assert.Equal(t, []int{1}, report.MatchupIDs())
	assert.Equal(t, 2, report.TotalTeams)
	assert.Equal(t, 1, report.ExpectedMatchups())
}

func TestCheckMatchupIDMismatch(t *testing.T) {
	entries := consistentPair("A", "B", 1, 11, 3)
	entries[1]["R16 Matchup"] = float64(2)

	report := validate.New().Check(entries)

	assert.False(t, report.OK())
	// Both sides see the same slot disagreement.
	require.Len(t, report.Violations, 2)
	assert.Contains(t, report.Violations[0], "matchup ID mismatch")
	assert.Contains(t, report.Violations[0], "A=1")
	assert.Contains(t, report.Violations[0], "B=2")
}

func TestCheckBackReferenceViolation(t *testing.T) {
	entries := consistentPair("A", "B", 1, 11, 3)
	extra := consistentPair("C", "D", 2, 11, 5)
	// B now claims to have played C instead of A.
	entries[1]["Teams (Bracket)"] = "C"

	all := append(entries, extra...)
	report := validate.New().Check(all)

	assert.False(t, report.OK())
	found := false
	for _, v := range report.Violations {
		if v == "opponent mismatch: A vs B, but B vs C" {
			found = true
		}
	}
	assert.True(t, found, "violations: %v", report.Violations)
}

func TestCheckScoreMirrorViolation(t *testing.T) {
	entries := consistentPair("A", "B", 1, 11, 3)
	entries[1]["R16 Won"] = float64(5)

	report := validate.New().Check(entries)

	assert.False(t, report.OK())
	require.NotEmpty(t, report.Violations)
	assert.Contains(t, report.Violations[0], "score mismatch")
}

func TestCheckIndependentConditions(t *testing.T) {
	// Wreck all three conditions on one side: slot, back-reference, scores.
	entries := consistentPair("A", "B", 1, 11, 3)
	entries[1]["R16 Matchup"] = float64(7)
	entries[1]["Teams (Bracket)"] = "nobody"
	entries[1]["R16 Won"] = float64(2)

	report := validate.New().Check(entries)

	// From A's side: matchup mismatch, back-reference failure, score
	// mismatch. From B's side: its opponent "nobody" has no record.
	assert.GreaterOrEqual(t, len(report.Violations), 3)
}

func TestCheckUnknownOpponent(t *testing.T) {
	entries := []tournament.Entry{
		{
			"Teams (Summary)": "A",
			"Teams (Bracket)": "Ghost Team",
			"R16 Matchup":     float64(1),
		},
	}

	report := validate.New().Check(entries)

	assert.False(t, report.OK())
	require.Len(t, report.Violations, 1)
	assert.Contains(t, report.Violations[0], "Ghost Team")
}

func TestCheckSkipsEntriesWithoutOpponent(t *testing.T) {
	entries := []tournament.Entry{
		{"Teams (Summary)": "A"},
		{"Date": "06-07-2014"},
	}

	report := validate.New().Check(entries)

	assert.True(t, report.OK())
	assert.Empty(t, report.Verified)
	assert.Equal(t, 2, report.TotalTeams)
}

func TestCheckScoreMirrorSkippedWhenIncomplete(t *testing.T) {
	entries := consistentPair("A", "B", 1, 11, 3)
	delete(entries[1], "R16 Won")

	report := validate.New().Check(entries)

	// With one score field absent the mirror check is skipped from both
	// sides: no verification, but no score violation either.
	assert.Empty(t, report.Verified)
	for _, v := range report.Violations {
		assert.NotContains(t, v, "score mismatch")
	}
}

func TestCheckNeverMutates(t *testing.T) {
	entries := consistentPair("A", "B", 1, 11, 3)
	before := make([]tournament.Entry, len(entries))
	for i, e := range entries {
		before[i] = e.Clone()
	}

	validate.New().Check(entries)

	for i := range entries {
		assert.Equal(t, before[i], entries[i])
	}
}

func TestCheckAlternateRound(t *testing.T) {
	entries := []tournament.Entry{
		{
			"Teams (Summary)": "A",
			"Teams (Bracket)": "B",
			"QF Matchup":      float64(1),
			"QF Won":          float64(11),
			"QF Lost":         float64(9),
		},
		{
			"Teams (Summary)": "B",
			"Teams (Bracket)": "A",
			"QF Matchup":      float64(1),
			"QF Won":          float64(9),
			"QF Lost":         float64(11),
		},
	}

	report := validate.New(validate.WithRound(tournament.QuarterFinals)).Check(entries)

	assert.True(t, report.OK())
	assert.Len(t, report.Verified, 2)
}
