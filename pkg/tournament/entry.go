// Package tournament defines the record model for Bracket of Death tournament
// data and normalizes raw per-team entries into uniform TeamRecords.
//
// Tournament files are JSON arrays of loosely-typed objects whose keys come
// straight from the source spreadsheets ("Teams (Round Robin)", "R16 Won",
// "Seed.1", ...). Two historical shapes exist: a paired-identity shape where
// one combined field holds both players joined by " & ", and a split-identity
// shape with dedicated Player 1 / Player 2 fields.
package tournament

import (
	"strconv"
	"strings"
)

// Field keys as they appear in the tournament files.
const (
	KeyTeamsRoundRobin = "Teams (Round Robin)"
	KeyTeamsSummary    = "Teams (Summary)"
	KeyTeamsBracket    = "Teams (Bracket)"
	KeyPlayer1         = "Player 1"
	KeyPlayer2         = "Player 2"
	KeySeed            = "Seed"
	KeySeedAlt         = "Seed.1"
	KeyDate            = "Date"
	KeyHome            = "Home"
	KeyBODFinish       = "BOD Finish"
	KeyRRWon           = "RR Won"
	KeyRRLost          = "RR Lost"
	KeyBracketWon      = "Bracket Won"
	KeyBracketLost     = "Bracket Lost"
	KeyBracketPlayed   = "Bracket Played"
	KeyTotalWon        = "Total Won"
	KeyTotalLost       = "Total Lost"
	KeyTotalPlayed     = "Total Played"
	KeyWinPercentage   = "Win %"
)

// Sentinel values marking non-match rows.
const (
	SentinelHome        = "Home"
	SentinelTiebreakers = "Tiebreakers"
)

// Entry is one raw per-team row as deserialized from a tournament JSON file.
// Values are loosely typed: numbers arrive as float64, blanks as "" or nil.
type Entry map[string]any

// String returns the trimmed string value for key, or "" when the field is
// absent or not a string.
func (e Entry) String(key string) string {
	if v, ok := e[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// Int returns the integer value for key. The second return reports whether
// the field was present and numeric. JSON numbers, integer strings, and
// native ints are all accepted.
func (e Entry) Int(key string) (int, bool) {
	v, ok := e[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int(f), true
		}
	}
	return 0, false
}

// IntOr returns the integer value for key, or def when absent.
func (e Entry) IntOr(key string, def int) int {
	if v, ok := e.Int(key); ok {
		return v
	}
	return def
}

// SetInt stores an integer value under key.
func (e Entry) SetInt(key string, v int) {
	e[key] = v
}

// SetString stores a string value under key.
func (e Entry) SetString(key, v string) {
	e[key] = v
}

// SetFloat stores a float value under key.
func (e Entry) SetFloat(key string, v float64) {
	e[key] = v
}

// Clone returns a shallow copy of the entry. Corrected entries are clones so
// the caller's original slice is never mutated.
func (e Entry) Clone() Entry {
	out := make(Entry, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// TeamName returns the canonical team identity: "Teams (Summary)" falling
// back to "Teams (Round Robin)".
func (e Entry) TeamName() string {
	if name := e.String(KeyTeamsSummary); name != "" {
		return name
	}
	return e.String(KeyTeamsRoundRobin)
}
