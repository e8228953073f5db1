package tournament

import (
	"strings"

	"github.com/bodtour/bracketfix/pkg/errors"
)

// Default normalization settings.
const (
	// DefaultSeparator joins the two player names in the paired-identity shape.
	DefaultSeparator = " & "

	// DefaultSeed is assigned to records without a usable seed so that seed
	// ordering stays total.
	DefaultSeed = 999
)

// Config controls normalization.
type Config struct {
	// Separator for the paired-identity shape.
	Separator string

	// DefaultSeed is the fallback rank for records lacking a seed. It also
	// serves as the fallback finish position when sorting corrected output.
	DefaultSeed int
}

// DefaultConfig returns the normalization defaults observed in the source data.
func DefaultConfig() *Config {
	return &Config{
		Separator:   DefaultSeparator,
		DefaultSeed: DefaultSeed,
	}
}

// Normalize filters raw entries down to real match rows and produces one
// TeamRecord per surviving entry, along with the detected format.
//
// Entries lacking identity fields and the two sentinel row classes ("Home"
// marker rows and round-robin "Tiebreakers" rows) are silently excluded;
// that is filtering, not an error. When no entry signals either known shape
// the function returns zero records and an error wrapping ErrFormatUnknown.
func Normalize(entries []Entry, cfg *Config) ([]*TeamRecord, Format, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	format := DetectFormat(entries, cfg.Separator)
	if !format.Known() {
		return nil, FormatUnknown, errors.NewFormatError("", len(entries))
	}

	var records []*TeamRecord
	for _, e := range entries {
		// Work on a clone; the caller's raw entries are never mutated.
		var rec *TeamRecord
		switch format {
		case FormatSplit:
			rec = normalizeSplit(e.Clone(), cfg)
		case FormatPaired:
			rec = normalizePaired(e.Clone(), cfg)
		}
		if rec != nil {
			records = append(records, rec)
		}
	}

	return records, format, nil
}

// normalizeSplit handles the 2024+ shape with dedicated player fields.
func normalizeSplit(e Entry, cfg *Config) *TeamRecord {
	p1 := e.String(KeyPlayer1)
	p2 := e.String(KeyPlayer2)
	if p1 == "" || p2 == "" {
		return nil
	}
	if e.String(KeyDate) == SentinelHome {
		return nil
	}
	if e.String(KeyTeamsRoundRobin) == SentinelTiebreakers {
		return nil
	}

	name := e.TeamName()
	if name == "" {
		return nil
	}

	return newRecord(e, name, [2]string{p1, p2}, cfg)
}

// normalizePaired handles the pre-2024 shape where one combined field encodes
// both players. Rows whose combined field does not split into exactly two
// names are not usable match rows and are skipped.
func normalizePaired(e Entry, cfg *Config) *TeamRecord {
	rr := e.String(KeyTeamsRoundRobin)
	if rr == "" || !strings.Contains(rr, cfg.Separator) {
		return nil
	}
	if rr == SentinelTiebreakers {
		return nil
	}
	if e.String(KeyHome) == SentinelHome {
		return nil
	}

	players := strings.Split(rr, cfg.Separator)
	if len(players) != 2 {
		return nil
	}
	p1 := strings.TrimSpace(players[0])
	p2 := strings.TrimSpace(players[1])
	if p1 == "" || p2 == "" {
		return nil
	}

	// Backfill the split-identity fields so downstream consumers see one shape.
	e.SetString(KeyPlayer1, p1)
	e.SetString(KeyPlayer2, p2)
	if e.String(KeyTeamsSummary) == "" {
		e.SetString(KeyTeamsSummary, rr)
	}

	return newRecord(e, e.TeamName(), [2]string{p1, p2}, cfg)
}

func newRecord(e Entry, name string, players [2]string, cfg *Config) *TeamRecord {
	seed := e.IntOr(KeySeedAlt, e.IntOr(KeySeed, cfg.DefaultSeed))
	finish := e.IntOr(KeyBODFinish, cfg.DefaultSeed)

	return &TeamRecord{
		TeamID:  name,
		Players: players,
		Seed:    seed,
		Finish:  finish,
		Entry:   e,
	}
}
