// Package bracket builds single-elimination matchups from seeded team records.
//
// The builder is the single source of truth for bracket shape: whatever
// opponent or matchup data the records carried in is assumed possibly corrupt
// and is ignored entirely, so inconsistent stored data can never re-enter the
// pipeline.
package bracket

import (
	"sort"

	"github.com/bodtour/bracketfix/pkg/tournament"
)

// Matchup is an ephemeral pairing of exactly two team records, identified by
// a 1-based slot assigned in seed order. It borrows the records; it exists
// only to drive the pairwise fix-up and is not persisted.
type Matchup struct {
	ID    int
	TeamA *tournament.TeamRecord
	TeamB *tournament.TeamRecord
}

// Build pairs teams using the standard seeding rule: the team at sorted rank
// k meets the team at rank S+1-k, so seed 1 plays the lowest seed and top
// seeds stay apart as long as possible. Standard sizes are 8 and 16; any
// size falls back to the same formula over the actual count. For odd sizes
// the floor(S/2)+1-th team cannot be paired and is returned as leftover —
// there is no bye handling, by documented limitation.
//
// The sort by seed is stable: duplicate seeds keep input order rather than
// crashing or reshuffling.
func Build(records []*tournament.TeamRecord) (matchups []Matchup, leftover []*tournament.TeamRecord) {
	if len(records) < 2 {
		return nil, records
	}

	seeded := make([]*tournament.TeamRecord, len(records))
	copy(seeded, records)
	sort.SliceStable(seeded, func(i, j int) bool {
		return seeded[i].Seed < seeded[j].Seed
	})

	n := len(seeded)
	pairs := n / 2
	matchups = make([]Matchup, 0, pairs)
	for i := 0; i < pairs; i++ {
		matchups = append(matchups, Matchup{
			ID:    i + 1,
			TeamA: seeded[i],
			TeamB: seeded[n-1-i],
		})
	}

	if n%2 != 0 {
		leftover = []*tournament.TeamRecord{seeded[pairs]}
	}
	return matchups, leftover
}
