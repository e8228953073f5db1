package tournament

// Round identifies one bracket round by its field prefix in the source data.
type Round struct {
	Prefix string
}

// Standard bracket rounds in play order.
var (
	RoundOf16     = Round{Prefix: "R16"}
	QuarterFinals = Round{Prefix: "QF"}
	SemiFinals    = Round{Prefix: "SF"}
	Finals        = Round{Prefix: "Finals"}
)

// BracketRounds lists every round whose scores feed the bracket totals.
var BracketRounds = []Round{RoundOf16, QuarterFinals, SemiFinals, Finals}

// WonKey returns the field key for points won in this round.
func (r Round) WonKey() string { return r.Prefix + " Won" }

// LostKey returns the field key for points lost in this round.
func (r Round) LostKey() string { return r.Prefix + " Lost" }

// MatchupKey returns the field key for the bracket slot of this round.
func (r Round) MatchupKey() string { return r.Prefix + " Matchup" }

// String returns the round prefix.
func (r Round) String() string { return r.Prefix }
