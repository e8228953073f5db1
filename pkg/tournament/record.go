package tournament

// TeamRecord is one team's normalized view of a bracket round. The underlying
// Entry remains the single source of truth for field values; the record caches
// identity and ordering keys and provides typed access to the fields the
// reconciliation pipeline owns.
type TeamRecord struct {
	// TeamID uniquely identifies the team within one tournament file.
	TeamID string

	// Players holds the two participant names.
	Players [2]string

	// Seed is the team's bracket rank; lower is better. Records without a
	// usable seed carry the configured fallback so sorting stays total.
	Seed int

	// Finish is the final tournament placement when known, else the fallback.
	Finish int

	// Entry is the raw row this record was normalized from. Mirror fields are
	// written through to it so corrected output keeps every passthrough field.
	Entry Entry
}

// Opponent returns the team this record claims to have played.
func (t *TeamRecord) Opponent() string {
	return t.Entry.String(KeyTeamsBracket)
}

// SetOpponent writes the opponent reference through to the entry.
func (t *TeamRecord) SetOpponent(name string) {
	t.Entry.SetString(KeyTeamsBracket, name)
}

// Matchup returns the claimed bracket slot for the round, if present.
func (t *TeamRecord) Matchup(r Round) (int, bool) {
	return t.Entry.Int(r.MatchupKey())
}

// SetMatchup writes the bracket slot for the round through to the entry.
func (t *TeamRecord) SetMatchup(r Round, id int) {
	t.Entry.SetInt(r.MatchupKey(), id)
}

// Claim returns this team's claimed (won, lost) score for the round. Absent
// or non-numeric fields read as zero, matching how the source data treats
// blanks; ok reports whether either side of the claim was actually present.
func (t *TeamRecord) Claim(r Round) (won, lost int, ok bool) {
	w, wok := t.Entry.Int(r.WonKey())
	l, lok := t.Entry.Int(r.LostKey())
	return w, l, wok || lok
}

// SetResult writes the reconciled (won, lost) score for the round.
func (t *TeamRecord) SetResult(r Round, won, lost int) {
	t.Entry.SetInt(r.WonKey(), won)
	t.Entry.SetInt(r.LostKey(), lost)
}
