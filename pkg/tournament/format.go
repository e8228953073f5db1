package tournament

import "strings"

// Format identifies which historical record shape a tournament file uses.
type Format string

// Known record formats.
const (
	// FormatSplit is the 2024+ shape with dedicated Player 1 / Player 2 fields.
	FormatSplit Format = "split-identity"

	// FormatPaired is the pre-2024 shape where "Teams (Round Robin)" holds
	// both players joined by the separator.
	FormatPaired Format = "paired-identity"

	// FormatUnknown means no entry signaled either shape. The pipeline must
	// stop with zero records rather than guess.
	FormatUnknown Format = "unknown"
)

// String returns the string representation of a format.
func (f Format) String() string {
	return string(f)
}

// Known reports whether the format is one of the two recognized shapes.
func (f Format) Known() bool {
	return f == FormatSplit || f == FormatPaired
}

// DetectFormat scans entries in order until an unambiguous signal is found.
// An entry with both player fields signals the split shape; an entry whose
// combined team field contains the separator signals the paired shape.
func DetectFormat(entries []Entry, separator string) Format {
	for _, e := range entries {
		if e.String(KeyPlayer1) != "" && e.String(KeyPlayer2) != "" {
			return FormatSplit
		}
		if rr := e.String(KeyTeamsRoundRobin); rr != "" && strings.Contains(rr, separator) {
			return FormatPaired
		}
	}
	return FormatUnknown
}
