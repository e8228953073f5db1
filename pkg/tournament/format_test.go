package tournament_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bodtour/bracketfix/pkg/tournament"
)

func TestDetectFormat(t *testing.T) {
	sep := tournament.DefaultSeparator

	t.Run("split identity", func(t *testing.T) {
		entries := []tournament.Entry{
			{"Player 1": "Ash", "Player 2": "Bill"},
		}
		assert.Equal(t, tournament.FormatSplit, tournament.DetectFormat(entries, sep))
	})

	t.Run("paired identity", func(t *testing.T) {
		entries := []tournament.Entry{
			{"Teams (Round Robin)": "Ash & Bill"},
		}
		assert.Equal(t, tournament.FormatPaired, tournament.DetectFormat(entries, sep))
	})

	t.Run("first signal wins", func(t *testing.T) {
		entries := []tournament.Entry{
			{"Date": "06-07-2014"}, // no signal
			{"Player 1": "Ash", "Player 2": "Bill", "Teams (Round Robin)": "Ash & Bill"},
		}
		assert.Equal(t, tournament.FormatSplit, tournament.DetectFormat(entries, sep))
	})

	t.Run("unknown", func(t *testing.T) {
		entries := []tournament.Entry{
			{"Date": "06-07-2014"},
			{"Teams (Round Robin)": "solo name"},
		}
		assert.Equal(t, tournament.FormatUnknown, tournament.DetectFormat(entries, sep))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, tournament.FormatUnknown, tournament.DetectFormat(nil, sep))
	})
}

func TestFormatKnown(t *testing.T) {
	assert.True(t, tournament.FormatSplit.Known())
	assert.True(t, tournament.FormatPaired.Known())
	assert.False(t, tournament.FormatUnknown.Known())
}
