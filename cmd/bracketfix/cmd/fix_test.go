package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodtour/bracketfix/internal/files"
	"github.com/bodtour/bracketfix/pkg/tournament"
)

// writeTournamentFile creates a directory holding one four-team tournament
// file in the split-identity shape and returns the directory.
func writeTournamentFile(t *testing.T) string {
	t.Helper()

	entries := make([]tournament.Entry, 0, 4)
	for seed := 1; seed <= 4; seed++ {
		e := tournament.Entry{
			"Teams (Summary)": fmt.Sprintf("Team %02d", seed),
			"Player 1":        fmt.Sprintf("P%da", seed),
			"Player 2":        fmt.Sprintf("P%db", seed),
			"Seed":            float64(seed),
		}
		if seed <= 2 {
			e["R16 Won"] = float64(11)
			e["R16 Lost"] = float64(seed + 3)
		}
		entries = append(entries, e)
	}

	data, err := json.Marshal(entries)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2019-07-13.json"), data, 0o644))
	return dir
}

func TestFixCommandEndToEnd(t *testing.T) {
	dir := writeTournamentFile(t)

	rootCmd := NewRootCommand(newTestApp(t))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"fix", dir})

	require.NoError(t, rootCmd.Execute())

	// Original backed up untouched.
	backup := filepath.Join(dir, files.BackupDirName, "2019-07-13.json")
	assert.FileExists(t, backup)

	// Corrected file and report written under fixed/.
	fixed := filepath.Join(dir, files.FixedDirName, "2019-07-13.json")
	require.FileExists(t, fixed)
	assert.FileExists(t, filepath.Join(dir, files.FixedDirName, files.ReportFileName))

	corrected, err := files.Load(fixed)
	require.NoError(t, err)
	require.Len(t, corrected, 4)

	byName := map[string]tournament.Entry{}
	for _, e := range corrected {
		byName[e.TeamName()] = e
	}
	// Seed 1 beat seed 4; the mirror write gives seed 4 the inverse score.
	assert.Equal(t, 11, byName["Team 01"].IntOr("R16 Won", -1))
	assert.Equal(t, 11, byName["Team 04"].IntOr("R16 Lost", -1))
	assert.Equal(t, "Team 01", byName["Team 04"].String("Teams (Bracket)"))

	assert.Contains(t, out.String(), "Split-Identity")
	assert.Contains(t, out.String(), "0 violations")
}

func TestFixCommandSkipsUnreadableFile(t *testing.T) {
	dir := writeTournamentFile(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2019-07-20.json"), []byte("{not json"), 0o644))

	rootCmd := NewRootCommand(newTestApp(t))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"fix", dir})

	// The broken file is reported in the run error, but the good file is
	// still fixed.
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 skipped")
	assert.Contains(t, out.String(), "SKIPPED")
	assert.FileExists(t, filepath.Join(dir, files.FixedDirName, "2019-07-13.json"))
}
