package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodtour/bracketfix/internal/files"
	"github.com/bodtour/bracketfix/pkg/tournament"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"06-07-2014.json", // tournament file
		"07-12-2023.json", // tournament file
		"all-time.json",   // one dash, not a tournament
		"notes.txt",
		"report.yaml",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("[]"), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "06-07-2014.json.d"), 0o755))

	names, err := files.Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"06-07-2014.json", "07-12-2023.json"}, names)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := files.Discover(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestBackup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "06-07-2014.json"), []byte(`[{"Seed": 1}]`), 0o644))

	require.NoError(t, files.Backup(dir, []string{"06-07-2014.json"}))

	data, err := os.ReadFile(filepath.Join(dir, "backup", "06-07-2014.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"Seed": 1}]`, string(data))
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixed", "06-07-2014.json")

	entries := []tournament.Entry{
		{"Teams (Summary)": "Ash & Bill", "Seed": float64(1), "R16 Won": float64(11)},
		{"Teams (Summary)": "Cal & Dee", "Seed": float64(2)},
	}

	require.NoError(t, files.Save(path, entries))

	loaded, err := files.Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Ash & Bill", loaded[0].TeamName())
	assert.Equal(t, 11, loaded[0].IntOr("R16 Won", -1))
}

func TestLoadBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "06-07-2014.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := files.Load(path)
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	complete := []tournament.Entry{
		{"Home": "Home", "Date": "Home"}, // sentinel row passes through
		{"Teams (Summary)": "Ash & Bill", "R16 Won": float64(5)},
		{"Teams (Summary)": "Cal & Dee", "R16 Won": float64(2)},
		{"Teams (Round Robin)": "Tiebreakers"}, // sentinel row passes through
	}
	corrected := []tournament.Entry{
		{"Teams (Summary)": "Ash & Bill", "R16 Won": 11},
	}

	merged := files.Merge(complete, corrected)

	require.Len(t, merged, 4)
	assert.Equal(t, 11, merged[1].IntOr("R16 Won", -1), "corrected row replaces original")
	assert.Equal(t, 2, merged[2].IntOr("R16 Won", -1), "uncorrected row passes through")
	_, isHome := merged[0]["Home"]
	assert.True(t, isHome, "sentinel rows keep their position")
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	report := &files.RunReport{
		RunID: "run-1",
		Summary: files.RunSummary{
			Files: 2, Fixed: 1, Skipped: 1, OK: false,
		},
		Files: []files.FileReport{
			{File: "06-07-2014.json", Format: "paired-identity", Verified: 16},
			{File: "08-01-2015.json", Skipped: true, Error: "tournament format unknown"},
		},
	}

	require.NoError(t, files.WriteReport(dir, report))

	data, err := os.ReadFile(filepath.Join(dir, files.ReportFileName))
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "run_id: run-1")
	assert.Contains(t, out, "06-07-2014.json")
	assert.Contains(t, out, "tournament format unknown")
}
