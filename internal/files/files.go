// Package files owns tournament file I/O: discovery by naming pattern,
// backups, JSON load/save, and merging corrected rows back into complete
// files. The reconciliation core never touches storage; this package is its
// only collaborator that does.
package files

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bodtour/bracketfix/pkg/errors"
	"github.com/bodtour/bracketfix/pkg/tournament"
)

const (
	// BackupDirName is where originals are copied before fixing.
	BackupDirName = "backup"

	// FixedDirName is where corrected files are written.
	FixedDirName = "fixed"

	dirMode  = 0o755
	fileMode = 0o644
)

// Discover returns the tournament files in dir, sorted by name. Tournament
// files are JSON files whose base name contains exactly two dashes — the
// MM-DD-YYYY naming convention of the source data. Anything else in the
// directory (backups, reports, summaries) is left alone.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapIO("read", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".json") {
			continue
		}
		if strings.Count(name, "-") != 2 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Backup copies the named files from dir into dir/backup, creating the
// backup directory if needed.
func Backup(dir string, names []string) error {
	backupDir := filepath.Join(dir, BackupDirName)
	if err := os.MkdirAll(backupDir, dirMode); err != nil {
		return errors.WrapIO("create", backupDir, err)
	}

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return errors.WrapIO("read", filepath.Join(dir, name), err)
		}
		dst := filepath.Join(backupDir, name)
		if err := os.WriteFile(dst, data, fileMode); err != nil {
			return errors.WrapIO("copy", dst, err)
		}
	}
	return nil
}

// Load reads one tournament file: a JSON array of per-team entries.
func Load(path string) ([]tournament.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var entries []tournament.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return entries, nil
}

// Save writes entries as indented JSON, creating parent directories as
// needed.
func Save(path string, entries []tournament.Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.WrapParse("json", path, err)
	}
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Merge replaces rows in the complete file with their corrected versions,
// matched by team identity. Rows without a correction — summary rows,
// sentinel rows, teams the pipeline filtered out — pass through untouched in
// their original position.
func Merge(complete, corrected []tournament.Entry) []tournament.Entry {
	byTeam := make(map[string]tournament.Entry, len(corrected))
	for _, e := range corrected {
		if name := e.TeamName(); name != "" {
			byTeam[name] = e
		}
	}

	merged := make([]tournament.Entry, 0, len(complete))
	for _, e := range complete {
		if fixed, ok := byTeam[e.TeamName()]; ok && e.TeamName() != "" {
			merged = append(merged, fixed)
		} else {
			merged = append(merged, e)
		}
	}
	return merged
}
