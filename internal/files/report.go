package files

import (
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/bodtour/bracketfix"
	"github.com/bodtour/bracketfix/pkg/errors"
)

// ReportFileName is the per-run validation report written next to the fixed
// files.
const ReportFileName = "report.yaml"

// RunReport is the YAML sidecar summarizing one fix run.
type RunReport struct {
	RunID       string       `yaml:"run_id"`
	GeneratedAt time.Time    `yaml:"generated_at"`
	Summary     RunSummary   `yaml:"summary"`
	Files       []FileReport `yaml:"files"`
}

// RunSummary mirrors bracketfix.Summary in a serializable shape.
type RunSummary struct {
	Files           int  `yaml:"files"`
	Fixed           int  `yaml:"fixed"`
	Skipped         int  `yaml:"skipped"`
	VerifiedMatches int  `yaml:"verified_matches"`
	Violations      int  `yaml:"violations"`
	Warnings        int  `yaml:"warnings"`
	OK              bool `yaml:"ok"`
}

// FileReport captures one tournament file's outcome.
type FileReport struct {
	File       string   `yaml:"file"`
	Format     string   `yaml:"format"`
	Teams      int      `yaml:"teams"`
	Matchups   int      `yaml:"matchups"`
	Verified   int      `yaml:"verified"`
	Violations []string `yaml:"violations,omitempty"`
	Warnings   []string `yaml:"warnings,omitempty"`
	Skipped    bool     `yaml:"skipped,omitempty"`
	Error      string   `yaml:"error,omitempty"`
}

// NewFileReport converts one pipeline result into its report row.
func NewFileReport(name string, result *bracketfix.Result) FileReport {
	return FileReport{
		File:       name,
		Format:     result.Format.String(),
		Teams:      result.Report.TotalTeams,
		Matchups:   len(result.Report.MatchupIDs()),
		Verified:   len(result.Report.Verified),
		Violations: result.Report.Violations,
		Warnings:   result.Warnings,
	}
}

// NewSkippedFileReport records a file that could not be processed.
func NewSkippedFileReport(name string, err error) FileReport {
	report := FileReport{File: name, Skipped: true}
	if err != nil {
		report.Error = err.Error()
	}
	return report
}

// WriteReport saves the run report as YAML into dir.
func WriteReport(dir string, report *RunReport) error {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return errors.WrapParse("yaml", ReportFileName, err)
	}

	path := filepath.Join(dir, ReportFileName)
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// SummaryForRun converts the pipeline summary into its serializable shape.
func SummaryForRun(s bracketfix.Summary) RunSummary {
	return RunSummary{
		Files:           s.Files,
		Fixed:           s.Fixed,
		Skipped:         s.Skipped,
		VerifiedMatches: s.VerifiedMatches,
		Violations:      s.Violations,
		Warnings:        s.Warnings,
		OK:              s.OK(),
	}
}
