package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bodtour/bracketfix"
	"github.com/bodtour/bracketfix/cmd/bracketfix/app"
	"github.com/bodtour/bracketfix/internal/files"
	"github.com/bodtour/bracketfix/pkg/logging"
)

func newFixCommand(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "fix [dir]",
		Short: "Repair bracket results in a directory of tournament files",
		Long: `Fix discovers tournament files in the given directory (default "."),
backs up the originals, reconciles each file's bracket results, and writes
the corrected files plus a validation report into <dir>/fixed.

One broken file never aborts the run; it is recorded as skipped and the
remaining files are still processed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runFix(cmd, application, dir)
		},
	}
}

func runFix(cmd *cobra.Command, application *app.App, dir string) error {
	out := cmd.OutOrStdout()
	logger := application.Logger()

	runID := uuid.NewString()
	ctx := logging.WithRunID(logging.WithLogger(cmd.Context(), logger), runID)
	logger.Info().Str("run_id", runID).Str("dir", dir).Msg("starting fix run")

	names, err := files.Discover(dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(out, "No tournament files found in %s\n", dir)
		return nil
	}

	if err := files.Backup(dir, names); err != nil {
		return err
	}
	fmt.Fprintf(out, "Backed up %d files to %s\n", len(names), filepath.Join(dir, files.BackupDirName))

	fixedDir := filepath.Join(dir, files.FixedDirName)
	report := &files.RunReport{RunID: runID, GeneratedAt: time.Now().UTC()}

	var summary bracketfix.Summary
	for _, name := range names {
		result, ferr := fixFile(ctx, application, dir, fixedDir, name)
		if ferr != nil {
			logger.Error().Err(ferr).Str("file", name).Msg("skipping file")
			fmt.Fprintf(out, "  %-40s SKIPPED: %v\n", name, ferr)
			summary = summary.FoldSkipped()
			report.Files = append(report.Files, files.NewSkippedFileReport(name, ferr))
			continue
		}

		summary = summary.Fold(result)
		report.Files = append(report.Files, files.NewFileReport(name, result))
		fmt.Fprintf(out, "  %-40s %s\n", name, fileVerdict(result))
	}

	report.Summary = files.SummaryForRun(summary)
	if err := files.WriteReport(fixedDir, report); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s\n", summary.String())
	fmt.Fprintf(out, "Report written to %s\n", filepath.Join(fixedDir, files.ReportFileName))

	if !summary.OK() {
		return fmt.Errorf("run finished with %d violations and %d skipped files", summary.Violations, summary.Skipped)
	}
	return nil
}

// fixFile runs the repair pipeline for one tournament file and writes the
// merged result into fixedDir.
func fixFile(ctx context.Context, application *app.App, dir, fixedDir, name string) (*bracketfix.Result, error) {
	entries, err := files.Load(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}

	result, err := bracketfix.Fix(ctx, entries, fixOptions(application.Config())...)
	if err != nil {
		return nil, err
	}

	merged := files.Merge(entries, result.Entries)
	if err := files.Save(filepath.Join(fixedDir, name), merged); err != nil {
		return nil, err
	}
	return result, nil
}

// fixOptions translates the CLI configuration into pipeline options.
func fixOptions(config *app.Config) []bracketfix.Option {
	return []bracketfix.Option{
		bracketfix.WithWinningThreshold(config.WinningScoreThreshold),
		bracketfix.WithLoserCap(config.LoserScoreCap),
		bracketfix.WithDefaultSeed(config.DefaultSeedFallback),
		bracketfix.WithSeparator(config.PairedIdentitySeparator),
		bracketfix.WithSizeDetection(config.PairingSizeDetection),
	}
}

// fileVerdict renders one file's outcome for console output.
func fileVerdict(result *bracketfix.Result) string {
	label := cases.Title(language.English).String(result.Format.String())
	if !result.OK() {
		return fmt.Sprintf("%s, %d teams, %d VIOLATIONS", label, len(result.Records), len(result.Report.Violations))
	}
	if result.HasWarnings() {
		return fmt.Sprintf("%s, %d teams, %d verified, %d warnings", label, len(result.Records), len(result.Report.Verified), len(result.Warnings))
	}
	return fmt.Sprintf("%s, %d teams, %d verified", label, len(result.Records), len(result.Report.Verified))
}
