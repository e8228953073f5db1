package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bodtour/bracketfix"
	"github.com/bodtour/bracketfix/cmd/bracketfix/app"
	"github.com/bodtour/bracketfix/internal/files"
	"github.com/bodtour/bracketfix/pkg/logging"
)

func newValidateCommand(application *app.App) *cobra.Command {
	var showViolations bool

	cmd := &cobra.Command{
		Use:   "validate [dir]",
		Short: "Check tournament files without writing anything",
		Long: `Validate runs the full repair pipeline in memory and reports what a fix
run would find. No backups, corrected files, or reports are written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runValidate(cmd, application, dir, showViolations)
		},
	}

	cmd.Flags().BoolVar(&showViolations, "show-violations", false, "print every violation, not just counts")

	return cmd
}

func runValidate(cmd *cobra.Command, application *app.App, dir string, showViolations bool) error {
	out := cmd.OutOrStdout()
	logger := application.Logger()
	ctx := logging.WithLogger(cmd.Context(), logger)

	names, err := files.Discover(dir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(out, "No tournament files found in %s\n", dir)
		return nil
	}

	var summary bracketfix.Summary
	for _, name := range names {
		entries, err := files.Load(filepath.Join(dir, name))
		if err != nil {
			logger.Error().Err(err).Str("file", name).Msg("skipping file")
			fmt.Fprintf(out, "  %-40s SKIPPED: %v\n", name, err)
			summary = summary.FoldSkipped()
			continue
		}

		result, err := bracketfix.Fix(ctx, entries, fixOptions(application.Config())...)
		if err != nil {
			fmt.Fprintf(out, "  %-40s SKIPPED: %v\n", name, err)
			summary = summary.FoldSkipped()
			continue
		}

		summary = summary.Fold(result)
		fmt.Fprintf(out, "  %-40s %s\n", name, fileVerdict(result))
		if showViolations {
			for _, violation := range result.Report.Violations {
				fmt.Fprintf(out, "      %s\n", violation)
			}
		}
	}

	fmt.Fprintf(out, "\n%s\n", summary.String())

	if !summary.OK() {
		return fmt.Errorf("validation found %d violations and %d skipped files", summary.Violations, summary.Skipped)
	}
	return nil
}
