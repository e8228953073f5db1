// Package cmd implements the bracketfix CLI commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bodtour/bracketfix/cmd/bracketfix/app"
)

// NewRootCommand creates the root command with all subcommands attached.
func NewRootCommand(application *app.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bracketfix",
		Short: "Reconcile tournament bracket records",
		Long: `bracketfix repairs single-elimination bracket results in tournament
data files. It pairs teams by seed, reconciles each pair's conflicting
win/loss claims into one mirrored match result, recomputes aggregate
totals, and verifies the corrected records from scratch.`,
		Version:       application.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return applyGlobalFlags(cmd, application)
		},
	}

	config := application.Config()
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ~/.bracketfix.yaml)")
	flags.BoolP("verbose", "v", false, "verbose output (debug logging)")
	flags.BoolP("quiet", "q", false, "quiet output (warnings and errors only)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	flags.Int("winning-score-threshold", config.WinningScoreThreshold, "score at or above which a claimed result is trusted")
	flags.Int("loser-score-cap", config.LoserScoreCap, "highest loser score kept alongside a trusted win")
	flags.Int("default-seed-fallback", config.DefaultSeedFallback, "seed assigned to teams with no usable seed")
	flags.String("paired-identity-separator", config.PairedIdentitySeparator, "separator between player names in paired team labels")
	flags.Bool("pairing-size-detection", config.PairingSizeDetection, "warn when the field size is not a power of two")

	rootCmd.AddCommand(
		newFixCommand(application),
		newValidateCommand(application),
		newVersionCommand(application),
	)

	return rootCmd
}

// applyGlobalFlags folds parsed flag values back into the configuration and
// rebuilds the logger so the precedence rules see the final values. Flags
// beat the config file, so an explicit --config is applied first.
func applyGlobalFlags(cmd *cobra.Command, application *app.App) error {
	flags := cmd.Flags()

	if flags.Changed("config") {
		path, _ := flags.GetString("config")
		if err := application.SetConfigFile(path); err != nil {
			return err
		}
	}

	config := application.Config()

	if flags.Changed("verbose") {
		config.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("quiet") {
		config.Quiet, _ = flags.GetBool("quiet")
	}
	if flags.Changed("no-color") {
		config.NoColor, _ = flags.GetBool("no-color")
	}
	if flags.Changed("log-level") {
		config.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("winning-score-threshold") {
		config.WinningScoreThreshold, _ = flags.GetInt("winning-score-threshold")
	}
	if flags.Changed("loser-score-cap") {
		config.LoserScoreCap, _ = flags.GetInt("loser-score-cap")
	}
	if flags.Changed("default-seed-fallback") {
		config.DefaultSeedFallback, _ = flags.GetInt("default-seed-fallback")
	}
	if flags.Changed("paired-identity-separator") {
		config.PairedIdentitySeparator, _ = flags.GetString("paired-identity-separator")
	}
	if flags.Changed("pairing-size-detection") {
		config.PairingSizeDetection, _ = flags.GetBool("pairing-size-detection")
	}

	application.RefreshLogger()
	return nil
}
