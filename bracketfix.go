// Package bracketfix reconciles self-inconsistent Bracket of Death tournament
// records into an internally consistent single-elimination bracket.
//
// Each raw entry describes one team's view of a bracket match: who they
// played, what the score was, which slot the match occupies. Because entries
// are recorded independently per team, the two entries describing the same
// match can disagree about all three. Fix rebuilds matchups from the
// authoritative seed order, derives one result per matchup, mirrors it onto
// both records, recomputes every derived statistic, and proves the outcome
// with an independent validation pass.
//
// Data flows strictly forward: raw entries → normalized records → matchups →
// reconciled records → validation report. Persistence, backups, and progress
// reporting belong to the caller.
package bracketfix

import (
	"context"

	"github.com/bodtour/bracketfix/pkg/bracket"
	"github.com/bodtour/bracketfix/pkg/logging"
	"github.com/bodtour/bracketfix/pkg/reconcile"
	"github.com/bodtour/bracketfix/pkg/tournament"
	"github.com/bodtour/bracketfix/pkg/validate"
)

// Fix runs the full reconciliation pipeline over one tournament's raw
// entries. Entries that are not real match rows (sentinel rows, rows without
// identity) are filtered out; the returned entries cover only the reconciled
// match rows, which the caller merges back into its complete file.
//
// When no entry matches either known record shape, Fix returns a zero-record
// result and an error wrapping errors.ErrFormatUnknown rather than guessing.
func Fix(ctx context.Context, entries []tournament.Entry, opts ...Option) (*Result, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	logger := logging.FromContext(ctx)

	records, format, err := tournament.Normalize(entries, options.normalizer)
	if err != nil {
		return &Result{Format: format}, err
	}

	logger.Debug().
		Str("format", format.String()).
		Int("teams", len(records)).
		Msg("normalized tournament entries")

	result := &Result{Format: format}

	if options.sizeDetection && !isPowerOfTwo(len(records)) {
		result.Warnings = append(result.Warnings,
			warnUnevenBracket(len(records)))
		logger.Warn().Int("teams", len(records)).Msg("bracket size is not a power of two")
	}

	matchups, leftover := bracket.Build(records)
	for _, rec := range leftover {
		result.Warnings = append(result.Warnings, warnUnpaired(rec.TeamID))
		logger.Warn().Str("team", rec.TeamID).Msg("team could not be paired")
	}

	reconciler := reconcile.New(
		reconcile.WithWinningThreshold(options.threshold),
		reconcile.WithLoserCap(options.loserCap),
		reconcile.WithRound(options.round),
	)
	reconciled := reconciler.Reconcile(matchups)

	result.Records = reconciled.Records
	result.Entries = reconciled.Entries()
	result.Warnings = append(result.Warnings, reconciled.Warnings...)
	result.Stats = reconciled.Stats

	// The validator re-reads the corrected entries independently of the
	// builder and reconciler; it is the oracle, not a formality.
	validator := validate.New(validate.WithRound(options.round))
	result.Report = validator.Check(result.Entries)

	logger.Debug().
		Int("verified", len(result.Report.Verified)).
		Int("violations", len(result.Report.Violations)).
		Msg("validated reconciled entries")

	return result, nil
}

// isPowerOfTwo reports whether n is a clean bracket size.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
