package bracketfix

import (
	"fmt"

	"github.com/bodtour/bracketfix/pkg/reconcile"
	"github.com/bodtour/bracketfix/pkg/tournament"
)

// options collects pipeline configuration.
type options struct {
	normalizer    *tournament.Config
	round         tournament.Round
	threshold     int
	loserCap      int
	sizeDetection bool
}

// Option configures the Fix pipeline.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		normalizer:    tournament.DefaultConfig(),
		round:         tournament.RoundOf16,
		threshold:     reconcile.DefaultWinningThreshold,
		loserCap:      reconcile.DefaultLoserCap,
		sizeDetection: true,
	}
}

// WithSeparator sets the paired-identity separator (default " & ").
func WithSeparator(sep string) Option {
	return func(o *options) { o.normalizer.Separator = sep }
}

// WithDefaultSeed sets the fallback seed for records lacking one (default 999).
func WithDefaultSeed(seed int) Option {
	return func(o *options) { o.normalizer.DefaultSeed = seed }
}

// WithWinningThreshold sets the minimum credible winning score (default 11).
func WithWinningThreshold(n int) Option {
	return func(o *options) { o.threshold = n }
}

// WithLoserCap sets the ceiling for substituted losing scores (default 10).
func WithLoserCap(n int) Option {
	return func(o *options) { o.loserCap = n }
}

// WithRound sets the bracket round to reconcile (default round of 16).
func WithRound(round tournament.Round) Option {
	return func(o *options) { o.round = round }
}

// WithSizeDetection toggles the warning for bracket sizes that are not a
// power of two (default on).
func WithSizeDetection(enabled bool) Option {
	return func(o *options) { o.sizeDetection = enabled }
}

func warnUnevenBracket(teams int) string {
	return fmt.Sprintf("bracket size %d is not a power of two; pairing degrades without bye handling", teams)
}

func warnUnpaired(team string) string {
	return fmt.Sprintf("odd bracket size: %s could not be paired and was dropped from the bracket round", team)
}
