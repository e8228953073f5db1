package bracketfix

import (
	"github.com/bodtour/bracketfix/pkg/reconcile"
	"github.com/bodtour/bracketfix/pkg/tournament"
	"github.com/bodtour/bracketfix/pkg/validate"
)

// Result is the outcome of fixing one tournament's entries.
type Result struct {
	// Format is the detected record shape.
	Format tournament.Format

	// Records are the reconciled team records in output order.
	Records []*tournament.TeamRecord

	// Entries are the corrected raw entries backing Records, ready to be
	// merged into the caller's complete file.
	Entries []tournament.Entry

	// Warnings lists every policy decision made on bad data: default score
	// substitutions, attribution disagreements, uneven bracket sizes.
	Warnings []string

	// Report is the independent consistency check over Entries.
	Report *validate.Report

	// Stats summarizes reconciliation.
	Stats reconcile.Statistics
}

// OK reports whether validation found no violations.
func (r *Result) OK() bool {
	return r.Report != nil && r.Report.OK()
}

// HasWarnings reports whether any policy decisions were made on bad data.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
