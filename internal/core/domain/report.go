package domain

import "time"

// SummaryLine is one row of the end-of-run summary.
type SummaryLine struct {
	Name    string
	Balance Balance
}

// String renders the line as "name: balance".
func (l SummaryLine) String() string {
	return l.Name + ": " + l.Balance.String()
}

// Report is the result of processing a batch of events.
type Report struct {
	// RunID identifies the run in log records.
	RunID string

	// Summary is the rendered summary, one line per account.
	Summary string

	// Lines holds the same summary as structured rows, sorted by name.
	Lines []SummaryLine

	// Events is the number of events processed.
	Events int

	// Applied is the number of events that changed the ledger.
	Applied int

	// Declined is the number of events rejected by a business rule.
	Declined int

	// Duration is how long processing took.
	Duration time.Duration
}
