package driven

// EventSource yields events in input order.
//
// Next returns the next event and true, or nil and false when the input
// is exhausted or has failed; Err reports the failure, if any.
// Events are usually strings but embedding formats such as JSON may yield
// other values, which the parser rejects.
type EventSource interface {
	Next() (any, bool)
	Err() error
}

// Positioner is implemented by sources that read physical lines, so errors
// can point at the line rather than the event count.
type Positioner interface {
	// Position returns the 1-based line of the last event returned by Next.
	Position() int
}
