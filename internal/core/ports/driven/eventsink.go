package driven

// EventSink receives informational messages produced while processing.
// Arguments follow log/slog's alternating key/value convention.
type EventSink interface {
	// Info records a routine event such as an account being opened.
	Info(msg string, args ...any)

	// Warn records a declined operation or an invalid card.
	Warn(msg string, args ...any)
}
