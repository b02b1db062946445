// Package sink provides EventSink implementations for the ledger.
package sink

import (
	"log/slog"
	"sync"

	"github.com/custodia-labs/cardledger/internal/core/ports/driven"
)

// Ensure implementations satisfy the interface.
var (
	_ driven.EventSink = (*SlogSink)(nil)
	_ driven.EventSink = Discard{}
	_ driven.EventSink = (*Counter)(nil)
)

// SlogSink forwards ledger events to a structured logger.
type SlogSink struct {
	log *slog.Logger
}

// NewSlogSink wraps log. A nil logger uses slog.Default().
func NewSlogSink(log *slog.Logger) *SlogSink {
	if log == nil {
		log = slog.Default()
	}
	return &SlogSink{log: log}
}

// Info logs at info level.
func (s *SlogSink) Info(msg string, args ...any) {
	s.log.Info(msg, args...)
}

// Warn logs at warn level.
func (s *SlogSink) Warn(msg string, args ...any) {
	s.log.Warn(msg, args...)
}

// Discard drops every event.
type Discard struct{}

// Info does nothing.
func (Discard) Info(string, ...any) {}

// Warn does nothing.
func (Discard) Warn(string, ...any) {}

// Counter counts warnings before handing events to the next sink.
// The CLI uses it to report how many warnings a run produced.
type Counter struct {
	next driven.EventSink

	mu    sync.Mutex
	warns int
}

// NewCounter wraps next. A nil next discards events.
func NewCounter(next driven.EventSink) *Counter {
	if next == nil {
		next = Discard{}
	}
	return &Counter{next: next}
}

// Info forwards to the wrapped sink.
func (c *Counter) Info(msg string, args ...any) {
	c.next.Info(msg, args...)
}

// Warn counts the warning and forwards it.
func (c *Counter) Warn(msg string, args ...any) {
	c.mu.Lock()
	c.warns++
	c.mu.Unlock()
	c.next.Warn(msg, args...)
}

// Warnings returns the number of warnings seen so far.
func (c *Counter) Warnings() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.warns
}
