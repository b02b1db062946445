package input

import (
	"strings"

	"github.com/custodia-labs/cardledger/internal/core/ports/driven"
)

// Ensure LiteralSource implements the interface.
var _ driven.EventSource = (*LiteralSource)(nil)

// keywords start a new event when splitting literal input.
var keywords = map[string]bool{
	"Add":    true,
	"Charge": true,
	"Credit": true,
}

// LiteralSource yields events embedded in one string, such as
// "Add Tom 4111111111111111 $1000 Charge Tom $500".
type LiteralSource struct {
	events []string
	pos    int
}

// NewLiteralSource splits s into events.
func NewLiteralSource(s string) *LiteralSource {
	return &LiteralSource{events: SplitEvents(s)}
}

// Next returns the next event.
func (s *LiteralSource) Next() (any, bool) {
	if s.pos >= len(s.events) {
		return nil, false
	}
	event := s.events[s.pos]
	s.pos++
	return event, true
}

// Err always returns nil.
func (s *LiteralSource) Err() error {
	return nil
}

// SplitEvents breaks s into events, starting a new event at every
// Add, Charge or Credit token. Keywords are matched case-sensitively so
// that lower-case account names are not mistaken for commands.
func SplitEvents(s string) []string {
	var (
		events  []string
		current []string
	)
	for _, tok := range strings.Fields(s) {
		if keywords[tok] && len(current) > 0 {
			events = append(events, strings.Join(current, " "))
			current = current[:0]
		}
		current = append(current, tok)
	}
	if len(current) > 0 {
		events = append(events, strings.Join(current, " "))
	}
	return events
}
