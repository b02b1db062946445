package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/cardledger/internal/core/ports/driven"
)

// Ensure JSONSource implements the interface.
var _ driven.EventSource = (*JSONSource)(nil)

// JSONSource streams events from a JSON array such as
// ["Add Tom 4111111111111111 $1000", "Charge Tom $500"].
// Empty input yields no events. Elements are yielded as decoded, so a
// non-string element reaches the parser and is rejected there.
type JSONSource struct {
	dec     *json.Decoder
	started bool
	err     error
}

// NewJSONSource reads a JSON array from r.
func NewJSONSource(r io.Reader) *JSONSource {
	return &JSONSource{dec: json.NewDecoder(r)}
}

// Next returns the next array element.
func (s *JSONSource) Next() (any, bool) {
	if s.err != nil {
		return nil, false
	}
	if !s.started {
		s.started = true
		tok, err := s.dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, false
		}
		if err != nil {
			s.err = fmt.Errorf("read JSON events: %w", err)
			return nil, false
		}
		if delim, ok := tok.(json.Delim); !ok || delim != '[' {
			s.err = fmt.Errorf("read JSON events: expected array, got %v", tok)
			return nil, false
		}
	}
	if !s.dec.More() {
		return nil, false
	}
	var event any
	if err := s.dec.Decode(&event); err != nil {
		s.err = fmt.Errorf("read JSON events: %w", err)
		return nil, false
	}
	return event, true
}

// Err returns the first decode error, if any.
func (s *JSONSource) Err() error {
	return s.err
}
