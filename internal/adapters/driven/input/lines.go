package input

import (
	"bufio"
	"io"
	"strings"

	"github.com/custodia-labs/cardledger/internal/core/ports/driven"
)

// Ensure LineSource implements the interfaces.
var (
	_ driven.EventSource = (*LineSource)(nil)
	_ driven.Positioner  = (*LineSource)(nil)
)

// maxLineSize bounds a single command line.
const maxLineSize = 1 << 20

// LineSource yields one event per non-blank line. Lines whose first
// non-space character is '#' are comments.
type LineSource struct {
	scanner *bufio.Scanner
	line    int
	pos     int
}

// NewLineSource reads events from r.
func NewLineSource(r io.Reader) *LineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &LineSource{scanner: scanner}
}

// Next returns the next command line.
func (s *LineSource) Next() (any, bool) {
	for s.scanner.Scan() {
		s.line++
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.pos = s.line
		return line, true
	}
	return nil, false
}

// Position returns the 1-based line number of the last event returned.
func (s *LineSource) Position() int {
	return s.pos
}

// Err returns the first read error, if any.
func (s *LineSource) Err() error {
	return s.scanner.Err()
}
