package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent structural failures while processing events.
// Business-rule rejections are not errors; see Outcome.
var (
	// ErrParse indicates a malformed command: too few tokens,
	// an unknown operation or the wrong number of operands.
	ErrParse = errors.New("parse error")

	// ErrValidation indicates a value that is not acceptable where it appears:
	// a non-numeric operand, a non-string event, a non-digit card number
	// or a negative limit.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a requested account does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingField indicates an account record lacks its card number,
	// limit or balance. Records created through Open always carry all three.
	ErrMissingField = errors.New("missing field")

	// ErrType indicates an operand of the wrong kind reached the ledger,
	// e.g. a bare digit string where a dollar amount was required.
	ErrType = errors.New("type error")

	// ErrNotConfigured indicates a service was built without a required dependency.
	ErrNotConfigured = errors.New("not configured")
)

// EventError reports the position of the event that stopped a run.
type EventError struct {
	// Index is the 1-based position of the event in its input.
	Index int

	// LineNo is the 1-based input line of the event, or 0 when the
	// source does not read lines.
	LineNo int

	// Line is the raw event text.
	Line string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *EventError) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("event %d (line %d) %q: %v", e.Index, e.LineNo, e.Line, e.Err)
	}
	return fmt.Sprintf("event %d %q: %v", e.Index, e.Line, e.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *EventError) Unwrap() error {
	return e.Err
}
