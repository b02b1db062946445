// Package input provides driven.EventSource implementations.
//
// Sources:
//   - LineSource: one command per line from a file or stdin
//   - LiteralSource: commands embedded in a single string
//   - JSONSource: a JSON array of command strings
//
// Watch re-runs a callback whenever an input file changes.
package input
