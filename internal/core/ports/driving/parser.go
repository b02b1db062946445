package driving

import "github.com/custodia-labs/cardledger/internal/core/domain"

// EventParser turns raw command text into events.
type EventParser interface {
	// Parse tokenizes one command line.
	Parse(line string) (domain.Event, error)

	// ParseAny parses an event of unknown type. Non-string values fail
	// with domain.ErrValidation.
	ParseAny(event any) (domain.Event, error)

	// ParseDollars converts one operand token.
	ParseDollars(token string) (domain.Operand, error)
}
