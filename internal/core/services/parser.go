package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/cardledger/internal/core/domain"
	"github.com/custodia-labs/cardledger/internal/core/ports/driving"
)

// Ensure Parser implements the interface.
var _ driving.EventParser = (*Parser)(nil)

// numericToken matches an optionally signed or dollar-prefixed number
// with at most one decimal point.
var numericToken = regexp.MustCompile(`^[$+-]?(\d+(\.\d*)?|\.\d+)$`)

// minTokens is operation + account name + at least one operand.
const minTokens = 3

// Parser turns command lines such as "Charge Tom $500" into events.
type Parser struct{}

// NewParser creates a new event parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse splits line on whitespace into an operation keyword, an account
// name and operands, converting each operand with ParseDollars.
func (p *Parser) Parse(line string) (domain.Event, error) {
	tokens := strings.Fields(line)
	if len(tokens) < minTokens {
		return domain.Event{}, fmt.Errorf(
			"%w: event requires an operation, a name and at least one operand, got %d token(s)",
			domain.ErrParse, len(tokens))
	}

	op, ok := domain.ParseOperation(tokens[0])
	if !ok {
		return domain.Event{}, fmt.Errorf("%w: unknown operation %q", domain.ErrParse, tokens[0])
	}

	operands := make([]domain.Operand, 0, len(tokens)-2)
	for _, tok := range tokens[2:] {
		operand, err := p.ParseDollars(tok)
		if err != nil {
			return domain.Event{}, err
		}
		operands = append(operands, operand)
	}

	return domain.Event{
		Op:       op,
		Account:  tokens[1],
		Operands: operands,
		Raw:      line,
	}, nil
}

// ParseAny parses an event whose type is not known statically.
func (p *Parser) ParseAny(event any) (domain.Event, error) {
	line, ok := event.(string)
	if !ok {
		return domain.Event{}, fmt.Errorf("%w: event must be a string, got %T", domain.ErrValidation, event)
	}
	return p.Parse(line)
}

// ParseDollars converts a dollar token such as "$123.45" to an exact decimal.
// Tokens without a "$" are card numbers and are kept as strings so leading
// zeros and length survive.
func (p *Parser) ParseDollars(token string) (domain.Operand, error) {
	if !numericToken.MatchString(token) {
		return domain.Operand{}, fmt.Errorf("%w: %q is not numeric", domain.ErrValidation, token)
	}
	if !strings.HasPrefix(token, "$") {
		return domain.Digits(token), nil
	}
	amount, err := decimal.NewFromString(strings.TrimPrefix(token, "$"))
	if err != nil {
		return domain.Operand{}, fmt.Errorf("%w: %q: %v", domain.ErrValidation, token, err)
	}
	return domain.Amount(amount), nil
}
