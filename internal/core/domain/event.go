package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Operation identifies which ledger operation an event performs.
type Operation int

// Supported operations.
const (
	OpOpen Operation = iota + 1
	OpCharge
	OpCredit
)

// ParseOperation maps a command keyword to an Operation, ignoring case.
func ParseOperation(keyword string) (Operation, bool) {
	switch strings.ToLower(keyword) {
	case "add":
		return OpOpen, true
	case "charge":
		return OpCharge, true
	case "credit":
		return OpCredit, true
	default:
		return 0, false
	}
}

// String returns the command keyword for the operation.
func (o Operation) String() string {
	switch o {
	case OpOpen:
		return "Add"
	case OpCharge:
		return "Charge"
	case OpCredit:
		return "Credit"
	default:
		return "Unknown"
	}
}

// Arity is the number of operands the operation takes.
func (o Operation) Arity() int {
	if o == OpOpen {
		return 2
	}
	return 1
}

// OperandKind distinguishes dollar amounts from bare digit strings.
type OperandKind int

// Operand kinds.
const (
	OperandAmount OperandKind = iota + 1
	OperandDigits
)

// Operand is one converted command argument: either an exact decimal amount
// (from a "$" token) or a digit string kept verbatim (a card number).
type Operand struct {
	Kind   OperandKind
	Amount decimal.Decimal
	Digits string
}

// Amount wraps a decimal as an operand.
func Amount(d decimal.Decimal) Operand {
	return Operand{Kind: OperandAmount, Amount: d}
}

// Digits wraps a digit string as an operand.
func Digits(s string) Operand {
	return Operand{Kind: OperandDigits, Digits: s}
}

// String renders the operand the way it appeared in the command.
func (o Operand) String() string {
	if o.Kind == OperandAmount {
		return "$" + FormatDecimal(o.Amount)
	}
	return o.Digits
}

// Event is one parsed command line.
type Event struct {
	Op       Operation
	Account  string
	Operands []Operand
	Raw      string
}
