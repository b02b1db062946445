package domain

import "github.com/shopspring/decimal"

// InvalidMarker is how an invalid-card balance is rendered.
const InvalidMarker = "error"

type balanceKind uint8

const (
	balanceUnset balanceKind = iota
	balanceActive
	balanceInvalid
)

// Balance is either Active with a decimal amount or Invalid.
// The zero value is unset and is treated as a missing field.
type Balance struct {
	kind   balanceKind
	amount decimal.Decimal
}

// Active returns a numeric balance.
func Active(amount decimal.Decimal) Balance {
	return Balance{kind: balanceActive, amount: amount}
}

// Invalid returns the frozen balance of an account whose card failed Luhn validation.
func Invalid() Balance {
	return Balance{kind: balanceInvalid}
}

// IsSet reports whether the balance holds either variant.
func (b Balance) IsSet() bool {
	return b.kind != balanceUnset
}

// IsInvalid reports whether this is the invalid-card marker.
func (b Balance) IsInvalid() bool {
	return b.kind == balanceInvalid
}

// Amount returns the numeric balance. ok is false for Invalid and unset balances.
func (b Balance) Amount() (amount decimal.Decimal, ok bool) {
	if b.kind != balanceActive {
		return decimal.Zero, false
	}
	return b.amount, true
}

// Equal reports whether two balances hold the same variant and value.
func (b Balance) Equal(other Balance) bool {
	if b.kind != other.kind {
		return false
	}
	return b.kind != balanceActive || b.amount.Equal(other.amount)
}

// String renders the balance for summaries: "$" plus the fixed-point amount
// at the decimal's own scale, or the invalid marker.
func (b Balance) String() string {
	switch b.kind {
	case balanceActive:
		return "$" + FormatDecimal(b.amount)
	case balanceInvalid:
		return InvalidMarker
	default:
		return "<unset>"
	}
}

// FormatDecimal renders d in fixed-point notation without rounding,
// keeping as many fractional digits as d carries.
func FormatDecimal(d decimal.Decimal) string {
	places := int32(0)
	if exp := d.Exponent(); exp < 0 {
		places = -exp
	}
	return d.StringFixed(places)
}
