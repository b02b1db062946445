package domain

// Status reports whether a ledger mutation took effect.
type Status int

// Outcome statuses.
const (
	Applied Status = iota + 1
	Declined
)

// String returns a lower-case label for the status.
func (s Status) String() string {
	switch s {
	case Applied:
		return "applied"
	case Declined:
		return "declined"
	default:
		return "unknown"
	}
}

// DeclineReason explains a Declined outcome.
type DeclineReason int

// Decline reasons.
const (
	ReasonNone DeclineReason = iota
	ReasonInvalidCard
	ReasonOverLimit
)

// String returns a short description of the reason.
func (r DeclineReason) String() string {
	switch r {
	case ReasonInvalidCard:
		return "invalid card"
	case ReasonOverLimit:
		return "over limit"
	default:
		return "none"
	}
}

// Outcome is the result of a ledger operation that did not fail structurally.
// Balance is the account balance after the operation; for a declined
// operation it is the unchanged balance.
type Outcome struct {
	Status  Status
	Reason  DeclineReason
	Balance Balance
}

// IsDeclined reports whether the operation was rejected by a business rule.
func (o Outcome) IsDeclined() bool {
	return o.Status == Declined
}
