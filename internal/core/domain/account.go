package domain

import "github.com/shopspring/decimal"

// Account is one credit-card account in the ledger.
type Account struct {
	// Name is the case-sensitive account key.
	Name string

	// CardNumber is the digit string given at creation. Empty means missing.
	CardNumber string

	// Limit is the credit limit fixed at creation. Valid is false when missing.
	Limit decimal.NullDecimal

	// Balance is the current balance or the invalid-card marker.
	Balance Balance
}

// NewAccount returns an account with the given limit and balance.
func NewAccount(name, cardNumber string, limit decimal.Decimal, balance Balance) Account {
	return Account{
		Name:       name,
		CardNumber: cardNumber,
		Limit:      decimal.NullDecimal{Decimal: limit, Valid: true},
		Balance:    balance,
	}
}

// MissingFields lists the names of required fields that are absent.
func (a *Account) MissingFields() []string {
	var missing []string
	if !a.Balance.IsSet() {
		missing = append(missing, "balance")
	}
	if a.CardNumber == "" {
		missing = append(missing, "card_number")
	}
	if !a.Limit.Valid {
		missing = append(missing, "limit")
	}
	return missing
}
