// Package domain defines the core business entities for cardledger.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types:
//
//   - Account: A credit-card account with its card number, limit and balance
//   - Balance: Either an active decimal balance or the invalid-card marker
//   - LuhnChecksum: Validation of digit-string card numbers
//   - Event: One parsed ledger command (open, charge, credit)
//   - Outcome: The applied/declined result of a ledger mutation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library and github.com/shopspring/decimal. All other
// packages depend on domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, shopspring/decimal
//   - Cannot Import: Any internal/ package, any other external dependency
package domain
