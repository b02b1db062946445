package driving

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/cardledger/internal/core/domain"
)

// LedgerService applies ledger operations to accounts.
//
// Structural problems are returned as errors; business-rule rejections
// are reported through a Declined outcome.
type LedgerService interface {
	// Open creates or replaces an account.
	Open(ctx context.Context, name, card string, limit decimal.Decimal) (domain.Outcome, error)

	// Charge adds amount to an account's balance unless it would exceed the limit.
	Charge(ctx context.Context, name string, amount domain.Operand) (domain.Outcome, error)

	// Credit subtracts amount from an account's balance.
	Credit(ctx context.Context, name string, amount domain.Operand) (domain.Outcome, error)

	// Get looks up an account and checks that it is complete.
	Get(ctx context.Context, name string) (*domain.Account, error)

	// Apply dispatches a parsed event to Open, Charge or Credit.
	Apply(ctx context.Context, event domain.Event) (domain.Outcome, error)

	// Summary renders the current ledger.
	Summary(ctx context.Context) (string, error)

	// Lines returns the current ledger as sorted summary lines.
	Lines(ctx context.Context) ([]domain.SummaryLine, error)
}
