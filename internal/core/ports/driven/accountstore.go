package driven

import (
	"context"

	"github.com/custodia-labs/cardledger/internal/core/domain"
)

// AccountStore holds the ledger's accounts for one run.
type AccountStore interface {
	// Save stores an account, replacing any account with the same name.
	Save(ctx context.Context, account domain.Account) error

	// Get retrieves an account by name.
	// Returns domain.ErrNotFound if the name is absent.
	Get(ctx context.Context, name string) (*domain.Account, error)

	// List returns all accounts in unspecified order.
	List(ctx context.Context) ([]domain.Account, error)
}
