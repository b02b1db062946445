package memory

import (
	"context"
	"fmt"

	"github.com/custodia-labs/cardledger/internal/core/domain"
	"github.com/custodia-labs/cardledger/internal/core/ports/driven"
)

// Ensure AccountStore implements the interface.
var _ driven.AccountStore = (*AccountStore)(nil)

// AccountStore is an in-memory implementation of driven.AccountStore.
// A ledger run owns its store exclusively, so there is no locking.
type AccountStore struct {
	accounts map[string]domain.Account
}

// NewAccountStore creates a new in-memory account store.
func NewAccountStore() *AccountStore {
	return &AccountStore{
		accounts: make(map[string]domain.Account),
	}
}

// Save stores an account, overwriting any account with the same name.
func (s *AccountStore) Save(_ context.Context, account domain.Account) error {
	s.accounts[account.Name] = account
	return nil
}

// Get retrieves a copy of the named account.
func (s *AccountStore) Get(_ context.Context, name string) (*domain.Account, error) {
	account, ok := s.accounts[name]
	if !ok {
		return nil, fmt.Errorf("%w: account %q", domain.ErrNotFound, name)
	}
	return &account, nil
}

// List returns all accounts.
func (s *AccountStore) List(_ context.Context) ([]domain.Account, error) {
	result := make([]domain.Account, 0, len(s.accounts))
	for name := range s.accounts {
		result = append(result, s.accounts[name])
	}
	return result, nil
}
