package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cardledger/internal/core/domain"
)

func TestNewAccountStore(t *testing.T) {
	store := NewAccountStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.accounts)
}

func TestAccountStore_Save_Get(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	account := domain.NewAccount("Tom", "4111111111111111", decimal.NewFromInt(1000), domain.Active(decimal.Zero))
	require.NoError(t, store.Save(ctx, account))

	saved, err := store.Get(ctx, "Tom")
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", saved.CardNumber)
	assert.True(t, saved.Limit.Decimal.Equal(decimal.NewFromInt(1000)))
	assert.True(t, saved.Balance.Equal(domain.Active(decimal.Zero)))
}

func TestAccountStore_Save_Overwrites(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewAccount("Tom", "4111111111111111", decimal.NewFromInt(1000), domain.Active(decimal.NewFromInt(500)))))
	require.NoError(t, store.Save(ctx, domain.NewAccount("Tom", "1234567890123456", decimal.NewFromInt(50), domain.Invalid())))

	saved, err := store.Get(ctx, "Tom")
	require.NoError(t, err)
	assert.Equal(t, "1234567890123456", saved.CardNumber)
	assert.True(t, saved.Balance.IsInvalid())

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAccountStore_Get_NotFound(t *testing.T) {
	store := NewAccountStore()

	_, err := store.Get(context.Background(), "Nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountStore_Get_ReturnsCopy(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.NewAccount("Tom", "4111111111111111", decimal.NewFromInt(1000), domain.Active(decimal.Zero))))

	got, err := store.Get(ctx, "Tom")
	require.NoError(t, err)
	got.Balance = domain.Invalid()

	again, err := store.Get(ctx, "Tom")
	require.NoError(t, err)
	assert.False(t, again.Balance.IsInvalid())
}

func TestAccountStore_Names_AreCaseSensitive(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, domain.NewAccount("tom", "4111111111111111", decimal.NewFromInt(1), domain.Active(decimal.Zero))))

	_, err := store.Get(ctx, "Tom")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountStore_List(t *testing.T) {
	store := NewAccountStore()
	ctx := context.Background()

	for _, name := range []string{"Quincy", "Tom", "Lisa"} {
		require.NoError(t, store.Save(ctx, domain.NewAccount(name, "4111111111111111", decimal.NewFromInt(1), domain.Active(decimal.Zero))))
	}

	all, err := store.List(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for _, a := range all {
		names = append(names, a.Name)
	}
	assert.ElementsMatch(t, []string{"Quincy", "Tom", "Lisa"}, names)
}
