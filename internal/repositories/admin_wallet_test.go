package repositories

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshXitachi/winmicro-wallet/internal/models"
)

func TestAdminWalletCreditCommission(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewAdminWalletRepository(db, nil)

	require.NoError(t, repo.CreditCommission(ctx, models.INR, decimal.NewFromInt(20)))
	require.NoError(t, repo.CreditCommission(ctx, models.INR, decimal.NewFromInt(10)))
	require.NoError(t, repo.CreditCommission(ctx, models.USDT, decimal.NewFromFloat(0.5)))

	wallets, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, wallets, 2)

	byCurrency := map[models.Currency]models.AdminWalletDB{}
	for _, w := range wallets {
		byCurrency[w.Currency] = w
	}
	assert.True(t, byCurrency[models.INR].Balance.Equal(decimal.NewFromInt(30)))
	assert.True(t, byCurrency[models.INR].TotalEarned.Equal(decimal.NewFromInt(30)))
	assert.True(t, byCurrency[models.USDT].Balance.Equal(decimal.NewFromFloat(0.5)))
}

func TestAdminWalletDebit(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	repo := NewAdminWalletRepository(db, nil)
	require.NoError(t, repo.CreditCommission(ctx, models.INR, decimal.NewFromInt(100)))

	balance, err := repo.Debit(ctx, models.INR, decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(60)))

	t.Run("cannot overdraw", func(t *testing.T) {
		_, err := repo.Debit(ctx, models.INR, decimal.NewFromInt(1000))
		assert.ErrorIs(t, err, ErrNotEnoughBalance)
	})

	t.Run("withdrawing commission never touches total earned", func(t *testing.T) {
		wallets, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, wallets, 1)
		assert.True(t, wallets[0].Balance.Equal(decimal.NewFromInt(60)))
		assert.True(t, wallets[0].TotalEarned.Equal(decimal.NewFromInt(100)))
	})

	t.Run("debiting a currency that never earned", func(t *testing.T) {
		_, err := repo.Debit(ctx, models.USD, decimal.NewFromInt(1))
		assert.ErrorIs(t, err, ErrNotEnoughBalance)
	})
}
