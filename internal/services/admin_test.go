package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshXitachi/winmicro-wallet/internal/models"
	"github.com/harshXitachi/winmicro-wallet/internal/repositories"
)

func TestAdminService_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockSettingsStore(ctrl)
	cache := NewMockSettingsInvalidator(ctrl)

	updated := models.DefaultSettings()
	updated.RatePercent = decimal.RequireFromString("3.5")

	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	cache.EXPECT().Invalidate(gomock.Any())

	svc := NewAdminService(store, cache, nil, nil, nil, nil, nil, nil)

	require.NoError(t, svc.UpdateSettings(context.Background(), updated))
}

func TestAdminService_UpdateSettings_InvalidRate(t *testing.T) {
	svc := NewAdminService(nil, nil, nil, nil, nil, nil, nil, nil)

	bad := models.DefaultSettings()
	bad.RatePercent = decimal.RequireFromString("101")
	assert.ErrorIs(t, svc.UpdateSettings(context.Background(), bad), ErrInvalidRate)

	bad.RatePercent = decimal.RequireFromString("-1")
	assert.ErrorIs(t, svc.UpdateSettings(context.Background(), bad), ErrInvalidRate)
}

func TestAdminService_WithdrawCommission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	operatorID := uuid.New()

	adminWallets := NewMockAdminWalletWriter(ctrl)
	journal := NewMockJournalWriter(ctrl)

	adminWallets.EXPECT().Debit(gomock.Any(), models.INR, decEq("300")).
		Return(decimal.RequireFromString("700"), nil)

	var entry models.TransactionDB
	journal.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.TransactionDB) error {
			entry = e
			return nil
		})

	svc := NewAdminService(nil, nil, adminWallets, nil, nil, journal, nil, nil)

	got, err := svc.WithdrawCommission(context.Background(), operatorID, models.INR, decimal.RequireFromString("300"), "bank:HDFC0001/1234")
	require.NoError(t, err)
	assert.Equal(t, models.KindAdminCommissionWithdrawal, got.Kind)
	assert.Equal(t, operatorID, entry.UserID)
	assert.Contains(t, entry.Description, "bank:HDFC0001/1234")
}

func TestAdminService_WithdrawCommission_Insufficient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminWallets := NewMockAdminWalletWriter(ctrl)
	adminWallets.EXPECT().Debit(gomock.Any(), models.USD, decEq("300")).
		Return(decimal.Decimal{}, repositories.ErrNotEnoughBalance)

	svc := NewAdminService(nil, nil, adminWallets, nil, nil, nil, nil, nil)

	_, err := svc.WithdrawCommission(context.Background(), uuid.New(), models.USD, decimal.RequireFromString("300"), "paypal:ops@example.com")
	assert.ErrorIs(t, err, ErrPlatformInsufficient)
}

func TestAdminService_ApproveWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entry := &models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        uuid.New(),
		Amount:        decimal.RequireFromString("600"),
		Currency:      models.INR,
		Kind:          models.KindWithdrawal,
		Status:        models.StatusPending,
	}

	queue := NewMockWithdrawalQueue(ctrl)
	journal := NewMockJournalWriter(ctrl)

	queue.EXPECT().GetByID(gomock.Any(), entry.TransactionID).Return(entry, nil)
	journal.EXPECT().TransitionStatus(gomock.Any(), entry.TransactionID, models.StatusPending, models.StatusCompleted, gomock.Any()).
		Return(nil)

	svc := NewAdminService(nil, nil, nil, nil, nil, journal, queue, nil)

	got, err := svc.ApproveWithdrawal(context.Background(), entry.TransactionID, "NEFT-123")
	require.NoError(t, err)
	assert.Equal(t, entry.TransactionID, got.TransactionID)
}

func TestAdminService_ApproveWithdrawal_NotPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entry := &models.TransactionDB{
		TransactionID: uuid.New(),
		Kind:          models.KindWithdrawal,
		Status:        models.StatusCompleted,
	}

	queue := NewMockWithdrawalQueue(ctrl)
	queue.EXPECT().GetByID(gomock.Any(), entry.TransactionID).Return(entry, nil)

	svc := NewAdminService(nil, nil, nil, nil, nil, nil, queue, nil)

	_, err := svc.ApproveWithdrawal(context.Background(), entry.TransactionID, "")
	assert.ErrorIs(t, err, ErrNotAWithdrawal)
}

func TestAdminService_RejectWithdrawal_ReversesDebit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	entry := &models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Amount:        decimal.RequireFromString("600"),
		Currency:      models.INR,
		Kind:          models.KindWithdrawal,
		Status:        models.StatusPending,
	}

	queue := NewMockWithdrawalQueue(ctrl)
	journal := NewMockJournalWriter(ctrl)
	wallets := NewMockWalletWriter(ctrl)

	queue.EXPECT().GetByID(gomock.Any(), entry.TransactionID).Return(entry, nil)
	journal.EXPECT().TransitionStatus(gomock.Any(), entry.TransactionID, models.StatusPending, models.StatusFailed, gomock.Any()).
		Return(nil)
	// The user gets the held amount back.
	wallets.EXPECT().Credit(gomock.Any(), userID, models.INR, decEq("600")).
		Return(decimal.RequireFromString("1000"), nil)

	svc := NewAdminService(nil, nil, nil, nil, wallets, journal, queue, nil)

	_, err := svc.RejectWithdrawal(context.Background(), entry.TransactionID, "kyc mismatch")
	require.NoError(t, err)
}

func TestAdminService_RejectWithdrawal_RaceLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entry := &models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        uuid.New(),
		Amount:        decimal.RequireFromString("600"),
		Currency:      models.INR,
		Kind:          models.KindWithdrawal,
		Status:        models.StatusPending,
	}

	queue := NewMockWithdrawalQueue(ctrl)
	journal := NewMockJournalWriter(ctrl)

	queue.EXPECT().GetByID(gomock.Any(), entry.TransactionID).Return(entry, nil)
	// Another operator approved between the read and the transition: no
	// compensating credit may happen.
	journal.EXPECT().TransitionStatus(gomock.Any(), entry.TransactionID, models.StatusPending, models.StatusFailed, gomock.Any()).
		Return(repositories.ErrStaleTransition)

	svc := NewAdminService(nil, nil, nil, nil, nil, journal, queue, nil)

	_, err := svc.RejectWithdrawal(context.Background(), entry.TransactionID, "")
	assert.ErrorIs(t, err, ErrNotAWithdrawal)
}

func TestAdminService_PendingWithdrawals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	queue := NewMockWithdrawalQueue(ctrl)
	queue.EXPECT().ListPendingWithdrawals(gomock.Any(), 50, 0).
		Return([]models.TransactionDB{{Kind: models.KindWithdrawal}}, nil)

	svc := NewAdminService(nil, nil, nil, nil, nil, nil, queue, nil)

	entries, err := svc.PendingWithdrawals(context.Background(), 0, -5)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAdminService_ListWallets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminRead := NewMockAdminWalletReader(ctrl)
	adminRead.EXPECT().GetAll(gomock.Any()).Return([]models.AdminWalletDB{
		{Currency: models.INR, Balance: decimal.RequireFromString("1200")},
	}, nil)

	svc := NewAdminService(nil, nil, nil, adminRead, nil, nil, nil, nil)

	wallets, err := svc.ListWallets(context.Background())
	require.NoError(t, err)
	require.Len(t, wallets, 1)
	assert.Equal(t, models.INR, wallets[0].Currency)
}
