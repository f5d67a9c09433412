package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshXitachi/winmicro-wallet/internal/models"
	"github.com/harshXitachi/winmicro-wallet/internal/repositories"
)

// decMatcher matches decimal arguments by numeric value rather than internal
// representation.
type decMatcher struct {
	want decimal.Decimal
}

func (m decMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decMatcher) String() string {
	return "decimal equal to " + m.want.String()
}

func decEq(s string) gomock.Matcher {
	return decMatcher{want: decimal.RequireFromString(s)}
}

func TestLedgerService_GetUserBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	reader := NewMockWalletReader(ctrl)
	reader.EXPECT().GetByUserID(gomock.Any(), userID).Return(map[models.Currency]decimal.Decimal{
		models.INR:  decimal.RequireFromString("150.25"),
		models.USD:  decimal.Zero,
		models.USDT: decimal.Zero,
	}, nil)

	svc := NewLedgerService(nil, reader, nil, nil, nil, nil, nil, nil)

	balances, err := svc.GetUserBalance(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, balances[models.INR].Equal(decimal.RequireFromString("150.25")))
	assert.True(t, balances[models.USD].IsZero())
}

func TestLedgerService_Transfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fromID := uuid.New()
	toID := uuid.New()
	toUsername := "worker1"

	wallets := NewMockWalletWriter(ctrl)
	journal := NewMockJournalWriter(ctrl)
	adminWallets := NewMockAdminWalletWriter(ctrl)
	settings := NewMockSettingsProvider(ctrl)
	users := NewMockRecipientResolver(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)
	users.EXPECT().GetByUsernameOrEmail(gomock.Any(), &toUsername, nil).
		Return(&models.UserDB{UserID: toID, Username: toUsername}, nil)

	// 1000 at 2%: sender -1000, recipient +980, platform +20.
	wallets.EXPECT().Debit(gomock.Any(), fromID, models.INR, decEq("1000")).
		Return(decimal.Zero, nil)
	wallets.EXPECT().Credit(gomock.Any(), toID, models.INR, decEq("980")).
		Return(decimal.RequireFromString("980"), nil)
	adminWallets.EXPECT().CreditCommission(gomock.Any(), models.INR, decEq("20")).
		Return(nil)

	var entries []models.TransactionDB
	journal.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.TransactionDB) error {
			entries = append(entries, e)
			return nil
		}).Times(2)

	svc := NewLedgerService(wallets, nil, journal, nil, adminWallets, settings, users, nil)

	refID, received, err := svc.Transfer(context.Background(), fromID, toUsername, models.INR, decimal.RequireFromString("1000"), "rent")
	require.NoError(t, err)
	assert.True(t, received.Equal(decimal.RequireFromString("980")))
	assert.NotEqual(t, uuid.Nil, refID)

	require.Len(t, entries, 2)
	debit, credit := entries[0], entries[1]

	assert.Equal(t, models.DirectionDebit, debit.Direction)
	assert.Equal(t, fromID, debit.UserID)
	assert.True(t, debit.Amount.Equal(decimal.RequireFromString("1000")))
	assert.True(t, debit.Commission.Equal(decimal.RequireFromString("20")))

	assert.Equal(t, models.DirectionCredit, credit.Direction)
	assert.Equal(t, toID, credit.UserID)
	assert.True(t, credit.Amount.Equal(decimal.RequireFromString("980")))

	// Both sides carry the same reference so the pair can be correlated.
	require.NotNil(t, debit.ExternalRef)
	require.NotNil(t, credit.ExternalRef)
	assert.Equal(t, *debit.ExternalRef, *credit.ExternalRef)
	assert.Equal(t, refID.String(), *debit.ExternalRef)
}

func TestLedgerService_Transfer_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fromID := uuid.New()
	toUsername := "worker1"

	wallets := NewMockWalletWriter(ctrl)
	settings := NewMockSettingsProvider(ctrl)
	users := NewMockRecipientResolver(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)
	users.EXPECT().GetByUsernameOrEmail(gomock.Any(), &toUsername, nil).
		Return(&models.UserDB{UserID: uuid.New(), Username: toUsername}, nil)
	wallets.EXPECT().Debit(gomock.Any(), fromID, models.USD, decEq("100")).
		Return(decimal.Decimal{}, repositories.ErrNotEnoughBalance)

	svc := NewLedgerService(wallets, nil, nil, nil, nil, settings, users, nil)

	_, _, err := svc.Transfer(context.Background(), fromID, toUsername, models.USD, decimal.RequireFromString("100"), "")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestLedgerService_Transfer_SelfTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fromID := uuid.New()
	username := "me"

	settings := NewMockSettingsProvider(ctrl)
	users := NewMockRecipientResolver(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)
	users.EXPECT().GetByUsernameOrEmail(gomock.Any(), &username, nil).
		Return(&models.UserDB{UserID: fromID, Username: username}, nil)

	svc := NewLedgerService(nil, nil, nil, nil, nil, settings, users, nil)

	_, _, err := svc.Transfer(context.Background(), fromID, username, models.INR, decimal.RequireFromString("10"), "")
	assert.ErrorIs(t, err, ErrSelfTransfer)
}

func TestLedgerService_Transfer_RecipientNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	username := "ghost"

	settings := NewMockSettingsProvider(ctrl)
	users := NewMockRecipientResolver(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)
	users.EXPECT().GetByUsernameOrEmail(gomock.Any(), &username, nil).Return(nil, nil)

	svc := NewLedgerService(nil, nil, nil, nil, nil, settings, users, nil)

	_, _, err := svc.Transfer(context.Background(), uuid.New(), username, models.INR, decimal.RequireFromString("10"), "")
	assert.ErrorIs(t, err, ErrRecipientNotFound)
}

func TestLedgerService_Transfer_WalletDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	disabled := models.DefaultSettings()
	disabled.USDTEnabled = false

	settings := NewMockSettingsProvider(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(disabled, nil)

	svc := NewLedgerService(nil, nil, nil, nil, nil, settings, nil, nil)

	_, _, err := svc.Transfer(context.Background(), uuid.New(), "worker1", models.USDT, decimal.RequireFromString("10"), "")
	assert.ErrorIs(t, err, ErrWalletDisabled)
}

func TestLedgerService_Transfer_InvalidAmount(t *testing.T) {
	svc := NewLedgerService(nil, nil, nil, nil, nil, nil, nil, nil)

	_, _, err := svc.Transfer(context.Background(), uuid.New(), "worker1", models.INR, decimal.RequireFromString("-5"), "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLedgerService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	journalRead := NewMockJournalReader(ctrl)

	// Out-of-range limits clamp to the default page size.
	journalRead.EXPECT().ListByUser(gomock.Any(), userID, 50, 0).
		Return([]models.TransactionDB{{UserID: userID}}, nil)

	svc := NewLedgerService(nil, nil, nil, journalRead, nil, nil, nil, nil)

	entries, err := svc.History(context.Background(), userID, 500, -1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLedgerService_History_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	journalRead := NewMockJournalReader(ctrl)
	journalRead.EXPECT().ListByUser(gomock.Any(), userID, 20, 0).
		Return(nil, errors.New("db down"))

	svc := NewLedgerService(nil, nil, nil, journalRead, nil, nil, nil, nil)

	_, err := svc.History(context.Background(), userID, 20, 0)
	assert.Error(t, err)
}
