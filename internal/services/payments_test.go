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

	"github.com/harshXitachi/winmicro-wallet/internal/gateways"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
	"github.com/harshXitachi/winmicro-wallet/internal/repositories"
)

func TestPaymentService_CreateDeposit_Razorpay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	journal := NewMockPaymentJournal(ctrl)
	settings := NewMockSettingsProvider(ctrl)
	razorpay := NewMockRazorpayRail(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)

	// 500 at 2% grossed up: the payer is charged 510.
	razorpay.EXPECT().CreateOrder(gomock.Any(), decEq("510"), gomock.Any()).
		Return("order_abc", nil)

	var inserted models.TransactionDB
	journal.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.TransactionDB) error {
			inserted = e
			return nil
		})

	svc := NewPaymentService(nil, journal, nil, nil, settings, razorpay, nil, nil, nil)

	intent, err := svc.CreateDeposit(context.Background(), userID, "u@example.com", models.INR, decimal.RequireFromString("500"))
	require.NoError(t, err)
	assert.Equal(t, "order_abc", intent.OrderID)
	assert.True(t, intent.ChargeTotal.Equal(decimal.RequireFromString("510")))

	assert.Equal(t, models.StatusPending, inserted.Status)
	assert.Equal(t, models.KindDeposit, inserted.Kind)
	assert.True(t, inserted.Amount.Equal(decimal.RequireFromString("500")))
	assert.True(t, inserted.Commission.Equal(decimal.RequireFromString("10")))
	require.NotNil(t, inserted.ExternalRef)
	assert.Equal(t, "order_abc", *inserted.ExternalRef)
}

func TestPaymentService_CreateDeposit_USDT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	journal := NewMockPaymentJournal(ctrl)
	settings := NewMockSettingsProvider(ctrl)
	coinpayments := NewMockCoinPaymentsRail(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)
	coinpayments.EXPECT().CreateTransaction(gomock.Any(), decEq("102"), "u@example.com", gomock.Any()).
		Return(&gateways.DepositAddress{TxnID: "CPTX1", Address: "TXyz", QRCodeURL: "https://qr"}, nil)
	journal.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewPaymentService(nil, journal, nil, nil, settings, nil, nil, coinpayments, nil)

	intent, err := svc.CreateDeposit(context.Background(), uuid.New(), "u@example.com", models.USDT, decimal.RequireFromString("100"))
	require.NoError(t, err)
	assert.Equal(t, "TXyz", intent.Address)
	assert.Equal(t, "https://qr", intent.QRCodeURL)
}

func TestPaymentService_CreateDeposit_GatewayUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := NewMockSettingsProvider(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)

	svc := NewPaymentService(nil, nil, nil, nil, settings, nil, nil, nil, nil)

	_, err := svc.CreateDeposit(context.Background(), uuid.New(), "u@example.com", models.INR, decimal.RequireFromString("500"))
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestPaymentService_CreateDeposit_BelowMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := NewMockSettingsProvider(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)

	svc := NewPaymentService(nil, nil, nil, nil, settings, nil, nil, nil, nil)

	_, err := svc.CreateDeposit(context.Background(), uuid.New(), "u@example.com", models.INR, decimal.RequireFromString("50"))
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestPaymentService_CreateDeposit_WalletDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	disabled := models.DefaultSettings()
	disabled.INREnabled = false

	settings := NewMockSettingsProvider(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(disabled, nil)

	svc := NewPaymentService(nil, nil, nil, nil, settings, nil, nil, nil, nil)

	_, err := svc.CreateDeposit(context.Background(), uuid.New(), "u@example.com", models.INR, decimal.RequireFromString("500"))
	assert.ErrorIs(t, err, ErrWalletDisabled)
}

func TestPaymentService_VerifyRazorpayDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	orderID := "order_abc"
	entry := &models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Amount:        decimal.RequireFromString("500"),
		Currency:      models.INR,
		Kind:          models.KindDeposit,
		Status:        models.StatusPending,
		Commission:    decimal.RequireFromString("10"),
		ExternalRef:   &orderID,
	}

	wallets := NewMockWalletWriter(ctrl)
	journal := NewMockPaymentJournal(ctrl)
	journalRead := NewMockJournalReader(ctrl)
	adminWallets := NewMockAdminWalletWriter(ctrl)
	razorpay := NewMockRazorpayRail(ctrl)

	journalRead.EXPECT().GetByExternalRef(gomock.Any(), orderID).Return(entry, nil)
	razorpay.EXPECT().VerifyPaymentSignature(orderID, "pay_1", "sig").Return(true)
	journal.EXPECT().TransitionStatus(gomock.Any(), entry.TransactionID, models.StatusPending, models.StatusCompleted, gomock.Any()).
		Return(nil)
	wallets.EXPECT().Credit(gomock.Any(), userID, models.INR, decEq("500")).
		Return(decimal.RequireFromString("500"), nil)
	adminWallets.EXPECT().CreditCommission(gomock.Any(), models.INR, decEq("10")).Return(nil)

	svc := NewPaymentService(wallets, journal, journalRead, adminWallets, nil, razorpay, nil, nil, nil)

	got, err := svc.VerifyRazorpayDeposit(context.Background(), orderID, "pay_1", "sig")
	require.NoError(t, err)
	assert.Equal(t, entry.TransactionID, got.TransactionID)
}

func TestPaymentService_VerifyRazorpayDeposit_Replay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderID := "order_abc"
	entry := &models.TransactionDB{
		TransactionID: uuid.New(),
		Status:        models.StatusCompleted,
		ExternalRef:   &orderID,
	}

	journal := NewMockPaymentJournal(ctrl)
	journalRead := NewMockJournalReader(ctrl)
	razorpay := NewMockRazorpayRail(ctrl)

	journalRead.EXPECT().GetByExternalRef(gomock.Any(), orderID).Return(entry, nil)
	razorpay.EXPECT().VerifyPaymentSignature(orderID, "pay_1", "sig").Return(true)
	// The conditional transition sees the entry already completed: no second
	// credit ever happens.
	journal.EXPECT().TransitionStatus(gomock.Any(), entry.TransactionID, models.StatusPending, models.StatusCompleted, gomock.Any()).
		Return(repositories.ErrStaleTransition)

	svc := NewPaymentService(nil, journal, journalRead, nil, nil, razorpay, nil, nil, nil)

	_, err := svc.VerifyRazorpayDeposit(context.Background(), orderID, "pay_1", "sig")
	assert.ErrorIs(t, err, ErrDuplicateWebhook)
}

func TestPaymentService_VerifyRazorpayDeposit_BadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderID := "order_abc"
	entry := &models.TransactionDB{TransactionID: uuid.New(), Status: models.StatusPending, ExternalRef: &orderID}

	journalRead := NewMockJournalReader(ctrl)
	razorpay := NewMockRazorpayRail(ctrl)

	journalRead.EXPECT().GetByExternalRef(gomock.Any(), orderID).Return(entry, nil)
	razorpay.EXPECT().VerifyPaymentSignature(orderID, "pay_1", "forged").Return(false)

	svc := NewPaymentService(nil, nil, journalRead, nil, nil, razorpay, nil, nil, nil)

	_, err := svc.VerifyRazorpayDeposit(context.Background(), orderID, "pay_1", "forged")
	assert.ErrorIs(t, err, ErrSignatureInvalid)
}

func TestPaymentService_VerifyRazorpayDeposit_UnknownOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	journalRead := NewMockJournalReader(ctrl)
	razorpay := NewMockRazorpayRail(ctrl)

	journalRead.EXPECT().GetByExternalRef(gomock.Any(), "order_missing").Return(nil, nil)

	svc := NewPaymentService(nil, nil, journalRead, nil, nil, razorpay, nil, nil, nil)

	_, err := svc.VerifyRazorpayDeposit(context.Background(), "order_missing", "pay_1", "sig")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestPaymentService_CapturePayPalDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	orderID := "PP-1"
	entry := &models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Amount:        decimal.RequireFromString("50"),
		Currency:      models.USD,
		Kind:          models.KindDeposit,
		Status:        models.StatusPending,
		Commission:    decimal.RequireFromString("1"),
		ExternalRef:   &orderID,
	}

	wallets := NewMockWalletWriter(ctrl)
	journal := NewMockPaymentJournal(ctrl)
	journalRead := NewMockJournalReader(ctrl)
	adminWallets := NewMockAdminWalletWriter(ctrl)
	paypal := NewMockPayPalRail(ctrl)

	journalRead.EXPECT().GetByExternalRef(gomock.Any(), orderID).Return(entry, nil)
	paypal.EXPECT().CaptureOrder(gomock.Any(), orderID).Return(true, nil)
	journal.EXPECT().TransitionStatus(gomock.Any(), entry.TransactionID, models.StatusPending, models.StatusCompleted, gomock.Any()).
		Return(nil)
	wallets.EXPECT().Credit(gomock.Any(), userID, models.USD, decEq("50")).
		Return(decimal.RequireFromString("50"), nil)
	adminWallets.EXPECT().CreditCommission(gomock.Any(), models.USD, decEq("1")).Return(nil)

	svc := NewPaymentService(wallets, journal, journalRead, adminWallets, nil, nil, paypal, nil, nil)

	_, err := svc.CapturePayPalDeposit(context.Background(), orderID)
	require.NoError(t, err)
}

func TestPaymentService_CapturePayPalDeposit_AlreadyCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderID := "PP-1"
	entry := &models.TransactionDB{TransactionID: uuid.New(), Status: models.StatusCompleted, ExternalRef: &orderID}

	journalRead := NewMockJournalReader(ctrl)
	paypal := NewMockPayPalRail(ctrl)

	journalRead.EXPECT().GetByExternalRef(gomock.Any(), orderID).Return(entry, nil)

	svc := NewPaymentService(nil, nil, journalRead, nil, nil, nil, paypal, nil, nil)

	_, err := svc.CapturePayPalDeposit(context.Background(), orderID)
	assert.ErrorIs(t, err, ErrDuplicateWebhook)
}

func TestPaymentService_HandleCoinPaymentsIPN_Complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	txnID := "CPTX1"
	entry := &models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Amount:        decimal.RequireFromString("100"),
		Currency:      models.USDT,
		Kind:          models.KindDeposit,
		Status:        models.StatusPending,
		Commission:    decimal.RequireFromString("2"),
		ExternalRef:   &txnID,
	}

	wallets := NewMockWalletWriter(ctrl)
	journal := NewMockPaymentJournal(ctrl)
	journalRead := NewMockJournalReader(ctrl)
	adminWallets := NewMockAdminWalletWriter(ctrl)

	journalRead.EXPECT().GetByExternalRef(gomock.Any(), txnID).Return(entry, nil)
	journal.EXPECT().TransitionStatus(gomock.Any(), entry.TransactionID, models.StatusPending, models.StatusCompleted, gomock.Any()).
		Return(nil)
	wallets.EXPECT().Credit(gomock.Any(), userID, models.USDT, decEq("100")).
		Return(decimal.RequireFromString("100"), nil)
	adminWallets.EXPECT().CreditCommission(gomock.Any(), models.USDT, decEq("2")).Return(nil)

	svc := NewPaymentService(wallets, journal, journalRead, adminWallets, nil, nil, nil, nil, nil)

	err := svc.HandleCoinPaymentsIPN(context.Background(), &gateways.IPNNotification{TxnID: txnID, Status: 100})
	require.NoError(t, err)
}

func TestPaymentService_HandleCoinPaymentsIPN_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txnID := "CPTX1"
	entry := &models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        uuid.New(),
		Amount:        decimal.RequireFromString("100"),
		Currency:      models.USDT,
		Kind:          models.KindDeposit,
		Status:        models.StatusPending,
		Commission:    decimal.RequireFromString("2"),
		ExternalRef:   &txnID,
	}

	tests := []struct {
		name string
		ipn  *gateways.IPNNotification
	}{
		{
			name: "wrong currency",
			ipn:  &gateways.IPNNotification{TxnID: txnID, Status: 100, Currency: "LTC", Amount: decimal.RequireFromString("102")},
		},
		{
			name: "underpaid",
			ipn:  &gateways.IPNNotification{TxnID: txnID, Status: 100, Currency: "USDT", Amount: decimal.RequireFromString("50")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			journalRead := NewMockJournalReader(ctrl)
			journalRead.EXPECT().GetByExternalRef(gomock.Any(), txnID).Return(entry, nil)

			// No transition and no credit may happen on a mismatch.
			svc := NewPaymentService(nil, nil, journalRead, nil, nil, nil, nil, nil, nil)

			err := svc.HandleCoinPaymentsIPN(context.Background(), tt.ipn)
			assert.ErrorIs(t, err, ErrIPNMismatch)
		})
	}
}

func TestPaymentService_HandleCoinPaymentsIPN_ChargeCovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	txnID := "CPTX1"
	entry := &models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Amount:        decimal.RequireFromString("100"),
		Currency:      models.USDT,
		Kind:          models.KindDeposit,
		Status:        models.StatusPending,
		Commission:    decimal.RequireFromString("2"),
		ExternalRef:   &txnID,
	}

	wallets := NewMockWalletWriter(ctrl)
	journal := NewMockPaymentJournal(ctrl)
	journalRead := NewMockJournalReader(ctrl)
	adminWallets := NewMockAdminWalletWriter(ctrl)

	journalRead.EXPECT().GetByExternalRef(gomock.Any(), txnID).Return(entry, nil)
	journal.EXPECT().TransitionStatus(gomock.Any(), entry.TransactionID, models.StatusPending, models.StatusCompleted, gomock.Any()).
		Return(nil)
	wallets.EXPECT().Credit(gomock.Any(), userID, models.USDT, decEq("100")).
		Return(decimal.RequireFromString("100"), nil)
	adminWallets.EXPECT().CreditCommission(gomock.Any(), models.USDT, decEq("2")).Return(nil)

	svc := NewPaymentService(wallets, journal, journalRead, adminWallets, nil, nil, nil, nil, nil)

	// amount1 matching the grossed-up charge completes normally.
	err := svc.HandleCoinPaymentsIPN(context.Background(), &gateways.IPNNotification{
		TxnID: txnID, Status: 100, Currency: "USDT", Amount: decimal.RequireFromString("102"),
	})
	require.NoError(t, err)
}

func TestPaymentService_HandleCoinPaymentsIPN_Failed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txnID := "CPTX1"
	entry := &models.TransactionDB{TransactionID: uuid.New(), Status: models.StatusPending, ExternalRef: &txnID}

	journal := NewMockPaymentJournal(ctrl)
	journalRead := NewMockJournalReader(ctrl)

	journalRead.EXPECT().GetByExternalRef(gomock.Any(), txnID).Return(entry, nil)
	journal.EXPECT().TransitionStatus(gomock.Any(), entry.TransactionID, models.StatusPending, models.StatusFailed, gomock.Any()).
		Return(nil)

	svc := NewPaymentService(nil, journal, journalRead, nil, nil, nil, nil, nil, nil)

	err := svc.HandleCoinPaymentsIPN(context.Background(), &gateways.IPNNotification{TxnID: txnID, Status: -1})
	require.NoError(t, err)
}

func TestPaymentService_HandleCoinPaymentsIPN_StillPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txnID := "CPTX1"
	entry := &models.TransactionDB{TransactionID: uuid.New(), Status: models.StatusPending, ExternalRef: &txnID}

	journalRead := NewMockJournalReader(ctrl)
	journalRead.EXPECT().GetByExternalRef(gomock.Any(), txnID).Return(entry, nil)

	svc := NewPaymentService(nil, nil, journalRead, nil, nil, nil, nil, nil, nil)

	// Status 1 means waiting on confirmations: no transition, no credit.
	err := svc.HandleCoinPaymentsIPN(context.Background(), &gateways.IPNNotification{TxnID: txnID, Status: 1})
	require.NoError(t, err)
}

func TestPaymentService_Withdraw_USDT(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	wallets := NewMockWalletWriter(ctrl)
	journal := NewMockPaymentJournal(ctrl)
	settings := NewMockSettingsProvider(ctrl)
	coinpayments := NewMockCoinPaymentsRail(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)
	wallets.EXPECT().Debit(gomock.Any(), userID, models.USDT, decEq("50")).
		Return(decimal.RequireFromString("50"), nil)
	journal.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	coinpayments.EXPECT().CreateWithdrawal(gomock.Any(), decEq("50"), "TAddr1", gomock.Any()).
		Return("wd_99", nil)
	journal.EXPECT().AttachExternalRef(gomock.Any(), gomock.Any(), "wd_99").Return(nil)
	journal.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), models.StatusPending, models.StatusCompleted, gomock.Any()).
		Return(nil)

	svc := NewPaymentService(wallets, journal, nil, nil, settings, nil, nil, coinpayments, nil)

	entry, err := svc.Withdraw(context.Background(), userID, models.USDT, decimal.RequireFromString("50"), "TAddr1")
	require.NoError(t, err)
	assert.Equal(t, models.KindWithdrawal, entry.Kind)
}

func TestPaymentService_Withdraw_USDT_GatewayFailureReverses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	wallets := NewMockWalletWriter(ctrl)
	journal := NewMockPaymentJournal(ctrl)
	settings := NewMockSettingsProvider(ctrl)
	coinpayments := NewMockCoinPaymentsRail(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)
	wallets.EXPECT().Debit(gomock.Any(), userID, models.USDT, decEq("50")).
		Return(decimal.RequireFromString("0"), nil)
	journal.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	coinpayments.EXPECT().CreateWithdrawal(gomock.Any(), decEq("50"), "TAddr1", gomock.Any()).
		Return("", errors.New("hot wallet empty"))

	// The debit is reversed and the attempt journaled as failed.
	wallets.EXPECT().Credit(gomock.Any(), userID, models.USDT, decEq("50")).
		Return(decimal.RequireFromString("50"), nil)
	journal.EXPECT().TransitionStatus(gomock.Any(), gomock.Any(), models.StatusPending, models.StatusFailed, gomock.Any()).
		Return(nil)

	svc := NewPaymentService(wallets, journal, nil, nil, settings, nil, nil, coinpayments, nil)

	_, err := svc.Withdraw(context.Background(), userID, models.USDT, decimal.RequireFromString("50"), "TAddr1")
	assert.ErrorIs(t, err, ErrPayoutFailed)
	assert.Contains(t, err.Error(), "hot wallet empty")
}

func TestPaymentService_Withdraw_INRStaysPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	wallets := NewMockWalletWriter(ctrl)
	journal := NewMockPaymentJournal(ctrl)
	settings := NewMockSettingsProvider(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)
	wallets.EXPECT().Debit(gomock.Any(), userID, models.INR, decEq("600")).
		Return(decimal.RequireFromString("400"), nil)

	var inserted models.TransactionDB
	journal.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.TransactionDB) error {
			inserted = e
			return nil
		})

	svc := NewPaymentService(wallets, journal, nil, nil, settings, nil, nil, nil, nil)

	entry, err := svc.Withdraw(context.Background(), userID, models.INR, decimal.RequireFromString("600"), "bank:HDFC0001/1234")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, entry.Status)
	assert.Equal(t, models.StatusPending, inserted.Status)
	assert.Contains(t, inserted.Description, "bank:HDFC0001/1234")
}

func TestPaymentService_Withdraw_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	wallets := NewMockWalletWriter(ctrl)
	settings := NewMockSettingsProvider(ctrl)

	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)
	wallets.EXPECT().Debit(gomock.Any(), userID, models.INR, decEq("600")).
		Return(decimal.Decimal{}, repositories.ErrNotEnoughBalance)

	svc := NewPaymentService(wallets, nil, nil, nil, settings, nil, nil, nil, nil)

	_, err := svc.Withdraw(context.Background(), userID, models.INR, decimal.RequireFromString("600"), "bank:HDFC0001/1234")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestPaymentService_Withdraw_BelowMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := NewMockSettingsProvider(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)

	svc := NewPaymentService(nil, nil, nil, nil, settings, nil, nil, nil, nil)

	_, err := svc.Withdraw(context.Background(), uuid.New(), models.INR, decimal.RequireFromString("100"), "bank:HDFC0001/1234")
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestPaymentService_Withdraw_USDT_GatewayUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	settings := NewMockSettingsProvider(ctrl)
	settings.EXPECT().Get(gomock.Any()).Return(models.DefaultSettings(), nil)

	svc := NewPaymentService(nil, nil, nil, nil, settings, nil, nil, nil, nil)

	_, err := svc.Withdraw(context.Background(), uuid.New(), models.USDT, decimal.RequireFromString("50"), "TAddr1")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}
