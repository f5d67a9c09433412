package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/gateways"
	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
	"github.com/harshXitachi/winmicro-wallet/internal/repositories"
)

// ErrPayoutFailed wraps a payout gateway failure after the optimistic debit
// was already reversed. The wallet is back to its pre-request state when this
// is returned.
var ErrPayoutFailed = errors.New("payout gateway rejected the withdrawal")

// RazorpayRail is the INR card/UPI gateway capability.
type RazorpayRail interface {
	CreateOrder(ctx context.Context, chargeTotal decimal.Decimal, receipt string) (string, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
}

// PayPalRail is the USD card gateway capability.
type PayPalRail interface {
	CreateOrder(ctx context.Context, chargeTotal decimal.Decimal, reference string) (orderID, approvalURL string, err error)
	CaptureOrder(ctx context.Context, orderID string) (bool, error)
}

// CoinPaymentsRail is the USDT on-chain gateway capability.
type CoinPaymentsRail interface {
	CreateTransaction(ctx context.Context, amount decimal.Decimal, buyerEmail, reference string) (*gateways.DepositAddress, error)
	CreateWithdrawal(ctx context.Context, amount decimal.Decimal, address, reference string) (string, error)
}

// PaymentJournal is the journal surface the orchestrator needs.
type PaymentJournal interface {
	Insert(ctx context.Context, e models.TransactionDB) error
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.TxnStatus, note string) error
	AttachExternalRef(ctx context.Context, id uuid.UUID, externalRef string) error
}

// DepositIntent is the gateway-specific data a client needs to complete a
// deposit. Exactly one of OrderID/ApprovalURL/Address is set per rail.
type DepositIntent struct {
	TransactionID uuid.UUID
	OrderID       string
	ApprovalURL   string
	Address       string
	QRCodeURL     string
	ChargeTotal   decimal.Decimal
}

// PaymentService drives the deposit/withdrawal lifecycle across the three
// rails: pending entries at creation, terminal transitions on gateway
// confirmation, compensating reversal when a payout call fails after the
// optimistic debit.
type PaymentService struct {
	wallets      WalletWriter
	journal      PaymentJournal
	journalRead  JournalReader
	adminWallets AdminWalletWriter
	settings     SettingsProvider
	razorpay     RazorpayRail
	paypal       PayPalRail
	coinpayments CoinPaymentsRail
	kafkaWriter  KafkaWriter
}

// NewPaymentService creates a new PaymentService. Gateway rails may be nil
// when unconfigured; operations on a nil rail fail with
// ErrGatewayUnavailable.
func NewPaymentService(
	wallets WalletWriter,
	journal PaymentJournal,
	journalRead JournalReader,
	adminWallets AdminWalletWriter,
	settings SettingsProvider,
	razorpay RazorpayRail,
	paypal PayPalRail,
	coinpayments CoinPaymentsRail,
	kafkaWriter KafkaWriter,
) *PaymentService {
	return &PaymentService{
		wallets:      wallets,
		journal:      journal,
		journalRead:  journalRead,
		adminWallets: adminWallets,
		settings:     settings,
		razorpay:     razorpay,
		paypal:       paypal,
		coinpayments: coinpayments,
		kafkaWriter:  kafkaWriter,
	}
}

// CreateDeposit validates the request, quotes the grossed-up charge, creates
// the gateway order for the currency's rail, and records a pending journal
// entry keyed by the gateway reference. No balance changes until the gateway
// confirms.
func (s *PaymentService) CreateDeposit(ctx context.Context, userID uuid.UUID, email string, currency models.Currency, amount decimal.Decimal) (*DepositIntent, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load settings", "error", err)
		return nil, err
	}
	if !settings.WalletEnabled(currency) {
		return nil, ErrWalletDisabled
	}
	if err := CheckDepositBounds(settings, currency, amount); err != nil {
		return nil, err
	}

	quote := ComputeCommission(settings, amount, OpDeposit)

	entry := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Amount:        amount,
		Direction:     models.DirectionCredit,
		Currency:      currency,
		Kind:          models.KindDeposit,
		Status:        models.StatusPending,
		Commission:    quote.Commission,
	}
	intent := &DepositIntent{
		TransactionID: entry.TransactionID,
		ChargeTotal:   quote.GrossCharge,
	}

	switch currency {
	case models.INR:
		if s.razorpay == nil {
			return nil, ErrGatewayUnavailable
		}
		orderID, err := s.razorpay.CreateOrder(ctx, quote.GrossCharge, entry.TransactionID.String())
		if err != nil {
			return nil, err
		}
		entry.ExternalRef = &orderID
		entry.Description = fmt.Sprintf("INR deposit via Razorpay order %s", orderID)
		intent.OrderID = orderID

	case models.USD:
		if s.paypal == nil {
			return nil, ErrGatewayUnavailable
		}
		orderID, approvalURL, err := s.paypal.CreateOrder(ctx, quote.GrossCharge, entry.TransactionID.String())
		if err != nil {
			return nil, err
		}
		entry.ExternalRef = &orderID
		entry.Description = fmt.Sprintf("USD deposit via PayPal order %s", orderID)
		intent.OrderID = orderID
		intent.ApprovalURL = approvalURL

	case models.USDT:
		if s.coinpayments == nil {
			return nil, ErrGatewayUnavailable
		}
		addr, err := s.coinpayments.CreateTransaction(ctx, quote.GrossCharge, email, entry.TransactionID.String())
		if err != nil {
			return nil, err
		}
		entry.ExternalRef = &addr.TxnID
		entry.Description = fmt.Sprintf("USDT deposit via CoinPayments txn %s", addr.TxnID)
		intent.Address = addr.Address
		intent.QRCodeURL = addr.QRCodeURL

	default:
		return nil, ErrInvalidCurrency
	}

	if err := s.journal.Insert(ctx, entry); err != nil {
		logger.Log.Errorw("failed to journal deposit attempt", "userID", userID, "error", err)
		return nil, err
	}

	return intent, nil
}

// completeDeposit applies the balance effects of a confirmed deposit after
// the pending entry was atomically transitioned. The wallet receives the
// entry amount; the commission (already paid on top by the payer) goes to
// the platform wallet.
func (s *PaymentService) completeDeposit(ctx context.Context, entry *models.TransactionDB) error {
	if _, err := s.wallets.Credit(ctx, entry.UserID, entry.Currency, entry.Amount); err != nil {
		logger.Log.Errorw("failed to credit deposit", "userID", entry.UserID, "amount", entry.Amount, "currency", entry.Currency, "error", err)
		return err
	}

	if entry.Commission.IsPositive() {
		if err := s.adminWallets.CreditCommission(ctx, entry.Currency, entry.Commission); err != nil {
			logger.Log.Errorw("failed to credit deposit commission", "amount", entry.Commission, "currency", entry.Currency, "error", err)
			return err
		}
	}

	ref := ""
	if entry.ExternalRef != nil {
		ref = *entry.ExternalRef
	}
	publishTransaction(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: entry.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        entry.Amount.StringFixed(2),
		Currency:      entry.Currency.String(),
		UserID:        entry.UserID.String(),
		Operation:     string(models.KindDeposit),
		Commission:    entry.Commission.StringFixed(2),
		ExternalRef:   ref,
	})

	return nil
}

// VerifyRazorpayDeposit completes an INR deposit from the client-delivered
// payment confirmation. The status transition is a conditional update, so a
// replayed confirmation cannot credit twice.
func (s *PaymentService) VerifyRazorpayDeposit(ctx context.Context, orderID, paymentID, signature string) (*models.TransactionDB, error) {
	if s.razorpay == nil {
		return nil, ErrGatewayUnavailable
	}

	entry, err := s.journalRead.GetByExternalRef(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}

	if !s.razorpay.VerifyPaymentSignature(orderID, paymentID, signature) {
		logger.Log.Warnw("razorpay signature mismatch", "order_id", orderID, "payment_id", paymentID)
		return nil, ErrSignatureInvalid
	}

	err = s.journal.TransitionStatus(ctx, entry.TransactionID, models.StatusPending, models.StatusCompleted, "payment "+paymentID)
	if errors.Is(err, repositories.ErrStaleTransition) {
		return entry, ErrDuplicateWebhook
	}
	if err != nil {
		return nil, err
	}

	if err := s.completeDeposit(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// CapturePayPalDeposit captures an approved USD order server-side and
// credits the wallet on capture success.
func (s *PaymentService) CapturePayPalDeposit(ctx context.Context, orderID string) (*models.TransactionDB, error) {
	if s.paypal == nil {
		return nil, ErrGatewayUnavailable
	}

	entry, err := s.journalRead.GetByExternalRef(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	if entry.Status == models.StatusCompleted {
		return entry, ErrDuplicateWebhook
	}

	completed, err := s.paypal.CaptureOrder(ctx, orderID)
	if err != nil {
		// Unknown outcome: leave the entry pending for reconciliation
		// instead of guessing a terminal state.
		return nil, err
	}
	if !completed {
		if terr := s.journal.TransitionStatus(ctx, entry.TransactionID, models.StatusPending, models.StatusFailed, "capture not completed"); terr != nil && !errors.Is(terr, repositories.ErrStaleTransition) {
			return nil, terr
		}
		return nil, fmt.Errorf("paypal capture for order %s did not complete", orderID)
	}

	err = s.journal.TransitionStatus(ctx, entry.TransactionID, models.StatusPending, models.StatusCompleted, "captured")
	if errors.Is(err, repositories.ErrStaleTransition) {
		return entry, ErrDuplicateWebhook
	}
	if err != nil {
		return nil, err
	}

	if err := s.completeDeposit(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// HandleCoinPaymentsIPN applies an authenticated IPN notification to the
// pending USDT deposit it references. Status >= 100 completes the deposit,
// a negative status fails it, anything in between is not yet actionable.
// Replayed notifications are no-ops. Before completing, the notification's
// amount and currency are checked against the pending entry so a valid
// signature cannot complete a deposit it did not pay for.
func (s *PaymentService) HandleCoinPaymentsIPN(ctx context.Context, ipn *gateways.IPNNotification) error {
	entry, err := s.journalRead.GetByExternalRef(ctx, ipn.TxnID)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrEntryNotFound
	}

	switch {
	case ipn.Status >= gateways.IPNStatusComplete:
		if ipn.Currency != "" && ipn.Currency != entry.Currency.String() {
			logger.Log.Warnw("IPN currency mismatch", "txn_id", ipn.TxnID, "got", ipn.Currency, "want", entry.Currency)
			return ErrIPNMismatch
		}
		// The payer was charged the grossed-up total; an IPN reporting less
		// must not credit the full deposit.
		if charge := entry.Amount.Add(entry.Commission); !ipn.Amount.IsZero() && ipn.Amount.LessThan(charge) {
			logger.Log.Warnw("IPN amount below the charge", "txn_id", ipn.TxnID, "got", ipn.Amount, "want", charge)
			return ErrIPNMismatch
		}

		err = s.journal.TransitionStatus(ctx, entry.TransactionID, models.StatusPending, models.StatusCompleted, fmt.Sprintf("ipn status %d", ipn.Status))
		if errors.Is(err, repositories.ErrStaleTransition) {
			logger.Log.Infow("duplicate IPN ignored", "txn_id", ipn.TxnID, "status", ipn.Status)
			return ErrDuplicateWebhook
		}
		if err != nil {
			return err
		}
		return s.completeDeposit(ctx, entry)

	case ipn.Status < 0:
		err = s.journal.TransitionStatus(ctx, entry.TransactionID, models.StatusPending, models.StatusFailed, fmt.Sprintf("ipn status %d", ipn.Status))
		if errors.Is(err, repositories.ErrStaleTransition) {
			return ErrDuplicateWebhook
		}
		return err

	default:
		// Still pending on-chain; nothing to do yet.
		logger.Log.Infow("IPN still pending", "txn_id", ipn.TxnID, "status", ipn.Status)
		return nil
	}
}

// Withdraw debits the wallet optimistically and records the attempt. USDT
// payouts go straight to the on-chain gateway; if that call fails the debit
// is reversed before the error is returned, leaving the balance exactly as
// it was. INR and USD withdrawals stay pending for back-office settlement.
func (s *PaymentService) Withdraw(ctx context.Context, userID uuid.UUID, currency models.Currency, amount decimal.Decimal, destination string) (*models.TransactionDB, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	if destination == "" {
		return nil, ErrInvalidAmount
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load settings", "error", err)
		return nil, err
	}
	if !settings.WalletEnabled(currency) {
		return nil, ErrWalletDisabled
	}
	if err := CheckWithdrawBounds(settings, currency, amount); err != nil {
		return nil, err
	}

	if currency == models.USDT && s.coinpayments == nil {
		return nil, ErrGatewayUnavailable
	}

	if _, err := s.wallets.Debit(ctx, userID, currency, amount); err != nil {
		if errors.Is(err, repositories.ErrNotEnoughBalance) {
			return nil, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit withdrawal", "userID", userID, "amount", amount, "currency", currency, "error", err)
		return nil, err
	}

	entry := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        userID,
		Amount:        amount,
		Direction:     models.DirectionDebit,
		Currency:      currency,
		Kind:          models.KindWithdrawal,
		Status:        models.StatusPending,
		Description:   fmt.Sprintf("withdrawal to %s", destination),
	}
	if err := s.journal.Insert(ctx, entry); err != nil {
		logger.Log.Errorw("failed to journal withdrawal", "userID", userID, "error", err)
		return nil, err
	}

	if currency != models.USDT {
		// Settled manually from the admin queue.
		return &entry, nil
	}

	payoutID, err := s.coinpayments.CreateWithdrawal(ctx, amount, destination, entry.TransactionID.String())
	if err != nil {
		// Compensating reversal: the optimistic debit must be undone
		// before the error reaches the caller.
		if _, cerr := s.wallets.Credit(ctx, userID, currency, amount); cerr != nil {
			logger.Log.Errorw("failed to reverse withdrawal debit", "userID", userID, "amount", amount, "currency", currency, "error", cerr)
			return nil, cerr
		}
		if terr := s.journal.TransitionStatus(ctx, entry.TransactionID, models.StatusPending, models.StatusFailed, "gateway error: "+err.Error()); terr != nil {
			logger.Log.Errorw("failed to mark withdrawal failed", "transaction_id", entry.TransactionID, "error", terr)
			return nil, terr
		}
		return nil, fmt.Errorf("%w: %v", ErrPayoutFailed, err)
	}

	if err := s.journal.AttachExternalRef(ctx, entry.TransactionID, payoutID); err != nil {
		return nil, err
	}
	if err := s.journal.TransitionStatus(ctx, entry.TransactionID, models.StatusPending, models.StatusCompleted, "payout "+payoutID); err != nil {
		return nil, err
	}

	publishTransaction(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: entry.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount.StringFixed(2),
		Currency:      currency.String(),
		UserID:        userID.String(),
		Operation:     string(models.KindWithdrawal),
		ExternalRef:   payoutID,
	})

	return &entry, nil
}
