package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
	"github.com/harshXitachi/winmicro-wallet/internal/repositories"
)

// WalletWriter defines balance mutations on user wallets.
type WalletWriter interface {
	Credit(ctx context.Context, userID uuid.UUID, currency models.Currency, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, userID uuid.UUID, currency models.Currency, amount decimal.Decimal) (decimal.Decimal, error)
}

// WalletReader defines read access to user balances.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (map[models.Currency]decimal.Decimal, error)
}

// JournalWriter appends and transitions journal entries.
type JournalWriter interface {
	Insert(ctx context.Context, e models.TransactionDB) error
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.TxnStatus, note string) error
}

// JournalReader reads journal entries.
type JournalReader interface {
	GetByExternalRef(ctx context.Context, externalRef string) (*models.TransactionDB, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TransactionDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.TransactionDB, error)
}

// AdminWalletWriter credits and debits the per-currency platform wallets.
type AdminWalletWriter interface {
	CreditCommission(ctx context.Context, currency models.Currency, amount decimal.Decimal) error
	Debit(ctx context.Context, currency models.Currency, amount decimal.Decimal) (decimal.Decimal, error)
}

// SettingsProvider yields one settings snapshot per call.
type SettingsProvider interface {
	Get(ctx context.Context) (models.CommissionSettings, error)
}

// RecipientResolver finds transfer recipients by username.
type RecipientResolver interface {
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error)
}

// LedgerService owns balances, internal transfers, and the journal history.
type LedgerService struct {
	wallets      WalletWriter
	walletReader WalletReader
	journal      JournalWriter
	journalRead  JournalReader
	adminWallets AdminWalletWriter
	settings     SettingsProvider
	users        RecipientResolver
	kafkaWriter  KafkaWriter
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	wallets WalletWriter,
	walletReader WalletReader,
	journal JournalWriter,
	journalRead JournalReader,
	adminWallets AdminWalletWriter,
	settings SettingsProvider,
	users RecipientResolver,
	kafkaWriter KafkaWriter,
) *LedgerService {
	return &LedgerService{
		wallets:      wallets,
		walletReader: walletReader,
		journal:      journal,
		journalRead:  journalRead,
		adminWallets: adminWallets,
		settings:     settings,
		users:        users,
		kafkaWriter:  kafkaWriter,
	}
}

// GetUserBalance returns the user's balance in all currencies. Currencies
// never touched come back as zero.
func (s *LedgerService) GetUserBalance(ctx context.Context, userID uuid.UUID) (map[models.Currency]decimal.Decimal, error) {
	balances, err := s.walletReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user balances", "userID", userID, "error", err)
		return nil, err
	}
	return balances, nil
}

// History returns the user's journal entries, newest first.
func (s *LedgerService) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.TransactionDB, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.journalRead.ListByUser(ctx, userID, limit, offset)
}

// Transfer moves funds between two user wallets. The sender is debited the
// full amount; the recipient is credited the amount minus commission; the
// commission lands in the platform wallet. All three mutations plus both
// journal entries ride the per-request transaction, so they commit together
// or not at all.
func (s *LedgerService) Transfer(ctx context.Context, fromID uuid.UUID, toUsername string, currency models.Currency, amount decimal.Decimal, note string) (refID uuid.UUID, received decimal.Decimal, err error) {
	if err := ValidateAmount(amount); err != nil {
		return uuid.Nil, decimal.Decimal{}, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load settings", "error", err)
		return uuid.Nil, decimal.Decimal{}, err
	}
	if !settings.WalletEnabled(currency) {
		return uuid.Nil, decimal.Decimal{}, ErrWalletDisabled
	}

	recipient, err := s.users.GetByUsernameOrEmail(ctx, &toUsername, nil)
	if err != nil {
		logger.Log.Errorw("failed to resolve recipient", "to", toUsername, "error", err)
		return uuid.Nil, decimal.Decimal{}, err
	}
	if recipient == nil {
		return uuid.Nil, decimal.Decimal{}, ErrRecipientNotFound
	}
	if recipient.UserID == fromID {
		return uuid.Nil, decimal.Decimal{}, ErrSelfTransfer
	}

	quote := ComputeCommission(settings, amount, OpTransfer)

	if _, err := s.wallets.Debit(ctx, fromID, currency, amount); err != nil {
		if errors.Is(err, repositories.ErrNotEnoughBalance) {
			return uuid.Nil, decimal.Decimal{}, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit sender", "userID", fromID, "amount", amount, "currency", currency, "error", err)
		return uuid.Nil, decimal.Decimal{}, err
	}

	if _, err := s.wallets.Credit(ctx, recipient.UserID, currency, quote.Net); err != nil {
		logger.Log.Errorw("failed to credit recipient", "userID", recipient.UserID, "amount", quote.Net, "currency", currency, "error", err)
		return uuid.Nil, decimal.Decimal{}, err
	}

	if quote.Commission.IsPositive() {
		if err := s.adminWallets.CreditCommission(ctx, currency, quote.Commission); err != nil {
			logger.Log.Errorw("failed to credit commission", "amount", quote.Commission, "currency", currency, "error", err)
			return uuid.Nil, decimal.Decimal{}, err
		}
	}

	// Both sides share the reference id so the pair can be correlated.
	refID = uuid.New()
	ref := refID.String()

	debitEntry := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        fromID,
		Amount:        amount,
		Direction:     models.DirectionDebit,
		Currency:      currency,
		Kind:          models.KindTransfer,
		Status:        models.StatusCompleted,
		FromUser:      &fromID,
		ToUser:        &recipient.UserID,
		Commission:    quote.Commission,
		ExternalRef:   &ref,
		Description:   note,
	}
	if err := s.journal.Insert(ctx, debitEntry); err != nil {
		logger.Log.Errorw("failed to journal sender debit", "error", err)
		return uuid.Nil, decimal.Decimal{}, err
	}

	creditEntry := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        recipient.UserID,
		Amount:        quote.Net,
		Direction:     models.DirectionCredit,
		Currency:      currency,
		Kind:          models.KindTransfer,
		Status:        models.StatusCompleted,
		FromUser:      &fromID,
		ToUser:        &recipient.UserID,
		ExternalRef:   &ref,
		Description:   note,
	}
	if err := s.journal.Insert(ctx, creditEntry); err != nil {
		logger.Log.Errorw("failed to journal recipient credit", "error", err)
		return uuid.Nil, decimal.Decimal{}, err
	}

	publishTransaction(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: debitEntry.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount.StringFixed(2),
		Currency:      currency.String(),
		UserID:        fromID.String(),
		Operation:     string(models.KindTransfer),
		Commission:    quote.Commission.StringFixed(2),
		ExternalRef:   ref,
	})

	return refID, quote.Net, nil
}
