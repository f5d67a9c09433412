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

// Escrow sentinels.
var (
	ErrEscrowNotFound      = errors.New("campaign escrow not found")
	ErrEscrowInsufficient  = errors.New("escrow balance cannot cover the payout")
	ErrEscrowNotOwner      = errors.New("campaign escrow belongs to another employer")
	ErrEscrowCurrencyClash = errors.New("campaign escrow holds a different currency")
)

// EscrowStore is the escrow sub-ledger surface.
type EscrowStore interface {
	Fund(ctx context.Context, campaignID, employerID uuid.UUID, currency models.Currency, amount decimal.Decimal) (models.CampaignEscrowDB, error)
	Disburse(ctx context.Context, campaignID uuid.UUID, amount decimal.Decimal) (models.CampaignEscrowDB, error)
	Drain(ctx context.Context, campaignID uuid.UUID) (models.CampaignEscrowDB, decimal.Decimal, error)
	Get(ctx context.Context, campaignID uuid.UUID) (*models.CampaignEscrowDB, error)
}

// EscrowService moves funds between employer wallets, campaign escrows, and
// worker wallets. Every movement is a real wallet mutation paired with an
// escrow mutation and a journal entry, all inside the per-request
// transaction.
type EscrowService struct {
	wallets     WalletWriter
	escrows     EscrowStore
	journal     JournalWriter
	settings    SettingsProvider
	kafkaWriter KafkaWriter
}

// NewEscrowService creates a new EscrowService.
func NewEscrowService(
	wallets WalletWriter,
	escrows EscrowStore,
	journal JournalWriter,
	settings SettingsProvider,
	kafkaWriter KafkaWriter,
) *EscrowService {
	return &EscrowService{
		wallets:     wallets,
		escrows:     escrows,
		journal:     journal,
		settings:    settings,
		kafkaWriter: kafkaWriter,
	}
}

// Fund debits the employer's wallet and adds the amount to the campaign's
// escrow. A campaign escrow is single-currency: once funded in one currency,
// later fundings must match.
func (s *EscrowService) Fund(ctx context.Context, employerID, campaignID uuid.UUID, currency models.Currency, amount decimal.Decimal) (*models.CampaignEscrowDB, error) {
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

	existing, err := s.escrows.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.EmployerID != employerID {
			return nil, ErrEscrowNotOwner
		}
		if existing.Currency != currency {
			return nil, ErrEscrowCurrencyClash
		}
	}

	if _, err := s.wallets.Debit(ctx, employerID, currency, amount); err != nil {
		if errors.Is(err, repositories.ErrNotEnoughBalance) {
			return nil, ErrInsufficientFunds
		}
		logger.Log.Errorw("failed to debit employer for escrow", "employerID", employerID, "campaignID", campaignID, "amount", amount, "error", err)
		return nil, err
	}

	escrow, err := s.escrows.Fund(ctx, campaignID, employerID, currency, amount)
	if err != nil {
		if errors.Is(err, repositories.ErrEscrowMismatch) {
			// A concurrent first funding won the insert with a different
			// employer or currency. This must stay a 5xx so the tx
			// middleware rolls the debit above back; the pre-check reports
			// the owner/currency sentinel on retry.
			logger.Log.Warnw("conflicting concurrent escrow funding", "campaignID", campaignID, "employerID", employerID, "currency", currency)
			return nil, err
		}
		logger.Log.Errorw("failed to fund escrow", "campaignID", campaignID, "amount", amount, "error", err)
		return nil, err
	}

	entry := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        employerID,
		Amount:        amount,
		Direction:     models.DirectionDebit,
		Currency:      currency,
		Kind:          models.KindEscrowFund,
		Status:        models.StatusCompleted,
		FromUser:      &employerID,
		CampaignID:    &campaignID,
		Description:   "campaign escrow funding",
	}
	if err := s.journal.Insert(ctx, entry); err != nil {
		logger.Log.Errorw("failed to journal escrow funding", "campaignID", campaignID, "error", err)
		return nil, err
	}

	publishTransaction(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: entry.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount.StringFixed(2),
		Currency:      currency.String(),
		UserID:        employerID.String(),
		Operation:     string(models.KindEscrowFund),
	})

	return &escrow, nil
}

// Disburse pays a worker out of the campaign's escrow. The decrement is
// conditional on the balance covering the payout; the worker credit and the
// journal entry commit with it.
func (s *EscrowService) Disburse(ctx context.Context, employerID, campaignID, workerID uuid.UUID, amount decimal.Decimal) (*models.CampaignEscrowDB, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	existing, err := s.escrows.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrEscrowNotFound
	}
	if existing.EmployerID != employerID {
		return nil, ErrEscrowNotOwner
	}

	escrow, err := s.escrows.Disburse(ctx, campaignID, amount)
	if err != nil {
		if errors.Is(err, repositories.ErrNotEnoughEscrow) {
			return nil, ErrEscrowInsufficient
		}
		logger.Log.Errorw("failed to disburse escrow", "campaignID", campaignID, "amount", amount, "error", err)
		return nil, err
	}

	if _, err := s.wallets.Credit(ctx, workerID, escrow.Currency, amount); err != nil {
		logger.Log.Errorw("failed to credit worker payout", "workerID", workerID, "amount", amount, "currency", escrow.Currency, "error", err)
		return nil, err
	}

	entry := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        workerID,
		Amount:        amount,
		Direction:     models.DirectionCredit,
		Currency:      escrow.Currency,
		Kind:          models.KindEscrowPayout,
		Status:        models.StatusCompleted,
		FromUser:      &employerID,
		ToUser:        &workerID,
		CampaignID:    &campaignID,
		Description:   "campaign payout",
	}
	if err := s.journal.Insert(ctx, entry); err != nil {
		logger.Log.Errorw("failed to journal escrow payout", "campaignID", campaignID, "error", err)
		return nil, err
	}

	publishTransaction(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: entry.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount.StringFixed(2),
		Currency:      escrow.Currency.String(),
		UserID:        workerID.String(),
		Operation:     string(models.KindEscrowPayout),
	})

	return &escrow, nil
}

// Refund drains whatever remains in the campaign's escrow back to the
// employer's wallet, used when a campaign is closed or cancelled.
func (s *EscrowService) Refund(ctx context.Context, employerID, campaignID uuid.UUID) (decimal.Decimal, error) {
	existing, err := s.escrows.Get(ctx, campaignID)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if existing == nil {
		return decimal.Decimal{}, ErrEscrowNotFound
	}
	if existing.EmployerID != employerID {
		return decimal.Decimal{}, ErrEscrowNotOwner
	}

	escrow, drained, err := s.escrows.Drain(ctx, campaignID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotEnoughEscrow) {
			return decimal.Decimal{}, ErrEscrowInsufficient
		}
		logger.Log.Errorw("failed to drain escrow", "campaignID", campaignID, "error", err)
		return decimal.Decimal{}, err
	}

	if _, err := s.wallets.Credit(ctx, employerID, escrow.Currency, drained); err != nil {
		logger.Log.Errorw("failed to credit escrow refund", "employerID", employerID, "amount", drained, "currency", escrow.Currency, "error", err)
		return decimal.Decimal{}, err
	}

	entry := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        employerID,
		Amount:        drained,
		Direction:     models.DirectionCredit,
		Currency:      escrow.Currency,
		Kind:          models.KindRefund,
		Status:        models.StatusCompleted,
		ToUser:        &employerID,
		CampaignID:    &campaignID,
		Description:   "campaign escrow refund",
	}
	if err := s.journal.Insert(ctx, entry); err != nil {
		logger.Log.Errorw("failed to journal escrow refund", "campaignID", campaignID, "error", err)
		return decimal.Decimal{}, err
	}

	publishTransaction(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: entry.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        drained.StringFixed(2),
		Currency:      escrow.Currency.String(),
		UserID:        employerID.String(),
		Operation:     string(models.KindRefund),
	})

	return drained, nil
}

// Status returns the current escrow state of a campaign.
func (s *EscrowService) Status(ctx context.Context, campaignID uuid.UUID) (*models.CampaignEscrowDB, error) {
	escrow, err := s.escrows.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if escrow == nil {
		return nil, ErrEscrowNotFound
	}
	return escrow, nil
}
