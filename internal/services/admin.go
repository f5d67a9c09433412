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

// Back-office sentinels.
var (
	ErrInvalidRate          = errors.New("commission rate must be between 0 and 100")
	ErrNotAWithdrawal       = errors.New("entry is not a pending withdrawal")
	ErrPlatformInsufficient = errors.New("platform wallet cannot cover the withdrawal")
)

// SettingsStore reads and replaces the commission settings singleton.
type SettingsStore interface {
	Get(ctx context.Context) (models.CommissionSettings, error)
	Save(ctx context.Context, s models.CommissionSettings) error
}

// SettingsInvalidator drops the cached settings snapshot after an update.
type SettingsInvalidator interface {
	Invalidate(ctx context.Context)
}

// AdminWalletReader lists the per-currency platform wallets.
type AdminWalletReader interface {
	GetAll(ctx context.Context) ([]models.AdminWalletDB, error)
}

// WithdrawalQueue is the journal surface the settlement queue needs.
type WithdrawalQueue interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.TransactionDB, error)
	ListPendingWithdrawals(ctx context.Context, limit, offset int) ([]models.TransactionDB, error)
}

// AdminService is the back-office: commission settings, platform wallets,
// and the manual settlement queue for fiat withdrawals.
type AdminService struct {
	settings     SettingsStore
	cache        SettingsInvalidator
	adminWallets AdminWalletWriter
	adminRead    AdminWalletReader
	wallets      WalletWriter
	journal      JournalWriter
	queue        WithdrawalQueue
	kafkaWriter  KafkaWriter
}

// NewAdminService creates a new AdminService. cache may be nil when Redis is
// not configured.
func NewAdminService(
	settings SettingsStore,
	cache SettingsInvalidator,
	adminWallets AdminWalletWriter,
	adminRead AdminWalletReader,
	wallets WalletWriter,
	journal JournalWriter,
	queue WithdrawalQueue,
	kafkaWriter KafkaWriter,
) *AdminService {
	return &AdminService{
		settings:     settings,
		cache:        cache,
		adminWallets: adminWallets,
		adminRead:    adminRead,
		wallets:      wallets,
		journal:      journal,
		queue:        queue,
		kafkaWriter:  kafkaWriter,
	}
}

// GetSettings returns the current commission settings snapshot.
func (s *AdminService) GetSettings(ctx context.Context) (models.CommissionSettings, error) {
	return s.settings.Get(ctx)
}

// UpdateSettings replaces the commission settings and invalidates the cached
// snapshot. In-flight operations keep the snapshot they loaded; the new
// settings apply to operations started after the update commits.
func (s *AdminService) UpdateSettings(ctx context.Context, settings models.CommissionSettings) error {
	if settings.RatePercent.IsNegative() || settings.RatePercent.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidRate
	}

	if err := s.settings.Save(ctx, settings); err != nil {
		logger.Log.Errorw("failed to save settings", "error", err)
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return nil
}

// ListWallets returns the platform wallet for every currency.
func (s *AdminService) ListWallets(ctx context.Context) ([]models.AdminWalletDB, error) {
	return s.adminRead.GetAll(ctx)
}

// WithdrawCommission debits accumulated commission from the platform wallet
// and journals the movement under the operator's id.
func (s *AdminService) WithdrawCommission(ctx context.Context, operatorID uuid.UUID, currency models.Currency, amount decimal.Decimal, destination string) (*models.TransactionDB, error) {
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}

	if _, err := s.adminWallets.Debit(ctx, currency, amount); err != nil {
		if errors.Is(err, repositories.ErrNotEnoughBalance) {
			return nil, ErrPlatformInsufficient
		}
		logger.Log.Errorw("failed to debit platform wallet", "currency", currency, "amount", amount, "error", err)
		return nil, err
	}

	entry := models.TransactionDB{
		TransactionID: uuid.New(),
		UserID:        operatorID,
		Amount:        amount,
		Direction:     models.DirectionDebit,
		Currency:      currency,
		Kind:          models.KindAdminCommissionWithdrawal,
		Status:        models.StatusCompleted,
		Description:   "commission withdrawal to " + destination,
	}
	if err := s.journal.Insert(ctx, entry); err != nil {
		logger.Log.Errorw("failed to journal commission withdrawal", "error", err)
		return nil, err
	}

	publishTransaction(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: entry.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        amount.StringFixed(2),
		Currency:      currency.String(),
		UserID:        operatorID.String(),
		Operation:     string(models.KindAdminCommissionWithdrawal),
	})

	return &entry, nil
}

// PendingWithdrawals returns the manual settlement queue, oldest first.
func (s *AdminService) PendingWithdrawals(ctx context.Context, limit, offset int) ([]models.TransactionDB, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.queue.ListPendingWithdrawals(ctx, limit, offset)
}

// ApproveWithdrawal marks a pending fiat withdrawal as settled outside the
// system. The user's balance was already debited when the withdrawal was
// requested; approval only finalizes the entry.
func (s *AdminService) ApproveWithdrawal(ctx context.Context, id uuid.UUID, settlementRef string) (*models.TransactionDB, error) {
	entry, err := s.queue.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	if entry.Kind != models.KindWithdrawal || entry.Status != models.StatusPending {
		return nil, ErrNotAWithdrawal
	}

	note := "approved"
	if settlementRef != "" {
		note = "approved, settlement " + settlementRef
	}
	if err := s.journal.TransitionStatus(ctx, id, models.StatusPending, models.StatusCompleted, note); err != nil {
		if errors.Is(err, repositories.ErrStaleTransition) {
			return nil, ErrNotAWithdrawal
		}
		return nil, err
	}

	publishTransaction(ctx, s.kafkaWriter, models.TransactionEvent{
		TransactionID: entry.TransactionID.String(),
		Timestamp:     time.Now().Unix(),
		Amount:        entry.Amount.StringFixed(2),
		Currency:      entry.Currency.String(),
		UserID:        entry.UserID.String(),
		Operation:     string(models.KindWithdrawal),
	})

	return entry, nil
}

// RejectWithdrawal fails a pending fiat withdrawal and reverses the debit so
// the user's balance ends exactly where it started. The transition runs
// first: once the entry is failed, no concurrent approval can settle it, and
// the compensating credit rides the same request transaction.
func (s *AdminService) RejectWithdrawal(ctx context.Context, id uuid.UUID, reason string) (*models.TransactionDB, error) {
	entry, err := s.queue.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	if entry.Kind != models.KindWithdrawal || entry.Status != models.StatusPending {
		return nil, ErrNotAWithdrawal
	}

	note := "rejected"
	if reason != "" {
		note = "rejected: " + reason
	}
	if err := s.journal.TransitionStatus(ctx, id, models.StatusPending, models.StatusFailed, note); err != nil {
		if errors.Is(err, repositories.ErrStaleTransition) {
			return nil, ErrNotAWithdrawal
		}
		return nil, err
	}

	if _, err := s.wallets.Credit(ctx, entry.UserID, entry.Currency, entry.Amount); err != nil {
		logger.Log.Errorw("failed to reverse rejected withdrawal", "transaction_id", id, "userID", entry.UserID, "amount", entry.Amount, "error", err)
		return nil, err
	}

	return entry, nil
}
