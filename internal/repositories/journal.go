package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
)

// ErrStaleTransition is returned when a conditional status transition
// matches no row: the entry is missing or already left the expected status.
var ErrStaleTransition = errors.New("journal entry not in expected status")

// JournalWriterRepository appends and transitions journal entries.
type JournalWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewJournalWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *JournalWriterRepository {
	return &JournalWriterRepository{db: db, txGetter: txGetter}
}

func (r *JournalWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert appends one journal entry. Amount and currency are immutable after
// this point.
func (r *JournalWriterRepository) Insert(ctx context.Context, e models.TransactionDB) error {
	query := `
		INSERT INTO transactions (
			transaction_id, user_id, amount, direction, currency, kind, status,
			from_user, to_user, commission, external_ref, campaign_id, description, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
	`
	args := []any{
		e.TransactionID, e.UserID, e.Amount, e.Direction, e.Currency, e.Kind, e.Status,
		e.FromUser, e.ToUser, e.Commission, e.ExternalRef, e.CampaignID, e.Description,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// TransitionStatus moves an entry from one status to another in a single
// conditional UPDATE. A replayed webhook racing another delivery sees zero
// affected rows and gets ErrStaleTransition instead of applying twice.
func (r *JournalWriterRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.TxnStatus, note string) error {
	query := `
		UPDATE transactions
		SET status = $3,
		    description = CASE WHEN $4 = '' THEN description ELSE description || ' | ' || $4 END
		WHERE transaction_id = $1 AND status = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, from, to, note)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, from, to, note},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrStaleTransition
	}
	return nil
}

// AttachExternalRef records the gateway reference for an entry that was
// created before the gateway id existed (withdrawal payouts). Only the
// reference is written; amount and currency stay untouched.
func (r *JournalWriterRepository) AttachExternalRef(ctx context.Context, id uuid.UUID, externalRef string) error {
	query := `
		UPDATE transactions
		SET external_ref = $2
		WHERE transaction_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, id, externalRef)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, externalRef},
		"error", err,
	)

	return err
}

// JournalReaderRepository reads journal entries.
type JournalReaderRepository struct {
	db *sqlx.DB
}

func NewJournalReaderRepository(db *sqlx.DB) *JournalReaderRepository {
	return &JournalReaderRepository{db: db}
}

// GetByExternalRef looks up the entry created for a gateway order or
// transaction id. Returns nil when no entry carries the reference.
func (r *JournalReaderRepository) GetByExternalRef(ctx context.Context, externalRef string) (*models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, amount, direction, currency, kind, status,
		       from_user, to_user, commission, external_ref, campaign_id, description, created_at
		FROM transactions
		WHERE external_ref = $1
		LIMIT 1
	`

	var entry models.TransactionDB
	err := r.db.GetContext(ctx, &entry, query, externalRef)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{externalRef},
		"result", entry,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetByID fetches a single entry.
func (r *JournalReaderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, amount, direction, currency, kind, status,
		       from_user, to_user, commission, external_ref, campaign_id, description, created_at
		FROM transactions
		WHERE transaction_id = $1
	`

	var entry models.TransactionDB
	err := r.db.GetContext(ctx, &entry, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByUser returns the user's journal entries, newest first.
func (r *JournalReaderRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, amount, direction, currency, kind, status,
		       from_user, to_user, commission, external_ref, campaign_id, description, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var entries []models.TransactionDB
	err := r.db.SelectContext(ctx, &entries, query, userID, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"result", len(entries),
		"error", err,
	)

	return entries, err
}

// ListPendingWithdrawals returns pending user withdrawal entries for the
// admin settlement queue, oldest first.
func (r *JournalReaderRepository) ListPendingWithdrawals(ctx context.Context, limit, offset int) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, user_id, amount, direction, currency, kind, status,
		       from_user, to_user, commission, external_ref, campaign_id, description, created_at
		FROM transactions
		WHERE kind = $1 AND status = $2
		ORDER BY created_at ASC
		LIMIT $3 OFFSET $4
	`

	var entries []models.TransactionDB
	err := r.db.SelectContext(ctx, &entries, query, models.KindWithdrawal, models.StatusPending, limit, offset)
	return entries, err
}
