package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
)

var (
	// ErrNotEnoughEscrow is returned by Disburse and Drain when the escrow
	// balance cannot cover the requested amount.
	ErrNotEnoughEscrow = errors.New("not enough escrow balance")

	// ErrEscrowMismatch is returned by Fund when the campaign row already
	// exists under a different employer or currency.
	ErrEscrowMismatch = errors.New("escrow employer or currency mismatch")
)

// EscrowRepository manages per-campaign escrow balances.
type EscrowRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEscrowRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EscrowRepository {
	return &EscrowRepository{db: db, txGetter: txGetter}
}

func (r *EscrowRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Fund increases a campaign's escrow, creating the row on first funding.
// The employer wallet debit happens in the same transaction at the service
// layer; escrow never holds money that was not actually debited. The update
// arm is guarded on the stored employer and currency so a concurrent first
// funding that lost the insert race cannot top up someone else's escrow or
// mix currencies; a guard miss surfaces as ErrEscrowMismatch.
func (r *EscrowRepository) Fund(ctx context.Context, campaignID, employerID uuid.UUID, currency models.Currency, amount decimal.Decimal) (models.CampaignEscrowDB, error) {
	query := `
		INSERT INTO campaign_escrows (campaign_id, employer_id, currency, escrow_balance, total_spent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, NOW(), NOW())
		ON CONFLICT (campaign_id)
		DO UPDATE SET escrow_balance = campaign_escrows.escrow_balance + EXCLUDED.escrow_balance, updated_at = NOW()
		WHERE campaign_escrows.employer_id = EXCLUDED.employer_id AND campaign_escrows.currency = EXCLUDED.currency
		RETURNING campaign_id, employer_id, currency, escrow_balance, total_spent, created_at, updated_at
	`

	var escrow models.CampaignEscrowDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &escrow, query, campaignID, employerID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{campaignID, employerID, currency, amount},
		"result", escrow.EscrowBalance,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return models.CampaignEscrowDB{}, ErrEscrowMismatch
	}
	return escrow, err
}

// Disburse moves part of the escrow to total_spent, only when the balance
// covers it. Check and decrement are a single statement.
func (r *EscrowRepository) Disburse(ctx context.Context, campaignID uuid.UUID, amount decimal.Decimal) (models.CampaignEscrowDB, error) {
	query := `
		UPDATE campaign_escrows
		SET escrow_balance = escrow_balance - $2,
		    total_spent = total_spent + $2,
		    updated_at = NOW()
		WHERE campaign_id = $1 AND escrow_balance >= $2
		RETURNING campaign_id, employer_id, currency, escrow_balance, total_spent, created_at, updated_at
	`

	var escrow models.CampaignEscrowDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &escrow, query, campaignID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{campaignID, amount},
		"result", escrow.EscrowBalance,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return models.CampaignEscrowDB{}, ErrNotEnoughEscrow
	}
	return escrow, err
}

// Drain locks the escrow row, zeroes the balance, and returns what was
// drained. Used when refunding the employer on campaign close; must run
// inside the per-request transaction so the lock holds until the employer
// credit commits with it.
func (r *EscrowRepository) Drain(ctx context.Context, campaignID uuid.UUID) (models.CampaignEscrowDB, decimal.Decimal, error) {
	executor := r.executor(ctx)

	const lockQuery = `
		SELECT campaign_id, employer_id, currency, escrow_balance, total_spent, created_at, updated_at
		FROM campaign_escrows
		WHERE campaign_id = $1
		FOR UPDATE
	`

	var escrow models.CampaignEscrowDB
	err := sqlx.GetContext(ctx, executor, &escrow, lockQuery, campaignID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CampaignEscrowDB{}, decimal.Decimal{}, ErrNotEnoughEscrow
	}
	if err != nil {
		return models.CampaignEscrowDB{}, decimal.Decimal{}, err
	}

	drained := escrow.EscrowBalance
	if drained.IsZero() {
		return escrow, decimal.Decimal{}, ErrNotEnoughEscrow
	}

	query := `
		UPDATE campaign_escrows
		SET escrow_balance = 0, updated_at = NOW()
		WHERE campaign_id = $1
	`
	_, err = executor.ExecContext(ctx, query, campaignID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{campaignID},
		"result", drained,
		"error", err,
	)

	if err != nil {
		return models.CampaignEscrowDB{}, decimal.Decimal{}, err
	}
	escrow.EscrowBalance = decimal.Decimal{}
	return escrow, drained, nil
}

// Get fetches a campaign's escrow state. Returns nil when the campaign has
// never been funded.
func (r *EscrowRepository) Get(ctx context.Context, campaignID uuid.UUID) (*models.CampaignEscrowDB, error) {
	const query = `
		SELECT campaign_id, employer_id, currency, escrow_balance, total_spent, created_at, updated_at
		FROM campaign_escrows
		WHERE campaign_id = $1
	`

	var escrow models.CampaignEscrowDB
	err := r.db.GetContext(ctx, &escrow, query, campaignID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &escrow, nil
}
