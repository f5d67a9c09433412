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

// ErrNotEnoughBalance is returned by Debit when the conditional update
// matches no row, i.e. the wallet cannot cover the amount.
var ErrNotEnoughBalance = errors.New("not enough balance")

// WalletWriterRepository handles wallet balance mutations.
type WalletWriterRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriterRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriterRepository {
	return &WalletWriterRepository{db: db, txGetter: txGetter}
}

func (r *WalletWriterRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Credit performs an UPSERT: creates the wallet row at the credited amount if
// absent, otherwise increases the balance. Crediting never fails on ledger
// invariants.
func (r *WalletWriterRepository) Credit(ctx context.Context, userID uuid.UUID, currency models.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, currency)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, uuid.New(), userID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// Debit decreases the balance only when the wallet can cover the amount.
// The balance check and the decrement are one statement, so concurrent
// debits against the same wallet cannot both pass a stale check.
func (r *WalletWriterRepository) Debit(ctx context.Context, userID uuid.UUID, currency models.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE wallets
		SET balance = balance - $3, updated_at = NOW()
		WHERE user_id = $1 AND currency = $2 AND balance >= $3
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, userID, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency, amount},
		"result", balance,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Decimal{}, ErrNotEnoughBalance
	}
	return balance, err
}

// WalletReaderRepository handles wallet read operations.
type WalletReaderRepository struct {
	db *sqlx.DB
}

func NewWalletReaderRepository(db *sqlx.DB) *WalletReaderRepository {
	return &WalletReaderRepository{db: db}
}

// GetByUserID retrieves all wallets for a given user as a map keyed by
// currency. Currencies the user never touched are absent (zero balance).
func (r *WalletReaderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (map[models.Currency]decimal.Decimal, error) {
	const query = `
		SELECT wallet_id, user_id, currency, balance, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var wallets []models.WalletDB
	err := r.db.SelectContext(ctx, &wallets, query, userID)

	balances := make(map[models.Currency]decimal.Decimal, len(wallets))
	for _, w := range wallets {
		balances[w.Currency] = w.Balance
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", balances,
		"error", err,
	)

	return balances, err
}
