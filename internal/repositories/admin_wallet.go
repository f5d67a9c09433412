package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
)

// AdminWalletRepository manages the singleton-per-currency platform wallets.
type AdminWalletRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAdminWalletRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AdminWalletRepository {
	return &AdminWalletRepository{db: db, txGetter: txGetter}
}

func (r *AdminWalletRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// CreditCommission adds a commission to the platform wallet for the currency
// and bumps the cumulative earned counter. Must run inside the same
// transaction as the movement that produced the commission.
func (r *AdminWalletRepository) CreditCommission(ctx context.Context, currency models.Currency, amount decimal.Decimal) error {
	query := `
		INSERT INTO admin_wallets (currency, balance, total_commission_earned, updated_at)
		VALUES ($1, $2, $2, NOW())
		ON CONFLICT (currency)
		DO UPDATE SET balance = admin_wallets.balance + EXCLUDED.balance,
		              total_commission_earned = admin_wallets.total_commission_earned + EXCLUDED.balance,
		              updated_at = NOW()
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{currency, amount},
		"error", err,
	)

	return err
}

// Debit withdraws from the platform wallet; the balance check and decrement
// are one conditional statement.
func (r *AdminWalletRepository) Debit(ctx context.Context, currency models.Currency, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE admin_wallets
		SET balance = balance - $2, updated_at = NOW()
		WHERE currency = $1 AND balance >= $2
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, r.executor(ctx), &balance, query, currency, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{currency, amount},
		"result", balance,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Decimal{}, ErrNotEnoughBalance
	}
	return balance, err
}

// GetAll returns the platform wallet for every currency that has ever been
// credited.
func (r *AdminWalletRepository) GetAll(ctx context.Context) ([]models.AdminWalletDB, error) {
	const query = `
		SELECT currency, balance, total_commission_earned, updated_at
		FROM admin_wallets
		ORDER BY currency
	`

	var wallets []models.AdminWalletDB
	err := r.db.SelectContext(ctx, &wallets, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(wallets),
		"error", err,
	)

	return wallets, err
}
