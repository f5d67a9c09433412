package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
)

// settingsRow is the flat shape of the single settings row.
type settingsRow struct {
	RatePercent       decimal.Decimal `db:"rate_percent"`
	ChargeOnDeposits  bool            `db:"charge_on_deposits"`
	ChargeOnTransfers bool            `db:"charge_on_transfers"`
	INREnabled        bool            `db:"inr_enabled"`
	USDEnabled        bool            `db:"usd_enabled"`
	USDTEnabled       bool            `db:"usdt_enabled"`
	INRMinDeposit     decimal.Decimal `db:"inr_min_deposit"`
	INRMaxDeposit     decimal.Decimal `db:"inr_max_deposit"`
	INRMinWithdraw    decimal.Decimal `db:"inr_min_withdraw"`
	INRMaxWithdraw    decimal.Decimal `db:"inr_max_withdraw"`
	USDMinDeposit     decimal.Decimal `db:"usd_min_deposit"`
	USDMaxDeposit     decimal.Decimal `db:"usd_max_deposit"`
	USDMinWithdraw    decimal.Decimal `db:"usd_min_withdraw"`
	USDMaxWithdraw    decimal.Decimal `db:"usd_max_withdraw"`
	USDTMinDeposit    decimal.Decimal `db:"usdt_min_deposit"`
	USDTMaxDeposit    decimal.Decimal `db:"usdt_max_deposit"`
	USDTMinWithdraw   decimal.Decimal `db:"usdt_min_withdraw"`
	USDTMaxWithdraw   decimal.Decimal `db:"usdt_max_withdraw"`
	UpdatedAt         time.Time       `db:"updated_at"`
}

func (row settingsRow) toModel() models.CommissionSettings {
	return models.CommissionSettings{
		RatePercent:       row.RatePercent,
		ChargeOnDeposits:  row.ChargeOnDeposits,
		ChargeOnTransfers: row.ChargeOnTransfers,
		INREnabled:        row.INREnabled,
		USDEnabled:        row.USDEnabled,
		USDTEnabled:       row.USDTEnabled,
		INRLimits: models.CurrencyLimits{
			MinDeposit: row.INRMinDeposit, MaxDeposit: row.INRMaxDeposit,
			MinWithdraw: row.INRMinWithdraw, MaxWithdraw: row.INRMaxWithdraw,
		},
		USDLimits: models.CurrencyLimits{
			MinDeposit: row.USDMinDeposit, MaxDeposit: row.USDMaxDeposit,
			MinWithdraw: row.USDMinWithdraw, MaxWithdraw: row.USDMaxWithdraw,
		},
		USDTLimits: models.CurrencyLimits{
			MinDeposit: row.USDTMinDeposit, MaxDeposit: row.USDTMaxDeposit,
			MinWithdraw: row.USDTMinWithdraw, MaxWithdraw: row.USDTMaxWithdraw,
		},
		UpdatedAt: row.UpdatedAt,
	}
}

// SettingsRepository reads and replaces the commission settings singleton.
type SettingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row, or the hardcoded defaults when the row has
// never been written.
func (r *SettingsRepository) Get(ctx context.Context) (models.CommissionSettings, error) {
	const query = `
		SELECT rate_percent, charge_on_deposits, charge_on_transfers,
		       inr_enabled, usd_enabled, usdt_enabled,
		       inr_min_deposit, inr_max_deposit, inr_min_withdraw, inr_max_withdraw,
		       usd_min_deposit, usd_max_deposit, usd_min_withdraw, usd_max_withdraw,
		       usdt_min_deposit, usdt_max_deposit, usdt_min_withdraw, usdt_max_withdraw,
		       updated_at
		FROM commission_settings
		WHERE id = 1
	`

	var row settingsRow
	err := r.db.GetContext(ctx, &row, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.CommissionSettings{}, err
	}
	return row.toModel(), nil
}

// Save replaces the singleton; takes effect for operations started after the
// write commits.
func (r *SettingsRepository) Save(ctx context.Context, s models.CommissionSettings) error {
	query := `
		INSERT INTO commission_settings (
			id, rate_percent, charge_on_deposits, charge_on_transfers,
			inr_enabled, usd_enabled, usdt_enabled,
			inr_min_deposit, inr_max_deposit, inr_min_withdraw, inr_max_withdraw,
			usd_min_deposit, usd_max_deposit, usd_min_withdraw, usd_max_withdraw,
			usdt_min_deposit, usdt_max_deposit, usdt_min_withdraw, usdt_max_withdraw,
			updated_at
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, NOW())
		ON CONFLICT (id) DO UPDATE SET
			rate_percent = EXCLUDED.rate_percent,
			charge_on_deposits = EXCLUDED.charge_on_deposits,
			charge_on_transfers = EXCLUDED.charge_on_transfers,
			inr_enabled = EXCLUDED.inr_enabled,
			usd_enabled = EXCLUDED.usd_enabled,
			usdt_enabled = EXCLUDED.usdt_enabled,
			inr_min_deposit = EXCLUDED.inr_min_deposit,
			inr_max_deposit = EXCLUDED.inr_max_deposit,
			inr_min_withdraw = EXCLUDED.inr_min_withdraw,
			inr_max_withdraw = EXCLUDED.inr_max_withdraw,
			usd_min_deposit = EXCLUDED.usd_min_deposit,
			usd_max_deposit = EXCLUDED.usd_max_deposit,
			usd_min_withdraw = EXCLUDED.usd_min_withdraw,
			usd_max_withdraw = EXCLUDED.usd_max_withdraw,
			usdt_min_deposit = EXCLUDED.usdt_min_deposit,
			usdt_max_deposit = EXCLUDED.usdt_max_deposit,
			usdt_min_withdraw = EXCLUDED.usdt_min_withdraw,
			usdt_max_withdraw = EXCLUDED.usdt_max_withdraw,
			updated_at = NOW()
	`
	args := []any{
		s.RatePercent, s.ChargeOnDeposits, s.ChargeOnTransfers,
		s.INREnabled, s.USDEnabled, s.USDTEnabled,
		s.INRLimits.MinDeposit, s.INRLimits.MaxDeposit, s.INRLimits.MinWithdraw, s.INRLimits.MaxWithdraw,
		s.USDLimits.MinDeposit, s.USDLimits.MaxDeposit, s.USDLimits.MinWithdraw, s.USDLimits.MaxWithdraw,
		s.USDTLimits.MinDeposit, s.USDTLimits.MaxDeposit, s.USDTLimits.MinWithdraw, s.USDTLimits.MaxWithdraw,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
