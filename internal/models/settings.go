package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyLimits holds the configured deposit and withdrawal bounds for one
// currency. A zero Max means "no upper bound".
type CurrencyLimits struct {
	MinDeposit  decimal.Decimal `json:"min_deposit" db:"min_deposit"`
	MaxDeposit  decimal.Decimal `json:"max_deposit" db:"max_deposit"`
	MinWithdraw decimal.Decimal `json:"min_withdraw" db:"min_withdraw"`
	MaxWithdraw decimal.Decimal `json:"max_withdraw" db:"max_withdraw"`
}

// CommissionSettings is the global settings singleton. Services load it once
// at the start of an operation and pass the snapshot down explicitly, so a
// concurrent admin update never changes an in-flight calculation.
type CommissionSettings struct {
	// Platform fee in percent, applied per the flags below.
	RatePercent decimal.Decimal `json:"rate_percent" db:"rate_percent"`

	// Independent switches for charging commission per operation kind.
	ChargeOnDeposits  bool `json:"charge_on_deposits" db:"charge_on_deposits"`
	ChargeOnTransfers bool `json:"charge_on_transfers" db:"charge_on_transfers"`

	// Per-currency maintenance kill switches. A disabled wallet rejects
	// every deposit and withdrawal in that currency.
	INREnabled  bool `json:"inr_enabled" db:"inr_enabled"`
	USDEnabled  bool `json:"usd_enabled" db:"usd_enabled"`
	USDTEnabled bool `json:"usdt_enabled" db:"usdt_enabled"`

	INRLimits  CurrencyLimits `json:"inr_limits"`
	USDLimits  CurrencyLimits `json:"usd_limits"`
	USDTLimits CurrencyLimits `json:"usdt_limits"`

	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// WalletEnabled reports whether the given currency wallet is open for
// deposits and withdrawals.
func (s CommissionSettings) WalletEnabled(c Currency) bool {
	switch c {
	case INR:
		return s.INREnabled
	case USD:
		return s.USDEnabled
	case USDT:
		return s.USDTEnabled
	}
	return false
}

// Limits returns the configured bounds for the given currency.
func (s CommissionSettings) Limits(c Currency) CurrencyLimits {
	switch c {
	case INR:
		return s.INRLimits
	case USD:
		return s.USDLimits
	case USDT:
		return s.USDTLimits
	}
	return CurrencyLimits{}
}

// DefaultSettings returns the hardcoded fallback used when the settings row
// is absent: 2% fee on deposits and transfers, all wallets enabled, INR min
// withdrawal 500, USD/USDT min withdrawal 10.
func DefaultSettings() CommissionSettings {
	return CommissionSettings{
		RatePercent:       decimal.NewFromInt(2),
		ChargeOnDeposits:  true,
		ChargeOnTransfers: true,
		INREnabled:        true,
		USDEnabled:        true,
		USDTEnabled:       true,
		INRLimits: CurrencyLimits{
			MinDeposit:  decimal.NewFromInt(100),
			MinWithdraw: decimal.NewFromInt(500),
		},
		USDLimits: CurrencyLimits{
			MinDeposit:  decimal.NewFromInt(2),
			MinWithdraw: decimal.NewFromInt(10),
		},
		USDTLimits: CurrencyLimits{
			MinDeposit:  decimal.NewFromInt(2),
			MinWithdraw: decimal.NewFromInt(10),
		},
	}
}
