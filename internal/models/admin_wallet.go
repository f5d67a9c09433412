package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminWalletDB is the singleton-per-currency platform wallet. It is
// credited only by the commission engine and debited only by explicit admin
// withdrawals; TotalEarned accumulates every commission ever credited.
type AdminWalletDB struct {
	Currency    Currency        `json:"currency" db:"currency"`
	Balance     decimal.Decimal `json:"balance" db:"balance"`
	TotalEarned decimal.Decimal `json:"total_commission_earned" db:"total_commission_earned"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}
