package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletDB represents a wallet row in the database. One row per
// (user, currency) pair; rows are created lazily with a zero balance the
// first time a currency is touched.
type WalletDB struct {
	WalletID  uuid.UUID       `json:"wallet_id" db:"wallet_id"`
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`
	Currency  Currency        `json:"currency" db:"currency"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}
