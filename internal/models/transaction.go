package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxnDirection marks which side of a movement an entry records.
type TxnDirection string

const (
	DirectionCredit TxnDirection = "credit"
	DirectionDebit  TxnDirection = "debit"
)

// TxnKind describes what kind of money movement an entry belongs to.
type TxnKind string

const (
	KindDeposit                   TxnKind = "deposit"
	KindWithdrawal                TxnKind = "withdrawal"
	KindTransfer                  TxnKind = "transfer"
	KindRefund                    TxnKind = "refund"
	KindEscrowFund                TxnKind = "escrow_fund"
	KindEscrowPayout              TxnKind = "escrow_payout"
	KindAdminWithdrawal           TxnKind = "admin_withdrawal"
	KindAdminCommissionWithdrawal TxnKind = "admin_commission_withdrawal"
)

// TxnStatus is the lifecycle state of a journal entry. Entries start as
// pending (gateway flows) or completed (internal transfers) and transition
// at most once to a terminal state.
type TxnStatus string

const (
	StatusPending   TxnStatus = "pending"
	StatusCompleted TxnStatus = "completed"
	StatusFailed    TxnStatus = "failed"
)

// TransactionDB is one immutable journal entry: a single side of a
// balance-affecting event. Amount and currency never change after insert;
// only status and description evolve.
type TransactionDB struct {
	TransactionID uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Direction     TxnDirection    `json:"direction" db:"direction"`
	Currency      Currency        `json:"currency" db:"currency"`
	Kind          TxnKind         `json:"kind" db:"kind"`
	Status        TxnStatus       `json:"status" db:"status"`
	FromUser      *uuid.UUID      `json:"from_user,omitempty" db:"from_user"`
	ToUser        *uuid.UUID      `json:"to_user,omitempty" db:"to_user"`
	Commission    decimal.Decimal `json:"commission" db:"commission"`
	ExternalRef   *string         `json:"external_ref,omitempty" db:"external_ref"`
	CampaignID    *uuid.UUID      `json:"campaign_id,omitempty" db:"campaign_id"`
	Description   string          `json:"description" db:"description"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// TransactionEvent is the payload published to Kafka for every completed
// ledger movement.
type TransactionEvent struct {
	TransactionID string `json:"transaction_id"`
	Timestamp     int64  `json:"timestamp"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	UserID        string `json:"user_id"`
	Operation     string `json:"operation"`
	Commission    string `json:"commission,omitempty"`
	ExternalRef   string `json:"external_ref,omitempty"`
}
