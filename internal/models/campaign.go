package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignEscrowDB tracks the funds earmarked on a campaign. EscrowBalance
// is funded from the employer's wallet and drawn down by worker payouts;
// TotalSpent accumulates everything ever disbursed.
type CampaignEscrowDB struct {
	CampaignID    uuid.UUID       `json:"campaign_id" db:"campaign_id"`
	EmployerID    uuid.UUID       `json:"employer_id" db:"employer_id"`
	Currency      Currency        `json:"currency" db:"currency"`
	EscrowBalance decimal.Decimal `json:"escrow_balance" db:"escrow_balance"`
	TotalSpent    decimal.Decimal `json:"total_spent" db:"total_spent"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}
