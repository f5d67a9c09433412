package models

// FundEscrowRequest represents the JSON body for funding a campaign escrow
// from the employer's wallet. Funding fails if the wallet cannot cover it.
// swagger:model FundEscrowRequest
type FundEscrowRequest struct {
	// Amount to move into escrow
	// required: true
	// example: 200.0
	Amount float64 `json:"amount"`

	// Currency
	// required: true
	// example: USD
	Currency string `json:"currency"`
}

// DisburseRequest represents the JSON body for paying a worker from a
// campaign's escrow (task payment or bonus).
// swagger:model DisburseRequest
type DisburseRequest struct {
	// Worker username to credit
	// required: true
	// example: worker_7
	ToUsername string `json:"to_username"`

	// Amount to pay out
	// required: true
	// example: 25.0
	Amount float64 `json:"amount"`

	// Optional note stored on the journal entries
	// example: bonus for task #12
	Note string `json:"note"`
}

// EscrowResponse returns the campaign escrow state after an operation
// swagger:model EscrowResponse
type EscrowResponse struct {
	// Success message
	// example: Escrow funded
	Message string `json:"message"`

	Escrow CampaignEscrowDB `json:"escrow"`
}

// EscrowErrorResponse represents an error response for escrow operations
// swagger:model EscrowErrorResponse
type EscrowErrorResponse struct {
	// Error message
	// example: Insufficient escrow balance
	Error string `json:"error"`
}
