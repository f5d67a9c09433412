package models

// WithdrawRequest represents the JSON body for withdrawing funds.
// Destination is rail-specific: a UPI/bank reference for INR, a PayPal email
// for USD, an on-chain address for USDT.
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// Amount to withdraw
	// required: true
	// example: 50.0
	Amount float64 `json:"amount"`

	// Currency
	// required: true
	// example: USDT
	Currency string `json:"currency"`

	// Payout destination
	// required: true
	// example: TXyz...
	Destination string `json:"destination"`
}

// WithdrawResponse represents a successful withdrawal request
// swagger:model WithdrawResponse
type WithdrawResponse struct {
	// Success message
	// example: Withdrawal requested
	Message string `json:"message"`

	// Journal entry id for this attempt
	TransactionID string `json:"transaction_id"`

	// New balance of the user
	NewBalance CurrencyBalance `json:"new_balance"`
}

// WithdrawErrorResponse represents an error response for withdrawal
// swagger:model WithdrawErrorResponse
type WithdrawErrorResponse struct {
	// Error message
	// example: Insufficient funds or invalid amount
	Error string `json:"error"`
}
