package models

// TransferRequest represents the JSON body for an internal wallet-to-wallet
// transfer. The sender is debited the full amount; the recipient receives
// the amount minus commission.
// swagger:model TransferRequest
type TransferRequest struct {
	// Recipient username
	// required: true
	// example: jane_doe
	ToUsername string `json:"to_username"`

	// Amount to transfer
	// required: true
	// example: 1000.0
	Amount float64 `json:"amount"`

	// Currency
	// required: true
	// example: INR
	Currency string `json:"currency"`

	// Optional note stored on both journal entries
	// example: project milestone
	Note string `json:"note"`
}

// TransferResponse represents a successful transfer response
// swagger:model TransferResponse
type TransferResponse struct {
	// Success message
	// example: Transfer successful
	Message string `json:"message"`

	// Shared reference id linking both journal entries
	ReferenceID string `json:"reference_id"`

	// Amount credited to the recipient after commission
	// example: 980.0
	ReceivedAmount float64 `json:"received_amount"`

	// New balance of the sender
	NewBalance CurrencyBalance `json:"new_balance"`
}

// TransferErrorResponse represents an error response for transfer
// swagger:model TransferErrorResponse
type TransferErrorResponse struct {
	// Error message
	// example: Insufficient funds
	Error string `json:"error"`
}
