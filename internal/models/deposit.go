package models

// DepositRequest represents the JSON body for starting a deposit.
// The rail is chosen by the currency: INR goes through Razorpay, USD through
// PayPal, USDT through CoinPayments.
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to land in the wallet (the payer is charged amount + commission)
	// required: true
	// example: 500.0
	Amount float64 `json:"amount"`

	// Currency
	// required: true
	// example: INR
	Currency string `json:"currency"`
}

// DepositResponse represents a successfully created deposit attempt.
// Exactly one of OrderID/ApprovalURL/Address is meaningful per rail.
// swagger:model DepositResponse
type DepositResponse struct {
	// Journal entry id for this attempt
	TransactionID string `json:"transaction_id"`

	// Gateway order id (Razorpay, PayPal)
	OrderID string `json:"order_id,omitempty"`

	// Redirect URL the client must open to approve the payment (PayPal)
	ApprovalURL string `json:"approval_url,omitempty"`

	// On-chain deposit address (CoinPayments)
	Address string `json:"address,omitempty"`

	// QR code URL for the on-chain address (CoinPayments)
	QRCodeURL string `json:"qrcode_url,omitempty"`

	// Total the payer is charged, including commission
	// example: 510.0
	ChargeTotal float64 `json:"charge_total"`
}

// DepositVerifyRequest carries the client-side payment confirmation for the
// Razorpay rail: the signature is HMAC-SHA256 over "orderID|paymentID".
// swagger:model DepositVerifyRequest
type DepositVerifyRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// DepositCompleteResponse is returned when a deposit reaches a terminal state.
// swagger:model DepositCompleteResponse
type DepositCompleteResponse struct {
	// Success message
	// example: Deposit completed
	Message string `json:"message"`

	// New balance of the user
	NewBalance CurrencyBalance `json:"new_balance"`
}

// DepositErrorResponse represents an error response for deposit
// swagger:model DepositErrorResponse
type DepositErrorResponse struct {
	// Error message
	// example: Invalid amount or currency
	Error string `json:"error"`
}
