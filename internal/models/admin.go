package models

// SettingsResponse wraps the commission settings singleton for the admin API
// swagger:model SettingsResponse
type SettingsResponse struct {
	Settings CommissionSettings `json:"settings"`
}

// UpdateSettingsRequest is the admin JSON body for replacing the settings
// singleton. The update takes effect for operations started after it commits.
// swagger:model UpdateSettingsRequest
type UpdateSettingsRequest struct {
	Settings CommissionSettings `json:"settings"`
}

// AdminWalletsResponse lists the platform wallet per currency
// swagger:model AdminWalletsResponse
type AdminWalletsResponse struct {
	Wallets []AdminWalletDB `json:"wallets"`
}

// AdminWithdrawRequest is the admin JSON body for withdrawing accumulated
// commission from a platform wallet
// swagger:model AdminWithdrawRequest
type AdminWithdrawRequest struct {
	// Amount to withdraw
	// required: true
	// example: 100.0
	Amount float64 `json:"amount"`

	// Currency
	// required: true
	// example: INR
	Currency string `json:"currency"`

	// Free-text note kept on the journal entry
	// example: monthly sweep
	Note string `json:"note"`
}

// AdminErrorResponse represents an error response for admin operations
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	// Error message
	// example: Forbidden
	Error string `json:"error"`
}

// MessageResponse is a generic success envelope
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: OK
	Message string `json:"message"`
}
