package models

// CurrencyBalance represents balances for different currencies
// swagger:model CurrencyBalance
type CurrencyBalance struct {
	// Balance in INR
	// example: 5000.0
	INR float64 `json:"INR"`

	// Balance in USD
	// example: 100.0
	USD float64 `json:"USD"`

	// Balance in USDT
	// example: 50.0
	USDT float64 `json:"USDT"`
}
