package models

import "fmt"

// Currency is one of the three wallet currencies supported by the platform.
// Balances in different currencies are fully independent: there is no
// conversion between them anywhere in the ledger.
type Currency string

// Supported currency codes
const (
	INR  Currency = "INR"
	USD  Currency = "USD"
	USDT Currency = "USDT"
)

// Currencies lists every supported currency in display order.
var Currencies = []Currency{INR, USD, USDT}

// ParseCurrency validates a currency code received from a client.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case INR, USD, USDT:
		return Currency(s), nil
	}
	return "", fmt.Errorf("unsupported currency %q", s)
}

// String implements fmt.Stringer.
func (c Currency) String() string { return string(c) }
