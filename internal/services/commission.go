package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/models"
)

// Error variables shared by the money-moving services.
var (
	ErrInvalidCurrency    = errors.New("invalid currency")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrBelowMinimum       = errors.New("amount below configured minimum")
	ErrAboveMaximum       = errors.New("amount above configured maximum")
	ErrWalletDisabled     = errors.New("wallet temporarily disabled for maintenance")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrGatewayUnavailable = errors.New("payment gateway not configured")
	ErrDuplicateWebhook   = errors.New("webhook already processed")
	ErrSignatureInvalid   = errors.New("payment signature verification failed")
	ErrEntryNotFound      = errors.New("transaction entry not found")
	ErrIPNMismatch        = errors.New("ipn does not match the pending deposit")
	ErrRecipientNotFound  = errors.New("recipient not found")
	ErrSelfTransfer       = errors.New("cannot transfer to yourself")
)

// OperationKind selects which commission flag applies.
type OperationKind string

const (
	OpDeposit  OperationKind = "deposits"
	OpTransfer OperationKind = "transfers"
)

// Quote is the commission breakdown for one operation.
//
// The direction the commission is taken differs by kind, and that asymmetry
// is product policy, not an accident:
//   - deposits gross up: the payer is charged GrossCharge = amount +
//     commission so the requested amount lands net in their wallet;
//   - transfers deduct: the sender is debited the full amount and the
//     recipient receives Net = amount - commission.
type Quote struct {
	Commission  decimal.Decimal // platform fee credited to the admin wallet
	Net         decimal.Decimal // what the beneficiary wallet is credited
	GrossCharge decimal.Decimal // what the paying side is charged
}

var hundred = decimal.NewFromInt(100)

// ComputeCommission derives the commission breakdown from an explicit
// settings snapshot. Callers load settings once per operation and pass them
// in; this function never reads shared state.
func ComputeCommission(settings models.CommissionSettings, amount decimal.Decimal, kind OperationKind) Quote {
	enabled := false
	switch kind {
	case OpDeposit:
		enabled = settings.ChargeOnDeposits
	case OpTransfer:
		enabled = settings.ChargeOnTransfers
	}

	commission := decimal.Zero
	if enabled {
		commission = amount.Mul(settings.RatePercent).Div(hundred).Round(2)
	}

	switch kind {
	case OpDeposit:
		return Quote{
			Commission:  commission,
			Net:         amount,
			GrossCharge: amount.Add(commission),
		}
	default:
		return Quote{
			Commission:  commission,
			Net:         amount.Sub(commission),
			GrossCharge: amount,
		}
	}
}

// ValidateAmount accepts strictly positive amounts with at most two decimal
// places. Anything else is rejected before any mutation.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Round(2)) {
		return ErrInvalidAmount
	}
	return nil
}

// CheckDepositBounds enforces the configured per-currency deposit limits.
// A zero maximum means unbounded.
func CheckDepositBounds(settings models.CommissionSettings, currency models.Currency, amount decimal.Decimal) error {
	limits := settings.Limits(currency)
	if amount.LessThan(limits.MinDeposit) {
		return ErrBelowMinimum
	}
	if limits.MaxDeposit.IsPositive() && amount.GreaterThan(limits.MaxDeposit) {
		return ErrAboveMaximum
	}
	return nil
}

// CheckWithdrawBounds enforces the configured per-currency withdrawal
// limits. A zero maximum means unbounded.
func CheckWithdrawBounds(settings models.CommissionSettings, currency models.Currency, amount decimal.Decimal) error {
	limits := settings.Limits(currency)
	if amount.LessThan(limits.MinWithdraw) {
		return ErrBelowMinimum
	}
	if limits.MaxWithdraw.IsPositive() && amount.GreaterThan(limits.MaxWithdraw) {
		return ErrAboveMaximum
	}
	return nil
}
