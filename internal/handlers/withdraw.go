package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
	"github.com/harshXitachi/winmicro-wallet/internal/services"
)

// Withdrawer defines the interface that the payment service must implement.
type Withdrawer interface {
	Withdraw(ctx context.Context, userID uuid.UUID, currency models.Currency, amount decimal.Decimal, destination string) (*models.TransactionDB, error)
}

// NewWithdrawHandler returns an HTTP handler for withdrawing funds. USDT
// payouts settle immediately on-chain; INR and USD withdrawals enter the
// manual settlement queue.
// @Summary Withdraw funds
// @Description Debits the wallet and routes the payout through the currency's rail
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} models.WithdrawResponse "Withdrawal requested"
// @Failure 400 {object} models.WithdrawErrorResponse "Insufficient funds or invalid amount"
// @Failure 401 {object} models.WithdrawErrorResponse "Unauthorized"
// @Failure 422 {object} models.WithdrawErrorResponse "Payout gateway rejected the withdrawal"
// @Failure 503 {object} models.WithdrawErrorResponse "Wallet disabled or gateway unavailable"
// @Router /wallet/withdraw [post]
// @Security BearerAuth
func NewWithdrawHandler(
	svc Withdrawer,
	balances BalanceReader,
	tokener Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := callerClaims(w, r, tokener)
		if !ok {
			return
		}

		var req models.WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.WithdrawErrorResponse{Error: "Invalid request body"})
			return
		}

		currency, err := models.ParseCurrency(req.Currency)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.WithdrawErrorResponse{Error: "Insufficient funds or invalid amount"})
			return
		}

		entry, err := svc.Withdraw(ctx, claims.UserID, currency, decimal.NewFromFloat(req.Amount), req.Destination)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount),
				errors.Is(err, services.ErrBelowMinimum),
				errors.Is(err, services.ErrAboveMaximum),
				errors.Is(err, services.ErrInsufficientFunds):
				writeJSON(w, http.StatusBadRequest, models.WithdrawErrorResponse{Error: "Insufficient funds or invalid amount"})
			case errors.Is(err, services.ErrWalletDisabled):
				writeJSON(w, http.StatusServiceUnavailable, models.WithdrawErrorResponse{Error: "Wallet temporarily disabled"})
			case errors.Is(err, services.ErrGatewayUnavailable):
				writeJSON(w, http.StatusServiceUnavailable, models.WithdrawErrorResponse{Error: "Payout gateway unavailable"})
			case errors.Is(err, services.ErrPayoutFailed):
				// The debit was reversed and the failed attempt journaled;
				// the 4xx lets both outlive this request.
				writeJSON(w, http.StatusUnprocessableEntity, models.WithdrawErrorResponse{Error: "Payout gateway rejected the withdrawal"})
			default:
				logger.Log.Errorw("failed to withdraw", "userID", claims.UserID, "error", err)
				writeJSON(w, http.StatusInternalServerError, models.WithdrawErrorResponse{Error: "Internal server error"})
			}
			return
		}

		all, err := balances.GetUserBalance(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balance after withdrawal", "userID", claims.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.WithdrawErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, models.WithdrawResponse{
			Message:       "Withdrawal requested",
			TransactionID: entry.TransactionID.String(),
			NewBalance:    toCurrencyBalance(all),
		})
	}
}
