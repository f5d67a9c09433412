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

// Transferer defines the interface that the ledger service must implement.
type Transferer interface {
	Transfer(ctx context.Context, fromID uuid.UUID, toUsername string, currency models.Currency, amount decimal.Decimal, note string) (uuid.UUID, decimal.Decimal, error)
}

// NewTransferHandler returns an HTTP handler for internal wallet-to-wallet
// transfers.
// @Summary Transfer funds
// @Description Moves funds to another user. The sender pays the full amount; the recipient receives it minus commission.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.TransferRequest true "Transfer Request"
// @Success 200 {object} models.TransferResponse "Transfer successful"
// @Failure 400 {object} models.TransferErrorResponse "Insufficient funds or invalid request"
// @Failure 401 {object} models.TransferErrorResponse "Unauthorized"
// @Failure 404 {object} models.TransferErrorResponse "Recipient not found"
// @Failure 503 {object} models.TransferErrorResponse "Wallet disabled"
// @Router /wallet/transfer [post]
// @Security BearerAuth
func NewTransferHandler(
	svc Transferer,
	balances BalanceReader,
	tokener Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := callerClaims(w, r, tokener)
		if !ok {
			return
		}

		var req models.TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.TransferErrorResponse{Error: "Invalid request body"})
			return
		}

		currency, err := models.ParseCurrency(req.Currency)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.TransferErrorResponse{Error: "Invalid currency"})
			return
		}

		refID, received, err := svc.Transfer(ctx, claims.UserID, req.ToUsername, currency, decimal.NewFromFloat(req.Amount), req.Note)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				writeJSON(w, http.StatusBadRequest, models.TransferErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrInsufficientFunds):
				writeJSON(w, http.StatusBadRequest, models.TransferErrorResponse{Error: "Insufficient funds"})
			case errors.Is(err, services.ErrSelfTransfer):
				writeJSON(w, http.StatusBadRequest, models.TransferErrorResponse{Error: "Cannot transfer to yourself"})
			case errors.Is(err, services.ErrRecipientNotFound):
				writeJSON(w, http.StatusNotFound, models.TransferErrorResponse{Error: "Recipient not found"})
			case errors.Is(err, services.ErrWalletDisabled):
				writeJSON(w, http.StatusServiceUnavailable, models.TransferErrorResponse{Error: "Wallet temporarily disabled"})
			default:
				logger.Log.Errorw("failed to transfer", "userID", claims.UserID, "to", req.ToUsername, "error", err)
				writeJSON(w, http.StatusInternalServerError, models.TransferErrorResponse{Error: "Internal server error"})
			}
			return
		}

		all, err := balances.GetUserBalance(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balance after transfer", "userID", claims.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.TransferErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, models.TransferResponse{
			Message:        "Transfer successful",
			ReferenceID:    refID.String(),
			ReceivedAmount: received.InexactFloat64(),
			NewBalance:     toCurrencyBalance(all),
		})
	}
}
