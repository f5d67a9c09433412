package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
)

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	GetUserBalance(ctx context.Context, userID uuid.UUID) (map[models.Currency]decimal.Decimal, error)
}

// toCurrencyBalance flattens a balance map into the response shape.
// Currencies the user never touched come back as zero.
func toCurrencyBalance(balances map[models.Currency]decimal.Decimal) models.CurrencyBalance {
	return models.CurrencyBalance{
		INR:  balances[models.INR].InexactFloat64(),
		USD:  balances[models.USD].InexactFloat64(),
		USDT: balances[models.USDT].InexactFloat64(),
	}
}

// NewGetBalanceHandler returns an HTTP handler for fetching user balances.
// @Summary Get user balance
// @Description Returns balances for all supported currencies
// @Tags wallet
// @Produce json
// @Success 200 {object} models.BalanceResponse "User balance"
// @Failure 401 {object} models.BalanceErrorResponse "Unauthorized"
// @Failure 500 {object} models.BalanceErrorResponse "Internal server error"
// @Router /wallet/balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(
	svc BalanceReader,
	tokener Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := callerClaims(w, r, tokener)
		if !ok {
			return
		}

		balances, err := svc.GetUserBalance(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "userID", claims.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.BalanceErrorResponse{Error: "Internal server error"})
			return
		}

		balance := toCurrencyBalance(balances)
		writeJSON(w, http.StatusOK, models.BalanceResponse{Balance: &balance})
	}
}
