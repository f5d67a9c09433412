package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
)

// HistoryReader defines the interface that the service must implement.
type HistoryReader interface {
	History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.TransactionDB, error)
}

// NewHistoryHandler returns an HTTP handler for the caller's journal history.
// @Summary Transaction history
// @Description Returns the caller's journal entries, newest first
// @Tags wallet
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} models.HistoryResponse "Journal entries"
// @Failure 401 {object} models.HistoryErrorResponse "Unauthorized"
// @Failure 500 {object} models.HistoryErrorResponse "Internal server error"
// @Router /wallet/history [get]
// @Security BearerAuth
func NewHistoryHandler(
	svc HistoryReader,
	tokener Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := callerClaims(w, r, tokener)
		if !ok {
			return
		}

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		entries, err := svc.History(ctx, claims.UserID, limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to get history", "userID", claims.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.HistoryErrorResponse{Error: "Internal server error"})
			return
		}

		if entries == nil {
			entries = []models.TransactionDB{}
		}
		writeJSON(w, http.StatusOK, models.HistoryResponse{Transactions: entries})
	}
}
