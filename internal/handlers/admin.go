package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
	"github.com/harshXitachi/winmicro-wallet/internal/services"
)

// Administrator defines the interface that the back-office service must
// implement.
type Administrator interface {
	GetSettings(ctx context.Context) (models.CommissionSettings, error)
	UpdateSettings(ctx context.Context, settings models.CommissionSettings) error
	ListWallets(ctx context.Context) ([]models.AdminWalletDB, error)
	WithdrawCommission(ctx context.Context, operatorID uuid.UUID, currency models.Currency, amount decimal.Decimal, destination string) (*models.TransactionDB, error)
	PendingWithdrawals(ctx context.Context, limit, offset int) ([]models.TransactionDB, error)
	ApproveWithdrawal(ctx context.Context, id uuid.UUID, settlementRef string) (*models.TransactionDB, error)
	RejectWithdrawal(ctx context.Context, id uuid.UUID, reason string) (*models.TransactionDB, error)
}

// NewGetSettingsHandler returns the current commission settings.
// @Summary Get commission settings
// @Tags admin
// @Produce json
// @Success 200 {object} models.SettingsResponse "Current settings"
// @Failure 403 {object} models.AdminErrorResponse "Forbidden"
// @Router /admin/settings [get]
// @Security BearerAuth
func NewGetSettingsHandler(svc Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := svc.GetSettings(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get settings", "error", err)
			writeJSON(w, http.StatusInternalServerError, models.AdminErrorResponse{Error: "Internal server error"})
			return
		}
		writeJSON(w, http.StatusOK, models.SettingsResponse{Settings: settings})
	}
}

// NewUpdateSettingsHandler replaces the commission settings singleton.
// @Summary Update commission settings
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.UpdateSettingsRequest true "New settings"
// @Success 200 {object} models.MessageResponse "Settings updated"
// @Failure 400 {object} models.AdminErrorResponse "Invalid settings"
// @Failure 403 {object} models.AdminErrorResponse "Forbidden"
// @Router /admin/settings [put]
// @Security BearerAuth
func NewUpdateSettingsHandler(svc Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UpdateSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.AdminErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.UpdateSettings(r.Context(), req.Settings); err != nil {
			if errors.Is(err, services.ErrInvalidRate) {
				writeJSON(w, http.StatusBadRequest, models.AdminErrorResponse{Error: "Commission rate must be between 0 and 100"})
				return
			}
			logger.Log.Errorw("failed to update settings", "error", err)
			writeJSON(w, http.StatusInternalServerError, models.AdminErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Settings updated"})
	}
}

// NewAdminWalletsHandler lists the per-currency platform wallets.
// @Summary List platform wallets
// @Tags admin
// @Produce json
// @Success 200 {object} models.AdminWalletsResponse "Platform wallets"
// @Failure 403 {object} models.AdminErrorResponse "Forbidden"
// @Router /admin/wallets [get]
// @Security BearerAuth
func NewAdminWalletsHandler(svc Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wallets, err := svc.ListWallets(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list platform wallets", "error", err)
			writeJSON(w, http.StatusInternalServerError, models.AdminErrorResponse{Error: "Internal server error"})
			return
		}
		if wallets == nil {
			wallets = []models.AdminWalletDB{}
		}
		writeJSON(w, http.StatusOK, models.AdminWalletsResponse{Wallets: wallets})
	}
}

// NewAdminWithdrawHandler withdraws accumulated commission from a platform
// wallet.
// @Summary Withdraw platform commission
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.AdminWithdrawRequest true "Withdraw Request"
// @Success 200 {object} models.MessageResponse "Commission withdrawn"
// @Failure 400 {object} models.AdminErrorResponse "Insufficient platform balance"
// @Failure 403 {object} models.AdminErrorResponse "Forbidden"
// @Router /admin/wallets/withdraw [post]
// @Security BearerAuth
func NewAdminWithdrawHandler(svc Administrator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := callerClaims(w, r, tokener)
		if !ok {
			return
		}

		var req models.AdminWithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.AdminErrorResponse{Error: "Invalid request body"})
			return
		}

		currency, err := models.ParseCurrency(req.Currency)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.AdminErrorResponse{Error: "Invalid currency"})
			return
		}

		if _, err := svc.WithdrawCommission(ctx, claims.UserID, currency, decimal.NewFromFloat(req.Amount), req.Note); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				writeJSON(w, http.StatusBadRequest, models.AdminErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrPlatformInsufficient):
				writeJSON(w, http.StatusBadRequest, models.AdminErrorResponse{Error: "Insufficient platform balance"})
			default:
				logger.Log.Errorw("failed to withdraw commission", "error", err)
				writeJSON(w, http.StatusInternalServerError, models.AdminErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Commission withdrawn"})
	}
}

// NewPendingWithdrawalsHandler lists the manual settlement queue.
// @Summary List pending withdrawals
// @Tags admin
// @Produce json
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} models.HistoryResponse "Pending withdrawals, oldest first"
// @Failure 403 {object} models.AdminErrorResponse "Forbidden"
// @Router /admin/withdrawals [get]
// @Security BearerAuth
func NewPendingWithdrawalsHandler(svc Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		entries, err := svc.PendingWithdrawals(r.Context(), limit, offset)
		if err != nil {
			logger.Log.Errorw("failed to list pending withdrawals", "error", err)
			writeJSON(w, http.StatusInternalServerError, models.AdminErrorResponse{Error: "Internal server error"})
			return
		}
		if entries == nil {
			entries = []models.TransactionDB{}
		}
		writeJSON(w, http.StatusOK, models.HistoryResponse{Transactions: entries})
	}
}

// WithdrawalDecisionRequest is the admin JSON body for settling or rejecting
// a queued withdrawal
// swagger:model WithdrawalDecisionRequest
type WithdrawalDecisionRequest struct {
	// Settlement reference (approve) or rejection reason (reject)
	// example: NEFT-20260830-001
	Note string `json:"note"`
}

func withdrawalIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "transactionID"))
}

// NewApproveWithdrawalHandler settles a queued fiat withdrawal.
// @Summary Approve a pending withdrawal
// @Tags admin
// @Accept json
// @Produce json
// @Param transactionID path string true "Journal entry id"
// @Param request body handlers.WithdrawalDecisionRequest false "Settlement reference"
// @Success 200 {object} models.MessageResponse "Withdrawal approved"
// @Failure 404 {object} models.AdminErrorResponse "Entry not found"
// @Failure 409 {object} models.AdminErrorResponse "Entry is not a pending withdrawal"
// @Router /admin/withdrawals/{transactionID}/approve [post]
// @Security BearerAuth
func NewApproveWithdrawalHandler(svc Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := withdrawalIDParam(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.AdminErrorResponse{Error: "Invalid transaction id"})
			return
		}

		var req WithdrawalDecisionRequest
		json.NewDecoder(r.Body).Decode(&req)

		if _, err := svc.ApproveWithdrawal(r.Context(), id, req.Note); err != nil {
			writeWithdrawalDecisionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Withdrawal approved"})
	}
}

// NewRejectWithdrawalHandler fails a queued fiat withdrawal and returns the
// held amount to the user.
// @Summary Reject a pending withdrawal
// @Tags admin
// @Accept json
// @Produce json
// @Param transactionID path string true "Journal entry id"
// @Param request body handlers.WithdrawalDecisionRequest false "Rejection reason"
// @Success 200 {object} models.MessageResponse "Withdrawal rejected and refunded"
// @Failure 404 {object} models.AdminErrorResponse "Entry not found"
// @Failure 409 {object} models.AdminErrorResponse "Entry is not a pending withdrawal"
// @Router /admin/withdrawals/{transactionID}/reject [post]
// @Security BearerAuth
func NewRejectWithdrawalHandler(svc Administrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := withdrawalIDParam(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.AdminErrorResponse{Error: "Invalid transaction id"})
			return
		}

		var req WithdrawalDecisionRequest
		json.NewDecoder(r.Body).Decode(&req)

		if _, err := svc.RejectWithdrawal(r.Context(), id, req.Note); err != nil {
			writeWithdrawalDecisionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Withdrawal rejected and refunded"})
	}
}

func writeWithdrawalDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrEntryNotFound):
		writeJSON(w, http.StatusNotFound, models.AdminErrorResponse{Error: "Entry not found"})
	case errors.Is(err, services.ErrNotAWithdrawal):
		writeJSON(w, http.StatusConflict, models.AdminErrorResponse{Error: "Entry is not a pending withdrawal"})
	default:
		logger.Log.Errorw("withdrawal decision failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.AdminErrorResponse{Error: "Internal server error"})
	}
}
