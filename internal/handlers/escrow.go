package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
	"github.com/harshXitachi/winmicro-wallet/internal/services"
)

// Escrower defines the interface that the escrow service must implement.
type Escrower interface {
	Fund(ctx context.Context, employerID, campaignID uuid.UUID, currency models.Currency, amount decimal.Decimal) (*models.CampaignEscrowDB, error)
	Disburse(ctx context.Context, employerID, campaignID, workerID uuid.UUID, amount decimal.Decimal) (*models.CampaignEscrowDB, error)
	Refund(ctx context.Context, employerID, campaignID uuid.UUID) (decimal.Decimal, error)
	Status(ctx context.Context, campaignID uuid.UUID) (*models.CampaignEscrowDB, error)
}

// WorkerResolver finds payout recipients by username.
type WorkerResolver interface {
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error)
}

func campaignIDParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "campaignID"))
}

func writeEscrowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		writeJSON(w, http.StatusBadRequest, models.EscrowErrorResponse{Error: "Invalid amount"})
	case errors.Is(err, services.ErrInsufficientFunds):
		writeJSON(w, http.StatusBadRequest, models.EscrowErrorResponse{Error: "Insufficient funds"})
	case errors.Is(err, services.ErrEscrowInsufficient):
		writeJSON(w, http.StatusBadRequest, models.EscrowErrorResponse{Error: "Insufficient escrow balance"})
	case errors.Is(err, services.ErrEscrowCurrencyClash):
		writeJSON(w, http.StatusBadRequest, models.EscrowErrorResponse{Error: "Escrow holds a different currency"})
	case errors.Is(err, services.ErrEscrowNotOwner):
		writeJSON(w, http.StatusForbidden, models.EscrowErrorResponse{Error: "Forbidden"})
	case errors.Is(err, services.ErrEscrowNotFound):
		writeJSON(w, http.StatusNotFound, models.EscrowErrorResponse{Error: "Campaign escrow not found"})
	case errors.Is(err, services.ErrWalletDisabled):
		writeJSON(w, http.StatusServiceUnavailable, models.EscrowErrorResponse{Error: "Wallet temporarily disabled"})
	default:
		logger.Log.Errorw("escrow operation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, models.EscrowErrorResponse{Error: "Internal server error"})
	}
}

// NewFundEscrowHandler returns an HTTP handler that moves funds from the
// employer's wallet into a campaign's escrow.
// @Summary Fund campaign escrow
// @Description Debits the caller's wallet and earmarks the amount on the campaign
// @Tags escrow
// @Accept json
// @Produce json
// @Param campaignID path string true "Campaign id"
// @Param request body models.FundEscrowRequest true "Funding Request"
// @Success 200 {object} models.EscrowResponse "Escrow funded"
// @Failure 400 {object} models.EscrowErrorResponse "Insufficient funds or invalid request"
// @Failure 401 {object} models.EscrowErrorResponse "Unauthorized"
// @Failure 403 {object} models.EscrowErrorResponse "Campaign belongs to another employer"
// @Router /campaigns/{campaignID}/escrow [post]
// @Security BearerAuth
func NewFundEscrowHandler(
	svc Escrower,
	tokener Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := callerClaims(w, r, tokener)
		if !ok {
			return
		}

		campaignID, err := campaignIDParam(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.EscrowErrorResponse{Error: "Invalid campaign id"})
			return
		}

		var req models.FundEscrowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.EscrowErrorResponse{Error: "Invalid request body"})
			return
		}

		currency, err := models.ParseCurrency(req.Currency)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.EscrowErrorResponse{Error: "Invalid currency"})
			return
		}

		escrow, err := svc.Fund(ctx, claims.UserID, campaignID, currency, decimal.NewFromFloat(req.Amount))
		if err != nil {
			writeEscrowError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.EscrowResponse{Message: "Escrow funded", Escrow: *escrow})
	}
}

// NewDisburseEscrowHandler returns an HTTP handler that pays a worker from a
// campaign's escrow.
// @Summary Disburse from escrow
// @Description Pays the named worker out of the campaign's escrow balance
// @Tags escrow
// @Accept json
// @Produce json
// @Param campaignID path string true "Campaign id"
// @Param request body models.DisburseRequest true "Disburse Request"
// @Success 200 {object} models.EscrowResponse "Payout completed"
// @Failure 400 {object} models.EscrowErrorResponse "Insufficient escrow balance"
// @Failure 404 {object} models.EscrowErrorResponse "Worker or campaign not found"
// @Router /campaigns/{campaignID}/escrow/disburse [post]
// @Security BearerAuth
func NewDisburseEscrowHandler(
	svc Escrower,
	workers WorkerResolver,
	tokener Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := callerClaims(w, r, tokener)
		if !ok {
			return
		}

		campaignID, err := campaignIDParam(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.EscrowErrorResponse{Error: "Invalid campaign id"})
			return
		}

		var req models.DisburseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.EscrowErrorResponse{Error: "Invalid request body"})
			return
		}

		worker, err := workers.GetByUsernameOrEmail(ctx, &req.ToUsername, nil)
		if err != nil {
			logger.Log.Errorw("failed to resolve worker", "username", req.ToUsername, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.EscrowErrorResponse{Error: "Internal server error"})
			return
		}
		if worker == nil {
			writeJSON(w, http.StatusNotFound, models.EscrowErrorResponse{Error: "Worker not found"})
			return
		}

		escrow, err := svc.Disburse(ctx, claims.UserID, campaignID, worker.UserID, decimal.NewFromFloat(req.Amount))
		if err != nil {
			writeEscrowError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.EscrowResponse{Message: "Payout completed", Escrow: *escrow})
	}
}

// NewRefundEscrowHandler returns an HTTP handler that drains a campaign's
// remaining escrow back to the employer's wallet.
// @Summary Refund campaign escrow
// @Description Returns everything left in the campaign's escrow to the caller's wallet
// @Tags escrow
// @Produce json
// @Param campaignID path string true "Campaign id"
// @Success 200 {object} models.MessageResponse "Escrow refunded"
// @Failure 400 {object} models.EscrowErrorResponse "Escrow already empty"
// @Failure 403 {object} models.EscrowErrorResponse "Campaign belongs to another employer"
// @Router /campaigns/{campaignID}/escrow/refund [post]
// @Security BearerAuth
func NewRefundEscrowHandler(
	svc Escrower,
	tokener Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := callerClaims(w, r, tokener)
		if !ok {
			return
		}

		campaignID, err := campaignIDParam(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.EscrowErrorResponse{Error: "Invalid campaign id"})
			return
		}

		if _, err := svc.Refund(ctx, claims.UserID, campaignID); err != nil {
			writeEscrowError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Escrow refunded"})
	}
}

// NewEscrowStatusHandler returns an HTTP handler for reading a campaign's
// escrow state.
// @Summary Campaign escrow status
// @Tags escrow
// @Produce json
// @Param campaignID path string true "Campaign id"
// @Success 200 {object} models.EscrowResponse "Escrow state"
// @Failure 404 {object} models.EscrowErrorResponse "Campaign escrow not found"
// @Router /campaigns/{campaignID}/escrow [get]
// @Security BearerAuth
func NewEscrowStatusHandler(
	svc Escrower,
	tokener Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := callerClaims(w, r, tokener); !ok {
			return
		}

		campaignID, err := campaignIDParam(r)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.EscrowErrorResponse{Error: "Invalid campaign id"})
			return
		}

		escrow, err := svc.Status(ctx, campaignID)
		if err != nil {
			writeEscrowError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.EscrowResponse{Message: "OK", Escrow: *escrow})
	}
}
