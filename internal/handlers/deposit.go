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

// Depositor defines the interface that the payment service must implement.
type Depositor interface {
	CreateDeposit(ctx context.Context, userID uuid.UUID, email string, currency models.Currency, amount decimal.Decimal) (*services.DepositIntent, error)
}

// DepositVerifier completes Razorpay deposits from client confirmations.
type DepositVerifier interface {
	VerifyRazorpayDeposit(ctx context.Context, orderID, paymentID, signature string) (*models.TransactionDB, error)
}

// DepositCapturer completes PayPal deposits by server-side capture.
type DepositCapturer interface {
	CapturePayPalDeposit(ctx context.Context, orderID string) (*models.TransactionDB, error)
}

// NewCreateDepositHandler returns an HTTP handler that starts a deposit on
// the currency's rail. No balance changes until the gateway confirms.
// @Summary Start a deposit
// @Description Creates a gateway order for the requested amount plus commission and records a pending journal entry
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.DepositRequest true "Deposit Request"
// @Success 200 {object} models.DepositResponse "Deposit created"
// @Failure 400 {object} models.DepositErrorResponse "Invalid amount or currency"
// @Failure 401 {object} models.DepositErrorResponse "Unauthorized"
// @Failure 503 {object} models.DepositErrorResponse "Wallet disabled or gateway unavailable"
// @Router /wallet/deposit [post]
// @Security BearerAuth
func NewCreateDepositHandler(
	svc Depositor,
	tokener Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := callerClaims(w, r, tokener)
		if !ok {
			return
		}

		var req models.DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.DepositErrorResponse{Error: "Invalid request body"})
			return
		}

		currency, err := models.ParseCurrency(req.Currency)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.DepositErrorResponse{Error: "Invalid amount or currency"})
			return
		}

		intent, err := svc.CreateDeposit(ctx, claims.UserID, claims.Email, currency, decimal.NewFromFloat(req.Amount))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount),
				errors.Is(err, services.ErrBelowMinimum),
				errors.Is(err, services.ErrAboveMaximum):
				writeJSON(w, http.StatusBadRequest, models.DepositErrorResponse{Error: "Invalid amount or currency"})
			case errors.Is(err, services.ErrWalletDisabled):
				writeJSON(w, http.StatusServiceUnavailable, models.DepositErrorResponse{Error: "Wallet temporarily disabled"})
			case errors.Is(err, services.ErrGatewayUnavailable):
				writeJSON(w, http.StatusServiceUnavailable, models.DepositErrorResponse{Error: "Payment gateway unavailable"})
			default:
				logger.Log.Errorw("failed to create deposit", "userID", claims.UserID, "error", err)
				writeJSON(w, http.StatusInternalServerError, models.DepositErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, models.DepositResponse{
			TransactionID: intent.TransactionID.String(),
			OrderID:       intent.OrderID,
			ApprovalURL:   intent.ApprovalURL,
			Address:       intent.Address,
			QRCodeURL:     intent.QRCodeURL,
			ChargeTotal:   intent.ChargeTotal.InexactFloat64(),
		})
	}
}

// NewVerifyDepositHandler returns an HTTP handler that completes an INR
// deposit from the Razorpay client confirmation. Replayed confirmations are
// acknowledged without crediting twice.
// @Summary Verify a Razorpay deposit
// @Description Verifies the payment signature and credits the wallet once
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body models.DepositVerifyRequest true "Payment confirmation"
// @Success 200 {object} models.DepositCompleteResponse "Deposit completed"
// @Failure 400 {object} models.DepositErrorResponse "Signature verification failed"
// @Failure 404 {object} models.DepositErrorResponse "Unknown order"
// @Router /wallet/deposit/verify [post]
// @Security BearerAuth
func NewVerifyDepositHandler(
	svc DepositVerifier,
	balances BalanceReader,
	tokener Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := callerClaims(w, r, tokener)
		if !ok {
			return
		}

		var req models.DepositVerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.DepositErrorResponse{Error: "Invalid request body"})
			return
		}

		_, err := svc.VerifyRazorpayDeposit(ctx, req.OrderID, req.PaymentID, req.Signature)
		if err != nil && !errors.Is(err, services.ErrDuplicateWebhook) {
			switch {
			case errors.Is(err, services.ErrEntryNotFound):
				writeJSON(w, http.StatusNotFound, models.DepositErrorResponse{Error: "Unknown order"})
			case errors.Is(err, services.ErrSignatureInvalid):
				writeJSON(w, http.StatusBadRequest, models.DepositErrorResponse{Error: "Signature verification failed"})
			default:
				logger.Log.Errorw("failed to verify deposit", "order_id", req.OrderID, "error", err)
				writeJSON(w, http.StatusInternalServerError, models.DepositErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeCompleted(ctx, w, balances, claims.UserID)
	}
}

// PayPalCaptureRequest carries the approved PayPal order to capture
// swagger:model PayPalCaptureRequest
type PayPalCaptureRequest struct {
	// Gateway order id returned at deposit creation
	// required: true
	OrderID string `json:"order_id"`
}

// NewCapturePayPalDepositHandler returns an HTTP handler that captures an
// approved USD order and credits the wallet on success.
// @Summary Capture a PayPal deposit
// @Description Captures the approved order server-side and credits the wallet once
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.PayPalCaptureRequest true "Order to capture"
// @Success 200 {object} models.DepositCompleteResponse "Deposit completed"
// @Failure 404 {object} models.DepositErrorResponse "Unknown order"
// @Failure 422 {object} models.DepositErrorResponse "Capture did not complete"
// @Router /wallet/deposit/paypal/capture [post]
// @Security BearerAuth
func NewCapturePayPalDepositHandler(
	svc DepositCapturer,
	balances BalanceReader,
	tokener Tokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := callerClaims(w, r, tokener)
		if !ok {
			return
		}

		var req PayPalCaptureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OrderID == "" {
			writeJSON(w, http.StatusBadRequest, models.DepositErrorResponse{Error: "Invalid request body"})
			return
		}

		_, err := svc.CapturePayPalDeposit(ctx, req.OrderID)
		if err != nil && !errors.Is(err, services.ErrDuplicateWebhook) {
			switch {
			case errors.Is(err, services.ErrEntryNotFound):
				writeJSON(w, http.StatusNotFound, models.DepositErrorResponse{Error: "Unknown order"})
			default:
				logger.Log.Errorw("failed to capture paypal deposit", "order_id", req.OrderID, "error", err)
				writeJSON(w, http.StatusUnprocessableEntity, models.DepositErrorResponse{Error: "Capture did not complete"})
			}
			return
		}

		writeCompleted(ctx, w, balances, claims.UserID)
	}
}

// writeCompleted responds with the caller's post-deposit balance.
func writeCompleted(ctx context.Context, w http.ResponseWriter, balances BalanceReader, userID uuid.UUID) {
	all, err := balances.GetUserBalance(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get balance after deposit", "userID", userID, "error", err)
		writeJSON(w, http.StatusInternalServerError, models.DepositErrorResponse{Error: "Internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, models.DepositCompleteResponse{
		Message:    "Deposit completed",
		NewBalance: toCurrencyBalance(all),
	})
}
