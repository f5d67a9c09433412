package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/harshXitachi/winmicro-wallet/internal/gateways"
	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/services"
)

// IPNVerifier authenticates raw IPN bodies against the shared secret.
type IPNVerifier interface {
	VerifyIPN(rawBody []byte, hmacHeader string) bool
}

// IPNApplier applies an authenticated IPN notification to the ledger.
type IPNApplier interface {
	HandleCoinPaymentsIPN(ctx context.Context, ipn *gateways.IPNNotification) error
}

// NewCoinPaymentsIPNHandler returns the webhook endpoint CoinPayments posts
// deposit status changes to. The body is authenticated with HMAC-SHA512
// before anything is parsed. Duplicates and not-yet-actionable statuses are
// acknowledged with 200 so the gateway stops retrying; transient processing
// failures return 500 so it retries a delivery the conditional transition
// makes safe to replay. Acknowledging those failures with 200 instead would
// commit whatever partial state the failed apply left behind and the
// gateway would never redeliver — the 500 trades one extra delivery for a
// rolled-back, untouched ledger.
func NewCoinPaymentsIPNHandler(
	verifier IPNVerifier,
	svc IPNApplier,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if verifier == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		rawBody, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if !verifier.VerifyIPN(rawBody, r.Header.Get("HMAC")) {
			logger.Log.Warnw("rejected IPN with bad HMAC", "remote", r.RemoteAddr)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		form, err := url.ParseQuery(string(bytes.TrimSpace(rawBody)))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		ipn, err := gateways.ParseIPN(form)
		if err != nil {
			logger.Log.Warnw("malformed IPN", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := svc.HandleCoinPaymentsIPN(ctx, ipn); err != nil {
			switch {
			case errors.Is(err, services.ErrDuplicateWebhook), errors.Is(err, services.ErrEntryNotFound):
				// Nothing left to do for this delivery.
				w.WriteHeader(http.StatusOK)
			case errors.Is(err, services.ErrIPNMismatch):
				// Authenticated but inconsistent with the pending entry;
				// retrying the same payload cannot help.
				logger.Log.Warnw("rejected inconsistent IPN", "txn_id", ipn.TxnID, "error", err)
				w.WriteHeader(http.StatusBadRequest)
			default:
				logger.Log.Errorw("failed to apply IPN", "txn_id", ipn.TxnID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
