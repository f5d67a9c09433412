package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/harshXitachi/winmicro-wallet/internal/gateways"
	"github.com/harshXitachi/winmicro-wallet/internal/services"
)

func TestCoinPaymentsIPNHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ipnBody := "txn_id=CPX1&status=100&amount1=50&currency1=USDT&merchant=m1"

	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/coinpayments", bytes.NewBufferString(body))
		req.Header.Set("HMAC", "deadbeef")
		return req
	}

	t.Run("completed deposit is applied", func(t *testing.T) {
		verifier := NewMockIPNVerifier(ctrl)
		verifier.EXPECT().VerifyIPN([]byte(ipnBody), "deadbeef").Return(true)

		svc := NewMockIPNApplier(ctrl)
		svc.EXPECT().
			HandleCoinPaymentsIPN(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, ipn *gateways.IPNNotification) error {
				assert.Equal(t, "CPX1", ipn.TxnID)
				assert.Equal(t, gateways.IPNStatusComplete, ipn.Status)
				assert.True(t, ipn.Amount.Equal(decimal.NewFromInt(50)))
				return nil
			})

		w := httptest.NewRecorder()
		NewCoinPaymentsIPNHandler(verifier, svc).ServeHTTP(w, newRequest(ipnBody))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad hmac is rejected before parsing", func(t *testing.T) {
		verifier := NewMockIPNVerifier(ctrl)
		verifier.EXPECT().VerifyIPN([]byte(ipnBody), "deadbeef").Return(false)

		w := httptest.NewRecorder()
		NewCoinPaymentsIPNHandler(verifier, NewMockIPNApplier(ctrl)).ServeHTTP(w, newRequest(ipnBody))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("duplicate delivery is acknowledged", func(t *testing.T) {
		verifier := NewMockIPNVerifier(ctrl)
		verifier.EXPECT().VerifyIPN([]byte(ipnBody), "deadbeef").Return(true)

		svc := NewMockIPNApplier(ctrl)
		svc.EXPECT().
			HandleCoinPaymentsIPN(gomock.Any(), gomock.Any()).
			Return(services.ErrDuplicateWebhook)

		w := httptest.NewRecorder()
		NewCoinPaymentsIPNHandler(verifier, svc).ServeHTTP(w, newRequest(ipnBody))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("inconsistent notification is rejected without a retry", func(t *testing.T) {
		verifier := NewMockIPNVerifier(ctrl)
		verifier.EXPECT().VerifyIPN([]byte(ipnBody), "deadbeef").Return(true)

		svc := NewMockIPNApplier(ctrl)
		svc.EXPECT().
			HandleCoinPaymentsIPN(gomock.Any(), gomock.Any()).
			Return(services.ErrIPNMismatch)

		w := httptest.NewRecorder()
		NewCoinPaymentsIPNHandler(verifier, svc).ServeHTTP(w, newRequest(ipnBody))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("transient failure asks for a retry", func(t *testing.T) {
		verifier := NewMockIPNVerifier(ctrl)
		verifier.EXPECT().VerifyIPN([]byte(ipnBody), "deadbeef").Return(true)

		svc := NewMockIPNApplier(ctrl)
		svc.EXPECT().
			HandleCoinPaymentsIPN(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		w := httptest.NewRecorder()
		NewCoinPaymentsIPNHandler(verifier, svc).ServeHTTP(w, newRequest(ipnBody))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("missing txn_id is a bad request", func(t *testing.T) {
		body := "status=100&amount1=50"
		verifier := NewMockIPNVerifier(ctrl)
		verifier.EXPECT().VerifyIPN([]byte(body), "deadbeef").Return(true)

		w := httptest.NewRecorder()
		NewCoinPaymentsIPNHandler(verifier, NewMockIPNApplier(ctrl)).ServeHTTP(w, newRequest(body))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewCoinPaymentsIPNHandler(nil, NewMockIPNApplier(ctrl)).ServeHTTP(w, newRequest(ipnBody))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
