package gateways

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ipnSign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestCoinPaymentsVerifyIPN(t *testing.T) {
	g := NewCoinPaymentsGateway("pub", "priv", "ipn_secret", "merchant1")

	body := []byte("txn_id=CPX1&status=100&amount1=50&merchant=merchant1")
	valid := ipnSign("ipn_secret", body)

	assert.True(t, g.VerifyIPN(body, valid))
	assert.False(t, g.VerifyIPN(body, "tampered"))
	assert.False(t, g.VerifyIPN([]byte("txn_id=CPX2"), valid))
	assert.False(t, g.VerifyIPN(body, ""))

	t.Run("wrong merchant fails even with a valid signature", func(t *testing.T) {
		other := []byte("txn_id=CPX1&status=100&amount1=50&merchant=someone_else")
		assert.False(t, g.VerifyIPN(other, ipnSign("ipn_secret", other)))

		missing := []byte("txn_id=CPX1&status=100&amount1=50")
		assert.False(t, g.VerifyIPN(missing, ipnSign("ipn_secret", missing)))
	})

	t.Run("merchant check is skipped when no merchant id is configured", func(t *testing.T) {
		anyMerchant := NewCoinPaymentsGateway("pub", "priv", "ipn_secret", "")
		missing := []byte("txn_id=CPX1&status=100&amount1=50")
		assert.True(t, anyMerchant.VerifyIPN(missing, ipnSign("ipn_secret", missing)))
	})

	noSecret := NewCoinPaymentsGateway("pub", "priv", "", "merchant1")
	assert.False(t, noSecret.VerifyIPN(body, valid))
}

func TestParseIPN(t *testing.T) {
	t.Run("complete deposit", func(t *testing.T) {
		form := url.Values{
			"txn_id":    {"CPX1"},
			"status":    {"100"},
			"amount1":   {"50.25"},
			"currency1": {"USDT"},
			"merchant":  {"merchant1"},
		}

		ipn, err := ParseIPN(form)
		require.NoError(t, err)
		assert.Equal(t, "CPX1", ipn.TxnID)
		assert.Equal(t, 100, ipn.Status)
		assert.True(t, ipn.Amount.Equal(decimal.NewFromFloat(50.25)))
		assert.Equal(t, "USDT", ipn.Currency)
		assert.Equal(t, "merchant1", ipn.Merchant)
	})

	t.Run("missing txn_id", func(t *testing.T) {
		_, err := ParseIPN(url.Values{"status": {"100"}})
		assert.Error(t, err)
	})

	t.Run("non-numeric status", func(t *testing.T) {
		_, err := ParseIPN(url.Values{"txn_id": {"CPX1"}, "status": {"done"}})
		assert.Error(t, err)
	})

	t.Run("absent amount defaults to zero", func(t *testing.T) {
		ipn, err := ParseIPN(url.Values{"txn_id": {"CPX1"}, "status": {"-1"}})
		require.NoError(t, err)
		assert.True(t, ipn.Amount.IsZero())
	})
}

func TestCoinPaymentsCreateTransaction(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		// Every API call must be signed with the private key.
		mac := hmac.New(sha512.New, []byte("priv"))
		mac.Write(raw)
		assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), r.Header.Get("HMAC"))

		form, err := url.ParseQuery(string(raw))
		require.NoError(t, err)
		assert.Equal(t, "create_transaction", form.Get("cmd"))
		assert.Equal(t, "pub", form.Get("key"))
		assert.Equal(t, "50.00", form.Get("amount"))
		assert.Equal(t, "USDT.TRC20", form.Get("currency2"))
		assert.Equal(t, "buyer@example.com", form.Get("buyer_email"))

		w.Write([]byte(`{"error":"ok","result":{"txn_id":"CPX1","address":"TAddr123","qrcode_url":"https://example.com/qr.png","timeout":3600}}`))
	}))
	defer srv.Close()

	g := NewCoinPaymentsGateway("pub", "priv", "ipn_secret", "merchant1")
	g.apiURL = srv.URL

	addr, err := g.CreateTransaction(context.Background(), decimal.NewFromInt(50), "buyer@example.com", "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "CPX1", addr.TxnID)
	assert.Equal(t, "TAddr123", addr.Address)
	assert.Equal(t, "https://example.com/qr.png", addr.QRCodeURL)
}

func TestCoinPaymentsCreateWithdrawal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			form, _ := url.ParseQuery(string(raw))
			assert.Equal(t, "create_withdrawal", form.Get("cmd"))
			assert.Equal(t, "TAddr123", form.Get("address"))
			w.Write([]byte(`{"error":"ok","result":{"id":"WD1"}}`))
		}))
		defer srv.Close()

		g := NewCoinPaymentsGateway("pub", "priv", "", "")
		g.apiURL = srv.URL

		id, err := g.CreateWithdrawal(context.Background(), decimal.NewFromInt(25), "TAddr123", "ref-2")
		require.NoError(t, err)
		assert.Equal(t, "WD1", id)
	})

	t.Run("gateway reports an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":"That amount is larger than your available balance!","result":[]}`))
		}))
		defer srv.Close()

		g := NewCoinPaymentsGateway("pub", "priv", "", "")
		g.apiURL = srv.URL

		_, err := g.CreateWithdrawal(context.Background(), decimal.NewFromInt(1e6), "TAddr123", "ref-3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "larger than your available balance")
	})
}

func TestNewCoinPaymentsGatewayUnconfigured(t *testing.T) {
	assert.Nil(t, NewCoinPaymentsGateway("", "priv", "", ""))
	assert.Nil(t, NewCoinPaymentsGateway("pub", "", "", ""))
	assert.NotNil(t, NewCoinPaymentsGateway("pub", "priv", "", ""))
}
