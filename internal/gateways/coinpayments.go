package gateways

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
)

// CoinPayments has no maintained Go SDK; this is a narrow client for the two
// API commands the USDT rail needs, plus IPN webhook authentication.

const coinPaymentsAPIURL = "https://www.coinpayments.net/api.php"

// IPN status code semantics: >= 100 means complete, < 0 means failed or
// cancelled, anything else is still pending.
const IPNStatusComplete = 100

// CoinPaymentsGateway is the USDT on-chain rail.
type CoinPaymentsGateway struct {
	publicKey  string
	privateKey string
	ipnSecret  string
	merchantID string
	apiURL     string
	httpClient *http.Client
}

// NewCoinPaymentsGateway returns nil when the rail is not configured.
func NewCoinPaymentsGateway(publicKey, privateKey, ipnSecret, merchantID string) *CoinPaymentsGateway {
	if publicKey == "" || privateKey == "" {
		return nil
	}
	return &CoinPaymentsGateway{
		publicKey:  publicKey,
		privateKey: privateKey,
		ipnSecret:  ipnSecret,
		merchantID: merchantID,
		apiURL:     coinPaymentsAPIURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// DepositAddress is the inbound side of an on-chain deposit.
type DepositAddress struct {
	TxnID     string
	Address   string
	QRCodeURL string
	Timeout   int64
}

type apiEnvelope struct {
	Error  string          `json:"error"`
	Result json.RawMessage `json:"result"`
}

// call signs the form body with HMAC-SHA512 of the private key and posts it.
func (g *CoinPaymentsGateway) call(ctx context.Context, cmd string, params url.Values, result any) error {
	params.Set("version", "1")
	params.Set("cmd", cmd)
	params.Set("key", g.publicKey)
	params.Set("format", "json")

	body := params.Encode()

	mac := hmac.New(sha512.New, []byte(g.privateKey))
	mac.Write([]byte(body))
	signature := hex.EncodeToString(mac.Sum(nil))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("coinpayments %s: %w", cmd, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HMAC", signature)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("coinpayments %s: %w", cmd, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("coinpayments %s: read response: %w", cmd, err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("coinpayments %s: decode response: %w", cmd, err)
	}
	if envelope.Error != "ok" {
		return fmt.Errorf("coinpayments %s: %s", cmd, envelope.Error)
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("coinpayments %s: decode result: %w", cmd, err)
		}
	}
	return nil
}

// CreateTransaction creates an inbound USDT transaction and returns the
// deposit address the payer must send to. Completion arrives later via IPN.
func (g *CoinPaymentsGateway) CreateTransaction(ctx context.Context, amount decimal.Decimal, buyerEmail, reference string) (*DepositAddress, error) {
	params := url.Values{}
	params.Set("amount", amount.StringFixed(2))
	params.Set("currency1", "USDT")
	params.Set("currency2", "USDT.TRC20")
	params.Set("buyer_email", buyerEmail)
	params.Set("custom", reference)

	var result struct {
		TxnID     string `json:"txn_id"`
		Address   string `json:"address"`
		QRCodeURL string `json:"qrcode_url"`
		Timeout   int64  `json:"timeout"`
	}
	if err := g.call(ctx, "create_transaction", params, &result); err != nil {
		logger.Log.Errorw("coinpayments transaction creation failed", "reference", reference, "error", err)
		return nil, err
	}

	logger.Log.Infow("coinpayments transaction created", "txn_id", result.TxnID, "reference", reference)
	return &DepositAddress{
		TxnID:     result.TxnID,
		Address:   result.Address,
		QRCodeURL: result.QRCodeURL,
		Timeout:   result.Timeout,
	}, nil
}

// CreateWithdrawal requests an on-chain payout to the given address.
func (g *CoinPaymentsGateway) CreateWithdrawal(ctx context.Context, amount decimal.Decimal, address, reference string) (string, error) {
	params := url.Values{}
	params.Set("amount", amount.StringFixed(2))
	params.Set("currency", "USDT.TRC20")
	params.Set("address", address)
	params.Set("auto_confirm", "1")
	params.Set("note", reference)

	var result struct {
		ID string `json:"id"`
	}
	if err := g.call(ctx, "create_withdrawal", params, &result); err != nil {
		logger.Log.Errorw("coinpayments withdrawal creation failed", "reference", reference, "error", err)
		return "", err
	}

	logger.Log.Infow("coinpayments withdrawal created", "withdrawal_id", result.ID, "reference", reference)
	return result.ID, nil
}

// VerifyIPN authenticates an IPN webhook: the HMAC header must equal the
// HMAC-SHA512 of the raw request body keyed with the shared IPN secret, and
// the notification's merchant field must name our merchant account.
func (g *CoinPaymentsGateway) VerifyIPN(rawBody []byte, hmacHeader string) bool {
	if g.ipnSecret == "" || hmacHeader == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(g.ipnSecret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(hmacHeader)) {
		return false
	}

	if g.merchantID != "" {
		form, err := url.ParseQuery(string(rawBody))
		if err != nil || form.Get("merchant") != g.merchantID {
			return false
		}
	}
	return true
}

// IPNNotification is the subset of IPN form fields the ledger acts on.
type IPNNotification struct {
	TxnID    string
	Status   int
	Amount   decimal.Decimal
	Currency string
	Merchant string
}

// ParseIPN extracts the relevant fields from a form-encoded IPN body.
func ParseIPN(form url.Values) (*IPNNotification, error) {
	txnID := form.Get("txn_id")
	if txnID == "" {
		return nil, fmt.Errorf("ipn missing txn_id")
	}

	status, err := strconv.Atoi(form.Get("status"))
	if err != nil {
		return nil, fmt.Errorf("ipn invalid status: %w", err)
	}

	amount := decimal.Zero
	if raw := form.Get("amount1"); raw != "" {
		amount, err = decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("ipn invalid amount: %w", err)
		}
	}

	return &IPNNotification{
		TxnID:    txnID,
		Status:   status,
		Amount:   amount,
		Currency: form.Get("currency1"),
		Merchant: form.Get("merchant"),
	}, nil
}
