package gateways

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
)

// RazorpayGateway is the INR card/UPI rail. Orders are created through the
// official SDK; payment confirmation is a client-delivered signature checked
// against the key secret.
type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
}

// NewRazorpayGateway returns nil when the rail is not configured.
func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	if keyID == "" || keySecret == "" {
		return nil
	}
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
	}
}

// CreateOrder registers a payment order for the grossed-up charge and
// returns the gateway order id the client pays against. Razorpay amounts are
// in paise.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, chargeTotal decimal.Decimal, receipt string) (string, error) {
	data := map[string]interface{}{
		"amount":   chargeTotal.Mul(decimal.NewFromInt(100)).IntPart(),
		"currency": "INR",
		"receipt":  receipt,
		"notes": map[string]interface{}{
			"reference": receipt,
		},
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		logger.Log.Errorw("razorpay order creation failed", "receipt", receipt, "error", err)
		return "", fmt.Errorf("razorpay create order: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return "", fmt.Errorf("razorpay create order: response missing order id")
	}

	logger.Log.Infow("razorpay order created", "order_id", orderID, "receipt", receipt)
	return orderID, nil
}

// VerifyPaymentSignature checks the client-delivered confirmation: the
// signature must be HMAC-SHA256 over "orderID|paymentID" keyed with the
// key secret, hex encoded. Comparison is constant time.
func (g *RazorpayGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
