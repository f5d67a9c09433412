package gateways

import (
	"context"
	"fmt"

	"github.com/plutov/paypal/v4"
	"github.com/shopspring/decimal"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
)

// PayPalGateway is the USD card rail: create an order, send the user to the
// approval URL, capture server-side when they return.
type PayPalGateway struct {
	client    *paypal.Client
	returnURL string
	cancelURL string
}

// NewPayPalGateway returns nil when the rail is not configured.
func NewPayPalGateway(clientID, secret, apiBase, returnURL, cancelURL string) (*PayPalGateway, error) {
	if clientID == "" || secret == "" {
		return nil, nil
	}
	if apiBase == "" {
		apiBase = paypal.APIBaseSandBox
	}

	client, err := paypal.NewClient(clientID, secret, apiBase)
	if err != nil {
		return nil, fmt.Errorf("paypal client: %w", err)
	}

	return &PayPalGateway{
		client:    client,
		returnURL: returnURL,
		cancelURL: cancelURL,
	}, nil
}

// CreateOrder creates a capture-intent order for the grossed-up charge and
// returns the order id plus the approval URL the client must open.
func (g *PayPalGateway) CreateOrder(ctx context.Context, chargeTotal decimal.Decimal, reference string) (orderID, approvalURL string, err error) {
	order, err := g.client.CreateOrder(ctx, paypal.OrderIntentCapture,
		[]paypal.PurchaseUnitRequest{
			{
				ReferenceID: reference,
				CustomID:    reference,
				Amount: &paypal.PurchaseUnitAmount{
					Currency: "USD",
					Value:    chargeTotal.StringFixed(2),
				},
			},
		},
		nil,
		&paypal.ApplicationContext{
			ReturnURL: g.returnURL,
			CancelURL: g.cancelURL,
		},
	)
	if err != nil {
		logger.Log.Errorw("paypal order creation failed", "reference", reference, "error", err)
		return "", "", fmt.Errorf("paypal create order: %w", err)
	}

	for _, link := range order.Links {
		if link.Rel == "approve" {
			approvalURL = link.Href
			break
		}
	}
	if approvalURL == "" {
		return "", "", fmt.Errorf("paypal create order: no approval link in response")
	}

	logger.Log.Infow("paypal order created", "order_id", order.ID, "reference", reference)
	return order.ID, approvalURL, nil
}

// CaptureOrder captures an approved order. Returns true only when the
// gateway reports the capture as completed.
func (g *PayPalGateway) CaptureOrder(ctx context.Context, orderID string) (bool, error) {
	resp, err := g.client.CaptureOrder(ctx, orderID, paypal.CaptureOrderRequest{})
	if err != nil {
		logger.Log.Errorw("paypal capture failed", "order_id", orderID, "error", err)
		return false, fmt.Errorf("paypal capture order: %w", err)
	}

	logger.Log.Infow("paypal order captured", "order_id", orderID, "status", resp.Status)
	return resp.Status == "COMPLETED", nil
}
