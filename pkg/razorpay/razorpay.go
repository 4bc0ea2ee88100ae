// Package razorpay is a minimal client for the Razorpay Orders API.
//
// It covers exactly what checkout needs: opening a gateway order for an
// amount in paise, and verifying the HMAC signature Razorpay sends with a
// payment callback.
//
//	gw := razorpay.New(keyID, keySecret)
//	order, err := gw.CreateOrder(ctx, 20000, razorpay.CurrencyINR, "receipt_order_42")
//	ok := gw.VerifySignature(order.ID, paymentID, signature)
package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/devtushar001/ietark/pkg/http"
	"github.com/devtushar001/ietark/pkg/metrics"
)

// CurrencyINR is the only currency the shop charges in.
const CurrencyINR = "INR"

const defaultBaseURL = "https://api.razorpay.com/v1"

// Order is the gateway-side order record. Amount is in minor currency units
// (paise), exactly as the Razorpay API returns it.
type Order struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// Client talks to the Razorpay REST API with a fixed key pair.
// The zero value is unusable; construct with New.
type Client struct {
	keyID     string
	keySecret string
	baseURL   string
}

// New returns a Client for the given key pair. An empty key id or secret is
// allowed here; Configured reports whether the pair is usable and the order
// flow checks it before any side effect.
func New(keyID, keySecret string) *Client {
	return &Client{keyID: keyID, keySecret: keySecret, baseURL: defaultBaseURL}
}

// NewWithBaseURL is New with a custom API endpoint, for tests and sandboxes.
func NewWithBaseURL(keyID, keySecret, baseURL string) *Client {
	return &Client{keyID: keyID, keySecret: keySecret, baseURL: baseURL}
}

// Configured reports whether both halves of the key pair are present.
func (c *Client) Configured() bool {
	return c.keyID != "" && c.keySecret != ""
}

// CreateOrder opens an order at the gateway for amount paise in the given
// currency. receipt is the merchant-side correlation id.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error) {
	start := time.Now()
	resp, err := http.Post(c.baseURL+"/orders").
		WithContext(ctx).
		BasicAuth(c.keyID, c.keySecret).
		Body(map[string]interface{}{
			"amount":   amount,
			"currency": currency,
			"receipt":  receipt,
		}).
		Timeout(15 * time.Second).
		Send()
	metrics.ObserveGatewayCall("create_order", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("razorpay: create order: %w", err)
	}
	if err := resp.Throw(); err != nil {
		return nil, fmt.Errorf("razorpay: create order: %w", err)
	}

	var order Order
	if err := resp.JSON(&order); err != nil {
		return nil, fmt.Errorf("razorpay: create order: %w", err)
	}
	return &order, nil
}

// VerifySignature checks the callback signature Razorpay computes as
// hex(HMAC-SHA256(secret, "<order_id>|<payment_id>")). The comparison is
// constant-time and case-sensitive.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	expected := signPayload(c.keySecret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Sign computes the callback signature for a given order/payment pair. It is
// what a genuine gateway callback would carry; exported for test fixtures
// and sandbox tooling.
func Sign(secret, orderID, paymentID string) string {
	return signPayload(secret, orderID, paymentID)
}
