package razorpay_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ihttp "github.com/devtushar001/ietark/pkg/http"
	"github.com/devtushar001/ietark/pkg/razorpay"
)

// roundTripFunc adapts a function into an http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestCreateOrder(t *testing.T) {
	var captured *http.Request
	var capturedBody map[string]interface{}

	ihttp.DefaultClient.Transport = roundTripFunc(func(r *http.Request) (*http.Response, error) {
		captured = r
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &capturedBody))

		return jsonResponse(http.StatusOK, `{
			"id": "order_IluGWxBm9U8zJ8",
			"entity": "order",
			"amount": 20000,
			"currency": "INR",
			"receipt": "receipt_order_7",
			"status": "created",
			"created_at": 1755216000
		}`), nil
	})
	defer ihttp.ResetTransport()

	client := razorpay.New("rzp_test_key", "rzp_test_secret")
	order, err := client.CreateOrder(context.Background(), 20000, razorpay.CurrencyINR, "receipt_order_7")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "https://api.razorpay.com/v1/orders", captured.URL.String())

	user, pass, ok := captured.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "rzp_test_key", user)
	assert.Equal(t, "rzp_test_secret", pass)

	assert.Equal(t, float64(20000), capturedBody["amount"])
	assert.Equal(t, "INR", capturedBody["currency"])
	assert.Equal(t, "receipt_order_7", capturedBody["receipt"])

	assert.Equal(t, "order_IluGWxBm9U8zJ8", order.ID)
	assert.Equal(t, int64(20000), order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "created", order.Status)
}

func TestCreateOrderGatewayError(t *testing.T) {
	ihttp.DefaultClient.Transport = roundTripFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{"error":{"description":"Authentication failed"}}`), nil
	})
	defer ihttp.ResetTransport()

	client := razorpay.New("bad_key", "bad_secret")
	_, err := client.CreateOrder(context.Background(), 100, razorpay.CurrencyINR, "receipt_order_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestConfigured(t *testing.T) {
	assert.True(t, razorpay.New("key", "secret").Configured())
	assert.False(t, razorpay.New("", "secret").Configured())
	assert.False(t, razorpay.New("key", "").Configured())
	assert.False(t, razorpay.New("", "").Configured())
}

func TestSign(t *testing.T) {
	// Vectors computed independently with HMAC-SHA256 over "<order_id>|<payment_id>".
	assert.Equal(t,
		"4b3e76e0706e508ba43e6f26c1470569c4da3c5aba61dbb734f7b2a9c009ab1a",
		razorpay.Sign("test_secret", "order_rzp1", "pay_123"))
	assert.Equal(t,
		"870c8e94a3432ecc659b258fcdced8a5020412386d5a864fe7d8e9220e38e380",
		razorpay.Sign("9WkTYMrT5gPx", "order_IluGWxBm9U8zJ8", "pay_29QQoUBi66xm2f"))
}

func TestVerifySignature(t *testing.T) {
	client := razorpay.New("key", "test_secret")

	good := razorpay.Sign("test_secret", "order_rzp1", "pay_123")
	assert.True(t, client.VerifySignature("order_rzp1", "pay_123", good))

	assert.False(t, client.VerifySignature("order_rzp1", "pay_123", strings.ToUpper(good)))
	assert.False(t, client.VerifySignature("order_rzp1", "pay_999", good))
	assert.False(t, client.VerifySignature("order_rzp2", "pay_123", good))
	assert.False(t, client.VerifySignature("order_rzp1", "pay_123", ""))
}
