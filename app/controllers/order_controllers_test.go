package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devtushar001/ietark/app/models"
	"github.com/devtushar001/ietark/app/services"
	"github.com/devtushar001/ietark/pkg/middleware"
	"github.com/devtushar001/ietark/pkg/razorpay"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type stubGateway struct {
	configured bool
	secret     string
	order      *razorpay.Order
}

func (g *stubGateway) Configured() bool { return g.configured }

func (g *stubGateway) CreateOrder(context.Context, int64, string, string) (*razorpay.Order, error) {
	return g.order, nil
}

func (g *stubGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return razorpay.Sign(g.secret, orderID, paymentID) == signature
}

type stubProducts struct{ byID map[string]models.ShopProduct }

func (p *stubProducts) FindByID(id string) (models.ShopProduct, error) {
	product, ok := p.byID[id]
	if !ok {
		return models.ShopProduct{}, gorm.ErrRecordNotFound
	}
	return product, nil
}

type stubOrders struct {
	byGateway map[string]models.Order
	byUser    map[uint][]models.Order
	created   []models.Order
}

func (o *stubOrders) Create(order *models.Order) error {
	o.created = append(o.created, *order)
	return nil
}

func (o *stubOrders) Update(order *models.Order) error {
	o.byGateway[order.Razorpay.OrderID] = *order
	return nil
}

func (o *stubOrders) FindByGatewayOrderID(id string) (models.Order, error) {
	order, ok := o.byGateway[id]
	if !ok {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	return order, nil
}

func (o *stubOrders) ByUser(userID uint) ([]models.Order, error) {
	return o.byUser[userID], nil
}

type stubUsers struct{ byID map[uint]models.User }

func (u *stubUsers) FindByID(id uint) (models.User, error) {
	user, ok := u.byID[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (u *stubUsers) Update(user *models.User) error {
	u.byID[user.ID] = *user
	return nil
}

func newOrderFixture() (*OrderController, *stubGateway, *stubOrders, *stubUsers) {
	gateway := &stubGateway{
		configured: true,
		secret:     "test_secret",
		order: &razorpay.Order{
			ID:       "order_rzp1",
			Entity:   "order",
			Amount:   20000,
			Currency: razorpay.CurrencyINR,
			Status:   "created",
		},
	}
	products := &stubProducts{byID: map[string]models.ShopProduct{
		"p1": {ID: "p1", Name: "Sticker Pack", Price: 100},
	}}
	orders := &stubOrders{byGateway: map[string]models.Order{}, byUser: map[uint][]models.Order{}}
	users := &stubUsers{byID: map[uint]models.User{
		7: {
			Model:    gorm.Model{ID: 7},
			Name:     "Asha",
			CartData: []models.CartItem{{ProductID: "p1", Quantity: 2}},
		},
	}}

	checkout := services.NewCheckoutService(gateway, products, orders, users)
	return NewOrderController(checkout, users, orders), gateway, orders, users
}

func authedRequest(method, target, body string, userID uint) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

type envelopeBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelopeBody {
	t.Helper()
	var body envelopeBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// ─────────────────────────────────────────────
// PlaceOrder
// ─────────────────────────────────────────────

func TestPlaceOrder(t *testing.T) {
	ctrl, _, orders, _ := newOrderFixture()

	rec := httptest.NewRecorder()
	ctrl.PlaceOrder(rec, authedRequest(http.MethodPost, "/api/order/create",
		`{"address":{"firstName":"Asha","city":"Pune","zipcode":"411001"}}`, 7))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success       bool            `json:"success"`
		Message       string          `json:"message"`
		Order         *models.Order   `json:"order"`
		RazorpayOrder *razorpay.Order `json:"razorpayOrder"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "Order created successfully", body.Message)

	require.NotNil(t, body.Order)
	assert.Equal(t, 200.0, body.Order.Amount)
	assert.Equal(t, models.OrderStatusPending, body.Order.Status)
	assert.Equal(t, "Pune", body.Order.Address.City)
	assert.Equal(t, "order_rzp1", body.Order.Razorpay.OrderID)
	assert.Equal(t, 200.0, body.Order.Razorpay.Amount)

	require.NotNil(t, body.RazorpayOrder)
	assert.Equal(t, int64(20000), body.RazorpayOrder.Amount)

	require.Len(t, orders.created, 1)
}

func TestPlaceOrderUnknownUser(t *testing.T) {
	ctrl, _, _, _ := newOrderFixture()

	rec := httptest.NewRecorder()
	ctrl.PlaceOrder(rec, authedRequest(http.MethodPost, "/api/order/create", `{}`, 99))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User not found", decodeEnvelope(t, rec).Message)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	ctrl, _, _, users := newOrderFixture()
	users.byID[8] = models.User{Model: gorm.Model{ID: 8}}

	rec := httptest.NewRecorder()
	ctrl.PlaceOrder(rec, authedRequest(http.MethodPost, "/api/order/create", `{}`, 8))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cart is empty", decodeEnvelope(t, rec).Message)
}

func TestPlaceOrderCredentialsMissing(t *testing.T) {
	ctrl, gateway, _, _ := newOrderFixture()
	gateway.configured = false

	rec := httptest.NewRecorder()
	ctrl.PlaceOrder(rec, authedRequest(http.MethodPost, "/api/order/create", `{}`, 7))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Razorpay credentials not found", decodeEnvelope(t, rec).Message)
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	ctrl, _, _, users := newOrderFixture()
	users.byID[7] = models.User{
		Model:    gorm.Model{ID: 7},
		CartData: []models.CartItem{{ProductID: "p9", Quantity: 1}},
	}

	rec := httptest.NewRecorder()
	ctrl.PlaceOrder(rec, authedRequest(http.MethodPost, "/api/order/create", `{}`, 7))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Product not found: p9", decodeEnvelope(t, rec).Message)
}

func TestPlaceOrderInvalidAddress(t *testing.T) {
	ctrl, _, _, _ := newOrderFixture()

	rec := httptest.NewRecorder()
	ctrl.PlaceOrder(rec, authedRequest(http.MethodPost, "/api/order/create",
		`{"address":{"email":"not-an-email"}}`, 7))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

// ─────────────────────────────────────────────
// VerifyPayment
// ─────────────────────────────────────────────

func TestVerifyPayment(t *testing.T) {
	ctrl, gateway, orders, users := newOrderFixture()
	orders.byGateway["order_rzp1"] = models.Order{
		UserID:   7,
		Status:   models.OrderStatusPending,
		Razorpay: models.RazorpayOrder{OrderID: "order_rzp1"},
	}

	sig := razorpay.Sign(gateway.secret, "order_rzp1", "pay_123")
	rec := httptest.NewRecorder()
	ctrl.VerifyPayment(rec, authedRequest(http.MethodPost, "/api/order/verify",
		`{"order_id":"order_rzp1","payment_id":"pay_123","signature":"`+sig+`"}`, 7))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Payment verified successfully, cart cleared", body.Message)

	stored := orders.byGateway["order_rzp1"]
	assert.Equal(t, models.OrderStatusCompleted, stored.Status)
	assert.True(t, stored.Payment)
	assert.Empty(t, users.byID[7].CartData)
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	ctrl, _, _, _ := newOrderFixture()

	rec := httptest.NewRecorder()
	ctrl.VerifyPayment(rec, authedRequest(http.MethodPost, "/api/order/verify",
		`{"order_id":"order_rzp1"}`, 7))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeEnvelope(t, rec).Message)
}

func TestVerifyPaymentBadSignature(t *testing.T) {
	ctrl, _, orders, _ := newOrderFixture()
	orders.byGateway["order_rzp1"] = models.Order{UserID: 7, Razorpay: models.RazorpayOrder{OrderID: "order_rzp1"}}

	rec := httptest.NewRecorder()
	ctrl.VerifyPayment(rec, authedRequest(http.MethodPost, "/api/order/verify",
		`{"order_id":"order_rzp1","payment_id":"pay_123","signature":"deadbeef"}`, 7))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Payment verification failed", decodeEnvelope(t, rec).Message)
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	ctrl, gateway, _, _ := newOrderFixture()

	sig := razorpay.Sign(gateway.secret, "order_missing", "pay_123")
	rec := httptest.NewRecorder()
	ctrl.VerifyPayment(rec, authedRequest(http.MethodPost, "/api/order/verify",
		`{"order_id":"order_missing","payment_id":"pay_123","signature":"`+sig+`"}`, 7))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order not found", decodeEnvelope(t, rec).Message)
}

// ─────────────────────────────────────────────
// MyOrders
// ─────────────────────────────────────────────

func TestMyOrders(t *testing.T) {
	ctrl, _, orders, _ := newOrderFixture()
	orders.byUser[7] = []models.Order{
		{UserID: 7, Amount: 200, Status: models.OrderStatusCompleted},
	}

	rec := httptest.NewRecorder()
	ctrl.MyOrders(rec, authedRequest(http.MethodGet, "/api/order", "", 7))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool           `json:"success"`
		Data    []models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, 200.0, body.Data[0].Amount)
}
