package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devtushar001/ietark/app/models"
	"github.com/devtushar001/ietark/pkg/razorpay"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeGateway struct {
	configured  bool
	secret      string
	order       *razorpay.Order
	createErr   error
	gotAmount   int64
	gotCurrency string
	gotReceipt  string
	calls       int
}

func (g *fakeGateway) Configured() bool { return g.configured }

func (g *fakeGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (*razorpay.Order, error) {
	g.calls++
	g.gotAmount = amount
	g.gotCurrency = currency
	g.gotReceipt = receipt
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.order, nil
}

func (g *fakeGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return razorpay.Sign(g.secret, orderID, paymentID) == signature
}

type fakeProducts struct {
	byID map[string]models.ShopProduct
}

func (p *fakeProducts) FindByID(id string) (models.ShopProduct, error) {
	product, ok := p.byID[id]
	if !ok {
		return models.ShopProduct{}, gorm.ErrRecordNotFound
	}
	return product, nil
}

type fakeOrders struct {
	created   []models.Order
	byGateway map[string]models.Order
	updated   *models.Order
	createErr error
	updateErr error
}

func (o *fakeOrders) Create(order *models.Order) error {
	if o.createErr != nil {
		return o.createErr
	}
	o.created = append(o.created, *order)
	return nil
}

func (o *fakeOrders) Update(order *models.Order) error {
	if o.updateErr != nil {
		return o.updateErr
	}
	cp := *order
	o.updated = &cp
	return nil
}

func (o *fakeOrders) FindByGatewayOrderID(id string) (models.Order, error) {
	order, ok := o.byGateway[id]
	if !ok {
		return models.Order{}, gorm.ErrRecordNotFound
	}
	return order, nil
}

type fakeUsers struct {
	byID    map[uint]models.User
	updated *models.User
}

func (u *fakeUsers) FindByID(id uint) (models.User, error) {
	user, ok := u.byID[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (u *fakeUsers) Update(user *models.User) error {
	cp := *user
	u.updated = &cp
	u.byID[user.ID] = cp
	return nil
}

func newCheckoutFixture() (*CheckoutService, *fakeGateway, *fakeProducts, *fakeOrders, *fakeUsers) {
	gateway := &fakeGateway{
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
	products := &fakeProducts{byID: map[string]models.ShopProduct{
		"p1": {ID: "p1", Name: "Sticker Pack", Price: 100},
		"p2": {ID: "p2", Name: "Mug", Price: 249.50},
	}}
	orders := &fakeOrders{byGateway: map[string]models.Order{}}
	users := &fakeUsers{byID: map[uint]models.User{}}
	return NewCheckoutService(gateway, products, orders, users), gateway, products, orders, users
}

func buyer(cart ...models.CartItem) *models.User {
	return &models.User{
		Model:    gorm.Model{ID: 7},
		Name:     "Asha",
		Email:    "asha@example.com",
		CartData: cart,
	}
}

// ─────────────────────────────────────────────
// CreateOrder
// ─────────────────────────────────────────────

func TestCreateOrder(t *testing.T) {
	svc, gateway, _, orders, _ := newCheckoutFixture()
	user := buyer(models.CartItem{ProductID: "p1", Quantity: 2})

	order, gatewayOrder, err := svc.CreateOrder(context.Background(), user, models.Address{City: "Pune"})
	require.NoError(t, err)
	require.NotNil(t, order)
	require.NotNil(t, gatewayOrder)

	// 2 × 100.00 priced in paise on the gateway side.
	assert.Equal(t, int64(20000), gateway.gotAmount)
	assert.Equal(t, razorpay.CurrencyINR, gateway.gotCurrency)
	assert.Equal(t, "receipt_order_7", gateway.gotReceipt)

	assert.Equal(t, uint(7), order.UserID)
	assert.Equal(t, 200.0, order.Amount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.Payment)
	assert.Equal(t, "Pune", order.Address.City)

	require.Len(t, order.Items, 1)
	assert.Equal(t, models.OrderItem{ProductID: "p1", Quantity: 2, Price: 100}, order.Items[0])

	assert.Equal(t, "order_rzp1", order.Razorpay.OrderID)
	assert.Equal(t, razorpay.CurrencyINR, order.Razorpay.Currency)
	assert.Equal(t, 200.0, order.Razorpay.Amount)

	require.Len(t, orders.created, 1)
	assert.Equal(t, *order, orders.created[0])
}

func TestCreateOrderMultipleLines(t *testing.T) {
	svc, gateway, _, _, _ := newCheckoutFixture()
	user := buyer(
		models.CartItem{ProductID: "p1", Quantity: 1},
		models.CartItem{ProductID: "p2", Quantity: 2},
	)

	order, _, err := svc.CreateOrder(context.Background(), user, models.Address{})
	require.NoError(t, err)

	// 100 + 2 × 249.50 = 599.00, rounded into whole paise.
	assert.Equal(t, 599.0, order.Amount)
	assert.Equal(t, int64(59900), gateway.gotAmount)
	assert.Len(t, order.Items, 2)
}

func TestCreateOrderCredentialsMissing(t *testing.T) {
	svc, gateway, _, orders, _ := newCheckoutFixture()
	gateway.configured = false

	_, _, err := svc.CreateOrder(context.Background(), buyer(models.CartItem{ProductID: "p1", Quantity: 1}), models.Address{})
	assert.ErrorIs(t, err, ErrCredentialsMissing)
	assert.Zero(t, gateway.calls)
	assert.Empty(t, orders.created)
}

func TestCreateOrderNoUser(t *testing.T) {
	svc, _, _, _, _ := newCheckoutFixture()

	_, _, err := svc.CreateOrder(context.Background(), nil, models.Address{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	svc, gateway, _, _, _ := newCheckoutFixture()

	_, _, err := svc.CreateOrder(context.Background(), buyer(), models.Address{})
	assert.ErrorIs(t, err, ErrCartEmpty)
	assert.Zero(t, gateway.calls)
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc, gateway, _, orders, _ := newCheckoutFixture()
	user := buyer(
		models.CartItem{ProductID: "p1", Quantity: 1},
		models.CartItem{ProductID: "p9", Quantity: 1},
	)

	_, _, err := svc.CreateOrder(context.Background(), user, models.Address{})

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "p9", notFound.ProductID)
	assert.Equal(t, "Product not found: p9", err.Error())

	// Nothing reaches the gateway or storage on a bad cart line.
	assert.Zero(t, gateway.calls)
	assert.Empty(t, orders.created)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	svc, gateway, _, orders, _ := newCheckoutFixture()
	gateway.createErr = errors.New("gateway unreachable")

	_, _, err := svc.CreateOrder(context.Background(), buyer(models.CartItem{ProductID: "p1", Quantity: 1}), models.Address{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gateway unreachable")
	assert.Empty(t, orders.created)
}

func TestCreateOrderPersistFailure(t *testing.T) {
	svc, _, _, orders, _ := newCheckoutFixture()
	orders.createErr = errors.New("disk full")

	_, _, err := svc.CreateOrder(context.Background(), buyer(models.CartItem{ProductID: "p1", Quantity: 1}), models.Address{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist order")
}

// ─────────────────────────────────────────────
// VerifyPayment
// ─────────────────────────────────────────────

func TestVerifyPayment(t *testing.T) {
	svc, gateway, _, orders, users := newCheckoutFixture()

	orders.byGateway["order_rzp1"] = models.Order{
		Model:    gorm.Model{ID: 42},
		UserID:   7,
		Status:   models.OrderStatusPending,
		Razorpay: models.RazorpayOrder{OrderID: "order_rzp1"},
	}
	users.byID[7] = models.User{
		Model:    gorm.Model{ID: 7},
		CartData: []models.CartItem{{ProductID: "p1", Quantity: 2}},
	}

	err := svc.VerifyPayment(context.Background(), VerifyInput{
		OrderID:   "order_rzp1",
		PaymentID: "pay_123",
		Signature: razorpay.Sign(gateway.secret, "order_rzp1", "pay_123"),
	})
	require.NoError(t, err)

	require.NotNil(t, orders.updated)
	assert.Equal(t, models.OrderStatusCompleted, orders.updated.Status)
	assert.True(t, orders.updated.Payment)

	require.NotNil(t, users.updated)
	assert.Empty(t, users.updated.CartData)
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	svc, _, _, _, _ := newCheckoutFixture()

	for _, in := range []VerifyInput{
		{PaymentID: "pay_123", Signature: "sig"},
		{OrderID: "order_rzp1", Signature: "sig"},
		{OrderID: "order_rzp1", PaymentID: "pay_123"},
	} {
		err := svc.VerifyPayment(context.Background(), in)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestVerifyPaymentBadSignature(t *testing.T) {
	svc, _, _, orders, _ := newCheckoutFixture()
	orders.byGateway["order_rzp1"] = models.Order{UserID: 7, Razorpay: models.RazorpayOrder{OrderID: "order_rzp1"}}

	err := svc.VerifyPayment(context.Background(), VerifyInput{
		OrderID:   "order_rzp1",
		PaymentID: "pay_123",
		Signature: "deadbeef",
	})
	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Nil(t, orders.updated)
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	svc, gateway, _, _, _ := newCheckoutFixture()

	err := svc.VerifyPayment(context.Background(), VerifyInput{
		OrderID:   "order_missing",
		PaymentID: "pay_123",
		Signature: razorpay.Sign(gateway.secret, "order_missing", "pay_123"),
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestVerifyPaymentUserGone(t *testing.T) {
	svc, gateway, _, orders, _ := newCheckoutFixture()
	orders.byGateway["order_rzp1"] = models.Order{UserID: 7, Razorpay: models.RazorpayOrder{OrderID: "order_rzp1"}}

	err := svc.VerifyPayment(context.Background(), VerifyInput{
		OrderID:   "order_rzp1",
		PaymentID: "pay_123",
		Signature: razorpay.Sign(gateway.secret, "order_rzp1", "pay_123"),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)

	// The order is marked paid before the user lookup, so it stays paid.
	require.NotNil(t, orders.updated)
	assert.True(t, orders.updated.Payment)
}
