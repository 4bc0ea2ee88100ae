package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gorm.io/gorm"

	"github.com/devtushar001/ietark/app/models"
	"github.com/devtushar001/ietark/pkg/logger"
	"github.com/devtushar001/ietark/pkg/metrics"
	"github.com/devtushar001/ietark/pkg/razorpay"
)

// PaymentGateway is the slice of the Razorpay client checkout depends on.
type PaymentGateway interface {
	Configured() bool
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*razorpay.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

// ProductFinder prices cart lines.
type ProductFinder interface {
	FindByID(id string) (models.ShopProduct, error)
}

// OrderStore persists and looks up orders.
type OrderStore interface {
	Create(order *models.Order) error
	Update(order *models.Order) error
	FindByGatewayOrderID(id string) (models.Order, error)
}

// UserStore resolves users and persists cart resets.
type UserStore interface {
	FindByID(id uint) (models.User, error)
	Update(user *models.User) error
}

// VerifyInput is the payment callback payload. All three fields are
// required.
type VerifyInput struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// CheckoutService implements the order-creation and payment-verification
// flow. All collaborators, including the gateway credentials, are injected
// at construction time; nothing is read from ambient state.
//
// The two writes in each operation (gateway then storage on create, order
// then user on verify) are not transactional with each other. A storage
// failure after the gateway call leaves an orphaned gateway order, and a
// cart-clear failure leaves the order already marked paid. Both partial
// failures surface as errors to the caller and are never retried.
type CheckoutService struct {
	gateway  PaymentGateway
	products ProductFinder
	orders   OrderStore
	users    UserStore
}

func NewCheckoutService(gateway PaymentGateway, products ProductFinder, orders OrderStore, users UserStore) *CheckoutService {
	return &CheckoutService{
		gateway:  gateway,
		products: products,
		orders:   orders,
		users:    users,
	}
}

// CreateOrder prices the user's cart, opens a gateway order for the total
// (in paise), and persists a Pending order carrying the frozen cart
// snapshot, the address, and the gateway's order descriptor. It returns
// both the persisted order and the raw gateway order.
func (s *CheckoutService) CreateOrder(ctx context.Context, user *models.User, address models.Address) (*models.Order, *razorpay.Order, error) {
	if !s.gateway.Configured() {
		return nil, nil, ErrCredentialsMissing
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}
	if len(user.CartData) == 0 {
		return nil, nil, ErrCartEmpty
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(user.CartData))

	for _, line := range user.CartData {
		product, err := s.products.FindByID(line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil, &ProductNotFoundError{ProductID: line.ProductID}
			}
			return nil, nil, fmt.Errorf("look up product %s: %w", line.ProductID, err)
		}

		totalAmount += product.Price * float64(line.Quantity)
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     product.Price,
		})
	}

	receipt := fmt.Sprintf("receipt_order_%d", user.ID)
	amountPaise := int64(math.Round(totalAmount * 100))

	gatewayOrder, err := s.gateway.CreateOrder(ctx, amountPaise, razorpay.CurrencyINR, receipt)
	if err != nil {
		return nil, nil, err
	}

	order := &models.Order{
		UserID:  user.ID,
		Items:   items,
		Amount:  totalAmount,
		Address: address,
		Status:  models.OrderStatusPending,
		Payment: false,
		Razorpay: models.RazorpayOrder{
			OrderID:  gatewayOrder.ID,
			Currency: gatewayOrder.Currency,
			Amount:   float64(gatewayOrder.Amount) / 100,
		},
	}

	if err := s.orders.Create(order); err != nil {
		// The gateway order already exists and is now orphaned.
		return nil, nil, fmt.Errorf("persist order: %w", err)
	}

	metrics.OrdersCreated.Inc()
	logger.WithCtx(ctx).Info("order created",
		"user_id", user.ID,
		"amount", totalAmount,
		"gateway_order_id", gatewayOrder.ID,
	)

	return order, gatewayOrder, nil
}

// VerifyPayment authenticates a payment callback against the gateway
// signature and, on success, marks the order Completed/paid and clears the
// owning user's cart.
//
// The order is marked paid before the cart is cleared; if loading or saving
// the user fails afterwards the order stays paid and the error is surfaced.
func (s *CheckoutService) VerifyPayment(ctx context.Context, in VerifyInput) error {
	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		metrics.RecordVerification("error")
		return ErrMissingFields
	}

	if !s.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature) {
		metrics.RecordVerification("mismatch")
		logger.WithCtx(ctx).Warn("payment signature mismatch", "order_id", in.OrderID)
		return ErrVerificationFailed
	}

	order, err := s.orders.FindByGatewayOrderID(in.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.RecordVerification("order_not_found")
			return ErrOrderNotFound
		}
		metrics.RecordVerification("error")
		return fmt.Errorf("look up order %s: %w", in.OrderID, err)
	}

	order.Status = models.OrderStatusCompleted
	order.Payment = true
	if err := s.orders.Update(&order); err != nil {
		metrics.RecordVerification("error")
		return fmt.Errorf("mark order paid: %w", err)
	}

	user, err := s.users.FindByID(order.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.RecordVerification("user_not_found")
			return ErrUserNotFound
		}
		metrics.RecordVerification("error")
		return fmt.Errorf("look up user %d: %w", order.UserID, err)
	}

	user.CartData = []models.CartItem{}
	if err := s.users.Update(&user); err != nil {
		metrics.RecordVerification("error")
		return fmt.Errorf("clear cart: %w", err)
	}

	metrics.RecordVerification("verified")
	logger.WithCtx(ctx).Info("payment verified",
		"order_id", in.OrderID,
		"payment_id", in.PaymentID,
		"user_id", order.UserID,
	)

	return nil
}
