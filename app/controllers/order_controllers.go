package controllers

import (
	"errors"
	"net/http"

	"github.com/devtushar001/ietark/app/models"
	"github.com/devtushar001/ietark/app/services"
	"github.com/devtushar001/ietark/pkg/bind"
	"github.com/devtushar001/ietark/pkg/logger"
	"github.com/devtushar001/ietark/pkg/middleware"
	"github.com/devtushar001/ietark/pkg/razorpay"
	"github.com/devtushar001/ietark/pkg/response"
	"github.com/devtushar001/ietark/pkg/validate"
)

type userFinder interface {
	FindByID(id uint) (models.User, error)
}

type orderLister interface {
	ByUser(userID uint) ([]models.Order, error)
}

// OrderController exposes the checkout flow: placing an order against the
// payment gateway, verifying the payment callback, and listing the caller's
// orders. All routes sit behind the auth middleware.
type OrderController struct {
	checkout *services.CheckoutService
	users    userFinder
	orders   orderLister
}

func NewOrderController(checkout *services.CheckoutService, users userFinder, orders orderLister) *OrderController {
	return &OrderController{
		checkout: checkout,
		users:    users,
		orders:   orders,
	}
}

type addressPayload struct {
	FirstName   string `json:"firstName"   validate:"nullable,max=100"`
	LastName    string `json:"lastName"    validate:"nullable,max=100"`
	Email       string `json:"email"       validate:"nullable,email"`
	Street      string `json:"street"      validate:"nullable,max=255"`
	City        string `json:"city"        validate:"nullable,max=100"`
	State       string `json:"state"       validate:"nullable,max=100"`
	FullAddress string `json:"fulladdress" validate:"nullable,max=512"`
	Zipcode     string `json:"zipcode"     validate:"nullable,max=20"`
	Phone       string `json:"phone"       validate:"nullable,max=30"`
}

type placeOrderRequest struct {
	Address addressPayload `json:"address"`
}

// placeOrderResponse keeps the top-level order/razorpayOrder keys clients
// expect, rather than nesting them under data.
type placeOrderResponse struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	Order         *models.Order   `json:"order"`
	RazorpayOrder *razorpay.Order `json:"razorpayOrder"`
}

// PlaceOrder prices the authenticated user's cart and opens a gateway order
// for it.
//
//	POST /api/order/create
func (c *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var body placeOrderRequest
	if _, err := bind.JSON(r, &body); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	// validate.Struct does not recurse, so the nested address is checked here.
	if errs := validate.Struct(&body.Address); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.users.FindByID(middleware.UserID(r.Context()))
	if err != nil {
		response.BadRequest(w, services.ErrUserNotFound.Error())
		return
	}

	order, gatewayOrder, err := c.checkout.CreateOrder(r.Context(), &user, models.Address(body.Address))
	if err != nil {
		c.writeCreateError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, placeOrderResponse{
		Success:       true,
		Message:       "Order created successfully",
		Order:         order,
		RazorpayOrder: gatewayOrder,
	})
}

func (c *OrderController) writeCreateError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound *services.ProductNotFoundError

	switch {
	case errors.Is(err, services.ErrCredentialsMissing):
		response.NotFound(w, err.Error())
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrCartEmpty):
		response.BadRequest(w, err.Error())
	case errors.As(err, &notFound):
		response.BadRequest(w, notFound.Error())
	default:
		logger.WithCtx(r.Context()).Error("order creation failed", "error", err)
		response.ServerError(w, "Razorpay order creation failed: "+err.Error())
	}
}

// VerifyPayment authenticates the gateway callback, marks the order paid and
// clears the user's cart.
//
//	POST /api/order/verify
func (c *OrderController) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var body services.VerifyInput
	if _, err := bind.JSON(r, &body); err != nil {
		response.BadRequest(w, services.ErrMissingFields.Error())
		return
	}

	if err := c.checkout.VerifyPayment(r.Context(), body); err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields), errors.Is(err, services.ErrVerificationFailed):
			response.BadRequest(w, err.Error())
		case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrUserNotFound):
			response.NotFound(w, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("payment verification failed", "error", err)
			response.ServerError(w, "Payment verification failed: "+err.Error())
		}
		return
	}

	response.OK(w, "Payment verified successfully, cart cleared")
}

// MyOrders lists the authenticated user's orders, newest first.
//
//	GET /api/order
func (c *OrderController) MyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.ByUser(middleware.UserID(r.Context()))
	if err != nil {
		logger.WithCtx(r.Context()).Error("order listing failed", "error", err)
		response.ServerError(w, "Could not load orders")
		return
	}
	response.Success(w, "Orders fetched", orders)
}
