package services

import (
	"errors"
	"fmt"
)

// Checkout failure taxonomy. The messages are the exact strings returned to
// clients; controllers map each error to its HTTP status.
var (
	// ErrCredentialsMissing — the gateway key pair is not configured.
	ErrCredentialsMissing = errors.New("Razorpay credentials not found")

	// ErrUserNotFound — the user could not be resolved.
	ErrUserNotFound = errors.New("User not found")

	// ErrCartEmpty — checkout requires a non-empty cart.
	ErrCartEmpty = errors.New("Cart is empty")

	// ErrMissingFields — the verification callback is missing order_id,
	// payment_id or signature.
	ErrMissingFields = errors.New("Missing required fields")

	// ErrVerificationFailed — the callback signature does not match.
	ErrVerificationFailed = errors.New("Payment verification failed")

	// ErrOrderNotFound — no stored order matches the gateway order id.
	ErrOrderNotFound = errors.New("Order not found")
)

// ProductNotFoundError reports the offending product id when a cart line
// references a product that does not exist. Nothing is persisted in that
// case.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product not found: %s", e.ProductID)
}
