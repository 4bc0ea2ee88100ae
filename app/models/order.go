package models

import "gorm.io/gorm"

// Order status values. An order is created Pending/unpaid and moves exactly
// once to Completed/paid when its payment callback verifies.
const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
)

// OrderItem is one frozen line of the cart snapshot: the product id, the
// quantity ordered, and the product's price at order-creation time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Address is the shipping/contact payload captured with the order.
type Address struct {
	FirstName   string `gorm:"size:100" json:"firstName"`
	LastName    string `gorm:"size:100" json:"lastName"`
	Email       string `gorm:"size:255" json:"email"`
	Street      string `gorm:"size:255" json:"street"`
	City        string `gorm:"size:100" json:"city"`
	State       string `gorm:"size:100" json:"state"`
	FullAddress string `gorm:"size:512" json:"fulladdress"`
	Zipcode     string `gorm:"size:20"  json:"zipcode"`
	Phone       string `gorm:"size:30"  json:"phone"`
}

// RazorpayOrder is the gateway-side order descriptor stored alongside the
// order. OrderID correlates later payment callbacks; Amount is kept in major
// currency units (rupees), converted back from the gateway's paise.
type RazorpayOrder struct {
	OrderID  string  `gorm:"size:64;index" json:"id"`
	Currency string  `gorm:"size:8"        json:"currency"`
	Amount   float64 `json:"amount"`
}

// Order is a checkout order. Items is the immutable cart snapshot; Amount is
// the sum of price×quantity over that snapshot, fixed at creation time.
type Order struct {
	gorm.Model
	UserID   uint          `gorm:"not null;index" json:"userId"`
	Items    []OrderItem   `gorm:"serializer:json" json:"cartData"`
	Amount   float64       `json:"amount"`
	Address  Address       `gorm:"embedded;embeddedPrefix:addr_" json:"address"`
	Status   string        `gorm:"size:50;default:Pending" json:"status"`
	Payment  bool          `gorm:"default:false" json:"payment"`
	Razorpay RazorpayOrder `gorm:"embedded;embeddedPrefix:rzp_" json:"razorpayOrder"`
}
