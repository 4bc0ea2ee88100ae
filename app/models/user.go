package models

import "gorm.io/gorm"

// CartItem is a single line in a user's live cart. The price is intentionally
// absent: carts reference products by id only and are priced at checkout.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// User is the primary user model. CartData is the live, mutable cart; it is
// reset to empty once a payment for it has been verified.
type User struct {
	gorm.Model
	Name     string     `gorm:"size:255;not null" json:"name"`
	Email    string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string     `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	Role     string     `gorm:"size:50;default:user" json:"role"`
	CartData []CartItem `gorm:"serializer:json" json:"cartData"`
}
