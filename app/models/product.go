package models

import "time"

// ShopProduct is a product in the shop catalogue. It is the read-only pricing
// source for checkout: order lines snapshot its price at order-creation time.
//
// The primary key is a natural string id (e.g. "p1") so cart lines and order
// snapshots can reference products without a join.
type ShopProduct struct {
	ID          string    `gorm:"primaryKey;size:40" json:"id"`
	Name        string    `gorm:"size:255;not null;index" json:"name"`
	Description string    `gorm:"type:text"              json:"description"`
	Price       float64   `gorm:"not null;default:0"     json:"price"`
	Stock       int       `gorm:"not null;default:0"     json:"stock"`
	Image       string    `gorm:"size:255"               json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
