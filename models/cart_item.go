package models

import (
	"time"
)

// CartItem is a line in a cart, keyed by (cart_id, product_id).
type CartItem struct {
	CartID    uint      `json:"cart_id" gorm:"primaryKey"`
	ProductID uint      `json:"product_id" gorm:"primaryKey"`
	Quantity  int       `json:"quantity"`
	Created   time.Time `json:"created" gorm:"default:now()"`
	Modified  time.Time `json:"modified" gorm:"default:now()"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartItemDetail is a cart item joined against the product catalog. TotalPrice
// and InStock are computed in the query, never stored, so they always reflect
// the catalog at the moment of the call.
type CartItemDetail struct {
	CartID      uint      `json:"cart_id"`
	ProductID   uint      `json:"product_id"`
	Quantity    int       `json:"quantity"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Name        string    `json:"name"`
	TotalPrice  float64   `json:"total_price"`
	Description string    `json:"description"`
	InStock     bool      `json:"in_stock"`
}
