package models

import (
	"time"
)

// User represents a registered shopper. The primary payment designation lives
// here as a nullable pointer to a card rather than as a flag on the card row,
// so at most one card per user can ever be primary.
type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Username         string    `json:"username" gorm:"uniqueIndex;not null"`
	Email            string    `json:"email" gorm:"uniqueIndex;not null"`
	Password         string    `json:"-"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	PrimaryPaymentID *uint     `json:"primary_payment_id"`
	Created          time.Time `json:"created" gorm:"default:now()"`
	Modified         time.Time `json:"modified" gorm:"default:now()"`
}

func (User) TableName() string {
	return "users"
}

// Cart is a shopping cart header. UserID is nullable so a session-only guest
// cart can exist before login.
type Cart struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	UserID   *uint     `json:"user_id" gorm:"index"`
	Created  time.Time `json:"created" gorm:"default:now()"`
	Modified time.Time `json:"modified" gorm:"default:now()"`
}

func (Cart) TableName() string {
	return "carts"
}

// Product is a row in the read-only catalog. This service never writes
// products; it only joins against them for cart pricing and stock.
type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

func (Product) TableName() string {
	return "products"
}
